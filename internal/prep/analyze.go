package prep

import "prep-backend/internal/taxonomy"

// RunFullAnalysis produces the complete artifact bundle for one JD. All
// parts are deterministic functions of the inputs; missing signals fall
// through to the generic branches, so this never fails.
func RunFullAnalysis(company, role, jdText string) Bundle {
	extraction := taxonomy.Extract(jdText)
	intel := BuildCompanyIntel(company, jdText)

	return Bundle{
		ExtractedSkills: extraction,
		Checklist:       GenerateChecklist(extraction),
		Plan:            GeneratePlan(extraction),
		Questions:       GenerateQuestions(extraction),
		ReadinessScore:  ComputeBaseScore(company, role, jdText, len(extraction.CategoryNames)),
		CompanyIntel:    intel,
		RoundMapping:    BuildRoundMapping(extraction, intel),
	}
}
