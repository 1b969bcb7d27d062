package prep

import "strings"

// defaultOtherSkills is the fallback soft-skill set used when a JD matched
// nothing in the taxonomy, so an entry always has something to score.
var defaultOtherSkills = []string{"Communication", "Problem solving", "Basic coding", "Projects"}

// Normalize converts a fresh analysis bundle into the canonical Entry
// shape. The taxonomy-keyed categories are folded into the seven fixed
// buckets; Other is filled with the fallback set only when every specific
// bucket came out empty. FinalScore is computed here from the base score
// and the supplied confidence map. The ID is left empty for the history
// store to assign; timestamps are stamped with now.
func Normalize(raw Bundle, company, role, jdText string, existingConfidence map[string]Confidence, now string) Entry {
	buckets := bucketize(raw.ExtractedSkills.ByCategory)
	confidence := existingConfidence
	if confidence == nil {
		confidence = map[string]Confidence{}
	}

	return Entry{
		CreatedAt:          now,
		UpdatedAt:          now,
		Company:            strings.TrimSpace(company),
		Role:               strings.TrimSpace(role),
		JDText:             jdText,
		ExtractedSkills:    buckets,
		RoundMapping:       ensureRoundMapping(raw.RoundMapping),
		Checklist:          ensureChecklist(raw.Checklist),
		Plan7Days:          ensurePlan(raw.Plan),
		Questions:          ensureStrings(raw.Questions),
		BaseScore:          raw.ReadinessScore,
		SkillConfidenceMap: confidence,
		FinalScore:         ComputeFinalScore(raw.ReadinessScore, buckets, confidence),
		CompanyIntel:       raw.CompanyIntel,
	}
}

func bucketize(byCategory map[string][]string) SkillBuckets {
	b := SkillBuckets{
		CoreCS:    ensureStrings(byCategory["Core CS"]),
		Languages: ensureStrings(byCategory["Languages"]),
		Web:       ensureStrings(byCategory["Web"]),
		Data:      ensureStrings(byCategory["Data"]),
		Cloud:     ensureStrings(byCategory["Cloud/DevOps"]),
		Testing:   ensureStrings(byCategory["Testing"]),
		Other:     []string{},
	}
	if len(b.CoreCS)+len(b.Languages)+len(b.Web)+len(b.Data)+len(b.Cloud)+len(b.Testing) == 0 {
		b.Other = append([]string{}, defaultOtherSkills...)
	}
	return b
}

func ensureStrings(value []string) []string {
	if value == nil {
		return []string{}
	}
	return value
}

func ensureRoundMapping(rounds []RoundMappingEntry) []RoundMappingEntry {
	if rounds == nil {
		return []RoundMappingEntry{}
	}
	for i := range rounds {
		if rounds[i].Round == 0 {
			rounds[i].Round = i + 1
		}
		if len(rounds[i].FocusAreas) == 0 {
			rounds[i].FocusAreas = []string{rounds[i].RoundTitle}
		}
	}
	return rounds
}

func ensureChecklist(checklist []ChecklistRound) []ChecklistRound {
	if checklist == nil {
		return []ChecklistRound{}
	}
	for i := range checklist {
		checklist[i].Items = ensureStrings(checklist[i].Items)
	}
	return checklist
}

func ensurePlan(plan []PlanDay) []PlanDay {
	if plan == nil {
		return []PlanDay{}
	}
	for i := range plan {
		plan[i].Tasks = ensureStrings(plan[i].Tasks)
	}
	return plan
}
