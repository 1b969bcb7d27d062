package prep

import "prep-backend/internal/taxonomy"

// Confidence is the user's self-judgment for one extracted skill.
type Confidence string

const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// SkillBuckets is the canonical, closed skill shape persisted with every
// entry. All seven buckets are always present (possibly empty); Other is
// populated only as a soft-skill fallback when the six specific buckets
// are all empty.
type SkillBuckets struct {
	CoreCS    []string `json:"coreCS"`
	Languages []string `json:"languages"`
	Web       []string `json:"web"`
	Data      []string `json:"data"`
	Cloud     []string `json:"cloud"`
	Testing   []string `json:"testing"`
	Other     []string `json:"other"`
}

// Flatten returns all bucketed skills in bucket declaration order.
func (b SkillBuckets) Flatten() []string {
	out := make([]string, 0, len(b.CoreCS)+len(b.Languages)+len(b.Web)+len(b.Data)+len(b.Cloud)+len(b.Testing)+len(b.Other))
	out = append(out, b.CoreCS...)
	out = append(out, b.Languages...)
	out = append(out, b.Web...)
	out = append(out, b.Data...)
	out = append(out, b.Cloud...)
	out = append(out, b.Testing...)
	out = append(out, b.Other...)
	return out
}

// RoundMappingEntry describes one interview round and why it exists.
type RoundMappingEntry struct {
	Round        int      `json:"round"`
	RoundTitle   string   `json:"roundTitle"`
	FocusAreas   []string `json:"focusAreas"`
	WhyItMatters string   `json:"whyItMatters"`
}

// ChecklistRound is one round-wise preparation checklist, capped at 8 items.
type ChecklistRound struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// PlanDay is one bucket of the 7-day preparation plan.
type PlanDay struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// CompanyIntel is a heuristic company profile, present only when a company
// name was supplied with the analysis.
type CompanyIntel struct {
	CompanyName        string `json:"companyName"`
	Industry           string `json:"industry"`
	SizeCategory       string `json:"sizeCategory"`
	TypicalHiringFocus string `json:"typicalHiringFocus"`
	IsEnterprise       bool   `json:"isEnterprise"`
}

// Entry is the canonical persisted analysis record. BaseScore is fixed at
// creation; only SkillConfidenceMap, FinalScore and UpdatedAt may change
// afterwards. Timestamps are ISO-8601 strings.
type Entry struct {
	ID                 string                `json:"id"`
	CreatedAt          string                `json:"createdAt"`
	UpdatedAt          string                `json:"updatedAt"`
	Company            string                `json:"company"`
	Role               string                `json:"role"`
	JDText             string                `json:"jdText"`
	ExtractedSkills    SkillBuckets          `json:"extractedSkills"`
	RoundMapping       []RoundMappingEntry   `json:"roundMapping"`
	Checklist          []ChecklistRound      `json:"checklist"`
	Plan7Days          []PlanDay             `json:"plan7Days"`
	Questions          []string              `json:"questions"`
	BaseScore          int                   `json:"baseScore"`
	SkillConfidenceMap map[string]Confidence `json:"skillConfidenceMap"`
	FinalScore         int                   `json:"finalScore"`
	CompanyIntel       *CompanyIntel         `json:"companyIntel,omitempty"`
}

// Bundle is the full artifact set produced by RunFullAnalysis, before
// normalization into a canonical Entry.
type Bundle struct {
	ExtractedSkills taxonomy.Result     `json:"extractedSkills"`
	Checklist       []ChecklistRound    `json:"checklist"`
	Plan            []PlanDay           `json:"plan"`
	Questions       []string            `json:"questions"`
	ReadinessScore  int                 `json:"readinessScore"`
	CompanyIntel    *CompanyIntel       `json:"companyIntel,omitempty"`
	RoundMapping    []RoundMappingEntry `json:"roundMapping"`
}
