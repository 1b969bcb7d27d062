package prep

import (
	"strconv"
	"strings"
)

// Stored entries arrive as decoded JSON in one of three known shapes:
// the current canonical bucket shape, a legacy shape whose extractedSkills
// still carries the taxonomy-keyed byCategory map, and a partial bucket
// shape with some keys missing. MigrateEntry folds all of them into the
// canonical Entry and is safe to call on every load.
type storedShape int

const (
	shapeBuckets storedShape = iota
	shapeCategoryMap
	shapeUnknown
)

// MigrateEntry converts any stored record into a canonical Entry. The
// second return is false only when raw is not an object at all. FinalScore
// is always recomputed from baseScore and the confidence map; a stored
// finalScore is never trusted, since the formula may have changed since it
// was written. Timestamps fall back to now when absent.
func MigrateEntry(raw any, now string) (Entry, bool) {
	obj, ok := raw.(map[string]any)
	if !ok || obj == nil {
		return Entry{}, false
	}

	buckets := migrateSkillBuckets(obj["extractedSkills"])
	baseScore := coalesceScore(obj)
	confidence := migrateConfidenceMap(obj["skillConfidenceMap"])

	createdAt := asString(obj["createdAt"])
	if createdAt == "" {
		createdAt = now
	}
	updatedAt := asString(obj["updatedAt"])
	if updatedAt == "" {
		updatedAt = createdAt
	}

	return Entry{
		ID:                 asString(obj["id"]),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
		Company:            strings.TrimSpace(asString(obj["company"])),
		Role:               strings.TrimSpace(asString(obj["role"])),
		JDText:             asString(obj["jdText"]),
		ExtractedSkills:    buckets,
		RoundMapping:       migrateRoundMapping(obj["roundMapping"]),
		Checklist:          migrateChecklist(obj["checklist"]),
		Plan7Days:          migratePlan(coalesceValue(obj, "plan7Days", "plan")),
		Questions:          asStringSlice(obj["questions"]),
		BaseScore:          baseScore,
		SkillConfidenceMap: confidence,
		FinalScore:         ComputeFinalScore(baseScore, buckets, confidence),
		CompanyIntel:       migrateCompanyIntel(obj["companyIntel"]),
	}, true
}

func detectSkillShape(value any) storedShape {
	obj, ok := value.(map[string]any)
	if !ok {
		return shapeUnknown
	}
	if _, hasLegacy := obj["byCategory"].(map[string]any); hasLegacy {
		return shapeCategoryMap
	}
	return shapeBuckets
}

func migrateSkillBuckets(value any) SkillBuckets {
	switch detectSkillShape(value) {
	case shapeCategoryMap:
		legacy := value.(map[string]any)["byCategory"].(map[string]any)
		byCategory := make(map[string][]string, len(legacy))
		for name, skills := range legacy {
			byCategory[name] = asStringSlice(skills)
		}
		return bucketize(byCategory)
	case shapeBuckets:
		obj := value.(map[string]any)
		return SkillBuckets{
			CoreCS:    asStringSlice(obj["coreCS"]),
			Languages: asStringSlice(obj["languages"]),
			Web:       asStringSlice(obj["web"]),
			Data:      asStringSlice(obj["data"]),
			Cloud:     asStringSlice(obj["cloud"]),
			Testing:   asStringSlice(obj["testing"]),
			Other:     asStringSlice(obj["other"]),
		}
	default:
		return SkillBuckets{
			CoreCS:    []string{},
			Languages: []string{},
			Web:       []string{},
			Data:      []string{},
			Cloud:     []string{},
			Testing:   []string{},
			Other:     []string{},
		}
	}
}

// coalesceScore reads the base score with its legacy fallback:
// baseScore <- readinessScore <- 0.
func coalesceScore(obj map[string]any) int {
	if n, ok := asNumber(obj["baseScore"]); ok {
		return int(n)
	}
	if n, ok := asNumber(obj["readinessScore"]); ok {
		return int(n)
	}
	return 0
}

func migrateConfidenceMap(value any) map[string]Confidence {
	obj, ok := value.(map[string]any)
	if !ok {
		return map[string]Confidence{}
	}
	out := make(map[string]Confidence, len(obj))
	for skill, level := range obj {
		if s := asString(level); s != "" {
			out[skill] = Confidence(s)
		}
	}
	return out
}

func migrateRoundMapping(value any) []RoundMappingEntry {
	items, ok := value.([]any)
	if !ok {
		return []RoundMappingEntry{}
	}
	out := make([]RoundMappingEntry, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		round := i + 1
		if n, ok := asNumber(obj["round"]); ok {
			round = int(n)
		}
		// roundTitle <- title <- "Round N"
		title := coalesceString(obj, "roundTitle", "title")
		if title == "" {
			title = "Round " + strconv.Itoa(round)
		}
		focus := asStringSlice(obj["focusAreas"])
		if len(focus) == 0 {
			focus = []string{title}
		}
		out = append(out, RoundMappingEntry{
			Round:      round,
			RoundTitle: title,
			FocusAreas: focus,
			// whyItMatters <- whyMatters <- ""
			WhyItMatters: coalesceString(obj, "whyItMatters", "whyMatters"),
		})
	}
	return out
}

func migrateChecklist(value any) []ChecklistRound {
	items, ok := value.([]any)
	if !ok {
		return []ChecklistRound{}
	}
	out := make([]ChecklistRound, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, ChecklistRound{
			// roundTitle <- title <- round (the oldest shape used "round"
			// as the title field)
			RoundTitle: coalesceString(obj, "roundTitle", "title", "round"),
			Items:      asStringSlice(obj["items"]),
		})
	}
	return out
}

func migratePlan(value any) []PlanDay {
	items, ok := value.([]any)
	if !ok {
		return []PlanDay{}
	}
	out := make([]PlanDay, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		// tasks <- items
		tasks := asStringSlice(obj["tasks"])
		if len(tasks) == 0 {
			tasks = asStringSlice(obj["items"])
		}
		out = append(out, PlanDay{
			Day: asString(obj["day"]),
			// focus <- title
			Focus: coalesceString(obj, "focus", "title"),
			Tasks: tasks,
		})
	}
	return out
}

func migrateCompanyIntel(value any) *CompanyIntel {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	enterprise, _ := obj["isEnterprise"].(bool)
	return &CompanyIntel{
		CompanyName:        asString(obj["companyName"]),
		Industry:           asString(obj["industry"]),
		SizeCategory:       asString(obj["sizeCategory"]),
		TypicalHiringFocus: asString(obj["typicalHiringFocus"]),
		IsEnterprise:       enterprise,
	}
}

func coalesceValue(obj map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func coalesceString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := asString(obj[key]); s != "" {
			return s
		}
	}
	return ""
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}

func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func asStringSlice(value any) []string {
	switch raw := value.(type) {
	case []string:
		return raw
	case []any:
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
