package prep

import (
	"regexp"

	"prep-backend/internal/taxonomy"
)

var reactNodePattern = regexp.MustCompile(`(?i)react|node`)

// BuildRoundMapping selects one of four fixed interview round sequences
// based on company size and detected skills. Branches never blend: each
// returns its full literal sequence.
func BuildRoundMapping(extraction taxonomy.Result, intel *CompanyIntel) []RoundMappingEntry {
	enterprise := intel != nil && intel.IsEnterprise
	hasDSA := containsSkill(extraction.Skills("Core CS"), "DSA") || extraction.Has("Core CS")
	hasReactNode := extraction.Has("Web") && anyMatch(extraction.Skills("Web"), reactNodePattern)

	switch {
	case enterprise && hasDSA:
		return []RoundMappingEntry{
			roundEntry(1, "Online Test (DSA + Aptitude)", "Filters for problem-solving speed and basic aptitude before technical depth."),
			roundEntry(2, "Technical (DSA + Core CS)", "Validates data structures, algorithms, and core CS fundamentals."),
			roundEntry(3, "Tech + Projects", "Assesses real-world application and system design thinking."),
			roundEntry(4, "HR", "Fit, motivation, and long-term alignment with company values."),
		}
	case !enterprise && hasReactNode:
		return []RoundMappingEntry{
			roundEntry(1, "Practical coding", "Tests ability to write working code in the stack they use daily."),
			roundEntry(2, "System discussion", "Evaluates how you think about design and tradeoffs."),
			roundEntry(3, "Culture fit", "Ensures alignment with small-team dynamics and ownership."),
		}
	case enterprise:
		return []RoundMappingEntry{
			roundEntry(1, "Aptitude / Online test", "Initial screening for quantitative and logical ability."),
			roundEntry(2, "Technical (Core + DSA)", "Deep dive into fundamentals and coding."),
			roundEntry(3, "Technical (Projects / Design)", "Application of skills to real scenarios."),
			roundEntry(4, "HR", "Behavioral fit and career expectations."),
		}
	default:
		return []RoundMappingEntry{
			roundEntry(1, "Screening / Coding", "Quick check on coding ability and basics."),
			roundEntry(2, "Technical deep-dive", "Deeper problem-solving and system thinking."),
			roundEntry(3, "Team / Culture fit", "How you work with the team and handle ambiguity."),
		}
	}
}

func roundEntry(round int, title, why string) RoundMappingEntry {
	return RoundMappingEntry{
		Round:        round,
		RoundTitle:   title,
		FocusAreas:   []string{title},
		WhyItMatters: why,
	}
}
