package prep

import "strings"

// longJDThreshold is the trimmed JD length above which the base score
// earns its length bonus.
const longJDThreshold = 800

// ComputeBaseScore computes the readiness base score:
// 35 + 5 per matched category (max 6) + 10 for company + 10 for role
// + 10 for a long JD, clamped to [0,100]. Four discrete inputs fully
// determine the result.
func ComputeBaseScore(company, role, jdText string, categoryCount int) int {
	score := 35
	if categoryCount > 6 {
		categoryCount = 6
	}
	if categoryCount > 0 {
		score += categoryCount * 5
	}
	if strings.TrimSpace(company) != "" {
		score += 10
	}
	if strings.TrimSpace(role) != "" {
		score += 10
	}
	if len(strings.TrimSpace(jdText)) > longJDThreshold {
		score += 10
	}
	return clampScore(score)
}

// ComputeFinalScore adjusts a base score by per-skill confidence: +2 for
// every skill marked "know", -2 for every skill marked "practice" or not
// yet judged, over the full flattened bucket list. Confidence keys that no
// longer correspond to a bucketed skill contribute nothing. The result is
// clamped to [0,100]; the function is pure and idempotent.
func ComputeFinalScore(baseScore int, skills SkillBuckets, confidence map[string]Confidence) int {
	score := baseScore
	for _, skill := range skills.Flatten() {
		if confidence[skill] == ConfidenceKnow {
			score += 2
		} else {
			score -= 2
		}
	}
	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
