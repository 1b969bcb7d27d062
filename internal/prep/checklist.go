package prep

import (
	"fmt"
	"strings"

	"prep-backend/internal/taxonomy"
)

// maxChecklistItems caps each round's checklist. Items are appended in
// priority order and truncated, so whatever exceeds the cap is dropped.
const maxChecklistItems = 8

// GenerateChecklist builds the four fixed round-wise checklists from the
// extraction result. Base items are always present; extras are appended
// per detected category, then each list is truncated to the cap.
func GenerateChecklist(extraction taxonomy.Result) []ChecklistRound {
	hasDSA := containsSkill(extraction.Skills("Core CS"), "DSA")
	langs := extraction.Skills("Languages")

	round1 := []string{
		"Brush up on quantitative aptitude (time-speed-distance, ratios, percentages).",
		"Revise verbal reasoning and logical reasoning basics.",
		"Practice timed aptitude tests (15-20 min).",
		"Review basic CS fundamentals (binary, complexity).",
		"Prepare a short self-introduction (1-2 min).",
	}
	if len(extraction.CategoryNames) > 0 {
		round1 = append(round1,
			"Align your resume with the JD keywords.",
			"List 2-3 projects that match the role.",
		)
	}
	if len(langs) > 0 {
		top := langs
		if len(top) > 2 {
			top = top[:2]
		}
		round1 = append(round1, fmt.Sprintf("Focus on %s syntax and common patterns.", strings.Join(top, " and ")))
	}

	round2 := []string{
		"Revise arrays, strings, hash maps, and two pointers.",
		"Practice 2-3 problems each on arrays and strings.",
	}
	if hasDSA {
		round2 = append(round2,
			"Revise trees and graphs (BFS/DFS).",
			"Practice one medium tree/graph problem.",
		)
	}
	if len(extraction.Skills("Core CS")) > 0 {
		round2 = append(round2,
			"Revise OOP concepts (if applicable): encapsulation, inheritance, polymorphism.",
			"Revise DBMS basics: normalization, indexes, transactions.",
			"Revise OS: processes, threads, scheduling.",
		)
	}
	round2 = append(round2, "Practice explaining your approach aloud.")

	round3 := []string{
		"Prepare 2-3 project deep-dives (stack, your role, challenges).",
		"Align project tech stack with JD (mention same tools).",
	}
	if extraction.Has("Web") {
		round3 = append(round3,
			"Prepare answers on state management and component design (if React in JD).",
			"Revise REST/API design and status codes.",
		)
	}
	if extraction.Has("Data") {
		round3 = append(round3, "Prepare SQL examples (joins, aggregation) and when to use NoSQL vs SQL.")
	}
	if extraction.Has("Cloud/DevOps") {
		round3 = append(round3, "Prepare 1-2 examples of deployment or cloud concepts you know.")
	}
	round3 = append(round3, `Prepare "Tell me about yourself" and "Why this company?".`)

	round4 := []string{
		"Prepare STAR-formatted behavioral examples (2-3).",
		"Prepare questions to ask the interviewer (2-3).",
		"Review company values and recent news.",
		"Practice confidence and clarity in answers.",
		"Prepare for salary/expectations if applicable.",
	}
	if taxonomy.HasAnySkills(extraction) {
		round4 = append(round4, "Summarize your strongest skill area and one improvement area.")
	}

	return []ChecklistRound{
		{RoundTitle: "Round 1: Aptitude / Basics", Items: capItems(round1)},
		{RoundTitle: "Round 2: DSA + Core CS", Items: capItems(round2)},
		{RoundTitle: "Round 3: Tech interview (projects + stack)", Items: capItems(round3)},
		{RoundTitle: "Round 4: Managerial / HR", Items: capItems(round4)},
	}
}

func capItems(items []string) []string {
	if len(items) > maxChecklistItems {
		return items[:maxChecklistItems]
	}
	return items
}

func containsSkill(skills []string, want string) bool {
	for _, s := range skills {
		if s == want {
			return true
		}
	}
	return false
}
