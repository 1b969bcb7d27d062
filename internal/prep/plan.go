package prep

import (
	"regexp"

	"prep-backend/internal/taxonomy"
)

var reactPattern = regexp.MustCompile(`(?i)react`)

// GeneratePlan builds the 7-day preparation plan. The five day buckets are
// fixed; tasks are appended when the matching signal is present. Lists are
// naturally short, so there is no cap.
func GeneratePlan(extraction taxonomy.Result) []PlanDay {
	hasReact := anyMatch(extraction.Skills("Web"), reactPattern)
	hasDSA := extraction.Has("Core CS") || containsSkill(extraction.AllSkills, "DSA")
	hasData := extraction.Has("Data")

	day1 := []string{
		"Revise core CS: OS (processes, threads), DBMS (ACID, indexes), Networks (TCP, HTTP).",
		"Brush up on OOP and basic data structures (array, linked list, stack, queue).",
	}
	day3 := []string{
		"DSA: arrays, strings, hash map, two pointers.",
		"Solve 3-5 problems on the above topics.",
	}
	if hasDSA {
		day3 = append(day3, "Add trees/graphs and 1-2 problems.")
	}
	day5 := []string{
		"List projects that match the JD stack.",
		"Prepare 2-3 project deep-dives (problem, solution, your role, metrics).",
		"Align resume bullet points with JD keywords.",
	}
	day6 := []string{
		"Practice mock tech questions (out loud).",
		`Prepare "Tell me about yourself" and "Why us?".`,
	}
	if hasReact {
		day6 = append(day6, "Revise React: lifecycle, hooks, state management.")
	}
	if hasData {
		day6 = append(day6, "Prepare SQL/NoSQL discussion and 1-2 example queries.")
	}
	day7 := []string{
		"Revision: weak areas from the week.",
		"Light revision of key concepts; avoid new topics.",
		"Rest and stay calm.",
	}

	return []PlanDay{
		{Day: "Day 1-2", Focus: "Basics + core CS", Tasks: day1},
		{Day: "Day 3-4", Focus: "DSA + coding practice", Tasks: day3},
		{Day: "Day 5", Focus: "Project + resume alignment", Tasks: day5},
		{Day: "Day 6", Focus: "Mock interview questions", Tasks: day6},
		{Day: "Day 7", Focus: "Revision + weak areas", Tasks: day7},
	}
}

func anyMatch(skills []string, pattern *regexp.Regexp) bool {
	for _, s := range skills {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}
