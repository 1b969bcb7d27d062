package prep

import (
	"regexp"

	"prep-backend/internal/taxonomy"
)

const questionCount = 10

var (
	dsaPattern      = regexp.MustCompile(`(?i)DSA|data structure|algorithm`)
	sqlLikePattern  = regexp.MustCompile(`(?i)sql|mysql|postgres`)
	reactQPattern   = regexp.MustCompile(`(?i)react`)
	genericFallback = []string{
		"Tell me about a challenging bug you fixed and how you approached it.",
		"Describe a project where you had to learn something new quickly.",
		"How do you handle disagreements in a team?",
		"Where do you see yourself in 2-3 years?",
		"What is your biggest weakness and how are you working on it?",
	}
)

// GenerateQuestions builds exactly ten likely interview questions. The
// conditional questions are gated by detected signals in priority order;
// the generic pool is cycled to pad the list when fewer than ten fire.
func GenerateQuestions(extraction taxonomy.Result) []string {
	questions := make([]string, 0, questionCount)

	if anyMatch(extraction.AllSkills, dsaPattern) || len(extraction.Skills("Core CS")) > 0 {
		questions = append(questions,
			"How would you optimize search in sorted data? Discuss time/space tradeoffs.",
			"Explain when you would use a hash map vs an array for a problem.",
		)
	}
	if anyMatch(extraction.Skills("Data"), sqlLikePattern) {
		questions = append(questions,
			"Explain indexing and when it helps. What are clustered vs non-clustered indexes?",
			"How would you design a schema for a given use case?",
		)
	}
	if anyMatch(extraction.Skills("Web"), reactQPattern) {
		questions = append(questions,
			"Explain state management options in React (local state, Context, external store).",
			"How do you optimize re-renders in a React application?",
		)
	}
	if len(extraction.Skills("Web")) > 0 {
		questions = append(questions, "Explain REST principles and when you would choose REST vs GraphQL.")
	}
	if len(extraction.Skills("Core CS")) > 0 {
		questions = append(questions,
			"Explain the difference between process and thread. When would you use multithreading?",
			"Explain ACID in databases and why it matters.",
		)
	}
	if len(extraction.Skills("Cloud/DevOps")) > 0 {
		questions = append(questions, "Explain how you would deploy an application and what you would monitor.")
	}
	if len(extraction.Skills("Languages")) > 0 {
		questions = append(questions, "What are the main strengths of your primary language for this role?")
	}

	for i := 0; len(questions) < questionCount; i++ {
		questions = append(questions, genericFallback[i%len(genericFallback)])
	}
	return questions[:questionCount]
}
