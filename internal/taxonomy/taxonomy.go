package taxonomy

import "strings"

// Category is a named group of skill keywords.
type Category struct {
	Name     string
	Keywords []string
}

// Categories is the fixed taxonomy used for JD classification. Declaration
// order is significant: categories are scanned in this order and keyword
// order within a category is preserved in extraction results.
var Categories = []Category{
	{Name: "Core CS", Keywords: []string{"DSA", "OOP", "DBMS", "OS", "Networks"}},
	{Name: "Languages", Keywords: []string{"Java", "Python", "JavaScript", "TypeScript", "C", "C++", "C#", "Go"}},
	{Name: "Web", Keywords: []string{"React", "Next.js", "Node.js", "Express", "REST", "GraphQL"}},
	{Name: "Data", Keywords: []string{"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis"}},
	{Name: "Cloud/DevOps", Keywords: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Linux"}},
	{Name: "Testing", Keywords: []string{"Selenium", "Cypress", "Playwright", "JUnit", "PyTest"}},
}

// Result holds the classification of a JD text against the taxonomy.
// CategoryNames lists exactly the categories with at least one match, in
// taxonomy order. AllSkills is globally deduplicated in first-seen order.
type Result struct {
	ByCategory    map[string][]string `json:"byCategory"`
	AllSkills     []string            `json:"allSkills"`
	CategoryNames []string            `json:"categoryNames"`
}

// Empty returns a Result with no matches.
func Empty() Result {
	return Result{
		ByCategory:    map[string][]string{},
		AllSkills:     []string{},
		CategoryNames: []string{},
	}
}

// Extract classifies free-form JD text against the taxonomy. Matching is
// case-insensitive substring search with no word-boundary requirement, so
// a keyword that happens to be a substring of another word still matches.
// Empty input yields an empty result; Extract never fails.
func Extract(jdText string) Result {
	if strings.TrimSpace(jdText) == "" {
		return Empty()
	}
	lower := strings.ToLower(strings.TrimSpace(jdText))

	out := Empty()
	seen := make(map[string]bool)
	for _, cat := range Categories {
		var found []string
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				found = append(found, kw)
				if !seen[kw] {
					seen[kw] = true
					out.AllSkills = append(out.AllSkills, kw)
				}
			}
		}
		if len(found) > 0 {
			out.ByCategory[cat.Name] = found
			out.CategoryNames = append(out.CategoryNames, cat.Name)
		}
	}
	return out
}

// HasAnySkills reports whether the extraction matched anything at all.
func HasAnySkills(r Result) bool {
	return len(r.CategoryNames) > 0 || len(r.AllSkills) > 0
}

// Has reports whether the named category matched.
func (r Result) Has(category string) bool {
	for _, name := range r.CategoryNames {
		if name == category {
			return true
		}
	}
	return false
}

// Skills returns the matched keywords for a category, or nil.
func (r Result) Skills(category string) []string {
	return r.ByCategory[category]
}
