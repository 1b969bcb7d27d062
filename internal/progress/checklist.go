package progress

// ChecklistItem is one manual verification step users tick off before
// declaring the platform shipped.
type ChecklistItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Hint  string `json:"hint"`
}

// ChecklistItems is the fixed verification checklist. Stored state keyed
// by item id; unknown ids in stored data are dropped on read.
var ChecklistItems = []ChecklistItem{
	{
		ID:    "jd-required",
		Label: "JD required validation works",
		Hint:  "Submitting an analysis with an empty JD must be rejected with an error and no analysis runs.",
	},
	{
		ID:    "short-jd-warning",
		Label: "Short JD warning shows for <200 chars",
		Hint:  "A JD under 200 characters should surface a warning while the analysis still runs.",
	},
	{
		ID:    "skills-extraction",
		Label: "Skills extraction groups correctly",
		Hint:  "Analyze a JD with known tech (e.g. React, DSA); results should show skills under the correct categories (Web, Core CS, etc.).",
	},
	{
		ID:    "round-mapping",
		Label: "Round mapping changes based on company + skills",
		Hint:  "Run analyses with different company/skills; the round mapping should reflect enterprise vs startup and skill focus.",
	},
	{
		ID:    "score-deterministic",
		Label: "Score calculation is deterministic",
		Hint:  "Same JD and inputs should produce the same baseScore; confidence toggles change finalScore by +2/-2 per skill.",
	},
	{
		ID:    "skill-toggles-live",
		Label: "Skill toggles update score live",
		Hint:  "Toggling a skill between Know/Practice should update the readiness score immediately.",
	},
	{
		ID:    "persist-refresh",
		Label: "Changes persist after refresh",
		Hint:  "Toggle some skills, reload, reopen the same result; finalScore and toggles should be unchanged.",
	},
	{
		ID:    "history-save-load",
		Label: "History saves and loads correctly",
		Hint:  "Run an analysis, list the history; the entry appears and opens with matching data.",
	},
	{
		ID:    "export-buttons",
		Label: "Export actions produce the correct content",
		Hint:  "Exported plan, checklist and question text should match the stored data.",
	},
	{
		ID:    "no-errors",
		Label: "No errors on core flows",
		Hint:  "Running analyze, results, history and progress flows end to end should log no errors.",
	},
}

func defaultChecklistState() map[string]bool {
	state := make(map[string]bool, len(ChecklistItems))
	for _, item := range ChecklistItems {
		state[item.ID] = false
	}
	return state
}

func isChecklistID(id string) bool {
	for _, item := range ChecklistItems {
		if item.ID == id {
			return true
		}
	}
	return false
}
