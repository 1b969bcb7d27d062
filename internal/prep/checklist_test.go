package prep

import (
	"strings"
	"testing"

	"prep-backend/internal/taxonomy"
)

func richExtraction() taxonomy.Result {
	return taxonomy.Result{
		ByCategory: map[string][]string{
			"Core CS":      {"DSA", "OOP", "DBMS"},
			"Languages":    {"Java", "Python", "Go"},
			"Web":          {"React", "REST"},
			"Data":         {"SQL"},
			"Cloud/DevOps": {"AWS"},
			"Testing":      {"JUnit"},
		},
		AllSkills:     []string{"DSA", "OOP", "DBMS", "Java", "Python", "Go", "React", "REST", "SQL", "AWS", "JUnit"},
		CategoryNames: []string{"Core CS", "Languages", "Web", "Data", "Cloud/DevOps", "Testing"},
	}
}

func TestChecklistHasFourFixedRounds(t *testing.T) {
	rounds := GenerateChecklist(taxonomy.Empty())
	if len(rounds) != 4 {
		t.Fatalf("expected 4 rounds, got %d", len(rounds))
	}
	wantTitles := []string{
		"Round 1: Aptitude / Basics",
		"Round 2: DSA + Core CS",
		"Round 3: Tech interview (projects + stack)",
		"Round 4: Managerial / HR",
	}
	for i, want := range wantTitles {
		if rounds[i].RoundTitle != want {
			t.Fatalf("round %d title = %q, want %q", i+1, rounds[i].RoundTitle, want)
		}
	}
}

func TestChecklistEmptyExtractionBaseItemsOnly(t *testing.T) {
	rounds := GenerateChecklist(taxonomy.Empty())
	if len(rounds[0].Items) != 5 {
		t.Fatalf("round 1 base items = %d, want 5", len(rounds[0].Items))
	}
	if len(rounds[1].Items) != 3 {
		t.Fatalf("round 2 base items = %d, want 3", len(rounds[1].Items))
	}
	if len(rounds[3].Items) != 5 {
		t.Fatalf("round 4 base items = %d, want 5", len(rounds[3].Items))
	}
}

func TestChecklistConditionalAppends(t *testing.T) {
	rounds := GenerateChecklist(richExtraction())

	// Top two languages only, in extraction order.
	found := false
	for _, item := range rounds[0].Items {
		if strings.Contains(item, "Java and Python") {
			found = true
		}
		if strings.Contains(item, "Go syntax") {
			t.Fatalf("third language leaked into round 1: %q", item)
		}
	}
	if !found {
		t.Fatalf("expected language focus item in round 1: %v", rounds[0].Items)
	}

	hasTrees := false
	for _, item := range rounds[1].Items {
		if strings.Contains(item, "trees and graphs") {
			hasTrees = true
		}
	}
	if !hasTrees {
		t.Fatalf("expected DSA extras in round 2: %v", rounds[1].Items)
	}
}

func TestChecklistCapsAtEight(t *testing.T) {
	rounds := GenerateChecklist(richExtraction())
	for _, round := range rounds {
		if len(round.Items) > 8 {
			t.Fatalf("%s has %d items, cap is 8", round.RoundTitle, len(round.Items))
		}
	}
	// Rounds 1 and 2 hit the cap exactly with a fully matched taxonomy.
	if len(rounds[0].Items) != 8 {
		t.Fatalf("round 1 items = %d, want 8", len(rounds[0].Items))
	}
	if len(rounds[1].Items) != 8 {
		t.Fatalf("round 2 items = %d, want 8", len(rounds[1].Items))
	}
}
