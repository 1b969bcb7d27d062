package progress

import (
	"context"
	"strings"
	"testing"

	"prep-backend/internal/shared/storage/kv"
)

func TestValidateURL(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/app": true,
		"http://example.com":      true,
		"  https://example.com  ": true,
		"":                        false,
		"   ":                     false,
		"ftp://example.com":       false,
		"example.com":             false,
		"https://":                false,
		"not a url":               false,
	}
	for in, want := range cases {
		if got := ValidateURL(in); got != want {
			t.Errorf("ValidateURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLinksDefaultsAndPartialUpdate(t *testing.T) {
	svc := New(kv.NewMemory())
	ctx := context.Background()

	if links := svc.Links(ctx); links != (Links{}) {
		t.Fatalf("expected empty defaults, got %#v", links)
	}

	project := "  https://example.com/project  "
	links, err := svc.SetLinks(ctx, LinksUpdate{ProjectURL: &project})
	if err != nil {
		t.Fatal(err)
	}
	if links.ProjectURL != "https://example.com/project" {
		t.Fatalf("expected trimmed project url, got %q", links.ProjectURL)
	}

	repo := "https://github.com/acme/prep"
	links, err = svc.SetLinks(ctx, LinksUpdate{GithubRepo: &repo})
	if err != nil {
		t.Fatal(err)
	}
	if links.ProjectURL != "https://example.com/project" {
		t.Fatalf("partial update clobbered project url: %q", links.ProjectURL)
	}
	if links.GithubRepo != repo {
		t.Fatalf("expected repo url, got %q", links.GithubRepo)
	}
}

func TestLinksCorruptBlobDegrades(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	if err := store.Set(ctx, LinksKey, "{broken"); err != nil {
		t.Fatal(err)
	}
	if links := New(store).Links(ctx); links != (Links{}) {
		t.Fatalf("expected defaults on corrupt blob, got %#v", links)
	}
}

func TestMarkVisited(t *testing.T) {
	svc := New(kv.NewMemory())
	ctx := context.Background()

	visited, err := svc.MarkVisited(ctx, "dashboard")
	if err != nil {
		t.Fatal(err)
	}
	if !visited.Dashboard || visited.Practice || visited.Assessments {
		t.Fatalf("unexpected flags %#v", visited)
	}

	// Unknown steps are ignored, not persisted.
	if _, err := svc.MarkVisited(ctx, "nonsense"); err != nil {
		t.Fatal(err)
	}
	visited = svc.Visited(ctx)
	if !visited.Dashboard || visited.Practice || visited.Assessments {
		t.Fatalf("unknown step mutated state %#v", visited)
	}
}

func TestChecklistLifecycle(t *testing.T) {
	svc := New(kv.NewMemory())
	ctx := context.Background()

	state := svc.Checklist(ctx)
	if len(state) != len(ChecklistItems) {
		t.Fatalf("expected %d items, got %d", len(ChecklistItems), len(state))
	}
	if svc.AllPassed(ctx) {
		t.Fatal("fresh checklist should not pass")
	}

	// Unknown ids are ignored.
	if _, err := svc.SetChecklistItem(ctx, "made-up", true); err != nil {
		t.Fatal(err)
	}
	if _, ok := svc.Checklist(ctx)["made-up"]; ok {
		t.Fatal("unknown id leaked into state")
	}

	for _, item := range ChecklistItems {
		if _, err := svc.SetChecklistItem(ctx, item.ID, true); err != nil {
			t.Fatal(err)
		}
	}
	if !svc.AllPassed(ctx) {
		t.Fatal("expected all passed after ticking every item")
	}

	if err := svc.ResetChecklist(ctx); err != nil {
		t.Fatal(err)
	}
	if svc.AllPassed(ctx) {
		t.Fatal("reset should clear all items")
	}
}

func TestStatusGate(t *testing.T) {
	svc := New(kv.NewMemory())
	ctx := context.Background()

	status := svc.Status(ctx, 0)
	if status != (StepStatus{}) {
		t.Fatalf("expected all steps false, got %#v", status)
	}
	if status.Shipped() {
		t.Fatal("empty state should not be shipped")
	}

	for _, step := range []string{"dashboard", "practice", "assessments"} {
		if _, err := svc.MarkVisited(ctx, step); err != nil {
			t.Fatal(err)
		}
	}
	for _, item := range ChecklistItems {
		if _, err := svc.SetChecklistItem(ctx, item.ID, true); err != nil {
			t.Fatal(err)
		}
	}
	project := "https://example.com/p"
	repo := "https://github.com/acme/prep"
	deployed := "https://prep.example.com"
	if _, err := svc.SetLinks(ctx, LinksUpdate{ProjectURL: &project, GithubRepo: &repo, DeployedURL: &deployed}); err != nil {
		t.Fatal(err)
	}

	status = svc.Status(ctx, 2)
	if !status.Shipped() {
		t.Fatalf("expected shipped, got %#v", status)
	}

	// History is load-bearing for three steps.
	status = svc.Status(ctx, 0)
	if status.Step2 || status.Step3 || status.Step4 {
		t.Fatalf("history steps should be false without entries: %#v", status)
	}
	if status.Shipped() {
		t.Fatal("should not be shipped without history")
	}
}

func TestSubmissionText(t *testing.T) {
	svc := New(kv.NewMemory())
	ctx := context.Background()
	repo := "https://github.com/acme/prep"
	if _, err := svc.SetLinks(ctx, LinksUpdate{GithubRepo: &repo}); err != nil {
		t.Fatal(err)
	}

	text := svc.SubmissionText(ctx)
	if !strings.Contains(text, "GitHub Repository: https://github.com/acme/prep") {
		t.Fatalf("missing repo line in:\n%s", text)
	}
	if !strings.Contains(text, "Final Submission") {
		t.Fatalf("missing header in:\n%s", text)
	}
}
