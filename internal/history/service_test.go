package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"prep-backend/internal/prep"
	"prep-backend/internal/shared/storage/kv"
)

func newTestService(store kv.Store) *Service {
	seq := 0
	svc := New(store)
	svc.NewID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	svc.Now = func() string { return "2026-01-02T03:04:05Z" }
	return svc
}

func sampleEntry(company string) prep.Entry {
	bundle := prep.RunFullAnalysis(company, "Backend Engineer", "Java, SQL and AWS experience required")
	return prep.Normalize(bundle, company, "Backend Engineer", "Java, SQL and AWS experience required", nil, "2026-01-02T03:04:05Z")
}

func TestLoadEmptyWhenAbsent(t *testing.T) {
	svc := newTestService(kv.NewMemory())
	entries, skipped := svc.Load(context.Background())
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", entries)
	}
	if skipped != 0 {
		t.Fatalf("expected 0 skipped, got %d", skipped)
	}
}

func TestLoadEmptyWhenUnparseable(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	if err := store.Set(ctx, DefaultKey, "{not json"); err != nil {
		t.Fatal(err)
	}
	svc := newTestService(store)
	entries, skipped := svc.Load(ctx)
	if len(entries) != 0 || skipped != 0 {
		t.Fatalf("expected empty list with 0 skipped, got %d entries %d skipped", len(entries), skipped)
	}
}

func TestSavePrependsNewest(t *testing.T) {
	svc := newTestService(kv.NewMemory())
	ctx := context.Background()

	first, err := svc.Save(ctx, sampleEntry("Amazon"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Save(ctx, sampleEntry("Google"))
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == "" || second.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct assigned ids, got %q and %q", first.ID, second.ID)
	}

	entries, _ := svc.Load(ctx)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Fatalf("expected newest first, got %q", entries[0].ID)
	}
	if entries[0].CreatedAt != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected createdAt %q", entries[0].CreatedAt)
	}
}

func TestGetByID(t *testing.T) {
	svc := newTestService(kv.NewMemory())
	ctx := context.Background()
	saved, err := svc.Save(ctx, sampleEntry("Amazon"))
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Company != "Amazon" {
		t.Fatalf("unexpected entry %q", got.Company)
	}

	if _, err := svc.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetSkillConfidenceRecomputesScore(t *testing.T) {
	svc := newTestService(kv.NewMemory())
	ctx := context.Background()
	saved, err := svc.Save(ctx, sampleEntry("Amazon"))
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.SetSkillConfidence(ctx, saved.ID, "Java", prep.ConfidenceKnow)
	if err != nil {
		t.Fatal(err)
	}
	if updated.SkillConfidenceMap["Java"] != prep.ConfidenceKnow {
		t.Fatalf("confidence not recorded: %#v", updated.SkillConfidenceMap)
	}
	if updated.FinalScore <= saved.FinalScore {
		t.Fatalf("expected final score to rise, got %d -> %d", saved.FinalScore, updated.FinalScore)
	}

	// Flip to practice: score drops below the unset baseline for that skill.
	downgraded, err := svc.SetSkillConfidence(ctx, saved.ID, "Java", prep.ConfidencePractice)
	if err != nil {
		t.Fatal(err)
	}
	if downgraded.FinalScore >= updated.FinalScore {
		t.Fatalf("expected final score to drop, got %d -> %d", updated.FinalScore, downgraded.FinalScore)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService(kv.NewMemory())
	if _, err := svc.Update(context.Background(), "missing", EntryUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadDropsCorruptItemsAndSelfHeals(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	svc := newTestService(store)

	good1, _ := json.Marshal(sampleEntryWithID("id-a"))
	good2, _ := json.Marshal(sampleEntryWithID("id-b"))
	payload := fmt.Sprintf(`[%s, 42, {"id": ""}, %s]`, good1, good2)
	if err := store.Set(ctx, DefaultKey, payload); err != nil {
		t.Fatal(err)
	}

	entries, skipped := svc.Load(ctx)
	if len(entries) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(entries))
	}
	if skipped != 2 {
		t.Fatalf("expected 2 skipped, got %d", skipped)
	}

	// Self-heal rewrote the list: a second load is clean.
	entries, skipped = svc.Load(ctx)
	if len(entries) != 2 || skipped != 0 {
		t.Fatalf("expected clean reload, got %d entries %d skipped", len(entries), skipped)
	}
}

func sampleEntryWithID(id string) prep.Entry {
	entry := sampleEntry("Amazon")
	entry.ID = id
	return entry
}

type failingStore struct{ kv.Store }

func (failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("disk full")
}

func TestSaveSurfacesWriteFailure(t *testing.T) {
	svc := newTestService(failingStore{kv.NewMemory()})
	if _, err := svc.Save(context.Background(), sampleEntry("Amazon")); !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed, got %v", err)
	}
}

func TestSelfHealSwallowsWriteFailure(t *testing.T) {
	backing := kv.NewMemory()
	ctx := context.Background()
	good, _ := json.Marshal(sampleEntryWithID("id-a"))
	if err := backing.Set(ctx, DefaultKey, fmt.Sprintf(`[%s, 42]`, good)); err != nil {
		t.Fatal(err)
	}

	svc := newTestService(failingStore{backing})
	entries, skipped := svc.Load(ctx)
	if len(entries) != 1 || skipped != 1 {
		t.Fatalf("expected 1 survivor 1 skipped despite write failure, got %d/%d", len(entries), skipped)
	}
}
