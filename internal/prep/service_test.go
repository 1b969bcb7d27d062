package prep

import (
	"context"
	"errors"
	"testing"
)

type captureSaver struct {
	saved Entry
	err   error
}

func (c *captureSaver) Save(ctx context.Context, entry Entry) (Entry, error) {
	if c.err != nil {
		return Entry{}, c.err
	}
	c.saved = entry
	entry.ID = "assigned"
	return entry, nil
}

func TestServiceAnalyzePersistsNormalizedEntry(t *testing.T) {
	saver := &captureSaver{}
	svc := NewService(saver)
	svc.Now = func() string { return testNow }

	entry, err := svc.Analyze(context.Background(), " Amazon ", " SDE ", "React and DSA work")
	if err != nil {
		t.Fatal(err)
	}
	if entry.ID != "assigned" {
		t.Fatalf("expected store-assigned id, got %q", entry.ID)
	}
	if saver.saved.Company != "Amazon" || saver.saved.Role != "SDE" {
		t.Fatalf("expected trimmed metadata, got %q / %q", saver.saved.Company, saver.saved.Role)
	}
	if saver.saved.CreatedAt != testNow {
		t.Fatalf("expected injected clock, got %q", saver.saved.CreatedAt)
	}
	if len(saver.saved.Questions) != 10 {
		t.Fatalf("expected full artifact bundle, got %d questions", len(saver.saved.Questions))
	}
}

func TestServiceAnalyzeSurfacesPersistError(t *testing.T) {
	svc := NewService(&captureSaver{err: errors.New("quota exceeded")})
	if _, err := svc.Analyze(context.Background(), "", "", "DSA"); err == nil {
		t.Fatal("expected persistence error to surface")
	}
}
