package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"prep-backend/internal/prep"
	"prep-backend/internal/shared/metrics"
	"prep-backend/internal/shared/storage/kv"
	"prep-backend/internal/shared/telemetry"
)

// DefaultKey is the store key the whole history list lives under.
const DefaultKey = "placement-prep-history"

// Service persists analysis entries as a single JSON array in a KV store,
// newest first. Every load migrates stored entries to the current schema
// and drops anything that cannot be repaired.
type Service struct {
	Store kv.Store
	Key   string
	NewID func() string
	Now   func() string
}

// New returns a Service with the default key, uuid ids and UTC timestamps.
func New(store kv.Store) *Service {
	return &Service{
		Store: store,
		Key:   DefaultKey,
		NewID: uuid.NewString,
		Now:   func() string { return time.Now().UTC().Format(time.RFC3339) },
	}
}

// Load reads the full history list. Missing or unparseable data yields an
// empty list. The second return is the number of stored items dropped
// during migration; when it is positive the repaired list is written back
// so the next load starts clean.
func (s *Service) Load(ctx context.Context) ([]prep.Entry, int) {
	raw, ok, err := s.Store.Get(ctx, s.key())
	if err != nil {
		telemetry.Error("history load failed", map[string]any{"error": err.Error()})
		return []prep.Entry{}, 0
	}
	if !ok {
		return []prep.Entry{}, 0
	}

	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		telemetry.Error("history payload unparseable", map[string]any{"error": err.Error()})
		return []prep.Entry{}, 0
	}

	now := s.now()
	entries := make([]prep.Entry, 0, len(items))
	skipped := 0
	for _, item := range items {
		entry, ok := prep.MigrateEntry(item, now)
		if !ok || !prep.ValidateEntry(entry) {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}

	if skipped > 0 {
		metrics.AddHistoryCorruptDropped(skipped)
		telemetry.Info("history self-heal", map[string]any{"skipped": skipped, "kept": len(entries)})
		// Best effort: a failed write-back just means the same repair
		// happens again on the next load.
		if err := s.write(ctx, entries); err != nil {
			telemetry.Error("history self-heal write failed", map[string]any{"error": err.Error()})
		}
	}

	return entries, skipped
}

// Save assigns an id and timestamps to entry, prepends it to the stored
// list and rewrites the whole list.
func (s *Service) Save(ctx context.Context, entry prep.Entry) (prep.Entry, error) {
	if entry.ID == "" {
		entry.ID = s.newID()
	}
	now := s.now()
	if entry.CreatedAt == "" {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	entries, _ := s.Load(ctx)
	entries = append([]prep.Entry{entry}, entries...)

	if err := s.write(ctx, entries); err != nil {
		return prep.Entry{}, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return entry, nil
}

// GetByID returns the stored entry with the given id, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (prep.Entry, error) {
	entries, _ := s.Load(ctx)
	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return prep.Entry{}, ErrNotFound
}

// EntryUpdate carries the fields callers are allowed to change after an
// analysis is stored.
type EntryUpdate struct {
	SkillConfidenceMap map[string]prep.Confidence
	FinalScore         *int
}

// Update applies upd to the entry with the given id and persists the list.
func (s *Service) Update(ctx context.Context, id string, upd EntryUpdate) (prep.Entry, error) {
	entries, _ := s.Load(ctx)
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		if upd.SkillConfidenceMap != nil {
			entries[i].SkillConfidenceMap = upd.SkillConfidenceMap
		}
		if upd.FinalScore != nil {
			entries[i].FinalScore = *upd.FinalScore
		}
		entries[i].UpdatedAt = s.now()
		if err := s.write(ctx, entries); err != nil {
			return prep.Entry{}, fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
		return entries[i], nil
	}
	return prep.Entry{}, ErrNotFound
}

// SetSkillConfidence records a single skill's confidence level on the
// entry and recomputes its final score.
func (s *Service) SetSkillConfidence(ctx context.Context, id, skill string, level prep.Confidence) (prep.Entry, error) {
	entries, _ := s.Load(ctx)
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		if entries[i].SkillConfidenceMap == nil {
			entries[i].SkillConfidenceMap = map[string]prep.Confidence{}
		}
		entries[i].SkillConfidenceMap[skill] = level
		entries[i].FinalScore = prep.ComputeFinalScore(entries[i].BaseScore, entries[i].ExtractedSkills, entries[i].SkillConfidenceMap)
		entries[i].UpdatedAt = s.now()
		if err := s.write(ctx, entries); err != nil {
			return prep.Entry{}, fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
		return entries[i], nil
	}
	return prep.Entry{}, ErrNotFound
}

func (s *Service) write(ctx context.Context, entries []prep.Entry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.Store.Set(ctx, s.key(), string(payload))
}

func (s *Service) key() string {
	if s.Key != "" {
		return s.Key
	}
	return DefaultKey
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) now() string {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC().Format(time.RFC3339)
}
