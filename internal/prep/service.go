package prep

import (
	"context"
	"strings"
	"time"

	"prep-backend/internal/shared/metrics"
)

// HistorySaver persists a normalized entry; implemented by the history
// service.
type HistorySaver interface {
	Save(ctx context.Context, entry Entry) (Entry, error)
}

// Service runs full analyses and persists the result.
type Service struct {
	History HistorySaver
	Now     func() string
}

// NewService constructs a Service with a UTC clock.
func NewService(history HistorySaver) *Service {
	return &Service{
		History: history,
		Now:     func() string { return time.Now().UTC().Format(time.RFC3339) },
	}
}

// Analyze runs the deterministic pipeline on one JD submission and stores
// the normalized entry. The analysis itself cannot fail; only persistence
// can.
func (s *Service) Analyze(ctx context.Context, company, role, jdText string) (Entry, error) {
	company = strings.TrimSpace(company)
	role = strings.TrimSpace(role)

	start := time.Now()
	bundle := RunFullAnalysis(company, role, jdText)
	entry := Normalize(bundle, company, role, jdText, nil, s.now())
	metrics.ObserveAnalyzeDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	saved, err := s.History.Save(ctx, entry)
	if err != nil {
		metrics.IncAnalysisPersistFailed()
		return Entry{}, err
	}
	metrics.IncAnalysisCreated()
	return saved, nil
}

func (s *Service) now() string {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC().Format(time.RFC3339)
}
