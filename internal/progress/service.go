package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"prep-backend/internal/shared/storage/kv"
	"prep-backend/internal/shared/telemetry"
)

// Store keys. Each concern persists under its own key so a corrupt blob
// in one never affects the others.
const (
	LinksKey     = "prp_final_submission"
	VisitedKey   = "prp_steps_visited"
	ChecklistKey = "prp-test-checklist"
)

// Links are the three user-supplied proof URLs.
type Links struct {
	ProjectURL  string `json:"projectUrl"`
	GithubRepo  string `json:"githubRepo"`
	DeployedURL string `json:"deployedUrl"`
}

// LinksUpdate carries a partial links change; nil fields keep the stored
// value.
type LinksUpdate struct {
	ProjectURL  *string `json:"projectUrl"`
	GithubRepo  *string `json:"githubRepo"`
	DeployedURL *string `json:"deployedUrl"`
}

// VisitedSteps records which platform areas the user has opened.
type VisitedSteps struct {
	Dashboard   bool `json:"dashboard"`
	Practice    bool `json:"practice"`
	Assessments bool `json:"assessments"`
}

// StepStatus is the 8-step completion gate.
type StepStatus struct {
	Step1 bool `json:"step1"`
	Step2 bool `json:"step2"`
	Step3 bool `json:"step3"`
	Step4 bool `json:"step4"`
	Step5 bool `json:"step5"`
	Step6 bool `json:"step6"`
	Step7 bool `json:"step7"`
	Step8 bool `json:"step8"`
}

// StepLabels names the eight gate steps in order.
var StepLabels = []string{
	"Dashboard",
	"Analyze JD",
	"Results",
	"History",
	"Practice",
	"Assessments",
	"Test checklist (10/10)",
	"Proof (3 links)",
}

// Shipped reports whether every gate step is complete.
func (s StepStatus) Shipped() bool {
	return s.Step1 && s.Step2 && s.Step3 && s.Step4 && s.Step5 && s.Step6 && s.Step7 && s.Step8
}

// ValidateURL accepts absolute http(s) URLs with a host.
func ValidateURL(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// Service tracks submission readiness over a KV store. Corrupt stored
// blobs degrade to empty defaults on read.
type Service struct {
	Store kv.Store
}

// New returns a Service backed by store.
func New(store kv.Store) *Service {
	return &Service{Store: store}
}

// Links returns the stored proof links, trimmed, defaults on any read
// or parse failure.
func (s *Service) Links(ctx context.Context) Links {
	var links Links
	if !s.read(ctx, LinksKey, &links) {
		return Links{}
	}
	links.ProjectURL = strings.TrimSpace(links.ProjectURL)
	links.GithubRepo = strings.TrimSpace(links.GithubRepo)
	links.DeployedURL = strings.TrimSpace(links.DeployedURL)
	return links
}

// SetLinks merges upd into the stored links and persists the result.
func (s *Service) SetLinks(ctx context.Context, upd LinksUpdate) (Links, error) {
	links := s.Links(ctx)
	if upd.ProjectURL != nil {
		links.ProjectURL = strings.TrimSpace(*upd.ProjectURL)
	}
	if upd.GithubRepo != nil {
		links.GithubRepo = strings.TrimSpace(*upd.GithubRepo)
	}
	if upd.DeployedURL != nil {
		links.DeployedURL = strings.TrimSpace(*upd.DeployedURL)
	}
	if err := s.write(ctx, LinksKey, links); err != nil {
		return Links{}, fmt.Errorf("persist links: %w", err)
	}
	return links, nil
}

// Visited returns the stored visited-step flags.
func (s *Service) Visited(ctx context.Context) VisitedSteps {
	var visited VisitedSteps
	if !s.read(ctx, VisitedKey, &visited) {
		return VisitedSteps{}
	}
	return visited
}

// MarkVisited flags one step as visited. Unknown step names are ignored.
func (s *Service) MarkVisited(ctx context.Context, step string) (VisitedSteps, error) {
	visited := s.Visited(ctx)
	switch step {
	case "dashboard":
		visited.Dashboard = true
	case "practice":
		visited.Practice = true
	case "assessments":
		visited.Assessments = true
	default:
		return visited, nil
	}
	if err := s.write(ctx, VisitedKey, visited); err != nil {
		return VisitedSteps{}, fmt.Errorf("persist visited steps: %w", err)
	}
	return visited, nil
}

// Checklist returns per-item pass state for every known checklist item.
// Stored keys that are not valid item ids are dropped.
func (s *Service) Checklist(ctx context.Context) map[string]bool {
	raw := map[string]bool{}
	state := defaultChecklistState()
	if !s.read(ctx, ChecklistKey, &raw) {
		return state
	}
	for id, checked := range raw {
		if _, ok := state[id]; ok {
			state[id] = checked
		}
	}
	return state
}

// SetChecklistItem records one item's pass state. Unknown ids are ignored.
func (s *Service) SetChecklistItem(ctx context.Context, id string, checked bool) (map[string]bool, error) {
	state := s.Checklist(ctx)
	if !isChecklistID(id) {
		return state, nil
	}
	state[id] = checked
	if err := s.write(ctx, ChecklistKey, state); err != nil {
		return nil, fmt.Errorf("persist checklist: %w", err)
	}
	return state, nil
}

// ResetChecklist clears all checklist state.
func (s *Service) ResetChecklist(ctx context.Context) error {
	if err := s.write(ctx, ChecklistKey, defaultChecklistState()); err != nil {
		return fmt.Errorf("reset checklist: %w", err)
	}
	return nil
}

// AllPassed reports whether every checklist item is ticked.
func (s *Service) AllPassed(ctx context.Context) bool {
	state := s.Checklist(ctx)
	for _, item := range ChecklistItems {
		if !state[item.ID] {
			return false
		}
	}
	return true
}

// Status derives the 8-step gate from history size plus stored flags,
// checklist and links.
func (s *Service) Status(ctx context.Context, historyCount int) StepStatus {
	visited := s.Visited(ctx)
	links := s.Links(ctx)
	hasHistory := historyCount > 0
	allLinks := ValidateURL(links.ProjectURL) && ValidateURL(links.GithubRepo) && ValidateURL(links.DeployedURL)

	return StepStatus{
		Step1: visited.Dashboard,
		Step2: hasHistory,
		Step3: hasHistory,
		Step4: hasHistory,
		Step5: visited.Practice,
		Step6: visited.Assessments,
		Step7: s.AllPassed(ctx),
		Step8: allLinks,
	}
}

// SubmissionText builds the plain-text final submission export.
func (s *Service) SubmissionText(ctx context.Context) string {
	links := s.Links(ctx)
	return fmt.Sprintf(`------------------------------------------
Placement Readiness Platform - Final Submission

Project: %s
GitHub Repository: %s
Live Deployment: %s

Core Capabilities:
- JD skill extraction (deterministic)
- Round mapping engine
- 7-day prep plan
- Interactive readiness scoring
- History persistence
------------------------------------------`, links.ProjectURL, links.GithubRepo, links.DeployedURL)
}

func (s *Service) read(ctx context.Context, key string, target any) bool {
	raw, ok, err := s.Store.Get(ctx, key)
	if err != nil {
		telemetry.Error("progress read failed", map[string]any{"key": key, "error": err.Error()})
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		telemetry.Error("progress payload unparseable", map[string]any{"key": key, "error": err.Error()})
		return false
	}
	return true
}

func (s *Service) write(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Store.Set(ctx, key, string(payload))
}
