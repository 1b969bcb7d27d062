package history

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prep-backend/internal/prep"
	"prep-backend/internal/shared/server/respond"
)

// shortJDThreshold triggers a non-blocking warning on analyze requests.
const shortJDThreshold = 200

// Analyzer runs the analysis pipeline and persists the result.
type Analyzer interface {
	Analyze(ctx context.Context, company, role, jdText string) (prep.Entry, error)
}

// Handler wires analysis and history HTTP routes.
type Handler struct {
	Analyzer Analyzer
	Svc      *Service
}

// NewHandler constructs a Handler.
func NewHandler(analyzer Analyzer, svc *Service) *Handler {
	return &Handler{Analyzer: analyzer, Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.PATCH("/analyses/:id/confidence", h.setConfidence)
}

func (h *Handler) createAnalysis(c *gin.Context) {
	var req struct {
		Company string `json:"company"`
		Role    string `json:"role"`
		JDText  string `json:"jdText"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	jdText := strings.TrimSpace(req.JDText)
	if jdText == "" {
		respond.Error(c, http.StatusBadRequest, "jd_required", "job description text is required", []map[string]string{
			{"field": "jdText", "issue": "required"},
		})
		return
	}

	entry, err := h.Analyzer.Analyze(c.Request.Context(), req.Company, req.Role, req.JDText)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to persist analysis", nil)
		return
	}

	resp := gin.H{"entry": entry}
	if len(jdText) < shortJDThreshold {
		resp["warning"] = "job description is short; results may be generic"
	}
	respond.Created(c, resp)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	entries, skipped := h.Svc.Load(c.Request.Context())
	respond.OK(c, gin.H{
		"entries":      entries,
		"skippedCount": skipped,
	})
}

func (h *Handler) getAnalysis(c *gin.Context) {
	id := c.Param("id")
	entry, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}
	respond.OK(c, gin.H{"entry": entry})
}

func (h *Handler) setConfidence(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Skill string `json:"skill" binding:"required"`
		Level string `json:"level" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "skill and level are required", nil)
		return
	}

	level := prep.Confidence(req.Level)
	if level != prep.ConfidenceKnow && level != prep.ConfidencePractice {
		respond.Error(c, http.StatusBadRequest, "validation_error", "level must be know or practice", []map[string]string{
			{"field": "level", "issue": "invalid"},
		})
		return
	}

	entry, err := h.Svc.SetSkillConfidence(c.Request.Context(), id, req.Skill, level)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update confidence", nil)
		}
		return
	}
	respond.OK(c, gin.H{"entry": entry})
}
