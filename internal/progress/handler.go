package progress

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"prep-backend/internal/prep"
	"prep-backend/internal/shared/server/respond"
)

// HistoryLoader supplies the stored analysis list; progress only needs
// its size.
type HistoryLoader interface {
	Load(ctx context.Context) ([]prep.Entry, int)
}

// Handler wires HTTP handlers to the progress service.
type Handler struct {
	Svc     *Service
	History HistoryLoader
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, history HistoryLoader) *Handler {
	return &Handler{Svc: svc, History: history}
}

// RegisterRoutes attaches progress routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/progress", h.getStatus)
	rg.PUT("/progress/links", h.putLinks)
	rg.POST("/progress/visited/:step", h.markVisited)
	rg.GET("/progress/checklist", h.getChecklist)
	rg.PUT("/progress/checklist", h.putChecklistItem)
	rg.POST("/progress/checklist/reset", h.resetChecklist)
	rg.GET("/progress/submission", h.getSubmission)
}

func (h *Handler) historyCount(c *gin.Context) int {
	entries, _ := h.History.Load(c.Request.Context())
	return len(entries)
}

func (h *Handler) getStatus(c *gin.Context) {
	ctx := c.Request.Context()
	status := h.Svc.Status(ctx, h.historyCount(c))
	respond.OK(c, gin.H{
		"steps":   status,
		"labels":  StepLabels,
		"shipped": status.Shipped(),
		"links":   h.Svc.Links(ctx),
		"visited": h.Svc.Visited(ctx),
	})
}

func (h *Handler) putLinks(c *gin.Context) {
	var req LinksUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	links, err := h.Svc.SetLinks(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save links", nil)
		return
	}
	respond.OK(c, gin.H{
		"links": links,
		"valid": gin.H{
			"projectUrl":  ValidateURL(links.ProjectURL),
			"githubRepo":  ValidateURL(links.GithubRepo),
			"deployedUrl": ValidateURL(links.DeployedURL),
		},
	})
}

func (h *Handler) markVisited(c *gin.Context) {
	step := c.Param("step")
	visited, err := h.Svc.MarkVisited(c.Request.Context(), step)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record visit", nil)
		return
	}
	respond.OK(c, gin.H{"visited": visited})
}

func (h *Handler) getChecklist(c *gin.Context) {
	ctx := c.Request.Context()
	respond.OK(c, gin.H{
		"items":     ChecklistItems,
		"state":     h.Svc.Checklist(ctx),
		"allPassed": h.Svc.AllPassed(ctx),
	})
}

func (h *Handler) putChecklistItem(c *gin.Context) {
	var req struct {
		ID      string `json:"id" binding:"required"`
		Checked bool   `json:"checked"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id is required", nil)
		return
	}
	state, err := h.Svc.SetChecklistItem(c.Request.Context(), req.ID, req.Checked)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save checklist", nil)
		return
	}
	respond.OK(c, gin.H{
		"state":     state,
		"allPassed": h.Svc.AllPassed(c.Request.Context()),
	})
}

func (h *Handler) resetChecklist(c *gin.Context) {
	if err := h.Svc.ResetChecklist(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to reset checklist", nil)
		return
	}
	respond.OK(c, gin.H{"state": h.Svc.Checklist(c.Request.Context())})
}

func (h *Handler) getSubmission(c *gin.Context) {
	respond.OK(c, gin.H{"text": h.Svc.SubmissionText(c.Request.Context())})
}
