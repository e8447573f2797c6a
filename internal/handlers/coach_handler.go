package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/dtos"
)

// Coach is the slice of the coaching service the handlers need.
type Coach interface {
	ExtractKeywords(ctx context.Context, jobDescription string) ([]string, error)
	ResumeGuidance(ctx context.Context, resume, jobDescription string) (string, error)
	QuantifyImpact(ctx context.Context, bullet string) ([]string, error)
	ExpandRole(ctx context.Context, title, notes string) (string, error)
}

type CoachHandler struct {
	Coach Coach
}

// NewCoachHandler accepts a nil coach; the endpoints then answer 503 so the
// rest of the gateway keeps working without an API key.
func NewCoachHandler(coach Coach) *CoachHandler {
	return &CoachHandler{Coach: coach}
}

func (h *CoachHandler) unavailable(c *gin.Context) bool {
	if h.Coach == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "coaching is not configured"})
		return true
	}
	return false
}

// Keywords is the POST /coach/keywords endpoint.
func (h *CoachHandler) Keywords(c *gin.Context) {
	if h.unavailable(c) {
		return
	}
	var req dtos.KeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	keywords, err := h.Coach.ExtractKeywords(c.Request.Context(), req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "keyword extraction failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dtos.KeywordResponse{Keywords: keywords})
}

// Guidance is the POST /coach/guidance endpoint.
func (h *CoachHandler) Guidance(c *gin.Context) {
	if h.unavailable(c) {
		return
	}
	var req dtos.GuidanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	guidance, err := h.Coach.ResumeGuidance(c.Request.Context(), req.Resume, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "guidance failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dtos.GuidanceResponse{Guidance: guidance})
}

// Quantify is the POST /coach/quantify endpoint.
func (h *CoachHandler) Quantify(c *gin.Context) {
	if h.unavailable(c) {
		return
	}
	var req dtos.QuantifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	suggestions, err := h.Coach.QuantifyImpact(c.Request.Context(), req.Bullet)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "quantify failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dtos.QuantifyResponse{Suggestions: suggestions})
}

// ExpandRole is the POST /coach/expand-role endpoint.
func (h *CoachHandler) ExpandRole(c *gin.Context) {
	if h.unavailable(c) {
		return
	}
	var req dtos.ExpandRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	expanded, err := h.Coach.ExpandRole(c.Request.Context(), req.Title, req.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "expand role failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dtos.ExpandRoleResponse{Expanded: expanded})
}
