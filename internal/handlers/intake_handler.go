package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/notify"
	"github.com/jobtrail/jobtrail/internal/review"
	"github.com/jobtrail/jobtrail/internal/services"
)

type IntakeHandler struct {
	Intake  *services.IntakeService
	Reviews *services.ReviewManager
}

func NewIntakeHandler(intake *services.IntakeService, reviews *services.ReviewManager) *IntakeHandler {
	return &IntakeHandler{Intake: intake, Reviews: reviews}
}

// TrackJob is the POST /jobs/track endpoint: paste a URL, get back the
// created application and the review to poll for.
func (h *IntakeHandler) TrackJob(c *gin.Context) {
	var req dtos.TrackJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.Intake.TrackJob(c.Request.Context(), req.URL)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, dtos.TrackJobResponse{
		Application: result.Application,
		ReviewID:    result.ReviewID,
	})
}

// ReviewStatus is the GET /reviews/:id endpoint the UI polls against.
func (h *IntakeHandler) ReviewStatus(c *gin.Context) {
	reviewID := c.Param("id")

	state, outcome, err := h.Reviews.Status(reviewID)
	if err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown review: " + reviewID})
			return
		}
		fail(c, err)
		return
	}

	resp := dtos.ReviewStatusResponse{ReviewID: reviewID, State: string(state)}
	if state == review.StateComplete || state == review.StateTimedOut {
		resp.Result = outcome.Result
		resp.Attempts = outcome.Attempts
	}
	if state == review.StateTimedOut {
		c.JSON(http.StatusOK, gin.H{
			"review":       resp,
			"notification": notify.For(notify.CodeTimeout),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": resp})
}

// CancelReview is the DELETE /reviews/:id endpoint. Cancelling a review that
// already finished, or was never tracked, is a no-op.
func (h *IntakeHandler) CancelReview(c *gin.Context) {
	h.Reviews.Cancel(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"cancelled": c.Param("id")})
}
