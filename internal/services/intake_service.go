// Package services holds the gateway's orchestration layer. Each service is
// an explicit controller owning its own state; nothing lives in package-level
// variables.
package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/jobtrail/jobtrail/internal/backend"
	"github.com/jobtrail/jobtrail/internal/joburl"
	"github.com/jobtrail/jobtrail/internal/models"
)

// IntakeService runs the track-a-job workflow: normalize the pasted URL,
// fetch the posting through the backend, create the application, and kick
// off the asynchronous review poll.
type IntakeService struct {
	backend *backend.Client
	reviews *ReviewManager
	logger  *zap.Logger
}

func NewIntakeService(client *backend.Client, reviews *ReviewManager, logger *zap.Logger) *IntakeService {
	return &IntakeService{
		backend: client,
		reviews: reviews,
		logger:  logger.With(zap.String("component", "intake")),
	}
}

// TrackResult is what the UI needs after a successful intake: the created
// application and the review to poll for.
type TrackResult struct {
	Application *models.Application
	ReviewID    string
}

// TrackJob takes the raw URL the user pasted and returns the tracked
// application. A URL that matches no known shape fails with
// joburl.ErrInvalidInput before anything is sent upstream.
func (s *IntakeService) TrackJob(ctx context.Context, rawURL string) (*TrackResult, error) {
	canonical, err := joburl.Normalize(rawURL)
	if err != nil {
		return nil, err
	}

	job, err := s.backend.FetchJobByURL(ctx, canonical)
	if err != nil {
		return nil, err
	}
	s.logger.Info("job fetched",
		zap.String("jobId", job.ID),
		zap.String("company", job.CompanyName),
	)

	app, err := s.backend.CreateApplication(ctx, &models.Application{
		JobID:       job.ID,
		CompanyName: job.CompanyName,
		Title:       job.Title,
		JobLink:     canonical,
		Status:      models.StatusApplied,
	})
	if err != nil {
		return nil, err
	}

	result := &TrackResult{Application: app}

	// The review is best-effort: the application is already tracked, so a
	// failure here only means there is nothing to poll.
	rev, err := s.backend.RequestReview(ctx, app.ID)
	if err != nil {
		s.logger.Warn("review request failed", zap.String("applicationId", app.ID), zap.Error(err))
		return result, nil
	}

	if err := s.reviews.Track(rev.ID); err != nil {
		s.logger.Warn("review poll not started", zap.String("reviewId", rev.ID), zap.Error(err))
		return result, nil
	}
	result.ReviewID = rev.ID

	return result, nil
}
