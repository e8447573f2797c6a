// Package review observes completion of a long-running job review by polling
// the backend on a fixed interval with a fixed attempt budget. A sequence is
// an explicit cancellable task rather than a bare timer: it exposes Start,
// Cancel, and a single-shot completion notification, and the timer is
// released on every exit path.
package review

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jobtrail/jobtrail/internal/models"
)

// StatusSource reports the state of an in-progress review. *backend.Client
// satisfies it.
type StatusSource interface {
	ReviewStatus(ctx context.Context, reviewID string) (*models.Review, error)
}

// State of a poll sequence. Polling is the repeating state; complete,
// timed-out, and cancelled are terminal. Complete and timed-out are also
// reported exactly once on Done; a cancelled sequence reports nothing.
type State string

const (
	StateIdle      State = "idle"
	StatePolling   State = "polling"
	StateComplete  State = "complete"
	StateTimedOut  State = "timed-out"
	StateCancelled State = "cancelled"
)

// Outcome is the terminal report of one sequence.
type Outcome struct {
	State    State
	Result   string
	Attempts int
}

var ErrAlreadyStarted = errors.New("poll sequence already started")

// Sequence is one bounded run of repeated status checks for a single review.
// Attempts are strictly sequential: each check finishes before the next tick
// is waited on.
type Sequence struct {
	reviewID    string
	interval    time.Duration
	maxAttempts int
	source      StatusSource
	logger      *zap.Logger

	mu       sync.Mutex
	state    State
	started  bool
	done     chan Outcome
	stop     chan struct{}
	stopOnce sync.Once
}

func NewSequence(reviewID string, interval time.Duration, maxAttempts int, source StatusSource, logger *zap.Logger) *Sequence {
	return &Sequence{
		reviewID:    reviewID,
		interval:    interval,
		maxAttempts: maxAttempts,
		source:      source,
		logger:      logger.With(zap.String("reviewId", reviewID)),
		state:       StateIdle,
		done:        make(chan Outcome, 1),
		stop:        make(chan struct{}),
	}
}

// Done delivers the terminal outcome, then the channel is closed. A cancelled
// sequence closes the channel without delivering an outcome.
func (s *Sequence) Done() <-chan Outcome {
	return s.done
}

// State returns the current sequence state.
func (s *Sequence) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start begins polling. The first attempt is issued immediately; subsequent
// attempts follow the configured interval. Start can be called once.
func (s *Sequence) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.state = StatePolling
	s.mu.Unlock()

	go s.run()
	return nil
}

// Cancel tears the sequence down. Safe to call more than once and after a
// terminal state; an in-flight attempt is allowed to resolve naturally.
func (s *Sequence) Cancel() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *Sequence) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	attempts := 0
	for {
		attempts++
		review, err := s.check()

		switch {
		case err != nil:
			// Transient: log and keep going. The attempt still counts
			// against the budget so the sequence always terminates.
			s.logger.Warn("review status check failed",
				zap.Int("attempt", attempts),
				zap.Error(err),
			)
		case review != nil && review.State == models.ReviewComplete:
			s.logger.Info("review complete", zap.Int("attempts", attempts))
			s.finish(Outcome{State: StateComplete, Result: review.Result, Attempts: attempts})
			return
		}

		if attempts >= s.maxAttempts {
			s.logger.Warn("review poll budget exhausted", zap.Int("attempts", attempts))
			s.finish(Outcome{State: StateTimedOut, Attempts: attempts})
			return
		}

		select {
		case <-ticker.C:
		case <-s.stop:
			s.mu.Lock()
			s.state = StateCancelled
			s.mu.Unlock()
			close(s.done)
			return
		}
	}
}

func (s *Sequence) check() (*models.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()
	return s.source.ReviewStatus(ctx, s.reviewID)
}

func (s *Sequence) finish(outcome Outcome) {
	s.mu.Lock()
	s.state = outcome.State
	s.mu.Unlock()

	s.done <- outcome
	close(s.done)
}
