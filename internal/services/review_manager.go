package services

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jobtrail/jobtrail/internal/review"
)

var ErrReviewNotFound = errors.New("no poll sequence for review")

// ReviewManager owns every active poll sequence and the terminal outcomes
// they produced. All review-poll state lives here, tied to the manager's
// lifecycle, rather than in module-scoped variables.
type ReviewManager struct {
	source      review.StatusSource
	interval    time.Duration
	maxAttempts int
	logger      *zap.Logger

	mu        sync.Mutex
	sequences map[string]*review.Sequence
	outcomes  map[string]review.Outcome
}

func NewReviewManager(source review.StatusSource, interval time.Duration, maxAttempts int, logger *zap.Logger) *ReviewManager {
	return &ReviewManager{
		source:      source,
		interval:    interval,
		maxAttempts: maxAttempts,
		logger:      logger.With(zap.String("component", "reviews")),
		sequences:   make(map[string]*review.Sequence),
		outcomes:    make(map[string]review.Outcome),
	}
}

// Track starts a poll sequence for a review and records its outcome when it
// finishes. Starting an already-tracked review is a no-op.
func (m *ReviewManager) Track(reviewID string) error {
	m.mu.Lock()
	if _, exists := m.sequences[reviewID]; exists {
		m.mu.Unlock()
		return nil
	}

	seq := review.NewSequence(reviewID, m.interval, m.maxAttempts, m.source, m.logger)
	m.sequences[reviewID] = seq
	m.mu.Unlock()

	if err := seq.Start(); err != nil {
		m.mu.Lock()
		delete(m.sequences, reviewID)
		m.mu.Unlock()
		return err
	}

	go func() {
		outcome, ok := <-seq.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		if ok {
			m.outcomes[reviewID] = outcome
		}
		delete(m.sequences, reviewID)
	}()

	return nil
}

// Status reports the current state of a tracked review: polling while the
// sequence runs, the terminal outcome afterwards.
func (m *ReviewManager) Status(reviewID string) (review.State, review.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if seq, ok := m.sequences[reviewID]; ok {
		// The sequence flips to a terminal state before the watcher records
		// the outcome here. Until the outcome lands, keep reporting polling
		// so no caller sees a terminal state with an empty outcome.
		switch state := seq.State(); state {
		case review.StateComplete, review.StateTimedOut:
			return review.StatePolling, review.Outcome{}, nil
		default:
			return state, review.Outcome{}, nil
		}
	}
	if outcome, ok := m.outcomes[reviewID]; ok {
		return outcome.State, outcome, nil
	}
	return "", review.Outcome{}, ErrReviewNotFound
}

// Cancel tears down a running sequence. Terminal reviews keep their outcome.
func (m *ReviewManager) Cancel(reviewID string) {
	m.mu.Lock()
	seq, ok := m.sequences[reviewID]
	m.mu.Unlock()
	if ok {
		seq.Cancel()
	}
}

// Shutdown cancels every running sequence. Called on service disposal.
func (m *ReviewManager) Shutdown() {
	m.mu.Lock()
	seqs := make([]*review.Sequence, 0, len(m.sequences))
	for _, seq := range m.sequences {
		seqs = append(seqs, seq)
	}
	m.mu.Unlock()

	for _, seq := range seqs {
		seq.Cancel()
	}
}
