package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/repository"
)

// EventPublisher is the observable channel for async persistence outcomes.
// Satisfied by the Pub/Sub client; nil when not configured.
type EventPublisher interface {
	Publish(ctx context.Context, data interface{}, attrs map[string]string) error
}

const (
	saveQueueSize = 64
	saveTimeout   = 10 * time.Second
)

// FeedbackService persists feedback records. Synchronous saves back the
// POST /api/feedback endpoint; SaveAsync backs the best-effort persistence
// of every generation flow, where a failed save must never affect the
// user-visible response.
type FeedbackService struct {
	repo      repository.FeedbackRepository
	publisher EventPublisher
	log       zerolog.Logger

	queue chan *repository.FeedbackRecord
	wg    sync.WaitGroup
	once  sync.Once
}

// NewFeedbackService creates the service and starts the save worker.
func NewFeedbackService(repo repository.FeedbackRepository, publisher EventPublisher, log zerolog.Logger) *FeedbackService {
	s := &FeedbackService{
		repo:      repo,
		publisher: publisher,
		log:       log,
		queue:     make(chan *repository.FeedbackRecord, saveQueueSize),
	}

	s.wg.Add(1)
	go s.worker()

	return s
}

// Save validates and persists a record synchronously.
func (s *FeedbackService) Save(ctx context.Context, record *repository.FeedbackRecord) error {
	if strings.TrimSpace(record.Feedback) == "" {
		return errors.Validation("no feedback provided")
	}
	if record.Subject == "" || record.GradeLevel == "" || record.Category == "" {
		return errors.Validation("missing required fields")
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return errors.Wrap(errors.ErrInternal, "failed to save feedback", err)
	}

	return nil
}

// List returns the most recent records matching the filter, newest first.
func (s *FeedbackService) List(ctx context.Context, filter repository.FeedbackFilter) ([]*repository.FeedbackRecord, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "failed to retrieve feedback entries", err)
	}
	return records, nil
}

// SaveAsync enqueues a record for a single best-effort save attempt. Records
// with empty feedback are never enqueued. A full queue drops the record; the
// drop is logged, not retried.
func (s *FeedbackService) SaveAsync(record *repository.FeedbackRecord) {
	if strings.TrimSpace(record.Feedback) == "" {
		return
	}

	select {
	case s.queue <- record:
	default:
		s.log.Warn().
			Str("category", record.Category).
			Msg("Feedback save queue full, dropping record")
	}
}

// Stop drains the queue and stops the worker. Safe to call more than once.
func (s *FeedbackService) Stop() {
	s.once.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}

// worker performs at-most-once save attempts. Each outcome is logged and,
// when a publisher is configured, published so failures stay observable
// without ever blocking or failing the originating request.
func (s *FeedbackService) worker() {
	defer s.wg.Done()

	for record := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := s.repo.Create(ctx, record)
		cancel()

		if err != nil {
			s.log.Error().Err(err).
				Str("category", record.Category).
				Str("subject", record.Subject).
				Msg("Best-effort feedback save failed")
			s.publish(record, "failed", err)
			continue
		}

		s.log.Debug().
			Str("id", record.ID.String()).
			Str("category", record.Category).
			Msg("Feedback saved")
		s.publish(record, "saved", nil)
	}
}

func (s *FeedbackService) publish(record *repository.FeedbackRecord, outcome string, saveErr error) {
	if s.publisher == nil {
		return
	}

	attrs := map[string]string{
		"outcome":  outcome,
		"category": record.Category,
	}
	if saveErr != nil {
		attrs["error"] = saveErr.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, record, attrs); err != nil {
		s.log.Warn().Err(err).Msg("Failed to publish feedback event")
	}
}
