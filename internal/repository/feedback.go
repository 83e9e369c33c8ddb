package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shikshaksaathi/saathi_service/internal/client"
)

// Feedback categories. A record's category names the flow that produced it.
const (
	CategoryLessonPlan     = "lesson-plan"
	CategoryAssessment     = "assessment"
	CategoryClassroomAudio = "classroom-audio"
	CategoryAssignment     = "assignment"
)

// FeedbackRecord is one saved generation result. Records are immutable once
// created; the application never updates or deletes them.
type FeedbackRecord struct {
	ID         uuid.UUID `json:"id"`
	Input      string    `json:"input"`
	Feedback   string    `json:"feedback"`
	Subject    string    `json:"subject"`
	GradeLevel string    `json:"gradeLevel"`
	Category   string    `json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FeedbackFilter narrows List results. Zero values match everything.
type FeedbackFilter struct {
	Subject    string
	GradeLevel string
	Limit      int
}

type FeedbackRepository interface {
	Create(ctx context.Context, record *FeedbackRecord) error
	List(ctx context.Context, filter FeedbackFilter) ([]*FeedbackRecord, error)
}

const defaultListLimit = 50

type PostgresFeedbackRepository struct {
	db *client.PostgresClient
}

func NewPostgresFeedbackRepository(db *client.PostgresClient) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) Create(ctx context.Context, record *FeedbackRecord) error {
	if r.db == nil || r.db.Pool == nil {
		return fmt.Errorf("database not configured")
	}

	query := `
		INSERT INTO feedback_entries (
			input, feedback, subject, grade_level, category
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		record.Input,
		record.Feedback,
		record.Subject,
		record.GradeLevel,
		record.Category,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create feedback entry: %w", err)
	}

	return nil
}

func (r *PostgresFeedbackRepository) List(ctx context.Context, filter FeedbackFilter) ([]*FeedbackRecord, error) {
	if r.db == nil || r.db.Pool == nil {
		return nil, fmt.Errorf("database not configured")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `
		SELECT id, input, feedback, subject, grade_level, category, created_at
		FROM feedback_entries
		WHERE ($1 = '' OR subject = $1)
		  AND ($2 = '' OR grade_level = $2)
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := r.db.Pool.Query(ctx, query, filter.Subject, filter.GradeLevel, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback entries: %w", err)
	}
	defer rows.Close()

	var records []*FeedbackRecord
	for rows.Next() {
		var rec FeedbackRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Input,
			&rec.Feedback,
			&rec.Subject,
			&rec.GradeLevel,
			&rec.Category,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feedback entry: %w", err)
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback entries: %w", err)
	}

	return records, nil
}

// InMemoryFeedbackRepository is used in tests and when no database is
// configured.
type InMemoryFeedbackRepository struct {
	mu      sync.Mutex
	records []*FeedbackRecord
}

func NewInMemoryFeedbackRepository() *InMemoryFeedbackRepository {
	return &InMemoryFeedbackRepository{}
}

func (r *InMemoryFeedbackRepository) Create(ctx context.Context, record *FeedbackRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = uuid.New()
	record.CreatedAt = time.Now().UTC()

	stored := *record
	r.records = append(r.records, &stored)
	return nil
}

func (r *InMemoryFeedbackRepository) List(ctx context.Context, filter FeedbackFilter) ([]*FeedbackRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var records []*FeedbackRecord
	for _, rec := range r.records {
		if filter.Subject != "" && rec.Subject != filter.Subject {
			continue
		}
		if filter.GradeLevel != "" && rec.GradeLevel != filter.GradeLevel {
			continue
		}
		copied := *rec
		records = append(records, &copied)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}
