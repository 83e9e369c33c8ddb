package service

import (
	"context"
	"strings"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/prompt"
	"github.com/shikshaksaathi/saathi_service/internal/repository"
)

// PlanningService handles lesson-plan and assessment generation, persisting
// each result best-effort under the topic it was generated for.
type PlanningService struct {
	generator *GenerationService
	feedback  *FeedbackService
}

// NewPlanningService creates a new planning service.
func NewPlanningService(generator *GenerationService, feedback *FeedbackService) *PlanningService {
	return &PlanningService{
		generator: generator,
		feedback:  feedback,
	}
}

// LessonPlan generates a lesson plan for the topic.
func (s *PlanningService) LessonPlan(ctx context.Context, topic, subject, grade string, refs []prompt.Reference) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", errors.Validation("topic is required")
	}

	plan, err := s.generator.GenerateLessonPlan(ctx, topic, subject, grade, refs)
	if err != nil {
		return "", err
	}

	s.feedback.SaveAsync(&repository.FeedbackRecord{
		Input:      topic,
		Feedback:   plan,
		Subject:    subject,
		GradeLevel: grade,
		Category:   repository.CategoryLessonPlan,
	})

	return plan, nil
}

// Assessment generates an assessment for the topic.
func (s *PlanningService) Assessment(ctx context.Context, topic, subject, grade string, refs []prompt.Reference) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", errors.Validation("topic is required")
	}

	assessment, err := s.generator.GenerateAssessment(ctx, topic, subject, grade, refs)
	if err != nil {
		return "", err
	}

	s.feedback.SaveAsync(&repository.FeedbackRecord{
		Input:      topic,
		Feedback:   assessment,
		Subject:    subject,
		GradeLevel: grade,
		Category:   repository.CategoryAssessment,
	})

	return assessment, nil
}
