package service

import (
	"context"
	"strings"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/repository"
)

// TextDetector extracts text from an image. Satisfied by the Vision client.
type TextDetector interface {
	DetectText(ctx context.Context, image []byte) (string, error)
}

// OCRService runs the assignment pipeline: text detection, then the
// assignment rubric through the generation service, then best-effort
// persistence. Detection yielding no text stops the pipeline before any
// generation call.
type OCRService struct {
	detector  TextDetector
	generator *GenerationService
	feedback  *FeedbackService
}

// NewOCRService creates a new OCR service.
func NewOCRService(detector TextDetector, generator *GenerationService, feedback *FeedbackService) *OCRService {
	return &OCRService{
		detector:  detector,
		generator: generator,
		feedback:  feedback,
	}
}

// ExtractText returns the best full-text annotation for an image.
func (s *OCRService) ExtractText(ctx context.Context, image []byte) (string, error) {
	if s.detector == nil {
		return "", errors.New(errors.ErrOCRService, "vision client not configured")
	}

	text, err := s.detector.DetectText(ctx, image)
	if err != nil {
		return "", errors.Wrap(errors.ErrOCRService, "failed to process image", err)
	}

	if strings.TrimSpace(text) == "" {
		return "", errors.Validation("No text detected in the image")
	}

	return text, nil
}

// AssignmentFeedback generates rubric feedback for extracted assignment text
// and persists the result best-effort.
func (s *OCRService) AssignmentFeedback(ctx context.Context, text, subject, grade string) (string, error) {
	feedback, err := s.generator.AnalyzeAssignment(ctx, text, subject, grade)
	if err != nil {
		return "", err
	}

	s.feedback.SaveAsync(&repository.FeedbackRecord{
		Input:      text,
		Feedback:   feedback,
		Subject:    subject,
		GradeLevel: grade,
		Category:   repository.CategoryAssignment,
	})

	return feedback, nil
}
