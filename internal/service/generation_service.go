package service

import (
	"context"
	"strings"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/prompt"
)

// TextGenerator produces free text for an assembled prompt. Satisfied by the
// Gemini and OpenAI clients.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GenerationService wraps the generative-AI providers. Gemini is the default;
// OpenAI serves as a fallback when selected explicitly or when Gemini is not
// configured. Calls are attempted exactly once: no retry, no backoff, no
// caching of results.
type GenerationService struct {
	gemini TextGenerator
	openai TextGenerator
}

// NewGenerationService creates a new generation service. Either provider may
// be nil when not configured.
func NewGenerationService(gemini, openai TextGenerator) *GenerationService {
	return &GenerationService{
		gemini: gemini,
		openai: openai,
	}
}

// Generate sends the prompt to the requested provider. An empty response body
// is a failure even when the transport call succeeded.
func (s *GenerationService) Generate(ctx context.Context, promptText, provider string) (string, error) {
	gen, err := s.pick(provider)
	if err != nil {
		return "", err
	}

	text, err := gen.Complete(ctx, promptText)
	if err != nil {
		return "", errors.Wrap(errors.ErrAIService, "generation request failed", err)
	}

	if strings.TrimSpace(text) == "" {
		return "", errors.New(errors.ErrAIService, "generated feedback is empty")
	}

	return text, nil
}

// GenerateLessonPlan builds the lesson-plan prompt and generates it.
func (s *GenerationService) GenerateLessonPlan(ctx context.Context, topic, subject, grade string, refs []prompt.Reference) (string, error) {
	return s.Generate(ctx, prompt.LessonPlan(topic, subject, grade, refs), "")
}

// GenerateAssessment builds the assessment prompt and generates it.
func (s *GenerationService) GenerateAssessment(ctx context.Context, topic, subject, grade string, refs []prompt.Reference) (string, error) {
	return s.Generate(ctx, prompt.Assessment(topic, subject, grade, refs), "")
}

// AnalyzeClassroomAudio runs the classroom recording rubric over a transcript.
func (s *GenerationService) AnalyzeClassroomAudio(ctx context.Context, transcript, subject, grade, language string) (string, error) {
	return s.Generate(ctx, prompt.ClassroomAudio(transcript, subject, grade, language), "")
}

// AnalyzeAssignment runs the assignment rubric over OCR-extracted text.
func (s *GenerationService) AnalyzeAssignment(ctx context.Context, text, subject, grade string) (string, error) {
	return s.Generate(ctx, prompt.Assignment(text, subject, grade), "")
}

func (s *GenerationService) pick(provider string) (TextGenerator, error) {
	switch provider {
	case "openai":
		if s.openai == nil {
			return nil, errors.New(errors.ErrAIService, "OpenAI client not configured")
		}
		return s.openai, nil

	case "gemini":
		if s.gemini == nil {
			return nil, errors.New(errors.ErrAIService, "Gemini client not configured")
		}
		return s.gemini, nil

	default:
		if s.gemini != nil {
			return s.gemini, nil
		}
		if s.openai != nil {
			return s.openai, nil
		}
		return nil, errors.New(errors.ErrAIService, "no AI provider configured")
	}
}
