package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/repository"
)

// SpeechRecognizer transcribes a mono audio payload. Satisfied by the Speech
// client.
type SpeechRecognizer interface {
	Recognize(ctx context.Context, audio []byte, mimeType, languageCode string) (string, error)
}

// Downmixer converts an audio file to a single channel. Satisfied by the
// ffmpeg transcoder.
type Downmixer interface {
	DownmixMono(ctx context.Context, inPath, outPath string) error
}

const defaultLanguage = "en-US"

// TranscriptionResult is the outcome of one transcription pass. It lives only
// for the duration of the request; only derived feedback is persisted.
type TranscriptionResult struct {
	Transcription string `json:"transcription"`
	Language      string `json:"language"`
	Subject       string `json:"subject"`
	GradeLevel    string `json:"gradeLevel"`
}

// AudioService runs the classroom-audio pipeline: temp write, mono downmix,
// transcription, rubric analysis, best-effort persistence. Each stage is a
// single blocking call; a failed stage aborts the request with no retry.
type AudioService struct {
	recognizer SpeechRecognizer
	transcoder Downmixer
	generator  *GenerationService
	feedback   *FeedbackService
	tmpDir     string
	log        zerolog.Logger
}

// NewAudioService creates a new audio service. tmpDir defaults to the OS
// temp directory when empty.
func NewAudioService(
	recognizer SpeechRecognizer,
	transcoder Downmixer,
	generator *GenerationService,
	feedback *FeedbackService,
	tmpDir string,
	log zerolog.Logger,
) *AudioService {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	return &AudioService{
		recognizer: recognizer,
		transcoder: transcoder,
		generator:  generator,
		feedback:   feedback,
		tmpDir:     tmpDir,
		log:        log,
	}
}

// Transcribe runs upload through downmix and speech recognition. Temporary
// files are removed on every exit path; cleanup failures are logged only.
func (s *AudioService) Transcribe(ctx context.Context, filename, mimeType string, file io.Reader, subject, grade string) (*TranscriptionResult, error) {
	if !strings.HasPrefix(mimeType, "audio/") {
		return nil, errors.Validation("uploaded file is not an audio file")
	}
	if s.recognizer == nil {
		return nil, errors.New(errors.ErrSpeechService, "speech client not configured")
	}

	// Fresh per-request paths; requests never share temp files.
	originalPath := filepath.Join(s.tmpDir, fmt.Sprintf("%s-original-%s", uuid.NewString(), filepath.Base(filename)))
	monoPath := filepath.Join(s.tmpDir, fmt.Sprintf("%s-mono-%s", uuid.NewString(), filepath.Base(filename)))
	defer s.cleanup(originalPath, monoPath)

	if err := writeFile(originalPath, file); err != nil {
		return nil, errors.InternalWrap("failed to store uploaded audio", err)
	}

	if err := s.transcoder.DownmixMono(ctx, originalPath, monoPath); err != nil {
		s.log.Error().Err(err).Msg("Audio downmix failed")
		return nil, errors.Wrap(errors.ErrTranscode, "audio conversion to mono failed, please provide a mono audio file", err)
	}

	monoAudio, err := os.ReadFile(monoPath)
	if err != nil {
		return nil, errors.InternalWrap("failed to read converted audio", err)
	}

	s.log.Info().Str("file", filename).Msg("Transcribing audio file")

	transcript, err := s.recognizer.Recognize(ctx, monoAudio, mimeType, defaultLanguage)
	if err != nil {
		return nil, errors.Wrap(errors.ErrSpeechService, "failed to transcribe audio", err)
	}

	if strings.TrimSpace(transcript) == "" {
		return nil, errors.Validation("No speech detected in the audio file")
	}

	return &TranscriptionResult{
		Transcription: transcript,
		Language:      defaultLanguage,
		Subject:       subject,
		GradeLevel:    grade,
	}, nil
}

// AnalyzeTranscript runs the classroom rubric over a transcript and persists
// the result best-effort. A persistence failure never surfaces here.
func (s *AudioService) AnalyzeTranscript(ctx context.Context, transcript, subject, grade, language string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", errors.Validation("transcription is required")
	}

	feedback, err := s.generator.AnalyzeClassroomAudio(ctx, transcript, subject, grade, language)
	if err != nil {
		return "", err
	}

	s.feedback.SaveAsync(&repository.FeedbackRecord{
		Input:      transcript,
		Feedback:   feedback,
		Subject:    subject,
		GradeLevel: grade,
		Category:   repository.CategoryClassroomAudio,
	})

	return feedback, nil
}

func (s *AudioService) cleanup(paths ...string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.Error().Err(err).Str("path", path).Msg("Failed to delete temp file")
		}
	}
}

func writeFile(path string, r io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}

	return out.Close()
}
