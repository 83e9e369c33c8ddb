package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shikshaksaathi/saathi_service/internal/logger"
	"github.com/shikshaksaathi/saathi_service/internal/service"
)

func newTestAudioHandler(t *testing.T, recognizer service.SpeechRecognizer, gen *stubGenerator) *AudioHandler {
	t.Helper()
	feedback, _ := newTestFeedbackService(t)
	generator := service.NewGenerationService(gen, nil)
	audio := service.NewAudioService(recognizer, &stubDownmixer{}, generator, feedback, t.TempDir(), logger.NewNop())
	return NewAudioHandler(logger.NewNop(), audio)
}

func TestTranscribeEndpoint(t *testing.T) {
	handler := newTestAudioHandler(t, &stubRecognizer{transcript: "today we discussed fractions"}, &stubGenerator{})

	body, contentType := multipartBody(t, "file", "class.wav", "audio/wav", []byte("RIFFdata"), map[string]string{
		"subject":    "mathematics",
		"gradeLevel": "4",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Transcribe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Transcription string `json:"transcription"`
		Language      string `json:"language"`
		Subject       string `json:"subject"`
		GradeLevel    string `json:"gradeLevel"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Transcription != "today we discussed fractions" {
		t.Errorf("transcription = %q", resp.Transcription)
	}
	if resp.Language != "en-US" || resp.Subject != "mathematics" || resp.GradeLevel != "4" {
		t.Errorf("metadata = %+v", resp)
	}
}

func TestTranscribeEndpointRejectsNonAudio(t *testing.T) {
	handler := newTestAudioHandler(t, &stubRecognizer{transcript: "x"}, &stubGenerator{})

	body, contentType := multipartBody(t, "file", "notes.txt", "text/plain", []byte("hello"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Transcribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("body = %s, want error payload", rec.Body.String())
	}
}

func TestTranscribeEndpointMissingFile(t *testing.T) {
	handler := newTestAudioHandler(t, &stubRecognizer{}, &stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", strings.NewReader("not multipart"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Transcribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestTranscribeEndpointNoSpeech(t *testing.T) {
	handler := newTestAudioHandler(t, &stubRecognizer{transcript: ""}, &stubGenerator{})

	body, contentType := multipartBody(t, "file", "silence.wav", "audio/wav", []byte("data"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Transcribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No speech detected") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAnalyzeAudioEndpoint(t *testing.T) {
	gen := &stubGenerator{response: "## Feedback\n\nWell organized lesson."}
	handler := newTestAudioHandler(t, &stubRecognizer{}, gen)

	reqBody := `{"transcription":"today we discussed fractions","subject":"mathematics","gradeLevel":"4","language":"English"}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-audio", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.AnalyzeAudio(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Feedback != gen.response {
		t.Errorf("feedback = %q", resp.Feedback)
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "mathematics class recording") {
		t.Errorf("prompts = %v", gen.prompts)
	}
}

func TestAnalyzeAudioEndpointRequiresTranscription(t *testing.T) {
	handler := newTestAudioHandler(t, &stubRecognizer{}, &stubGenerator{response: "x"})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-audio", strings.NewReader(`{"subject":"mathematics"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.AnalyzeAudio(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
