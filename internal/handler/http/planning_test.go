package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shikshaksaathi/saathi_service/internal/logger"
	"github.com/shikshaksaathi/saathi_service/internal/repository"
	"github.com/shikshaksaathi/saathi_service/internal/service"
)

func newTestPlanningHandler(t *testing.T, gen *stubGenerator) (*PlanningHandler, *repository.InMemoryFeedbackRepository) {
	t.Helper()
	feedback, repo := newTestFeedbackService(t)
	planning := service.NewPlanningService(service.NewGenerationService(gen, nil), feedback)
	return NewPlanningHandler(logger.NewNop(), planning), repo
}

func TestGenerateLessonPlanEndpoint(t *testing.T) {
	gen := &stubGenerator{response: "# Lesson Plan\n\n- Objectives"}
	handler, repo := newTestPlanningHandler(t, gen)

	reqBody := `{
		"topic": "Fractions",
		"subject": "mathematics",
		"gradeLevel": "4",
		"references": [{"name": "NCERT Math 4", "context": "Chapter on fractions."}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-lesson-plan", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.GenerateLessonPlan(rec, req)

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

	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "NCERT Math 4") {
		t.Errorf("prompts = %v, want reference citation", gen.prompts)
	}

	records := waitForRecords(t, repo, 1)
	if len(records) != 1 || records[0].Category != repository.CategoryLessonPlan {
		t.Errorf("records = %+v, want one lesson-plan record", records)
	}
	if records[0].Input != "Fractions" {
		t.Errorf("input = %q, want topic", records[0].Input)
	}
}

func TestGenerateLessonPlanEndpointRequiresTopic(t *testing.T) {
	handler, _ := newTestPlanningHandler(t, &stubGenerator{response: "x"})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-lesson-plan", strings.NewReader(`{"subject":"mathematics"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.GenerateLessonPlan(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateAssessmentEndpoint(t *testing.T) {
	gen := &stubGenerator{response: "# Assessment\n\n1. Question"}
	handler, repo := newTestPlanningHandler(t, gen)

	reqBody := `{"topic":"Photosynthesis","subject":"science","gradeLevel":"6"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-assessment", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.GenerateAssessment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	records := waitForRecords(t, repo, 1)
	if len(records) != 1 || records[0].Category != repository.CategoryAssessment {
		t.Errorf("records = %+v, want one assessment record", records)
	}
}

func TestGenerateLessonPlanEndpointGenerationFailure(t *testing.T) {
	handler, _ := newTestPlanningHandler(t, &stubGenerator{response: ""})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-lesson-plan", strings.NewReader(`{"topic":"Fractions"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.GenerateLessonPlan(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 for empty generation", rec.Code)
	}
}
