package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/prompt"
	"github.com/shikshaksaathi/saathi_service/internal/service"
	"github.com/shikshaksaathi/saathi_service/pkg/response"
)

// PlanningHandler handles lesson-plan and assessment generation.
type PlanningHandler struct {
	log      zerolog.Logger
	planning *service.PlanningService
}

// NewPlanningHandler creates a new planning handler.
func NewPlanningHandler(log zerolog.Logger, planning *service.PlanningService) *PlanningHandler {
	return &PlanningHandler{
		log:      log,
		planning: planning,
	}
}

// PlanningRequest is the shared request body for both generation endpoints.
type PlanningRequest struct {
	Topic      string             `json:"topic"`
	Subject    string             `json:"subject"`
	GradeLevel string             `json:"gradeLevel"`
	References []prompt.Reference `json:"references"`
}

// GenerateLessonPlan handles POST /api/generate-lesson-plan
func (h *PlanningHandler) GenerateLessonPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PlanningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(h.log, w, errors.Validation("invalid request body"))
		return
	}

	plan, err := h.planning.LessonPlan(ctx, req.Topic, req.Subject, req.GradeLevel, req.References)
	if err != nil {
		handleError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"feedback": plan,
	})
}

// GenerateAssessment handles POST /api/generate-assessment
func (h *PlanningHandler) GenerateAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PlanningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(h.log, w, errors.Validation("invalid request body"))
		return
	}

	assessment, err := h.planning.Assessment(ctx, req.Topic, req.Subject, req.GradeLevel, req.References)
	if err != nil {
		handleError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"feedback": assessment,
	})
}
