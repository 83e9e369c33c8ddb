package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/repository"
	"github.com/shikshaksaathi/saathi_service/internal/service"
	"github.com/shikshaksaathi/saathi_service/pkg/response"
)

// FeedbackHandler handles explicit feedback persistence and retrieval.
type FeedbackHandler struct {
	log      zerolog.Logger
	feedback *service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(log zerolog.Logger, feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		log:      log,
		feedback: feedback,
	}
}

// CreateFeedbackRequest is the body of POST /api/feedback.
type CreateFeedbackRequest struct {
	Input      string `json:"input"`
	Feedback   string `json:"feedback"`
	Subject    string `json:"subject"`
	GradeLevel string `json:"gradeLevel"`
	Category   string `json:"type"`
}

// Create handles POST /api/feedback
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(h.log, w, errors.Validation("invalid request body"))
		return
	}

	record := &repository.FeedbackRecord{
		Input:      req.Input,
		Feedback:   req.Feedback,
		Subject:    req.Subject,
		GradeLevel: req.GradeLevel,
		Category:   req.Category,
	}

	if err := h.feedback.Save(ctx, record); err != nil {
		handleError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":      record.ID.String(),
		"success": true,
	})
}

// List handles GET /api/feedback
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := repository.FeedbackFilter{
		Subject:    r.URL.Query().Get("subject"),
		GradeLevel: r.URL.Query().Get("gradeLevel"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			handleError(h.log, w, errors.Validation("limit must be a positive integer"))
			return
		}
		filter.Limit = limit
	}

	records, err := h.feedback.List(ctx, filter)
	if err != nil {
		handleError(h.log, w, err)
		return
	}

	if records == nil {
		records = []*repository.FeedbackRecord{}
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"data":  records,
		"count": len(records),
	})
}
