package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/service"
	"github.com/shikshaksaathi/saathi_service/pkg/response"
)

// OCRHandler handles the assignment pipeline endpoints.
type OCRHandler struct {
	log zerolog.Logger
	ocr *service.OCRService
}

// NewOCRHandler creates a new OCR handler.
func NewOCRHandler(log zerolog.Logger, ocr *service.OCRService) *OCRHandler {
	return &OCRHandler{
		log: log,
		ocr: ocr,
	}
}

// ExtractText handles POST /api/extract-text
func (h *OCRHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		handleError(h.log, w, errors.Validation("failed to parse multipart form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		handleError(h.log, w, errors.Validation("no image file provided"))
		return
	}
	defer file.Close()

	if mime := header.Header.Get("Content-Type"); mime != "" && !strings.HasPrefix(mime, "image/") {
		handleError(h.log, w, errors.Validation("uploaded file is not an image"))
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		handleError(h.log, w, errors.InternalWrap("failed to read image", err))
		return
	}

	text, err := h.ocr.ExtractText(ctx, image)
	if err != nil {
		handleError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"text": text,
	})
}

// GenerateFeedbackRequest is the request body for assignment feedback.
type GenerateFeedbackRequest struct {
	Text       string `json:"text"`
	Subject    string `json:"subject"`
	GradeLevel string `json:"gradeLevel"`
}

// GenerateFeedback handles POST /api/generate-feedback
func (h *OCRHandler) GenerateFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req GenerateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(h.log, w, errors.Validation("invalid request body"))
		return
	}

	if req.Text == "" || req.Subject == "" || req.GradeLevel == "" {
		handleError(h.log, w, errors.Validation("missing required parameters"))
		return
	}

	feedback, err := h.ocr.AssignmentFeedback(ctx, req.Text, req.Subject, req.GradeLevel)
	if err != nil {
		handleError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"feedback": feedback,
	})
}
