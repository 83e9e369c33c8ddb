package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/service"
	"github.com/shikshaksaathi/saathi_service/pkg/response"
)

// ExportHandler handles PDF export of generated feedback.
type ExportHandler struct {
	log    zerolog.Logger
	export *service.ExportService
}

// NewExportHandler creates a new export handler.
func NewExportHandler(log zerolog.Logger, export *service.ExportService) *ExportHandler {
	return &ExportHandler{
		log:    log,
		export: export,
	}
}

// ExportRequest is the body of POST /api/export-pdf.
type ExportRequest struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

// ExportPDF handles POST /api/export-pdf. When an uploader is configured the
// document is hosted and its URL returned; otherwise the PDF bytes are sent
// inline as an attachment.
func (h *ExportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(h.log, w, errors.Validation("invalid request body"))
		return
	}

	result, err := h.export.Export(ctx, req.Content, req.Filename)
	if err != nil {
		handleError(h.log, w, err)
		return
	}

	if result.URL != "" {
		response.JSON(w, http.StatusOK, map[string]interface{}{
			"url":      result.URL,
			"filename": result.Filename,
		})
		return
	}

	response.PDF(w, result.Filename, result.Data)
}
