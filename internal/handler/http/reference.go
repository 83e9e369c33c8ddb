package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/service"
	"github.com/shikshaksaathi/saathi_service/pkg/response"
)

// ReferenceHandler handles reference document upload, search, fetch and
// deletion.
type ReferenceHandler struct {
	log       zerolog.Logger
	reference *service.ReferenceService
}

// NewReferenceHandler creates a new reference handler.
func NewReferenceHandler(log zerolog.Logger, reference *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		log:       log,
		reference: reference,
	}
}

// Upload handles POST /api/upload-reference
func (h *ReferenceHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		handleError(h.log, w, errors.Validation("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, errors.Validation("no file provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handleError(h.log, w, errors.InternalWrap("failed to read file", err))
		return
	}

	fileID, fileURL, err := h.reference.Upload(ctx,
		header.Filename,
		header.Header.Get("Content-Type"),
		r.FormValue("subject"),
		r.FormValue("grade"),
		data,
	)
	if err != nil {
		handleError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"fileId":  fileID,
		"fileUrl": fileURL,
		"success": true,
	})
}

// SearchRequest is the body of POST /api/search-documents.
type SearchRequest struct {
	Query string `json:"query"`
}

// Search handles POST /api/search-documents
func (h *ReferenceHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(h.log, w, errors.Validation("invalid request body"))
		return
	}

	documents, err := h.reference.Search(ctx, req.Query)
	if err != nil {
		handleError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"documents": documents,
	})
}

// FetchRequest is the body of POST /api/fetch-document.
type FetchRequest struct {
	DocumentID string `json:"documentId"`
}

// Fetch handles POST /api/fetch-document
func (h *ReferenceHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req FetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(h.log, w, errors.Validation("invalid request body"))
		return
	}
	if strings.TrimSpace(req.DocumentID) == "" {
		handleError(h.log, w, errors.Validation("no document id provided"))
		return
	}

	content, err := h.reference.Fetch(ctx, req.DocumentID)
	if err != nil {
		handleError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"content": content,
	})
}

// Delete handles DELETE /api/reference/{id}. The id is the object name and
// may contain slashes, so the route uses a wildcard.
func (h *ReferenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documentID := chi.URLParam(r, "*")
	if documentID == "" {
		handleError(h.log, w, errors.Validation("no document id provided"))
		return
	}

	if err := h.reference.Delete(ctx, documentID); err != nil {
		handleError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
