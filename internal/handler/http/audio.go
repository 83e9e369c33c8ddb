package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/service"
	"github.com/shikshaksaathi/saathi_service/pkg/response"
)

// AudioHandler handles the classroom-audio pipeline endpoints.
type AudioHandler struct {
	log   zerolog.Logger
	audio *service.AudioService
}

// NewAudioHandler creates a new audio handler.
func NewAudioHandler(log zerolog.Logger, audio *service.AudioService) *AudioHandler {
	return &AudioHandler{
		log:   log,
		audio: audio,
	}
}

// Transcribe handles POST /api/transcribe
func (h *AudioHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		handleError(h.log, w, errors.Validation("failed to parse multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, errors.Validation("no audio file uploaded"))
		return
	}
	defer file.Close()

	subject := r.FormValue("subject")
	gradeLevel := r.FormValue("gradeLevel")
	mimeType := header.Header.Get("Content-Type")

	result, err := h.audio.Transcribe(ctx, header.Filename, mimeType, file, subject, gradeLevel)
	if err != nil {
		handleError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// AnalyzeAudioRequest is the request body for audio feedback analysis.
type AnalyzeAudioRequest struct {
	Transcription string `json:"transcription"`
	Subject       string `json:"subject"`
	GradeLevel    string `json:"gradeLevel"`
	Language      string `json:"language"`
}

// AnalyzeAudio handles POST /api/analyze-audio
func (h *AudioHandler) AnalyzeAudio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AnalyzeAudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(h.log, w, errors.Validation("invalid request body"))
		return
	}

	feedback, err := h.audio.AnalyzeTranscript(ctx, req.Transcription, req.Subject, req.GradeLevel, req.Language)
	if err != nil {
		handleError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"feedback": feedback,
	})
}
