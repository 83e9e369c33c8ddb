// Package http contains the HTTP request handlers. Handlers stay thin:
// decode, validate, call one service, write the flat JSON payload.
package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/pkg/response"
)

// maxMultipartMemory bounds in-memory parsing of multipart uploads.
const maxMultipartMemory = 32 << 20

func handleError(log zerolog.Logger, w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		status := appErr.HTTPStatus()
		if status >= http.StatusInternalServerError {
			log.Error().Err(appErr).Msg("Request failed")
		}
		response.Error(w, status, appErr.Message)
		return
	}

	log.Error().Err(err).Msg("Internal server error")
	response.InternalError(w, "internal server error")
}
