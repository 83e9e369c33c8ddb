package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/shikshaksaathi/saathi_service/internal/config"
	httphandler "github.com/shikshaksaathi/saathi_service/internal/handler/http"
	"github.com/shikshaksaathi/saathi_service/internal/middleware"
)

// HTTPServer represents the HTTP server.
type HTTPServer struct {
	server *http.Server
	log    zerolog.Logger
}

// NewHTTPServer creates a new HTTP server.
func NewHTTPServer(
	cfg *config.Config,
	log zerolog.Logger,
	healthHandler *httphandler.HealthHandler,
	audioHandler *httphandler.AudioHandler,
	ocrHandler *httphandler.OCRHandler,
	planningHandler *httphandler.PlanningHandler,
	feedbackHandler *httphandler.FeedbackHandler,
	referenceHandler *httphandler.ReferenceHandler,
	exportHandler *httphandler.ExportHandler,
) *HTTPServer {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(chimiddleware.Compress(5))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   cfg.CORSAllowedMethods,
		AllowedHeaders:   cfg.CORSAllowedHeaders,
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (public)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Get("/live", healthHandler.Live)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Audio endpoints
		r.Post("/transcribe", audioHandler.Transcribe)
		r.Post("/analyze-audio", audioHandler.AnalyzeAudio)

		// Assignment OCR endpoints
		r.Post("/extract-text", ocrHandler.ExtractText)
		r.Post("/generate-feedback", ocrHandler.GenerateFeedback)

		// Planning endpoints
		r.Post("/generate-lesson-plan", planningHandler.GenerateLessonPlan)
		r.Post("/generate-assessment", planningHandler.GenerateAssessment)

		// Feedback persistence endpoints
		r.Post("/feedback", feedbackHandler.Create)
		r.Get("/feedback", feedbackHandler.List)

		// Reference document endpoints
		r.Post("/upload-reference", referenceHandler.Upload)
		r.Post("/search-documents", referenceHandler.Search)
		r.Post("/fetch-document", referenceHandler.Fetch)
		// Document ids are object names and may contain slashes.
		r.Delete("/reference/*", referenceHandler.Delete)

		// Export endpoint
		r.Post("/export-pdf", exportHandler.ExportPDF)
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &HTTPServer{
		server: server,
		log:    log,
	}
}

// Start starts the HTTP server.
func (s *HTTPServer) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
