package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shikshaksaathi/saathi_service/internal/client"
	"github.com/shikshaksaathi/saathi_service/internal/config"
	"github.com/shikshaksaathi/saathi_service/internal/handler/http"
	"github.com/shikshaksaathi/saathi_service/internal/logger"
	"github.com/shikshaksaathi/saathi_service/internal/repository"
	"github.com/shikshaksaathi/saathi_service/internal/server"
	"github.com/shikshaksaathi/saathi_service/internal/service"
	"github.com/shikshaksaathi/saathi_service/internal/transcode"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("env", cfg.Environment).Msg("Starting saathi_service")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize clients
	var geminiClient *client.GeminiClient
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = client.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Gemini client")
		} else {
			log.Info().Str("model", cfg.GeminiModel).Msg("Gemini client initialized")
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, skipping Gemini initialization")
	}

	var openaiClient *client.OpenAIClient
	if cfg.OpenAIAPIKey != "" {
		openaiClient = client.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		log.Info().Str("model", cfg.OpenAIModel).Msg("OpenAI client initialized")
	}

	var speechClient *client.SpeechClient
	speechClient, err = client.NewSpeechClient(ctx, cfg.GoogleCredentialsFile)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize Speech client")
		speechClient = nil
	} else {
		log.Info().Msg("Speech client initialized")
	}

	var visionClient *client.VisionClient
	visionClient, err = client.NewVisionClient(ctx, cfg.GoogleCredentialsFile)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize Vision client")
		visionClient = nil
	} else {
		log.Info().Msg("Vision client initialized")
	}

	var storageClient *client.StorageClient
	if cfg.StorageBucket != "" {
		storageClient, err = client.NewStorageClient(ctx, cfg.StorageBucket, cfg.GoogleCredentialsFile)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Storage client")
		} else {
			log.Info().Str("bucket", cfg.StorageBucket).Msg("Storage client initialized")
		}
	} else {
		log.Warn().Msg("STORAGE_BUCKET not set, reference documents disabled")
	}

	var redisClient *client.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = client.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Redis client")
		} else {
			log.Info().Msg("Redis client initialized")
		}
	}

	var pubsubClient *client.PubSubClient
	if cfg.PubSubProjectID != "" {
		pubsubClient, err = client.NewPubSubClient(ctx, cfg.PubSubProjectID, cfg.PubSubTopic)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Pub/Sub client")
		} else {
			log.Info().Str("topic", cfg.PubSubTopic).Msg("Pub/Sub client initialized")
		}
	}

	var cloudflareClient *client.CloudflareClient
	if cfg.CloudflareAccessKeyID != "" && cfg.CloudflareSecretKey != "" && cfg.CloudflareR2Endpoint != "" && cfg.CloudflareBucketName != "" {
		cloudflareClient, err = client.NewCloudflareClient(ctx,
			cfg.CloudflareAccessKeyID,
			cfg.CloudflareSecretKey,
			cfg.CloudflareR2Endpoint,
			cfg.CloudflareBucketName,
			cfg.CloudflarePublicURL,
		)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Cloudflare client")
		} else {
			log.Info().Msg("Cloudflare R2 client initialized")
		}
	} else {
		log.Warn().Msg("Cloudflare configuration missing, exported PDFs served inline")
	}

	var postgresClient *client.PostgresClient
	if cfg.DatabaseURL != "" {
		postgresClient, err = client.NewPostgresClient(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Postgres client")
		} else {
			log.Info().Msg("Postgres client initialized")
		}
	} else {
		log.Warn().Msg("DATABASE_URL not set, feedback stored in memory only")
	}

	// Initialize repositories
	var feedbackRepo repository.FeedbackRepository
	if postgresClient != nil {
		feedbackRepo = repository.NewPostgresFeedbackRepository(postgresClient)
	} else {
		feedbackRepo = repository.NewInMemoryFeedbackRepository()
	}

	// Typed nil clients must not reach the services as non-nil interfaces.
	var geminiGen, openaiGen service.TextGenerator
	if geminiClient != nil {
		geminiGen = geminiClient
	}
	if openaiClient != nil {
		openaiGen = openaiClient
	}

	var recognizer service.SpeechRecognizer
	if speechClient != nil {
		recognizer = speechClient
	}

	var detector service.TextDetector
	if visionClient != nil {
		detector = visionClient
	}

	var objectStore service.ObjectStore
	if storageClient != nil {
		objectStore = storageClient
	}

	var documentCache service.DocumentCache
	if redisClient != nil {
		documentCache = redisClient
	}

	var publisher service.EventPublisher
	if pubsubClient != nil {
		publisher = pubsubClient
	}

	var pdfUploader service.PDFUploader
	if cloudflareClient != nil {
		pdfUploader = cloudflareClient
	}

	// Initialize services
	generationService := service.NewGenerationService(geminiGen, openaiGen)
	feedbackService := service.NewFeedbackService(feedbackRepo, publisher, log)
	audioService := service.NewAudioService(recognizer, transcode.New(cfg.FFmpegPath), generationService, feedbackService, "", log)
	ocrService := service.NewOCRService(detector, generationService, feedbackService)
	planningService := service.NewPlanningService(generationService, feedbackService)
	referenceService := service.NewReferenceService(objectStore, documentCache, cfg.DocumentCacheTTL, log)
	exportService := service.NewExportService(pdfUploader)

	// Initialize handlers
	healthHandler := http.NewHealthHandler()
	audioHandler := http.NewAudioHandler(log, audioService)
	ocrHandler := http.NewOCRHandler(log, ocrService)
	planningHandler := http.NewPlanningHandler(log, planningService)
	feedbackHandler := http.NewFeedbackHandler(log, feedbackService)
	referenceHandler := http.NewReferenceHandler(log, referenceService)
	exportHandler := http.NewExportHandler(log, exportService)

	// Initialize HTTP server
	httpServer := server.NewHTTPServer(cfg, log,
		healthHandler,
		audioHandler,
		ocrHandler,
		planningHandler,
		feedbackHandler,
		referenceHandler,
		exportHandler,
	)

	// Start server
	go func() {
		if err := httpServer.Start(); err != nil {
			log.Error().Err(err).Msg("HTTP server error")
			cancel()
		}
	}()

	healthHandler.SetReady(true)
	log.Info().
		Str("http_addr", cfg.HTTPAddress()).
		Msg("Server started")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info().Msg("Shutdown signal received")
	case <-ctx.Done():
		log.Info().Msg("Context cancelled")
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down server...")
	healthHandler.SetReady(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// Drain queued feedback saves before closing clients.
	feedbackService.Stop()

	if geminiClient != nil {
		geminiClient.Close()
	}
	if speechClient != nil {
		speechClient.Close()
	}
	if visionClient != nil {
		visionClient.Close()
	}
	if storageClient != nil {
		storageClient.Close()
	}
	if redisClient != nil {
		redisClient.Close()
	}
	if pubsubClient != nil {
		pubsubClient.Close()
	}
	if postgresClient != nil {
		postgresClient.Close()
	}

	log.Info().Msg("Server stopped")
}
