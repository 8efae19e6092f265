package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minutify/internal/config"
	"minutify/internal/extract"
	"minutify/internal/gdocs"
	"minutify/internal/handlers"
	"minutify/internal/http"
	"minutify/internal/indexer"
	"minutify/internal/llm"
	"minutify/internal/service"
	"minutify/internal/storage"
	"minutify/internal/transcribe"
	"minutify/internal/vectorstore"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API turns meeting recordings and documents into ordered, titled segments.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Minutify Processing API
//   description: |
//     Processes audio recordings, PDF, DOCX and Markdown files and Google Docs into
//     segments, stores them as meetings and searches them semantically.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
//   - multipart/form-data
// produces:
//   - application/json

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	meetingRepo := storage.NewMeetingRepo(db)
	segmentRepo := storage.NewSegmentRepo(db)

	// Extraction backends are built once and shared by every request
	processingService := service.NewProcessingService(service.Collaborators{
		Transcriber: transcribe.NewWhisperClient(cfg.TranscribeBaseURL, cfg.TranscribeAPIKey, cfg.TranscribeModel),
		PDF:         extract.NewPDFExtractor(),
		DOCX:        extract.NewDOCXExtractor(),
		Markdown:    extract.NewMarkdownExtractor(),
		GoogleDocs:  gdocs.NewClient(cfg.GDocsBaseURL, cfg.FetchTimeout),
	})
	slog.Info("Processing service initialized", "transcribe_url", cfg.TranscribeBaseURL, "transcribe_model", cfg.TranscribeModel)

	ctx := context.Background()

	// Indexing is optional; interfaces stay nil when it is disabled
	var index indexer.Index
	var vectors handlers.CollectionChecker
	if cfg.IndexingEnabled() {
		vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		defer func() {
			_ = vectorStore.Close()
		}()

		// Ensure collection exists with correct vector size
		if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
			log.Fatalf("Failed to ensure Qdrant collection: %v", err)
		}
		slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

		embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
		index = indexer.NewPipeline(meetingRepo, segmentRepo, embedder, vectorStore, cfg.QdrantCollection, cfg.EmbeddingModelName)
		vectors = vectorStore
		slog.Info("Indexing enabled", "embedding_url", cfg.EmbeddingBaseURL, "model", cfg.EmbeddingModelName)
	} else {
		slog.Info("Indexing disabled: QDRANT_VECTOR_SIZE is not set")
	}

	processHandler := handlers.NewProcessHandler(processingService, meetingRepo, index, cfg.MaxUploadBytes)
	indexHandler := handlers.NewIndexHandler(index)

	// Create router with dependencies
	deps := &http.Deps{
		Process:     processHandler,
		Meetings:    handlers.NewMeetingsHandler(meetingRepo, segmentRepo, index),
		Search:      handlers.NewSearchHandler(index),
		Index:       indexHandler,
		Health:      handlers.NewHealthHandler(db, vectors, cfg.QdrantCollection),
		CORSOrigins: cfg.CORSAllowedOrigins,
	}

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           http.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", server.Addr, "cors_origins", cfg.CORSAllowedOrigins)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("API server failed", "error", err)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	// Let in-flight indexing finish before the stores close
	processHandler.Wait()
	indexHandler.Wait()
	slog.Info("Server stopped")
}
