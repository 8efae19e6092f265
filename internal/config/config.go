package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort            string
	LogLevel           slog.Level
	LogFormat          string
	DBPath             string
	CORSAllowedOrigins []string
	MaxUploadBytes     int64
	TranscribeBaseURL  string
	TranscribeModel    string
	TranscribeAPIKey   string
	GDocsBaseURL       string
	FetchTimeout       time.Duration
	EmbeddingBaseURL   string
	EmbeddingModelName string
	EmbeddingAPIKey    string
	QdrantURL          string
	QdrantCollection   string
	// QdrantVectorSize is zero when indexing is disabled.
	QdrantVectorSize int
}

// IndexingEnabled reports whether semantic indexing is configured.
func (c *Config) IndexingEnabled() bool {
	return c.QdrantVectorSize > 0
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:            getEnv("API_PORT", "8000"),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "text")),
		DBPath:             getEnv("DB_PATH", "./data/minutify.db"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		TranscribeBaseURL:  getEnv("TRANSCRIBE_BASE_URL", "http://localhost:8082"),
		TranscribeModel:    getEnv("TRANSCRIBE_MODEL", "base"),
		TranscribeAPIKey:   getEnv("TRANSCRIBE_API_KEY", "dummy-key"),
		GDocsBaseURL:       getEnv("GDOCS_BASE_URL", "https://docs.google.com"),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", "http://localhost:8081"),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "granite-embedding-278m-multilingual"),
		EmbeddingAPIKey:    getEnv("EMBEDDING_API_KEY", ""),
		QdrantURL:          getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection:   getEnv("QDRANT_COLLECTION", "segments"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	maxUploadMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_MB", "100"))
	if err != nil {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be a valid integer: %w", err)
	}
	if maxUploadMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be greater than 0")
	}
	cfg.MaxUploadBytes = int64(maxUploadMB) << 20

	cfg.FetchTimeout, err = time.ParseDuration(getEnv("FETCH_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("FETCH_TIMEOUT must be a valid duration: %w", err)
	}
	if cfg.FetchTimeout <= 0 {
		return nil, fmt.Errorf("FETCH_TIMEOUT must be greater than 0")
	}

	// QDRANT_VECTOR_SIZE must match the output size of the embeddings model.
	// Leaving it unset disables indexing and search.
	if vectorSizeStr := getEnv("QDRANT_VECTOR_SIZE", ""); vectorSizeStr != "" {
		vectorSize, err := strconv.Atoi(vectorSizeStr)
		if err != nil {
			return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be a valid integer: %w", err)
		}
		if vectorSize <= 0 {
			return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
		}
		cfg.QdrantVectorSize = vectorSize
	}

	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma-separated value, dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
