package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

var envVars = []string{
	"API_PORT", "LOG_LEVEL", "LOG_FORMAT", "DB_PATH", "CORS_ALLOWED_ORIGINS", "MAX_UPLOAD_MB",
	"TRANSCRIBE_BASE_URL", "TRANSCRIBE_MODEL", "TRANSCRIBE_API_KEY",
	"GDOCS_BASE_URL", "FETCH_TIMEOUT",
	"EMBEDDING_BASE_URL", "EMBEDDING_MODEL_NAME", "EMBEDDING_API_KEY",
	"QDRANT_URL", "QDRANT_COLLECTION", "QDRANT_VECTOR_SIZE",
}

// isolate clears the configuration environment and moves into a temp
// directory without a .env file.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		// Setenv registers the restore; the variable must be absent, not
		// empty, or godotenv will not fill it from a .env file.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantErr     bool
		checkConfig func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.APIPort != "8000" || cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "text" {
					t.Errorf("server defaults = %q %v %q", cfg.APIPort, cfg.LogLevel, cfg.LogFormat)
				}
				if cfg.DBPath != "./data/minutify.db" {
					t.Errorf("DBPath = %q", cfg.DBPath)
				}
				if !slices.Equal(cfg.CORSAllowedOrigins, []string{"http://localhost:3000", "http://localhost:3001"}) {
					t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
				}
				if cfg.MaxUploadBytes != 100<<20 {
					t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
				}
				if cfg.TranscribeBaseURL != "http://localhost:8082" || cfg.TranscribeModel != "base" || cfg.TranscribeAPIKey != "dummy-key" {
					t.Errorf("transcribe defaults = %q %q %q", cfg.TranscribeBaseURL, cfg.TranscribeModel, cfg.TranscribeAPIKey)
				}
				if cfg.GDocsBaseURL != "https://docs.google.com" || cfg.FetchTimeout != 30*time.Second {
					t.Errorf("gdocs defaults = %q %v", cfg.GDocsBaseURL, cfg.FetchTimeout)
				}
				if cfg.QdrantURL != "http://localhost:6333" || cfg.QdrantCollection != "segments" {
					t.Errorf("qdrant defaults = %q %q", cfg.QdrantURL, cfg.QdrantCollection)
				}
				if cfg.IndexingEnabled() {
					t.Error("indexing should be disabled without QDRANT_VECTOR_SIZE")
				}
			},
		},
		{
			name: "custom values",
			env: map[string]string{
				"API_PORT":             "9100",
				"LOG_LEVEL":            "DEBUG",
				"LOG_FORMAT":           "json",
				"CORS_ALLOWED_ORIGINS": " https://app.example.com , ,https://admin.example.com",
				"MAX_UPLOAD_MB":        "5",
				"FETCH_TIMEOUT":        "1m30s",
				"QDRANT_VECTOR_SIZE":   "768",
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.APIPort != "9100" || cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
					t.Errorf("server config = %q %v %q", cfg.APIPort, cfg.LogLevel, cfg.LogFormat)
				}
				if !slices.Equal(cfg.CORSAllowedOrigins, []string{"https://app.example.com", "https://admin.example.com"}) {
					t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
				}
				if cfg.MaxUploadBytes != 5<<20 || cfg.FetchTimeout != 90*time.Second {
					t.Errorf("limits = %d %v", cfg.MaxUploadBytes, cfg.FetchTimeout)
				}
				if !cfg.IndexingEnabled() || cfg.QdrantVectorSize != 768 {
					t.Errorf("QdrantVectorSize = %d", cfg.QdrantVectorSize)
				}
			},
		},
		{name: "invalid LOG_LEVEL", env: map[string]string{"LOG_LEVEL": "verbose"}, wantErr: true},
		{name: "invalid LOG_FORMAT", env: map[string]string{"LOG_FORMAT": "xml"}, wantErr: true},
		{name: "invalid MAX_UPLOAD_MB", env: map[string]string{"MAX_UPLOAD_MB": "lots"}, wantErr: true},
		{name: "zero MAX_UPLOAD_MB", env: map[string]string{"MAX_UPLOAD_MB": "0"}, wantErr: true},
		{name: "invalid FETCH_TIMEOUT", env: map[string]string{"FETCH_TIMEOUT": "30"}, wantErr: true},
		{name: "invalid QDRANT_VECTOR_SIZE", env: map[string]string{"QDRANT_VECTOR_SIZE": "invalid"}, wantErr: true},
		{name: "zero QDRANT_VECTOR_SIZE", env: map[string]string{"QDRANT_VECTOR_SIZE": "0"}, wantErr: true},
		{name: "negative QDRANT_VECTOR_SIZE", env: map[string]string{"QDRANT_VECTOR_SIZE": "-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if tt.checkConfig != nil {
				tt.checkConfig(t, cfg)
			}
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolate(t)

	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	content := "TRANSCRIBE_MODEL=large-v3\nAPI_PORT=7000\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	// Values already in the environment win over the file
	t.Setenv("API_PORT", "7100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TranscribeModel != "large-v3" {
		t.Errorf("TranscribeModel = %q, want value from .env", cfg.TranscribeModel)
	}
	if cfg.APIPort != "7100" {
		t.Errorf("APIPort = %q, want environment value", cfg.APIPort)
	}
}

func TestLoad_CreatesDataDirectory(t *testing.T) {
	isolate(t)

	dbPath := filepath.Join(t.TempDir(), "test", "db.db")
	t.Setenv("DB_PATH", dbPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Errorf("Load() should create data directory: %v", err)
	}
	if cfg.DBPath != dbPath {
		t.Errorf("Load() DBPath = %v, want %v", cfg.DBPath, dbPath)
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue string
		want         string
	}{
		{name: "env var set", value: "set-value", defaultValue: "default", want: "set-value"},
		{name: "empty env var uses default", value: "", defaultValue: "default", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_VAR", tt.value)
			if got := getEnv("TEST_ENV_VAR", tt.defaultValue); got != tt.want {
				t.Errorf("getEnv(%q, %q) = %q, want %q", "TEST_ENV_VAR", tt.defaultValue, got, tt.want)
			}
		})
	}
}
