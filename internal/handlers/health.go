package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"minutify/internal/contextutil"
)

// Service identity reported by the banner.
const (
	ServiceName    = "Minutify Processing Service"
	ServiceVersion = "1.0.0"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// CollectionChecker reports whether a vector collection exists.
type CollectionChecker interface {
	CollectionExists(ctx context.Context, collection string) (bool, error)
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	db                 Pinger
	vectors            CollectionChecker
	collectionName     string
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler. vectors may be nil when
// indexing is disabled.
func NewHealthHandler(db Pinger, vectors CollectionChecker, collectionName string) *HealthHandler {
	return &HealthHandler{
		db:                 db,
		vectors:            vectors,
		collectionName:     collectionName,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
//
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall health status: "healthy", "degraded", or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is degraded or unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// swagger:route GET /health healthCheck
//
// # Health check endpoint
//
// Returns 200 when the database is reachable (status "degraded" if the
// vector store is not), 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string
	status := "healthy"
	httpStatus := http.StatusOK

	if err := h.db.PingContext(checkCtx); err != nil {
		logger.WarnContext(ctx, "database health check failed", "error", err)
		checks["database"] = "error"
		issues = append(issues, "database_unavailable")
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	switch {
	case h.vectors == nil:
		checks["vector_store"] = "disabled"
	case h.checkVectorStore(checkCtx, logger):
		checks["vector_store"] = "ok"
	default:
		checks["vector_store"] = "error"
		issues = append(issues, "vector_store_unavailable")
		if status == "healthy" {
			status = "degraded"
		}
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	})
}

// checkVectorStore checks if the vector store is accessible.
func (h *HealthHandler) checkVectorStore(ctx context.Context, logger *slog.Logger) bool {
	exists, err := h.vectors.CollectionExists(ctx, h.collectionName)
	if err != nil {
		logger.WarnContext(ctx, "vector store health check failed", "error", err)
		return false
	}
	if !exists {
		logger.WarnContext(ctx, "vector store collection does not exist", "collection", h.collectionName)
		return false
	}
	return true
}

// BannerResponse is the response of GET /.
type BannerResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// Banner handles GET /.
func Banner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, BannerResponse{
		Service: ServiceName,
		Version: ServiceVersion,
		Status:  "running",
	})
}
