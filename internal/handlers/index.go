package handlers

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"minutify/internal/contextutil"
	"minutify/internal/indexer"
)

// IndexHandler handles HTTP requests for re-indexing and index statistics.
type IndexHandler struct {
	index indexer.Index
	// run starts background work; tests replace it to run synchronously.
	run     func(func())
	running atomic.Bool
	pending sync.WaitGroup
}

// NewIndexHandler creates a new IndexHandler. index may be nil.
func NewIndexHandler(index indexer.Index) *IndexHandler {
	return &IndexHandler{
		index: index,
		run:   func(f func()) { go f() },
	}
}

// IndexResponse represents the response from the index endpoint.
type IndexResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Reindex handles POST /api/index. Indexing runs after the response is sent;
// only one run is in flight at a time.
func (h *IndexHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if h.index == nil {
		writeError(w, http.StatusServiceUnavailable, "Indexing is not enabled")
		return
	}

	if !h.running.CompareAndSwap(false, true) {
		writeError(w, http.StatusConflict, "Indexing already in progress")
		return
	}
	logger.InfoContext(ctx, "re-indexing triggered via API")

	// Detach from the request so indexing continues after the response
	indexCtx := context.WithoutCancel(ctx)
	h.pending.Add(1)
	h.run(func() {
		defer h.pending.Done()
		defer h.running.Store(false)
		if err := h.index.IndexAll(indexCtx); err != nil {
			logger.ErrorContext(indexCtx, "re-indexing completed with errors", "error", err)
			return
		}
		logger.InfoContext(indexCtx, "re-indexing completed successfully")
	})

	writeJSON(w, http.StatusAccepted, IndexResponse{
		Message: "Indexing started. Check server logs for progress.",
		Status:  "accepted",
	})
}

// Stats handles GET /api/index/stats.
func (h *IndexHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if h.index == nil {
		writeError(w, http.StatusServiceUnavailable, "Indexing is not enabled")
		return
	}

	stats, err := h.index.Stats(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to compute index stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to compute index stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Wait blocks until a re-index started by this handler finishes.
func (h *IndexHandler) Wait() {
	h.pending.Wait()
}
