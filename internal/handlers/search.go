package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"minutify/internal/contextutil"
	"minutify/internal/indexer"
)

// MaxK caps the number of search hits per request.
const MaxK = 20

// SearchHandler handles semantic search over stored segments.
type SearchHandler struct {
	index indexer.Index
}

// NewSearchHandler creates a new SearchHandler. index may be nil, in which
// case every request is answered with 503.
func NewSearchHandler(index indexer.Index) *SearchHandler {
	return &SearchHandler{index: index}
}

// SearchHit is one matching segment.
//
// swagger:model SearchHit
type SearchHit struct {
	Score        float32 `json:"score"`
	MeetingID    string  `json:"meetingId"`
	MeetingTitle string  `json:"meetingTitle"`
	SourceType   string  `json:"sourceType"`
	SegmentResponse
}

// SearchResponse is the response of GET /api/search.
//
// swagger:model SearchResponse
type SearchResponse struct {
	Query string      `json:"query"`
	Hits  []SearchHit `json:"hits"`
}

// ServeHTTP handles GET /api/search?q=&k=&meetingId=&sourceType=.
//
// swagger:route GET /api/search searchSegments
//
// Returns the stored segments closest to the query.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if h.index == nil {
		writeError(w, http.StatusServiceUnavailable, "Search is not enabled")
		return
	}

	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}

	k := indexer.DefaultK
	if raw := q.Get("k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "k must be a positive integer")
			return
		}
		k = min(n, MaxK)
	}

	hits, err := h.index.Search(ctx, query, k, indexer.Filters{
		MeetingID:  q.Get("meetingId"),
		SourceType: q.Get("sourceType"),
	})
	if err != nil {
		logger.ErrorContext(ctx, "search failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	resp := SearchResponse{Query: query, Hits: make([]SearchHit, len(hits))}
	for i, hit := range hits {
		resp.Hits[i] = SearchHit{
			Score:        hit.Score,
			MeetingID:    hit.MeetingID,
			MeetingTitle: hit.MeetingTitle,
			SourceType:   hit.SourceType,
			SegmentResponse: SegmentResponse{
				Index:   hit.SegmentIndex,
				Minute:  hit.Minute,
				Title:   hit.Title,
				Content: hit.Content,
			},
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
