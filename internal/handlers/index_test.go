package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"minutify/internal/indexer"
	indexer_mocks "minutify/internal/indexer/mocks"

	"go.uber.org/mock/gomock"
)

func TestIndexHandler_Reindex(t *testing.T) {
	tests := []struct {
		name   string
		result error
	}{
		{name: "success"},
		{name: "partial failure", result: errors.New("indexing completed with 1 errors")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			idx := indexer_mocks.NewMockIndex(ctrl)
			idx.EXPECT().IndexAll(gomock.Any()).Return(tt.result)

			h := NewIndexHandler(idx)
			h.run = func(f func()) { f() }

			rec := httptest.NewRecorder()
			h.Reindex(rec, httptest.NewRequest(http.MethodPost, "/api/index", nil))

			if rec.Code != http.StatusAccepted {
				t.Fatalf("status = %d, want 202", rec.Code)
			}
			var resp IndexResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != "accepted" {
				t.Errorf("status field = %q", resp.Status)
			}
		})
	}
}

func TestIndexHandler_Reindex_SingleRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idx := indexer_mocks.NewMockIndex(ctrl)
	h := NewIndexHandler(idx)

	release := make(chan struct{})
	idx.EXPECT().IndexAll(gomock.Any()).DoAndReturn(func(context.Context) error {
		<-release
		return nil
	}).Times(1)

	first := httptest.NewRecorder()
	h.Reindex(first, httptest.NewRequest(http.MethodPost, "/api/index", nil))
	if first.Code != http.StatusAccepted {
		t.Fatalf("first status = %d, want 202", first.Code)
	}

	second := httptest.NewRecorder()
	h.Reindex(second, httptest.NewRequest(http.MethodPost, "/api/index", nil))
	if second.Code != http.StatusConflict {
		t.Errorf("second status = %d, want 409", second.Code)
	}

	close(release)
	h.Wait()

	// A finished run frees the slot
	idx.EXPECT().IndexAll(gomock.Any()).Return(nil)
	h.run = func(f func()) { f() }
	third := httptest.NewRecorder()
	h.Reindex(third, httptest.NewRequest(http.MethodPost, "/api/index", nil))
	if third.Code != http.StatusAccepted {
		t.Errorf("third status = %d, want 202", third.Code)
	}
}

func TestIndexHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idx := indexer_mocks.NewMockIndex(ctrl)
	idx.EXPECT().Stats(gomock.Any()).Return(&indexer.Stats{
		Meetings:         2,
		Segments:         5,
		SegmentsBySource: map[string]int{"audio": 3, "pdf": 2},
		TokenStats:       indexer.TokenStats{Min: 1, Max: 40, Mean: 12.5, P95: 40},
		IndexerVersion:   indexer.IndexerVersion,
	}, nil)

	rec := httptest.NewRecorder()
	NewIndexHandler(idx).Stats(rec, httptest.NewRequest(http.MethodGet, "/api/index/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var stats indexer.Stats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if stats.Segments != 5 || stats.SegmentsBySource["audio"] != 3 || stats.TokenStats.P95 != 40 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestIndexHandler_StatsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idx := indexer_mocks.NewMockIndex(ctrl)
	idx.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("database is locked"))

	rec := httptest.NewRecorder()
	NewIndexHandler(idx).Stats(rec, httptest.NewRequest(http.MethodGet, "/api/index/stats", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestIndexHandler_Disabled(t *testing.T) {
	h := NewIndexHandler(nil)

	for _, call := range []struct {
		name    string
		handler http.HandlerFunc
		method  string
	}{
		{name: "reindex", handler: h.Reindex, method: http.MethodPost},
		{name: "stats", handler: h.Stats, method: http.MethodGet},
	} {
		t.Run(call.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			call.handler(rec, httptest.NewRequest(call.method, "/api/index", nil))
			if rec.Code != http.StatusServiceUnavailable {
				t.Errorf("status = %d, want 503", rec.Code)
			}
			if msg := decodeError(t, rec); msg != "Indexing is not enabled" {
				t.Errorf("error = %q", msg)
			}
		})
	}
}
