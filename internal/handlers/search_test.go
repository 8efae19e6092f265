package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"minutify/internal/indexer"
	indexer_mocks "minutify/internal/indexer/mocks"

	"go.uber.org/mock/gomock"
)

func TestSearchHandler(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(idx *indexer_mocks.MockIndex)
		wantStatus int
		wantHits   int
	}{
		{
			name:   "default k with filters",
			target: "/api/search?q=budget&meetingId=m1&sourceType=pdf",
			setup: func(idx *indexer_mocks.MockIndex) {
				idx.EXPECT().Search(gomock.Any(), "budget", indexer.DefaultK, indexer.Filters{MeetingID: "m1", SourceType: "pdf"}).
					Return([]indexer.Hit{
						{Score: 0.8, MeetingID: "m1", MeetingTitle: "report.pdf", SourceType: "pdf", SegmentIndex: 2, Title: strPtr("BUDGET"), Content: "numbers"},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantHits:   1,
		},
		{
			name:   "k is capped",
			target: "/api/search?q=budget&k=500",
			setup: func(idx *indexer_mocks.MockIndex) {
				idx.EXPECT().Search(gomock.Any(), "budget", MaxK, indexer.Filters{}).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing query",
			target:     "/api/search?q=%20",
			setup:      func(*indexer_mocks.MockIndex) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid k",
			target:     "/api/search?q=x&k=zero",
			setup:      func(*indexer_mocks.MockIndex) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "index failure",
			target: "/api/search?q=x",
			setup: func(idx *indexer_mocks.MockIndex) {
				idx.EXPECT().Search(gomock.Any(), "x", indexer.DefaultK, indexer.Filters{}).Return(nil, errors.New("embeddings down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			idx := indexer_mocks.NewMockIndex(ctrl)
			tt.setup(idx)
			h := NewSearchHandler(idx)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp SearchResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(resp.Hits) != tt.wantHits {
				t.Errorf("hits = %d, want %d", len(resp.Hits), tt.wantHits)
			}
			if tt.wantHits > 0 && (resp.Hits[0].Index != 2 || *resp.Hits[0].Title != "BUDGET" || resp.Hits[0].MeetingTitle != "report.pdf") {
				t.Errorf("hit = %+v", resp.Hits[0])
			}
		})
	}
}

func TestSearchHandler_Disabled(t *testing.T) {
	h := NewSearchHandler(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=x", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestSearchHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSearchHandler(indexer_mocks.NewMockIndex(ctrl))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/search?q=x", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
