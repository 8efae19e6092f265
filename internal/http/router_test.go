package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"minutify/internal/handlers"
	service_mocks "minutify/internal/service/mocks"
	"minutify/internal/storage"
	storage_mocks "minutify/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

type routerMocks struct {
	service  *service_mocks.MockProcessingService
	meetings *storage_mocks.MockMeetingStore
	segments *storage_mocks.MockSegmentStore
}

// newTestRouter wires a router with indexing disabled.
func newTestRouter(ctrl *gomock.Controller) (http.Handler, routerMocks) {
	m := routerMocks{
		service:  service_mocks.NewMockProcessingService(ctrl),
		meetings: storage_mocks.NewMockMeetingStore(ctrl),
		segments: storage_mocks.NewMockSegmentStore(ctrl),
	}
	deps := &Deps{
		Process:     handlers.NewProcessHandler(m.service, m.meetings, nil, 1<<20),
		Meetings:    handlers.NewMeetingsHandler(m.meetings, m.segments, nil),
		Search:      handlers.NewSearchHandler(nil),
		Index:       handlers.NewIndexHandler(nil),
		Health:      handlers.NewHealthHandler(okPinger{}, nil, "segments"),
		CORSOrigins: []string{"http://localhost:3000"},
	}
	return NewRouter(deps), m
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(ctrl)
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(m routerMocks)
		wantStatus int
	}{
		{
			name:       "GET root serves banner",
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /health",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /process/pdf exists",
			method:     http.MethodPost,
			path:       "/process/pdf",
			wantStatus: http.StatusBadRequest, // Not a multipart form, but route exists
		},
		{
			name:       "POST /process/google-docs exists",
			method:     http.MethodPost,
			path:       "/process/google-docs",
			body:       `{"url": ""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "GET /process/audio method not allowed",
			method:     http.MethodGet,
			path:       "/process/audio",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:   "GET /api/meetings",
			method: http.MethodGet,
			path:   "/api/meetings",
			setup: func(m routerMocks) {
				m.meetings.EXPECT().List(gomock.Any()).Return([]storage.MeetingRecord{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GET /api/meetings/{id} passes the id",
			method: http.MethodGet,
			path:   "/api/meetings/abc",
			setup: func(m routerMocks) {
				m.meetings.EXPECT().GetByID(gomock.Any(), "abc").Return(nil, storage.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "DELETE /api/meetings/{id}",
			method: http.MethodDelete,
			path:   "/api/meetings/abc",
			setup: func(m routerMocks) {
				m.meetings.EXPECT().Delete(gomock.Any(), "abc").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "GET /api/search without index",
			method:     http.MethodGet,
			path:       "/api/search?q=budget",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "POST /api/search method not allowed",
			method:     http.MethodPost,
			path:       "/api/search",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "POST /api/index without index",
			method:     http.MethodPost,
			path:       "/api/index",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "GET /api/index/stats without index",
			method:     http.MethodGet,
			path:       "/api/index/stats",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, m := newTestRouter(ctrl)
			if tt.setup != nil {
				tt.setup(m)
			}

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(ctrl)

	req := httptest.NewRequest(http.MethodOptions, "/process/audio", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %v, want %v", w.Code, http.StatusNoContent)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Error("Router should apply CORS middleware")
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("Router should allow credentials")
	}
}
