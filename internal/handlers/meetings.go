package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"minutify/internal/contextutil"
	"minutify/internal/indexer"
	"minutify/internal/storage"
)

// MeetingsHandler serves the stored meetings.
type MeetingsHandler struct {
	meetings storage.MeetingStore
	segments storage.SegmentStore
	index    indexer.Index
}

// NewMeetingsHandler creates a new MeetingsHandler. index may be nil.
func NewMeetingsHandler(meetings storage.MeetingStore, segments storage.SegmentStore, index indexer.Index) *MeetingsHandler {
	return &MeetingsHandler{
		meetings: meetings,
		segments: segments,
		index:    index,
	}
}

// MeetingResponse is a stored meeting.
//
// swagger:model MeetingResponse
type MeetingResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	SourceType   string            `json:"sourceType"`
	Metadata     MetadataResponse  `json:"metadata"`
	SegmentCount int               `json:"segmentCount"`
	CreatedAt    string            `json:"createdAt"`
	Segments     []SegmentResponse `json:"segments,omitempty"`
}

// MeetingListResponse is the response of GET /api/meetings.
type MeetingListResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}

func meetingResponse(m storage.MeetingRecord) MeetingResponse {
	resp := MeetingResponse{
		ID:         m.ID,
		Title:      m.Title,
		SourceType: m.SourceType,
		Metadata: MetadataResponse{
			Duration: m.Duration,
			Language: m.Language,
			Pages:    m.Pages,
			Filename: m.FileName,
			URL:      m.SourceURL,
		},
		SegmentCount: m.SegmentCount,
		CreatedAt:    m.CreatedAt.UTC().Format(time.RFC3339),
	}
	if m.SourceURL != "" {
		resp.Metadata.Title = m.Title
	}
	return resp
}

// List handles GET /api/meetings.
func (h *MeetingsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	meetings, err := h.meetings.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list meetings", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list meetings")
		return
	}

	resp := MeetingListResponse{Meetings: make([]MeetingResponse, len(meetings))}
	for i, m := range meetings {
		resp.Meetings[i] = meetingResponse(m)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/meetings/{id}.
func (h *MeetingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	id := chi.URLParam(r, "id")

	meeting, err := h.meetings.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Meeting not found")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to get meeting", "meeting_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get meeting")
		return
	}

	segments, err := h.segments.ListByMeeting(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list segments", "meeting_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get meeting")
		return
	}

	resp := meetingResponse(*meeting)
	resp.Segments = make([]SegmentResponse, len(segments))
	for i, s := range segments {
		resp.Segments[i] = SegmentResponse{Index: s.Index, Minute: s.Minute, Title: s.Title, Content: s.Content}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/meetings/{id}. Indexed vectors are removed
// first; a failure there is logged and does not block the delete.
func (h *MeetingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	id := chi.URLParam(r, "id")

	if h.index != nil {
		if err := h.index.RemoveMeeting(ctx, id); err != nil {
			logger.WarnContext(ctx, "failed to remove meeting vectors", "meeting_id", id, "error", err)
		}
	}

	err := h.meetings.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Meeting not found")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to delete meeting", "meeting_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete meeting")
		return
	}

	logger.InfoContext(ctx, "meeting deleted", "meeting_id", id)
	w.WriteHeader(http.StatusNoContent)
}
