package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"minutify/internal/segment"
	"minutify/internal/service"
)

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// SegmentResponse is one segment as serialized to clients. Minute and title
// are null when absent.
//
// swagger:model SegmentResponse
type SegmentResponse struct {
	Index   int     `json:"index"`
	Minute  *int    `json:"minute"`
	Title   *string `json:"title"`
	Content string  `json:"content"`
}

func segmentResponses(segments []segment.Segment) []SegmentResponse {
	out := make([]SegmentResponse, len(segments))
	for i, s := range segments {
		out[i] = SegmentResponse{Index: s.Index, Minute: s.Bucket, Title: s.Title, Content: s.Content}
	}
	return out
}

// writeJSON writes v with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// statusFor maps a service error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidReference):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
