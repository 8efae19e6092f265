package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"minutify/internal/contextutil"
	"minutify/internal/gdocs"
	"minutify/internal/indexer"
	"minutify/internal/service"
	"minutify/internal/storage"
)

// multipartMemory is how much of a multipart form is held in memory before
// parts spill to disk.
const multipartMemory = 32 << 20

// ProcessHandler handles the source processing endpoints. Every processed
// result is stored as a meeting and, when an index is configured, indexed in
// the background.
type ProcessHandler struct {
	service        service.ProcessingService
	meetings       storage.MeetingStore
	index          indexer.Index
	maxUploadBytes int64
	pending        sync.WaitGroup
}

// NewProcessHandler creates a new ProcessHandler. index may be nil.
func NewProcessHandler(svc service.ProcessingService, meetings storage.MeetingStore, index indexer.Index, maxUploadBytes int64) *ProcessHandler {
	return &ProcessHandler{
		service:        svc,
		meetings:       meetings,
		index:          index,
		maxUploadBytes: maxUploadBytes,
	}
}

// MetadataResponse carries the source-specific metadata. Only the fields
// that apply to the source are present.
//
// swagger:model MetadataResponse
type MetadataResponse struct {
	Duration *float64 `json:"duration,omitempty"`
	Language string   `json:"language,omitempty"`
	Pages    *int     `json:"pages,omitempty"`
	Filename string   `json:"filename,omitempty"`
	URL      string   `json:"url,omitempty"`
	Title    string   `json:"title,omitempty"`
}

// ProcessResponse is the response of every processing endpoint.
//
// swagger:model ProcessResponse
type ProcessResponse struct {
	MeetingID  string            `json:"meetingId"`
	SourceType string            `json:"sourceType"`
	Segments   []SegmentResponse `json:"segments"`
	Metadata   MetadataResponse  `json:"metadata"`
}

// GoogleDocsRequest is the body of POST /process/google-docs.
//
// swagger:model GoogleDocsRequest
type GoogleDocsRequest struct {
	URL string `json:"url"`
}

// Audio handles POST /process/audio.
//
// swagger:route POST /process/audio processAudio
//
// Transcribes an uploaded audio file and groups it by minute.
func (h *ProcessHandler) Audio(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, func(header *multipart.FileHeader) error {
		if !strings.HasPrefix(header.Header.Get("Content-Type"), "audio/") {
			return &service.ValidationError{Field: "file", Message: "Invalid file type. Must be an audio file."}
		}
		return nil
	}, func(ctx context.Context, path, _ string) (service.Result, error) {
		return h.service.ProcessAudio(ctx, path)
	})
}

// PDF handles POST /process/pdf.
func (h *ProcessHandler) PDF(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, requireExt("Invalid file type. Must be a PDF file.", ".pdf"), h.service.ProcessPDF)
}

// DOCX handles POST /process/docx.
func (h *ProcessHandler) DOCX(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, requireExt("Invalid file type. Must be a DOCX file.", ".docx"), h.service.ProcessDOCX)
}

// Markdown handles POST /process/markdown.
func (h *ProcessHandler) Markdown(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, requireExt("Invalid file type. Must be a Markdown file.", ".md", ".markdown"), h.service.ProcessMarkdown)
}

// GoogleDocs handles POST /process/google-docs.
func (h *ProcessHandler) GoogleDocs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req GoogleDocsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}
	if !gdocs.IsDocumentURL(req.URL) {
		logger.WarnContext(ctx, "not a google docs url", "url", req.URL)
		writeError(w, http.StatusBadRequest, "Invalid Google Docs URL")
		return
	}

	result, err := h.service.ProcessGoogleDoc(ctx, req.URL)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	h.respond(w, r, result, gdocs.ImportTitle)
}

type validateFunc func(header *multipart.FileHeader) error

type processFunc func(ctx context.Context, path, filename string) (service.Result, error)

func requireExt(message string, exts ...string) validateFunc {
	return func(header *multipart.FileHeader) error {
		for _, ext := range exts {
			if strings.HasSuffix(header.Filename, ext) {
				return nil
			}
		}
		return &service.ValidationError{Field: "file", Message: message}
	}
}

// upload spools the multipart "file" field to a temporary file, runs process
// on it and removes the file afterwards.
func (h *ProcessHandler) upload(w http.ResponseWriter, r *http.Request, validate validateFunc, process processFunc) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large. Limit is %d bytes.", tooLarge.Limit))
			return
		}
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	if err := validate(header); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			logger.WarnContext(ctx, "rejected upload", "filename", header.Filename, "content_type", header.Header.Get("Content-Type"))
			writeError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		writeError(w, statusFor(err), err.Error())
		return
	}

	path, err := spool(file, filepath.Ext(header.Filename))
	if err != nil {
		logger.ErrorContext(ctx, "failed to spool upload", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			logger.WarnContext(ctx, "failed to remove temp file", "path", path, "error", err)
		}
	}()

	result, err := process(ctx, path, header.Filename)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	h.respond(w, r, result, header.Filename)
}

// spool copies src into a new temporary file and returns its path.
func spool(src io.Reader, ext string) (string, error) {
	tmp, err := os.CreateTemp("", "minutify-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, src); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return tmp.Name(), nil
}

// respond stores the result as a meeting, schedules indexing and writes the
// response.
func (h *ProcessHandler) respond(w http.ResponseWriter, r *http.Request, result service.Result, title string) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	meeting := &storage.MeetingRecord{
		Title:      title,
		SourceType: string(result.SourceType),
		FileName:   uploadName(result, title),
		SourceURL:  result.Metadata.URL,
		Duration:   result.Metadata.Duration,
		Language:   result.Metadata.Language,
		Pages:      result.Metadata.Pages,
	}
	records := make([]storage.SegmentRecord, len(result.Segments))
	for i, s := range result.Segments {
		records[i] = storage.SegmentRecord{Index: s.Index, Minute: s.Bucket, Title: s.Title, Content: s.Content}
	}

	if err := h.meetings.Create(ctx, meeting, records); err != nil {
		logger.ErrorContext(ctx, "failed to store meeting", "source_type", result.SourceType, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store result")
		return
	}
	logger.InfoContext(ctx, "meeting stored", "meeting_id", meeting.ID, "source_type", result.SourceType, "segments", len(records))

	h.scheduleIndex(ctx, meeting.ID)

	writeJSON(w, http.StatusOK, ProcessResponse{
		MeetingID:  meeting.ID,
		SourceType: string(result.SourceType),
		Segments:   segmentResponses(result.Segments),
		Metadata: MetadataResponse{
			Duration: result.Metadata.Duration,
			Language: result.Metadata.Language,
			Pages:    result.Metadata.Pages,
			Filename: result.Metadata.Filename,
			URL:      result.Metadata.URL,
			Title:    result.Metadata.Title,
		},
	})
}

// uploadName is the stored filename of an uploaded source.
func uploadName(result service.Result, title string) string {
	if result.Metadata.Filename != "" || result.SourceType == service.SourceGoogleDoc {
		return result.Metadata.Filename
	}
	return title
}

// scheduleIndex indexes the meeting in the background so the response does
// not wait for embeddings.
func (h *ProcessHandler) scheduleIndex(ctx context.Context, meetingID string) {
	if h.index == nil {
		return
	}
	// The request context is cancelled once the response is written
	indexCtx := context.WithoutCancel(ctx)
	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		if err := h.index.IndexMeeting(indexCtx, meetingID); err != nil {
			contextutil.LoggerFromContext(indexCtx).ErrorContext(indexCtx, "failed to index meeting", "meeting_id", meetingID, "error", err)
		}
	}()
}

// Wait blocks until background indexing started by this handler finishes.
func (h *ProcessHandler) Wait() {
	h.pending.Wait()
}
