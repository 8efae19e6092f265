package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_collaborators.go -package=mocks minutify/internal/service Transcriber,PageExtractor,ParagraphExtractor,DocumentFetcher
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_processing_service.go -package=mocks minutify/internal/service ProcessingService

import (
	"context"
	"errors"
	"log/slog"

	"minutify/internal/contextutil"
	"minutify/internal/gdocs"
	"minutify/internal/ingest"
	"minutify/internal/segment"
)

// SourceType names the kind of source a result was produced from.
type SourceType string

const (
	SourceAudio     SourceType = "audio"
	SourcePDF       SourceType = "pdf"
	SourceDOCX      SourceType = "docx"
	SourceMarkdown  SourceType = "markdown"
	SourceGoogleDoc SourceType = "gdoc"
)

// Transcriber converts an audio file into timed utterances.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (ingest.Transcript, error)
}

// PageExtractor reads the text lines of each page of a paginated document.
type PageExtractor interface {
	ExtractPages(ctx context.Context, path string) (ingest.PagedDocument, error)
}

// ParagraphExtractor reads the styled paragraphs of a document.
type ParagraphExtractor interface {
	ExtractParagraphs(ctx context.Context, path string) (ingest.StyledDocument, error)
}

// DocumentFetcher downloads a remote document as plain text.
type DocumentFetcher interface {
	FetchText(ctx context.Context, docID string) (string, error)
}

// Metadata is the source-specific information reported next to the segments.
// Fields that do not apply to a source are left zero.
type Metadata struct {
	Duration *float64
	Language string
	Pages    *int
	Filename string
	URL      string
	Title    string
}

// Result is a processed source.
type Result struct {
	SourceType SourceType
	Segments   []segment.Segment
	Metadata   Metadata
}

// ProcessingService turns sources into segments.
type ProcessingService interface {
	ProcessAudio(ctx context.Context, path string) (Result, error)
	ProcessPDF(ctx context.Context, path, filename string) (Result, error)
	ProcessDOCX(ctx context.Context, path, filename string) (Result, error)
	ProcessMarkdown(ctx context.Context, path, filename string) (Result, error)
	ProcessGoogleDoc(ctx context.Context, url string) (Result, error)
}

// Collaborators are the long-lived extraction backends shared by all
// requests.
type Collaborators struct {
	Transcriber Transcriber
	PDF         PageExtractor
	DOCX        ParagraphExtractor
	Markdown    ParagraphExtractor
	GoogleDocs  DocumentFetcher
}

// processingService implements ProcessingService.
type processingService struct {
	c Collaborators
}

// NewProcessingService creates a new ProcessingService.
func NewProcessingService(c Collaborators) ProcessingService {
	return &processingService{c: c}
}

// ProcessAudio transcribes the audio file and groups it by minute.
func (s *processingService) ProcessAudio(ctx context.Context, path string) (Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	transcript, err := s.c.Transcriber.Transcribe(ctx, path)
	if err != nil {
		return Result{}, s.fail(ctx, logger, KindExtractionFailure, SourceAudio, "Transcription failed", err)
	}

	segments := ingest.FromTranscript(transcript)
	duration := transcript.Duration
	logger.InfoContext(ctx, "audio processed", "utterances", len(transcript.Utterances), "segments", len(segments), "duration", duration)
	return Result{
		SourceType: SourceAudio,
		Segments:   segments,
		Metadata: Metadata{
			Duration: &duration,
			Language: transcript.Language,
		},
	}, nil
}

// ProcessPDF splits the PDF at heading-shaped lines.
func (s *processingService) ProcessPDF(ctx context.Context, path, filename string) (Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	doc, err := s.c.PDF.ExtractPages(ctx, path)
	if err != nil {
		return Result{}, s.fail(ctx, logger, KindExtractionFailure, SourcePDF, "PDF parsing failed", err)
	}

	segments := ingest.FromPages(doc)
	pages := doc.PageCount
	logger.InfoContext(ctx, "pdf processed", "filename", filename, "pages", pages, "segments", len(segments))
	return Result{
		SourceType: SourcePDF,
		Segments:   segments,
		Metadata: Metadata{
			Pages:    &pages,
			Filename: filename,
		},
	}, nil
}

// ProcessDOCX splits the document at heading-styled paragraphs.
func (s *processingService) ProcessDOCX(ctx context.Context, path, filename string) (Result, error) {
	return s.processStyled(ctx, s.c.DOCX, SourceDOCX, "DOCX parsing failed", path, filename)
}

// ProcessMarkdown splits the document at Markdown headings.
func (s *processingService) ProcessMarkdown(ctx context.Context, path, filename string) (Result, error) {
	return s.processStyled(ctx, s.c.Markdown, SourceMarkdown, "Markdown parsing failed", path, filename)
}

func (s *processingService) processStyled(ctx context.Context, ex ParagraphExtractor, source SourceType, op, path, filename string) (Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	doc, err := ex.ExtractParagraphs(ctx, path)
	if err != nil {
		return Result{}, s.fail(ctx, logger, KindExtractionFailure, source, op, err)
	}

	segments := ingest.FromParagraphs(doc)
	logger.InfoContext(ctx, "document processed", "source_type", source, "filename", filename, "paragraphs", len(doc.Paragraphs), "segments", len(segments))
	return Result{
		SourceType: source,
		Segments:   segments,
		Metadata:   Metadata{Filename: filename},
	}, nil
}

// ProcessGoogleDoc fetches a public Google Docs document and splits it into
// blocks.
func (s *processingService) ProcessGoogleDoc(ctx context.Context, url string) (Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if !gdocs.IsDocumentURL(url) {
		return Result{}, s.fail(ctx, logger, KindInvalidReference, SourceGoogleDoc, "Invalid Google Docs URL", gdocs.ErrInvalidURL)
	}
	docID, err := gdocs.DocumentID(url)
	if err != nil {
		return Result{}, s.fail(ctx, logger, KindInvalidReference, SourceGoogleDoc, "Invalid Google Docs URL", err)
	}

	text, err := s.c.GoogleDocs.FetchText(ctx, docID)
	if err != nil {
		kind := KindExtractionFailure
		if errors.Is(err, gdocs.ErrNotFound) {
			kind = KindNotFound
		}
		return Result{}, s.fail(ctx, logger, kind, SourceGoogleDoc, "Google Docs fetch failed", err)
	}

	segments := ingest.FromWebText(text)
	logger.InfoContext(ctx, "google doc processed", "doc_id", docID, "segments", len(segments))
	return Result{
		SourceType: SourceGoogleDoc,
		Segments:   segments,
		Metadata: Metadata{
			URL:   url,
			Title: gdocs.ImportTitle,
		},
	}, nil
}

func (s *processingService) fail(ctx context.Context, logger *slog.Logger, kind Kind, source SourceType, op string, err error) error {
	logger.ErrorContext(ctx, "processing failed", "source_type", source, "kind", kind.String(), "error", err)
	return &Error{Kind: kind, Source: source, Op: op, Err: err}
}
