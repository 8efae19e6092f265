package indexer

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_index.go -package=mocks minutify/internal/indexer Index

import (
	"context"
	"errors"
	"fmt"

	"minutify/internal/contextutil"
	"minutify/internal/llm"
	"minutify/internal/storage"
	"minutify/internal/vectorstore"
)

// DefaultK is the number of hits returned when the caller does not ask for a
// specific count.
const DefaultK = 5

// Filters narrows a search. Empty fields match everything.
type Filters struct {
	MeetingID  string
	SourceType string
}

// Hit is one segment matched by a search.
type Hit struct {
	Score        float32
	MeetingID    string
	MeetingTitle string
	SourceType   string
	SegmentIndex int
	Minute       *int
	Title        *string
	Content      string
}

// Index is the semantic index over stored segments.
type Index interface {
	IndexMeeting(ctx context.Context, meetingID string) error
	IndexAll(ctx context.Context) error
	RemoveMeeting(ctx context.Context, meetingID string) error
	Search(ctx context.Context, query string, k int, filters Filters) ([]Hit, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Pipeline embeds stored segments into Qdrant and searches them.
// Point IDs are segment IDs, so SQLite stays the source of truth for text.
type Pipeline struct {
	meetings    storage.MeetingStore
	segments    storage.SegmentStore
	embedder    llm.Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	model       string
}

// NewPipeline creates a new indexing pipeline. model names the embedding
// model and only feeds the index version.
func NewPipeline(
	meetings storage.MeetingStore,
	segments storage.SegmentStore,
	embedder llm.Embedder,
	vectorStore vectorstore.VectorStore,
	collection string,
	model string,
) *Pipeline {
	return &Pipeline{
		meetings:    meetings,
		segments:    segments,
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		model:       model,
	}
}

// IndexMeeting embeds every segment of a stored meeting and upserts the
// vectors. Re-indexing a meeting overwrites its points.
func (p *Pipeline) IndexMeeting(ctx context.Context, meetingID string) error {
	logger := contextutil.LoggerFromContext(ctx)

	meeting, err := p.meetings.GetByID(ctx, meetingID)
	if err != nil {
		return fmt.Errorf("failed to load meeting: %w", err)
	}

	segments, err := p.segments.ListByMeeting(ctx, meetingID)
	if err != nil {
		return fmt.Errorf("failed to list segments: %w", err)
	}
	if len(segments) == 0 {
		logger.WarnContext(ctx, "no segments to index", "meeting_id", meetingID)
		return nil
	}

	texts := make([]string, len(segments))
	for i, seg := range segments {
		texts[i] = embeddingText(seg)
	}

	embeddings, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(embeddings) != len(segments) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(segments), len(embeddings))
	}

	points := make([]vectorstore.Point, len(segments))
	for i, seg := range segments {
		meta := map[string]any{
			"meeting_id":    meeting.ID,
			"segment_index": seg.Index,
			"source_type":   meeting.SourceType,
		}
		if seg.Minute != nil {
			meta["minute"] = *seg.Minute
		}
		if seg.Title != nil {
			meta["title"] = *seg.Title
		}
		points[i] = vectorstore.Point{ID: seg.ID, Vec: embeddings[i], Meta: meta}
	}

	if err := p.vectorStore.Upsert(ctx, p.collection, points); err != nil {
		return fmt.Errorf("failed to upsert vectors: %w", err)
	}

	logger.InfoContext(ctx, "indexed meeting", "meeting_id", meetingID, "segments", len(segments), "title", meeting.Title)
	return nil
}

// IndexAll re-indexes every stored meeting.
// Errors for individual meetings are logged but don't stop the run.
func (p *Pipeline) IndexAll(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	meetings, err := p.meetings.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list meetings: %w", err)
	}

	logger.InfoContext(ctx, "starting indexing", "total_meetings", len(meetings))

	var successCount, errorCount int
	for _, m := range meetings {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := p.IndexMeeting(ctx, m.ID); err != nil {
			errorCount++
			logger.ErrorContext(ctx, "failed to index meeting", "meeting_id", m.ID, "error", err)
			continue
		}
		successCount++
	}

	logger.InfoContext(ctx, "indexing completed", "total_meetings", len(meetings), "success", successCount, "errors", errorCount)

	if errorCount > 0 {
		return fmt.Errorf("indexing completed with %d errors", errorCount)
	}
	return nil
}

// RemoveMeeting deletes the vectors of a meeting's segments. It must run
// before the meeting is deleted from SQLite, which owns the point IDs.
func (p *Pipeline) RemoveMeeting(ctx context.Context, meetingID string) error {
	ids, err := p.segments.ListIDsByMeeting(ctx, meetingID)
	if err != nil {
		return fmt.Errorf("failed to list segment IDs: %w", err)
	}
	if err := p.vectorStore.Delete(ctx, p.collection, ids); err != nil {
		return fmt.Errorf("failed to delete vectors: %w", err)
	}
	return nil
}

// Search returns the k stored segments closest to the query. Vector
// candidates are over-fetched and reranked lexically; points whose segment
// no longer exists are skipped.
func (p *Pipeline) Search(ctx context.Context, query string, k int, filters Filters) ([]Hit, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if k <= 0 {
		k = DefaultK
	}

	vecs, err := p.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("embedding count mismatch: expected 1, got %d", len(vecs))
	}

	results, err := p.vectorStore.Search(ctx, p.collection, vecs[0], k*candidateMultiplier, map[string]any{
		vectorstore.FilterMeetingID:  filters.MeetingID,
		vectorstore.FilterSourceType: filters.SourceType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search vectors: %w", err)
	}

	meetings := make(map[string]*storage.MeetingRecord)
	hits := make([]Hit, 0, len(results))
	for _, res := range results {
		seg, err := p.segments.GetByID(ctx, res.PointID)
		if errors.Is(err, storage.ErrNotFound) {
			logger.WarnContext(ctx, "stale vector point", "point_id", res.PointID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load segment: %w", err)
		}

		meeting, ok := meetings[seg.MeetingID]
		if !ok {
			meeting, err = p.meetings.GetByID(ctx, seg.MeetingID)
			if err != nil {
				return nil, fmt.Errorf("failed to load meeting: %w", err)
			}
			meetings[seg.MeetingID] = meeting
		}

		hits = append(hits, Hit{
			Score:        res.Score,
			MeetingID:    meeting.ID,
			MeetingTitle: meeting.Title,
			SourceType:   meeting.SourceType,
			SegmentIndex: seg.Index,
			Minute:       seg.Minute,
			Title:        seg.Title,
			Content:      seg.Content,
		})
	}

	hits = rerank(query, hits, k)
	logger.InfoContext(ctx, "search completed", "k", k, "candidates", len(results), "hits", len(hits))
	return hits, nil
}

// embeddingText is the text embedded for a segment: its title, if any, on the
// line before the content.
func embeddingText(seg storage.SegmentRecord) string {
	if seg.Title == nil || *seg.Title == "" {
		return seg.Content
	}
	if seg.Content == "" {
		return *seg.Title
	}
	return *seg.Title + "\n" + seg.Content
}
