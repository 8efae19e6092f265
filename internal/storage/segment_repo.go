package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_segment_store.go -package=mocks minutify/internal/storage SegmentStore

import (
	"context"
	"database/sql"
	"fmt"
)

// SegmentStore defines the interface for segment storage operations.
type SegmentStore interface {
	// ListByMeeting returns the segments of a meeting, ordered by index.
	ListByMeeting(ctx context.Context, meetingID string) ([]SegmentRecord, error)
	// ListIDsByMeeting returns the segment IDs of a meeting, ordered by index.
	ListIDsByMeeting(ctx context.Context, meetingID string) ([]string, error)
	// GetByID gets a segment by its ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*SegmentRecord, error)
}

// SegmentRepo provides methods for segment operations.
// It implements the SegmentStore interface.
type SegmentRepo struct {
	db *sql.DB
}

// NewSegmentRepo creates a new SegmentRepo.
func NewSegmentRepo(db *sql.DB) *SegmentRepo {
	return &SegmentRepo{db: db}
}

// ListByMeeting returns the segments of a meeting, ordered by index.
// Returns an empty slice if none exist (not an error).
func (r *SegmentRepo) ListByMeeting(ctx context.Context, meetingID string) ([]SegmentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, meeting_id, segment_index, minute, title, content FROM segments WHERE meeting_id = ? ORDER BY segment_index",
		meetingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query segments: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	segments := []SegmentRecord{}
	for rows.Next() {
		seg, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, *seg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return segments, nil
}

// ListIDsByMeeting returns the segment IDs of a meeting, ordered by index.
// Used to get Qdrant point IDs for deletion.
func (r *SegmentRepo) ListIDsByMeeting(ctx context.Context, meetingID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id FROM segments WHERE meeting_id = ? ORDER BY segment_index",
		meetingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query segment IDs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan segment ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}

// GetByID gets a segment by its ID. Returns ErrNotFound if not found.
func (r *SegmentRepo) GetByID(ctx context.Context, id string) (*SegmentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, meeting_id, segment_index, minute, title, content FROM segments WHERE id = ?",
		id,
	)
	seg, err := scanSegment(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query segment: %w", err)
	}
	return seg, nil
}

func scanSegment(row rowScanner) (*SegmentRecord, error) {
	var (
		seg    SegmentRecord
		minute sql.NullInt64
		title  sql.NullString
	)
	if err := row.Scan(&seg.ID, &seg.MeetingID, &seg.Index, &minute, &title, &seg.Content); err != nil {
		return nil, err
	}
	if minute.Valid {
		m := int(minute.Int64)
		seg.Minute = &m
	}
	if title.Valid {
		t := title.String
		seg.Title = &t
	}
	return &seg, nil
}
