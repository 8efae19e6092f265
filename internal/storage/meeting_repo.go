package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_meeting_store.go -package=mocks minutify/internal/storage MeetingStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// MeetingStore defines the interface for meeting storage operations.
type MeetingStore interface {
	// Create stores a meeting together with its segments in one transaction.
	// IDs are generated for the meeting and every segment.
	Create(ctx context.Context, meeting *MeetingRecord, segments []SegmentRecord) error
	// GetByID gets a meeting by its ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*MeetingRecord, error)
	// List returns all meetings, newest first.
	List(ctx context.Context) ([]MeetingRecord, error)
	// Delete removes a meeting and its segments. Returns ErrNotFound if not found.
	Delete(ctx context.Context, id string) error
}

// MeetingRepo provides methods for meeting operations.
// It implements the MeetingStore interface.
type MeetingRepo struct {
	db *sql.DB
}

// NewMeetingRepo creates a new MeetingRepo.
func NewMeetingRepo(db *sql.DB) *MeetingRepo {
	return &MeetingRepo{db: db}
}

const meetingColumns = `m.id, m.title, m.source_type, COALESCE(m.file_name, ''), COALESCE(m.source_url, ''),
	m.duration, COALESCE(m.language, ''), m.pages, m.created_at,
	(SELECT COUNT(*) FROM segments s WHERE s.meeting_id = m.id)`

// Create stores a meeting together with its segments in one transaction.
// meeting.ID and each segment's ID and MeetingID are set on success.
func (r *MeetingRepo) Create(ctx context.Context, meeting *MeetingRecord, segments []SegmentRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	id := uuid.New().String()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO meetings (id, title, source_type, file_name, source_url, duration, language, pages)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, meeting.Title, meeting.SourceType, nullString(meeting.FileName), nullString(meeting.SourceURL),
		meeting.Duration, nullString(meeting.Language), meeting.Pages,
	)
	if err != nil {
		return fmt.Errorf("failed to insert meeting: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO segments (id, meeting_id, segment_index, minute, title, content) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare segment insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	ids := make([]string, len(segments))
	for i, seg := range segments {
		ids[i] = uuid.New().String()
		if _, err := stmt.ExecContext(ctx, ids[i], id, seg.Index, seg.Minute, seg.Title, seg.Content); err != nil {
			return fmt.Errorf("failed to insert segment %d: %w", seg.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit meeting: %w", err)
	}

	meeting.ID = id
	meeting.SegmentCount = len(segments)
	for i := range segments {
		segments[i].ID = ids[i]
		segments[i].MeetingID = id
	}
	return nil
}

// GetByID gets a meeting by its ID. Returns ErrNotFound if not found.
func (r *MeetingRepo) GetByID(ctx context.Context, id string) (*MeetingRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+meetingColumns+" FROM meetings m WHERE m.id = ?", id)
	meeting, err := scanMeeting(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query meeting: %w", err)
	}
	return meeting, nil
}

// List returns all meetings, newest first.
// Returns an empty slice if there are none.
func (r *MeetingRepo) List(ctx context.Context) ([]MeetingRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+meetingColumns+" FROM meetings m ORDER BY m.created_at DESC, m.rowid DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	meetings := []MeetingRecord{}
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, *meeting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return meetings, nil
}

// Delete removes a meeting and its segments. Returns ErrNotFound if not found.
func (r *MeetingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM meetings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row rowScanner) (*MeetingRecord, error) {
	var (
		m          MeetingRecord
		duration   sql.NullFloat64
		pages      sql.NullInt64
		createdStr string
	)
	err := row.Scan(&m.ID, &m.Title, &m.SourceType, &m.FileName, &m.SourceURL,
		&duration, &m.Language, &pages, &createdStr, &m.SegmentCount)
	if err != nil {
		return nil, err
	}

	if duration.Valid {
		d := duration.Float64
		m.Duration = &d
	}
	if pages.Valid {
		p := int(pages.Int64)
		m.Pages = &p
	}
	m.CreatedAt, err = parseTimestamp(createdStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	return &m, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
