package storage

import "time"

// MeetingRecord is one processed source in the database.
type MeetingRecord struct {
	ID           string // UUID
	Title        string
	SourceType   string
	FileName     string   // Upload filename, empty for remote sources
	SourceURL    string   // Remote document URL, empty for uploads
	Duration     *float64 // Seconds, audio only
	Language     string   // Detected language, audio only
	Pages        *int     // Page count, PDF only
	CreatedAt    time.Time
	SegmentCount int // Filled by reads, ignored by Create
}

// SegmentRecord is one stored segment of a meeting.
type SegmentRecord struct {
	ID        string  // UUID (same as Qdrant point ID)
	MeetingID string  // UUID (foreign key to meetings.id)
	Index     int     // Position within the meeting (starts at 0)
	Minute    *int    // Minute bucket, timed sources only
	Title     *string // nil for untitled segments
	Content   string
}
