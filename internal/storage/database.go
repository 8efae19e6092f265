package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	// _foreign_keys applies the pragma to every pooled connection
	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS meetings (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			source_type TEXT NOT NULL,
			file_name TEXT,
			source_url TEXT,
			duration REAL,
			language TEXT,
			pages INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS segments (
			id TEXT PRIMARY KEY,
			meeting_id TEXT NOT NULL,
			segment_index INTEGER NOT NULL,
			minute INTEGER,
			title TEXT,
			content TEXT NOT NULL,
			FOREIGN KEY (meeting_id) REFERENCES meetings(id) ON DELETE CASCADE,
			UNIQUE (meeting_id, segment_index)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_meetings_created_at ON meetings(created_at);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// parseTimestamp parses a SQLite DATETIME column.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	// go-sqlite3 returns RFC3339 for DATETIME columns it can type
	return time.Parse(time.RFC3339, s)
}
