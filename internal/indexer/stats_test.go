package indexer

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"minutify/internal/storage"
)

func TestPipeline_Stats(t *testing.T) {
	db, err := storage.New(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	meetings := storage.NewMeetingRepo(db)
	pipeline := &Pipeline{
		meetings: meetings,
		segments: storage.NewSegmentRepo(db),
		model:    "test-embedding-model",
	}
	ctx := context.Background()

	stats, err := pipeline.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Meetings != 0 || stats.Segments != 0 {
		t.Errorf("empty Stats() = %+v", stats)
	}
	if stats.TokenStats != (TokenStats{}) {
		t.Errorf("empty TokenStats = %+v, want zero", stats.TokenStats)
	}
	if stats.IndexerVersion != IndexerVersion || len(stats.IndexVersion) != 16 {
		t.Errorf("versions = %q, %q", stats.IndexerVersion, stats.IndexVersion)
	}

	minute := 0
	audio := []storage.SegmentRecord{
		{Index: 0, Minute: &minute, Content: strings.Repeat("a", 40)}, // 10 tokens
	}
	doc := []storage.SegmentRecord{
		{Index: 0, Content: strings.Repeat("b", 8)}, // 2 tokens
		{Index: 1, Content: "x"},                    // rounds to 0, floored to 1
	}
	if err := meetings.Create(ctx, &storage.MeetingRecord{Title: "call.wav", SourceType: "audio"}, audio); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := meetings.Create(ctx, &storage.MeetingRecord{Title: "notes.md", SourceType: "markdown"}, doc); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	stats, err = pipeline.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Meetings != 2 || stats.Segments != 3 {
		t.Errorf("Stats() meetings = %d, segments = %d, want 2, 3", stats.Meetings, stats.Segments)
	}
	if stats.SegmentsBySource["audio"] != 1 || stats.SegmentsBySource["markdown"] != 2 {
		t.Errorf("SegmentsBySource = %v", stats.SegmentsBySource)
	}
	want := TokenStats{Min: 1, Max: 10, Mean: 4.33, P95: 10}
	if stats.TokenStats != want {
		t.Errorf("TokenStats = %+v, want %+v", stats.TokenStats, want)
	}
}

func TestComputeTokenStats(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   TokenStats
	}{
		{name: "empty", counts: nil, want: TokenStats{}},
		{name: "single", counts: []int{7}, want: TokenStats{Min: 7, Max: 7, Mean: 7, P95: 7}},
		{
			name:   "twenty values",
			counts: []int{20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
			want:   TokenStats{Min: 1, Max: 20, Mean: 10.5, P95: 19},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeTokenStats(tt.counts); got != tt.want {
				t.Errorf("computeTokenStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIndexVersion(t *testing.T) {
	if indexVersion("a") == indexVersion("b") {
		t.Error("indexVersion() should depend on the model name")
	}
	if indexVersion("a") != indexVersion("a") {
		t.Error("indexVersion() should be deterministic")
	}
}
