package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestJoinRow(t *testing.T) {
	tests := []struct {
		name string
		runs pdf.TextHorizontal
		want string
	}{
		{
			name: "adjacent glyphs",
			runs: pdf.TextHorizontal{
				{S: "H", X: 10, W: 6, FontSize: 12},
				{S: "i", X: 16, W: 3, FontSize: 12},
			},
			want: "Hi",
		},
		{
			name: "word gap",
			runs: pdf.TextHorizontal{
				{S: "Budget", X: 10, W: 40, FontSize: 12},
				{S: "review", X: 55, W: 40, FontSize: 12},
			},
			want: "Budget review",
		},
		{
			name: "explicit space is kept once",
			runs: pdf.TextHorizontal{
				{S: "Budget ", X: 10, W: 44, FontSize: 12},
				{S: "review", X: 60, W: 40, FontSize: 12},
			},
			want: "Budget review",
		},
		{
			name: "empty row",
			runs: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinRow(tt.runs); got != tt.want {
				t.Errorf("joinRow() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPDFExtractor_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := NewPDFExtractor().ExtractPages(context.Background(), path); err == nil {
		t.Error("ExtractPages() expected error for invalid pdf")
	}
	if _, err := NewPDFExtractor().ExtractPages(context.Background(), filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("ExtractPages() expected error for missing file")
	}
}
