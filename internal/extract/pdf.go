package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"minutify/internal/ingest"
)

// PDFExtractor extracts the text lines of every page of a PDF file.
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractPages reads the PDF at path. Pages without text are returned with no
// lines.
func (e *PDFExtractor) ExtractPages(ctx context.Context, path string) (doc ingest.PagedDocument, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return ingest.PagedDocument{}, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	total := r.NumPage()
	doc = ingest.PagedDocument{
		PageCount: total,
		Pages:     make([]ingest.Page, 0, total),
	}

	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return ingest.PagedDocument{}, err
		}

		page := ingest.Page{Number: i}
		p := r.Page(i)
		if p.V.IsNull() {
			doc.Pages = append(doc.Pages, page)
			continue
		}

		rows, err := p.GetTextByRow()
		if err != nil {
			return ingest.PagedDocument{}, fmt.Errorf("failed to read text of page %d: %w", i, err)
		}
		for _, row := range rows {
			if line := joinRow(row.Content); strings.TrimSpace(line) != "" {
				page.Lines = append(page.Lines, line)
			}
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

// joinRow concatenates the text runs of one row, inserting a space where the
// horizontal gap between two runs is wider than a fraction of the font size.
func joinRow(runs pdf.TextHorizontal) string {
	var b strings.Builder
	for i, t := range runs {
		if i > 0 {
			prev := runs[i-1]
			gap := t.X - (prev.X + prev.W)
			if gap > prev.FontSize*0.2 && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(t.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
	}
	return b.String()
}
