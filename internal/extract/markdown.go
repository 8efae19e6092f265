package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"minutify/internal/ingest"
)

// MarkdownExtractor turns a Markdown file into styled paragraphs: ATX and
// setext headings become "HeadingN", every other block becomes "Normal".
type MarkdownExtractor struct {
	parser goldmark.Markdown
}

// NewMarkdownExtractor creates a new MarkdownExtractor.
func NewMarkdownExtractor() *MarkdownExtractor {
	return &MarkdownExtractor{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// ExtractParagraphs reads and parses the Markdown file at path.
func (e *MarkdownExtractor) ExtractParagraphs(ctx context.Context, path string) (ingest.StyledDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return ingest.StyledDocument{}, fmt.Errorf("failed to read markdown: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return ingest.StyledDocument{}, err
	}
	return ingest.StyledDocument{Paragraphs: e.Paragraphs(content)}, nil
}

// Paragraphs returns the block-level paragraphs of content in document order.
func (e *MarkdownExtractor) Paragraphs(content []byte) []ingest.Paragraph {
	doc := e.parser.Parser().Parse(text.NewReader(content))

	var out []ingest.Paragraph
	normal := func(s string) {
		out = append(out, ingest.Paragraph{Style: defaultParagraphStyle, Text: s})
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			out = append(out, ingest.Paragraph{
				Style: fmt.Sprintf("Heading%d", node.Level),
				Text:  extractTextFromNode(node, content),
			})
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			normal(extractTextFromNode(node, content))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			normal(blockLines(node, content))
			return ast.WalkSkipChildren, nil
		case *east.TableHeader, *east.TableRow:
			normal(extractTableRowText(node, content))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return out
}

// extractTextFromNode extracts text content from a node and its children.
// Soft line breaks become spaces, hard line breaks newlines.
func extractTextFromNode(n ast.Node, content []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(content))
			if v.HardLineBreak() {
				b.WriteByte('\n')
			} else if v.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

func blockLines(n ast.Node, content []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(content))
	}
	return strings.TrimRight(b.String(), "\n")
}

// extractTableRowText formats a table row with pipe separated cells.
func extractTableRowText(row ast.Node, content []byte) string {
	var cells []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		cells = append(cells, extractTextFromNode(c, content))
	}
	return strings.Join(cells, " | ")
}
