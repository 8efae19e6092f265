package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"

	"minutify/internal/ingest"
)

const defaultParagraphStyle = "Normal"

// DOCXExtractor extracts the body paragraphs of a Word document together with
// their style names.
type DOCXExtractor struct{}

// NewDOCXExtractor creates a new DOCXExtractor.
func NewDOCXExtractor() *DOCXExtractor {
	return &DOCXExtractor{}
}

// ExtractParagraphs reads the .docx file at path.
func (e *DOCXExtractor) ExtractParagraphs(ctx context.Context, path string) (ingest.StyledDocument, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return ingest.StyledDocument{}, fmt.Errorf("failed to open docx: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	body, err := readZipFile(rc.File, "word/document.xml")
	if err != nil {
		return ingest.StyledDocument{}, err
	}

	// styles.xml is optional; paragraphs then keep their raw style IDs.
	names := map[string]string{}
	if raw, err := readZipFile(rc.File, "word/styles.xml"); err == nil {
		names = styleNames(raw)
	}

	if err := ctx.Err(); err != nil {
		return ingest.StyledDocument{}, err
	}

	paras, err := parseParagraphs(body, names)
	if err != nil {
		return ingest.StyledDocument{}, err
	}
	return ingest.StyledDocument{Paragraphs: paras}, nil
}

func readZipFile(files []*zip.File, target string) ([]byte, error) {
	for _, f := range files {
		if f == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(f.Name), target) {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("failed to open %s: %w", target, err)
			}
			defer func() {
				_ = rc.Close()
			}()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found in archive: %s", target)
}

// parseParagraphs walks document.xml and returns the top-level body
// paragraphs in order. Paragraphs inside tables are skipped.
func parseParagraphs(body []byte, names map[string]string) ([]ingest.Paragraph, error) {
	dec := xml.NewDecoder(strings.NewReader(string(body)))
	var (
		out         []ingest.Paragraph
		inParagraph bool
		inRun       bool
		inText      bool
		tableDepth  int
		style       string
		text        strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth > 0 {
					continue
				}
				inParagraph = true
				style = ""
				text.Reset()
			case "pStyle":
				if inParagraph {
					style = attr(t, "val")
				}
			case "r":
				inRun = inParagraph
			case "t":
				inText = inRun
			case "tab":
				if inRun {
					text.WriteByte('\t')
				}
			case "br", "cr":
				if inRun {
					text.WriteByte('\n')
				}
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth--
			case "r":
				inRun = false
			case "t":
				inText = false
			case "p":
				if !inParagraph {
					continue
				}
				inParagraph = false
				out = append(out, ingest.Paragraph{
					Style: resolveStyle(style, names),
					Text:  text.String(),
				})
			}
		}
	}

	return out, nil
}

// styleNames maps paragraph style IDs to their display names.
func styleNames(raw []byte) map[string]string {
	names := map[string]string{}
	dec := xml.NewDecoder(strings.NewReader(string(raw)))
	var currentID string
	for {
		tok, err := dec.Token()
		if err != nil {
			return names
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "style":
				currentID = attr(t, "styleId")
			case "name":
				if currentID != "" {
					names[currentID] = displayName(attr(t, "val"))
				}
			}
		case xml.EndElement:
			if t.Name.Local == "style" {
				currentID = ""
			}
		}
	}
}

// displayName capitalizes built-in style names, which Word stores in lower
// case ("heading 1" is shown as "Heading 1").
func displayName(name string) string {
	switch {
	case name == "":
		return ""
	case strings.HasPrefix(name, "heading "), name == "normal", name == "title", name == "subtitle":
		r := []rune(name)
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	default:
		return name
	}
}

func resolveStyle(id string, names map[string]string) string {
	if id == "" {
		return defaultParagraphStyle
	}
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if strings.EqualFold(a.Name.Local, local) {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}
