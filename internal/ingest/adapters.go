package ingest

import (
	"strings"

	"minutify/internal/segment"
)

// FromTranscript groups utterances into minute buckets.
func FromTranscript(t Transcript) []segment.Segment {
	units := make([]segment.Unit, len(t.Utterances))
	for i, u := range t.Utterances {
		units[i] = segment.Unit{Text: u.Text, Start: u.Start}
	}
	return segment.Transcript.Run(units, "")
}

// FromParagraphs splits styled paragraphs at heading-styled paragraphs.
func FromParagraphs(doc StyledDocument) []segment.Segment {
	units := make([]segment.Unit, len(doc.Paragraphs))
	var full []string
	for i, p := range doc.Paragraphs {
		units[i] = segment.Unit{Text: p.Text, Style: p.Style}
		if strings.TrimSpace(p.Text) != "" {
			full = append(full, p.Text)
		}
	}
	return segment.Styled.Run(units, strings.Join(full, "\n"))
}

// FromPages splits page text at lines shaped like headings. Page boundaries
// are not segment boundaries, and pages without lines are skipped.
func FromPages(doc PagedDocument) []segment.Segment {
	var units []segment.Unit
	var full []string
	for _, page := range doc.Pages {
		if len(page.Lines) == 0 {
			continue
		}
		for _, line := range page.Lines {
			units = append(units, segment.Unit{Text: line})
			if strings.TrimSpace(line) != "" {
				full = append(full, line)
			}
		}
	}
	return segment.PageText.Run(units, strings.Join(full, "\n"))
}

// FromWebText splits an exported plain-text document into blank-line
// separated blocks, each titled by its leading short lines.
func FromWebText(text string) []segment.Segment {
	text = strings.TrimSpace(text)
	if text == "" {
		return segment.WebText.Run(nil, "")
	}
	lines := strings.Split(text, "\n")
	units := make([]segment.Unit, len(lines))
	for i, line := range lines {
		units[i] = segment.Unit{Text: line}
	}
	return segment.WebText.Run(units, text)
}
