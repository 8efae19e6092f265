package ingest

// Utterance is one timed piece of a transcript.
type Utterance struct {
	Start float64 // Offset in seconds from the start of the recording
	End   float64
	Text  string
}

// Transcript is the output of a transcription backend.
type Transcript struct {
	Utterances []Utterance
	Duration   float64 // Seconds
	Language   string
}

// Paragraph is one paragraph of a styled document.
type Paragraph struct {
	Style string // Style name, e.g. "Normal" or "Heading1"
	Text  string
}

// StyledDocument is the output of a styled-paragraph extractor.
type StyledDocument struct {
	Paragraphs []Paragraph
}

// Page is the extracted text of one page, split into lines.
type Page struct {
	Number int // 1-based
	Lines  []string
}

// PagedDocument is the output of a page-text extractor.
type PagedDocument struct {
	Pages     []Page
	PageCount int
}
