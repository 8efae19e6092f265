package segment

import "strings"

// Unit is one atomic piece of source output: a line, a paragraph or an
// utterance.
type Unit struct {
	Text  string
	Style string  // Paragraph style name (styled sources)
	Start float64 // Start offset in seconds (timed sources)
}

// Classifier turns a trimmed, non-blank unit into an event. blockStart is true
// while the open segment holds no content.
type Classifier func(u Unit, blockStart bool) Event

// Policy selects how one kind of source is segmented.
type Policy struct {
	Separator     string
	Classify      Classifier
	FallbackTitle string
	// BlankBreaks turns blank units into Break events instead of dropping them.
	BlankBreaks bool
}

// Fallback titles.
const (
	DocumentFallbackTitle   = "Document Content"
	TranscriptFallbackTitle = "Audio Transcript"
)

// Transcript buckets utterances by minute and re-flows them with spaces.
var Transcript = Policy{
	Separator: " ",
	Classify: func(u Unit, _ bool) Event {
		return Event{Text: u.Text, Signal: NewBucket, Bucket: MinuteOf(u.Start)}
	},
	FallbackTitle: TranscriptFallbackTitle,
}

// Styled opens a segment at every paragraph whose style is a heading.
var Styled = Policy{
	Separator: "\n",
	Classify: func(u Unit, _ bool) Event {
		if IsStyleHeading(u.Style) {
			return Event{Text: u.Text, Signal: NewTitle}
		}
		return Event{Text: u.Text}
	},
	FallbackTitle: DocumentFallbackTitle,
}

// PageText classifies raw page lines by their shape.
var PageText = Policy{
	Separator: "\n",
	Classify: func(u Unit, _ bool) Event {
		if IsShapeHeading(u.Text) {
			return Event{Text: u.Text, Signal: NewTitle}
		}
		return Event{Text: u.Text}
	},
	FallbackTitle: DocumentFallbackTitle,
}

// WebText takes the short lines that open a blank-line separated block as
// titles.
var WebText = Policy{
	Separator: "\n",
	Classify: func(u Unit, blockStart bool) Event {
		if IsBlockTitle(u.Text, blockStart) {
			return Event{Text: u.Text, Signal: NewTitle}
		}
		return Event{Text: u.Text}
	},
	FallbackTitle: DocumentFallbackTitle,
	BlankBreaks:   true,
}

// Run segments units under the policy. fallbackContent is used for the
// single fallback segment when no content segment was produced.
func (p Policy) Run(units []Unit, fallbackContent string) []Segment {
	acc := NewAccumulator(p.Separator)
	for _, u := range units {
		u.Text = strings.TrimSpace(u.Text)
		if u.Text == "" {
			if p.BlankBreaks {
				acc.Push(Event{Signal: Break})
			}
			continue
		}
		acc.Push(p.Classify(u, acc.Empty()))
	}
	return WithFallback(acc.Finish(), p.FallbackTitle, fallbackContent)
}
