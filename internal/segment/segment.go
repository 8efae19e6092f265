package segment

// Segment is one normalized content block of a processed source.
type Segment struct {
	Index   int     // Position in the result (starts at 0)
	Bucket  *int    // Minute bucket; nil for heading-bucketed sources
	Title   *string // Active heading when the segment was opened; nil if none seen
	Content string  // Accumulated units joined by the source separator
}

// Reindex assigns indices 0..N-1 in slice order.
func Reindex(segments []Segment) []Segment {
	for i := range segments {
		segments[i].Index = i
	}
	return segments
}

// WithFallback guarantees a non-empty result. If segments is empty, a single
// segment with the given title and content is returned. The result is always
// re-indexed.
func WithFallback(segments []Segment, title, content string) []Segment {
	if len(segments) == 0 {
		t := title
		segments = []Segment{{
			Title:   &t,
			Content: content,
		}}
	}
	return Reindex(segments)
}
