package segment

import "strings"

// Signal tags an incoming unit with the boundary it announces.
type Signal int

const (
	// NoSignal appends the unit to the open segment.
	NoSignal Signal = iota
	// NewTitle makes the unit the pending title.
	NewTitle
	// NewBucket moves the open segment to Event.Bucket, then appends the unit.
	NewBucket
	// Break closes a non-empty open segment and clears the pending title.
	Break
)

// Event is one unit of the stream folded by an Accumulator.
type Event struct {
	Text   string
	Signal Signal
	Bucket int
}

// Accumulator folds an ordered event stream into segments.
// It is not safe for concurrent use; build one per source.
type Accumulator struct {
	sep     string
	pending []string
	title   *string
	bucket  *int
	emitted []Segment
}

// NewAccumulator creates an accumulator that joins content units with sep.
func NewAccumulator(sep string) *Accumulator {
	return &Accumulator{sep: sep}
}

// Empty reports whether the open segment holds no content yet.
func (a *Accumulator) Empty() bool {
	return len(a.pending) == 0
}

// Push applies one event.
func (a *Accumulator) Push(ev Event) {
	switch ev.Signal {
	case NewTitle:
		a.close()
		t := ev.Text
		a.title = &t
	case NewBucket:
		a.moveBucket(ev.Bucket)
		a.add(ev.Text)
	case Break:
		if !a.Empty() {
			a.close()
			a.title = nil
		}
	default:
		a.add(ev.Text)
	}
}

// Finish flushes the open segment and returns every emitted segment, indexed
// in emission order. The result is empty when no content was ever pushed.
func (a *Accumulator) Finish() []Segment {
	a.close()
	out := a.emitted
	a.emitted = nil
	return Reindex(out)
}

// moveBucket adopts key as the open bucket. A lower key than the open one is
// an upstream ordering anomaly and is merged into the open bucket.
func (a *Accumulator) moveBucket(key int) {
	if a.bucket != nil && key <= *a.bucket {
		return
	}
	a.close()
	k := key
	a.bucket = &k
}

func (a *Accumulator) add(text string) {
	if text == "" {
		return
	}
	a.pending = append(a.pending, text)
}

// close emits the open segment if it holds content. Title and bucket are
// carried over; callers decide whether to replace them.
func (a *Accumulator) close() {
	if a.Empty() {
		return
	}
	a.emitted = append(a.emitted, Segment{
		Index:   len(a.emitted),
		Bucket:  a.bucket,
		Title:   a.title,
		Content: strings.Join(a.pending, a.sep),
	})
	a.pending = nil
}

// Fold runs events through a fresh accumulator.
func Fold(sep string, events []Event) []Segment {
	acc := NewAccumulator(sep)
	for _, ev := range events {
		acc.Push(ev)
	}
	return acc.Finish()
}
