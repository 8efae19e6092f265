package segment

import "testing"

func lines(ss ...string) []Unit {
	units := make([]Unit, len(ss))
	for i, s := range ss {
		units[i] = Unit{Text: s}
	}
	return units
}

func TestPolicy_Transcript(t *testing.T) {
	units := []Unit{
		{Start: 0.0, Text: " a "},
		{Start: 30.0, Text: "b"},
		{Start: 45.0, Text: "   "},
		{Start: 59.0, Text: "c"},
		{Start: 61.0, Text: "d"},
	}

	got := Transcript.Run(units, "")
	if len(got) != 2 {
		t.Fatalf("Run() returned %d segments, want 2: %+v", len(got), got)
	}
	if bucketOf(got[0]) != 0 || got[0].Content != "a b c" {
		t.Errorf("segment 0 = bucket %d %q, want bucket 0 %q", bucketOf(got[0]), got[0].Content, "a b c")
	}
	if bucketOf(got[1]) != 1 || got[1].Content != "d" {
		t.Errorf("segment 1 = bucket %d %q, want bucket 1 %q", bucketOf(got[1]), got[1].Content, "d")
	}
	for _, seg := range got {
		if seg.Title != nil {
			t.Errorf("transcript segment has title %q", *seg.Title)
		}
	}
}

func TestPolicy_Styled(t *testing.T) {
	units := []Unit{
		{Style: "Normal", Text: "intro"},
		{Style: "Heading1", Text: "Methods"},
		{Style: "Normal", Text: "we did X"},
	}

	got := Styled.Run(units, "")
	if len(got) != 2 {
		t.Fatalf("Run() returned %d segments, want 2", len(got))
	}
	if got[0].Title != nil || got[0].Content != "intro" {
		t.Errorf("segment 0 = (%s, %q), want (<nil>, intro)", titleOf(got[0]), got[0].Content)
	}
	if titleOf(got[1]) != "Methods" || got[1].Content != "we did X" {
		t.Errorf("segment 1 = (%s, %q), want (Methods, we did X)", titleOf(got[1]), got[1].Content)
	}
}

func TestPolicy_PageText(t *testing.T) {
	got := PageText.Run(lines("SECTION A", "SECTION B", "body text"), "")
	if len(got) != 1 {
		t.Fatalf("Run() returned %d segments, want 1", len(got))
	}
	if titleOf(got[0]) != "SECTION B" || got[0].Content != "body text" {
		t.Errorf("segment = (%s, %q), want (SECTION B, body text)", titleOf(got[0]), got[0].Content)
	}
}

func TestPolicy_PageText_AllHeadingsFallsBack(t *testing.T) {
	got := PageText.Run(lines("AGENDA", "MINUTES:"), "AGENDA\nMINUTES:")
	if len(got) != 1 {
		t.Fatalf("Run() returned %d segments, want 1", len(got))
	}
	if titleOf(got[0]) != DocumentFallbackTitle || got[0].Content != "AGENDA\nMINUTES:" {
		t.Errorf("fallback = (%s, %q)", titleOf(got[0]), got[0].Content)
	}
}

func TestPolicy_WebText(t *testing.T) {
	long := "This paragraph is long enough that it can never be mistaken for a title by the short line rule at all, not even close."
	got := WebText.Run(lines(
		"Project Kickoff",
		long,
		"short follow-up line",
		"",
		"Decisions",
		long,
		"",
		"",
		long,
	), "")

	if len(got) != 3 {
		t.Fatalf("Run() returned %d segments, want 3: %+v", len(got), got)
	}
	if titleOf(got[0]) != "Project Kickoff" || got[0].Content != long+"\nshort follow-up line" {
		t.Errorf("segment 0 = (%s, %q)", titleOf(got[0]), got[0].Content)
	}
	if titleOf(got[1]) != "Decisions" || got[1].Content != long {
		t.Errorf("segment 1 = (%s, %q)", titleOf(got[1]), got[1].Content)
	}
	if got[2].Title != nil || got[2].Content != long {
		t.Errorf("segment 2 = (%s, %q)", titleOf(got[2]), got[2].Content)
	}
}

func TestPolicy_EmptySourceFallback(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		wantTitle string
	}{
		{"transcript", Transcript, TranscriptFallbackTitle},
		{"styled", Styled, DocumentFallbackTitle},
		{"page text", PageText, DocumentFallbackTitle},
		{"web text", WebText, DocumentFallbackTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.Run(lines("", "  ", "\t"), "")
			if len(got) != 1 {
				t.Fatalf("Run() returned %d segments, want 1", len(got))
			}
			if got[0].Index != 0 || titleOf(got[0]) != tt.wantTitle || got[0].Content != "" || got[0].Bucket != nil {
				t.Errorf("fallback = %+v, want title %q with empty content", got[0], tt.wantTitle)
			}
		})
	}
}
