package indexer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"unicode/utf8"
)

const (
	// IndexerVersion identifies how segments are turned into points.
	// Update this when embeddingText or the payload changes.
	IndexerVersion = "v1.0"
	// RunesPerToken is an approximation for token counting (4 chars per token).
	RunesPerToken = 4.0
)

// Stats describes what the index covers.
type Stats struct {
	Meetings int `json:"meetings"`
	// Segments is the number of stored segments, each one point.
	Segments int `json:"segments"`
	// SegmentsBySource breaks Segments down by source type.
	SegmentsBySource map[string]int `json:"segmentsBySource"`
	TokenStats       TokenStats     `json:"tokenStats"`
	IndexerVersion   string         `json:"indexerVersion"`
	// IndexVersion is a hash of the indexer version and embedding model.
	IndexVersion string `json:"indexVersion"`
}

// TokenStats contains statistics about estimated token counts per segment.
type TokenStats struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
	P95  int     `json:"p95"`
}

// Stats computes coverage statistics from the stored meetings.
func (p *Pipeline) Stats(ctx context.Context) (*Stats, error) {
	meetings, err := p.meetings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	stats := &Stats{
		Meetings:         len(meetings),
		SegmentsBySource: make(map[string]int),
		IndexerVersion:   IndexerVersion,
		IndexVersion:     indexVersion(p.model),
	}

	var tokenCounts []int
	for _, m := range meetings {
		segments, err := p.segments.ListByMeeting(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list segments for meeting %s: %w", m.ID, err)
		}
		stats.Segments += len(segments)
		stats.SegmentsBySource[m.SourceType] += len(segments)
		for _, seg := range segments {
			tokenCounts = append(tokenCounts, estimateTokens(embeddingText(seg)))
		}
	}

	stats.TokenStats = computeTokenStats(tokenCounts)
	return stats, nil
}

func indexVersion(model string) string {
	hash := sha256.Sum256([]byte(IndexerVersion + "|" + model))
	return hex.EncodeToString(hash[:])[:16]
}

// estimateTokens approximates the token count of text, with a floor of one.
func estimateTokens(text string) int {
	n := int(math.Round(float64(utf8.RuneCountInString(text)) / RunesPerToken))
	return max(n, 1)
}

// computeTokenStats computes min, max, mean, and p95 from token counts.
func computeTokenStats(tokenCounts []int) TokenStats {
	if len(tokenCounts) == 0 {
		return TokenStats{}
	}

	sorted := make([]int, len(tokenCounts))
	copy(sorted, tokenCounts)
	sort.Ints(sorted)

	sum := 0
	for _, count := range sorted {
		sum += count
	}
	mean := float64(sum) / float64(len(sorted))

	p95Index := int(math.Ceil(float64(len(sorted))*0.95)) - 1
	p95Index = min(max(p95Index, 0), len(sorted)-1)

	return TokenStats{
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		Mean: math.Round(mean*100) / 100, // Round to 2 decimal places
		P95:  sorted[p95Index],
	}
}
