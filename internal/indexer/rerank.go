package indexer

import (
	"sort"
	"strings"
	"unicode"
)

const (
	// candidateMultiplier is how many vector candidates are fetched per
	// requested hit before lexical reranking.
	candidateMultiplier = 3
	lexicalLengthScale  = float32(10.0)
	maxLexicalScore     = float32(0.4)
	titleMatchBonus     = float32(0.1)
)

var lexicalStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "but": {}, "by": {},
	"for": {}, "from": {}, "has": {}, "have": {}, "in": {}, "is": {}, "it": {}, "of": {}, "on": {},
	"or": {}, "the": {}, "to": {}, "was": {}, "were": {}, "with": {},
}

// rerank adds a lexical score to each hit's vector score, orders the hits by
// the blended score and keeps the best k. Ties keep vector order.
func rerank(query string, hits []Hit, k int) []Hit {
	for i := range hits {
		title := ""
		if hits[i].Title != nil {
			title = *hits[i].Title
		}
		hits[i].Score += lexicalScore(query, hits[i].Content, title)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}

// lexicalScore computes a lightweight lexical relevance score for a segment
// relative to a query, in [0, maxLexicalScore].
func lexicalScore(query, content, title string) float32 {
	queryTokens := filterStopwords(tokenize(query))
	if len(queryTokens) == 0 {
		return 0
	}

	var score float32
	if contentTokens := tokenize(content); len(contentTokens) > 0 {
		freq := make(map[string]int, len(contentTokens))
		for _, token := range contentTokens {
			freq[token]++
		}
		var rawMatches int
		for _, token := range queryTokens {
			rawMatches += freq[token]
		}
		score = (float32(rawMatches) / (1 + float32(len(contentTokens)))) * lexicalLengthScale
	}

	if titleTokens := tokenize(title); len(titleTokens) > 0 {
		titleSet := make(map[string]struct{}, len(titleTokens))
		for _, token := range titleTokens {
			titleSet[token] = struct{}{}
		}
		var titleMatches int
		for _, token := range queryTokens {
			if _, ok := titleSet[token]; ok {
				titleMatches++
			}
		}
		score += float32(titleMatches) * titleMatchBonus
	}

	return min(score, maxLexicalScore)
}

func tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		} else {
			builder.WriteRune(' ')
		}
	}
	return strings.Fields(builder.String())
}

func filterStopwords(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, isStop := lexicalStopwords[token]; isStop {
			continue
		}
		result = append(result, token)
	}
	return result
}
