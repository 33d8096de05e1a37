package service

import (
	"sort"
	"strings"

	"github.com/nextute/chatbot-be/types"
)

var priorityBoost = map[string]float64{
	types.PriorityHigh:   1.5,
	types.PriorityMedium: 1.2,
	types.PriorityLow:    1.0,
}

// LexicalScorer ranks entries by word overlap with the query. It needs no
// external provider and is always available, which makes it the fallback for
// every semantic failure.
type LexicalScorer struct{}

// Rank scores each entry as matched-token-count / query-token-count times the
// priority boost, keeps scores above zero, sorts descending and truncates to
// k. The sort is stable so tied entries keep store order.
func (LexicalScorer) Rank(query string, entries []types.KnowledgeEntry, k int) []types.ScoredEntry {
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	var scored []types.ScoredEntry
	for _, entry := range entries {
		docTokens := tokenize(entry.Content)
		matched := 0
		for _, queryToken := range queryTokens {
			if matchesAny(docTokens, queryToken) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		score := float64(matched) / float64(len(queryTokens)) * boostFor(entry.Metadata.Priority)
		scored = append(scored, types.ScoredEntry{Entry: entry, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

func tokenize(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// matchesAny checks substring containment in both directions: a query token
// matches a document token when either contains the other. Short tokens
// over-match ("fee" hits "fees" but also "a" hits nearly everything); the
// recall is worth it for a last-resort keyword path.
func matchesAny(docTokens []string, queryToken string) bool {
	for _, docToken := range docTokens {
		if strings.Contains(docToken, queryToken) || strings.Contains(queryToken, docToken) {
			return true
		}
	}
	return false
}

func boostFor(priority string) float64 {
	if boost, ok := priorityBoost[priority]; ok {
		return boost
	}
	return priorityBoost[types.PriorityLow]
}
