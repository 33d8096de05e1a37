package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/nextute/chatbot-be/types"
)

// fakeEmbedder returns canned vectors keyed by text and counts provider
// calls. Texts without a vector fail like a provider error.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	vector, ok := f.vectors[text]
	if !ok {
		return nil, errors.New("embedding provider unavailable")
	}
	return vector, nil
}

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"zero norm", []float32{0, 0}, []float32{1, 1}, 0},
		{"nil vector", nil, []float32{1, 1}, 0},
		{"length mismatch", []float32{1}, []float32{1, 1}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cosineSimilarity(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("cosineSimilarity = %f, want %f", got, tc.want)
			}
		})
	}
}

func TestEmbeddingIndexRank(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"query":  {1, 0},
		"close":  {0.9, 0.1},
		"far":    {0, 1},
		"middle": {0.7, 0.7},
	}}
	index := NewEmbeddingIndex(embedder)

	entries := []types.KnowledgeEntry{
		entry("far", "far", types.PriorityLow),
		entry("middle", "middle", types.PriorityLow),
		entry("close", "close", types.PriorityLow),
	}

	results, err := index.Rank(context.Background(), "query", entries, 1, 3)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	// "far" is orthogonal to the query and falls below the 0.5 floor
	if len(results) != 2 {
		t.Fatalf("expected 2 results above floor, got %d", len(results))
	}
	if results[0].Entry.Type != "close" || results[1].Entry.Type != "middle" {
		t.Errorf("wrong order: got %q, %q", results[0].Entry.Type, results[1].Entry.Type)
	}
	if results[0].Score <= results[1].Score {
		t.Errorf("scores not descending: %f <= %f", results[0].Score, results[1].Score)
	}
}

func TestEmbeddingIndexRankTruncatesToK(t *testing.T) {
	vectors := map[string][]float32{"query": {1, 0}}
	var entries []types.KnowledgeEntry
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		vectors[name] = []float32{1, 0}
		entries = append(entries, entry(name, name, types.PriorityLow))
	}
	index := NewEmbeddingIndex(&fakeEmbedder{vectors: vectors})

	results, err := index.Rank(context.Background(), "query", entries, 1, 3)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("expected truncation to 3, got %d", len(results))
	}
}

func TestEmbeddingIndexRankQueryFailure(t *testing.T) {
	index := NewEmbeddingIndex(&fakeEmbedder{err: errors.New("quota exceeded")})

	_, err := index.Rank(context.Background(), "query", []types.KnowledgeEntry{entry("a", "a", types.PriorityLow)}, 1, 3)
	if err == nil {
		t.Fatal("expected error when query embedding fails")
	}
}

func TestEmbeddingIndexRankDocumentFailureScoresZero(t *testing.T) {
	// "broken" has no vector: its embedding fails and it must be excluded
	// by the floor, not fail the call.
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"query": {1, 0},
		"good":  {1, 0},
	}}
	index := NewEmbeddingIndex(embedder)

	entries := []types.KnowledgeEntry{
		entry("broken", "broken", types.PriorityLow),
		entry("good", "good", types.PriorityLow),
	}

	results, err := index.Rank(context.Background(), "query", entries, 1, 3)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if len(results) != 1 || results[0].Entry.Type != "good" {
		t.Fatalf("expected only the good entry, got %v", results)
	}
}

func TestEmbeddingIndexCachesPerGeneration(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"query": {1, 0},
		"doc":   {1, 0},
	}}
	index := NewEmbeddingIndex(embedder)
	entries := []types.KnowledgeEntry{entry("doc", "doc", types.PriorityLow)}

	if _, err := index.Rank(context.Background(), "query", entries, 1, 3); err != nil {
		t.Fatalf("first Rank: %v", err)
	}
	firstCalls := embedder.calls // query + doc

	if _, err := index.Rank(context.Background(), "query", entries, 1, 3); err != nil {
		t.Fatalf("second Rank: %v", err)
	}
	// same generation: only the query is re-embedded
	if embedder.calls != firstCalls+1 {
		t.Errorf("expected cached document vector, calls = %d, want %d", embedder.calls, firstCalls+1)
	}

	if _, err := index.Rank(context.Background(), "query", entries, 2, 3); err != nil {
		t.Fatalf("third Rank: %v", err)
	}
	// new generation drops the cache: query + doc again
	if embedder.calls != firstCalls+3 {
		t.Errorf("expected cache drop on generation change, calls = %d, want %d", embedder.calls, firstCalls+3)
	}
}
