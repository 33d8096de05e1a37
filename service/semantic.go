package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"sync"

	"github.com/nextute/chatbot-be/types"
)

// similarityFloor filters weak semantic matches; an empty result is a valid
// outcome.
const similarityFloor = 0.5

// EmbeddingIndex ranks entries by cosine similarity between query and
// document embeddings. Document vectors are cached by content for the
// lifetime of one knowledge snapshot; the cache is dropped whenever the
// snapshot generation changes.
type EmbeddingIndex struct {
	embedder Embedder

	mu         sync.Mutex
	generation uint64
	cache      map[string][]float32
}

func NewEmbeddingIndex(embedder Embedder) *EmbeddingIndex {
	return &EmbeddingIndex{
		embedder: embedder,
		cache:    make(map[string][]float32),
	}
}

// Rank embeds the query once and scores every entry against it. An entry
// whose embedding fails scores zero and falls below the floor. A failed
// query embedding fails the whole call so the retriever can fall back to
// lexical scoring.
func (idx *EmbeddingIndex) Rank(ctx context.Context, query string, entries []types.KnowledgeEntry, generation uint64, k int) ([]types.ScoredEntry, error) {
	queryVector, err := idx.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	scored := make([]types.ScoredEntry, 0, k)
	for _, entry := range entries {
		documentVector := idx.documentVector(ctx, entry.Content, generation)
		score := cosineSimilarity(queryVector, documentVector)
		if score < similarityFloor {
			continue
		}
		scored = append(scored, types.ScoredEntry{Entry: entry, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

// documentVector returns the cached embedding for content, computing and
// caching it on a miss. Failures are not cached so a flaky provider call can
// recover on the next query.
func (idx *EmbeddingIndex) documentVector(ctx context.Context, content string, generation uint64) []float32 {
	idx.mu.Lock()
	if idx.generation != generation {
		idx.generation = generation
		idx.cache = make(map[string][]float32)
	}
	vector, ok := idx.cache[content]
	idx.mu.Unlock()
	if ok {
		return vector
	}

	vector, err := idx.embedder.Embed(ctx, content)
	if err != nil {
		log.Println("document embedding failed, scoring entry as zero:", err)
		return nil
	}

	idx.mu.Lock()
	if idx.generation == generation {
		idx.cache[content] = vector
	}
	idx.mu.Unlock()
	return vector
}

// cosineSimilarity is dot(a,b) / (norm(a)*norm(b)), zero when either vector
// is missing, mismatched or has zero norm.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
