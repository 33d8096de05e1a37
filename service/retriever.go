package service

import (
	"context"
	"log"

	"github.com/nextute/chatbot-be/types"
)

const defaultTopK = 3

// Retriever is the one control-flow decision point in the query path:
// semantic ranking runs only when the request asks for it and an embedding
// provider is configured; everything else, including any semantic failure,
// goes through the lexical scorer.
type Retriever struct {
	store           *KnowledgeStore
	lexical         LexicalScorer
	semantic        *EmbeddingIndex
	semanticEnabled bool
	topK            int
}

// NewRetriever wires the ranking paths. semantic may be nil when no embedding
// provider is configured; the retriever then never leaves the lexical path.
func NewRetriever(store *KnowledgeStore, semantic *EmbeddingIndex, topK int) *Retriever {
	if topK <= 0 {
		topK = defaultTopK
	}
	return &Retriever{
		store:           store,
		semantic:        semantic,
		semanticEnabled: semantic != nil,
		topK:            topK,
	}
}

// Retrieve ranks the current knowledge snapshot against the query. The
// fallback from semantic to lexical is silent to the caller; it is only
// logged.
func (r *Retriever) Retrieve(ctx context.Context, query string, useSemantic bool) []types.ScoredEntry {
	entries, generation := r.store.Snapshot()
	if useSemantic && r.semanticEnabled {
		scored, err := r.semantic.Rank(ctx, query, entries, generation, r.topK)
		if err == nil {
			return scored
		}
		log.Println("semantic ranking unavailable, falling back to lexical:", err)
	}
	return r.lexical.Rank(query, entries, r.topK)
}
