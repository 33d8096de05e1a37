package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/nextute/chatbot-be/types"
)

func storeWithInstitutes(t *testing.T, institutes []types.Institute) *KnowledgeStore {
	t.Helper()
	store := NewKnowledgeStore(&fakeInstituteRepo{institutes: institutes})
	if _, err := store.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	return store
}

func TestRetrieverFallbackMatchesLexicalExactly(t *testing.T) {
	store := storeWithInstitutes(t, []types.Institute{
		{Name: "Apex Academy", Address: "MG Road", City: "Patna", Courses: []string{"JEE"}},
	})
	index := NewEmbeddingIndex(&fakeEmbedder{err: errors.New("auth failure")})
	retriever := NewRetriever(store, index, 3)

	got := retriever.Retrieve(context.Background(), "mentorship plans", true)
	want := LexicalScorer{}.Rank("mentorship plans", store.All(), 3)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback result differs from lexical ranking:\ngot  %v\nwant %v", got, want)
	}
}

func TestRetrieverLexicalOnlyWithoutProvider(t *testing.T) {
	store := storeWithInstitutes(t, nil)
	retriever := NewRetriever(store, nil, 3)

	// semantic requested but no provider configured: lexical path
	got := retriever.Retrieve(context.Background(), "mentorship", true)
	want := LexicalScorer{}.Rank("mentorship", store.All(), 3)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected lexical ranking without provider:\ngot  %v\nwant %v", got, want)
	}
}

func TestRetrieverSemanticWhenRequested(t *testing.T) {
	store := storeWithInstitutes(t, nil)
	entries := store.All()
	if len(entries) == 0 {
		t.Fatal("expected static entries after rebuild")
	}

	// give every entry a vector orthogonal to the query except the first
	vectors := map[string][]float32{"query text": {1, 0}}
	for i, e := range entries {
		if i == 0 {
			vectors[e.Content] = []float32{1, 0}
		} else {
			vectors[e.Content] = []float32{0, 1}
		}
	}
	index := NewEmbeddingIndex(&fakeEmbedder{vectors: vectors})
	retriever := NewRetriever(store, index, 3)

	results := retriever.Retrieve(context.Background(), "query text", true)
	if len(results) != 1 {
		t.Fatalf("expected exactly one semantic hit, got %d", len(results))
	}
	if results[0].Entry.Content != entries[0].Content {
		t.Errorf("wrong entry ranked first: %q", results[0].Entry.Type)
	}
}

func TestRetrieverResultBoundedByK(t *testing.T) {
	store := storeWithInstitutes(t, []types.Institute{
		{Name: "Alpha Institute", City: "Delhi"},
		{Name: "Beta Institute", City: "Delhi"},
		{Name: "Gamma Institute", City: "Delhi"},
		{Name: "Delta Institute", City: "Delhi"},
	})
	retriever := NewRetriever(store, nil, 0) // zero falls back to the default K

	results := retriever.Retrieve(context.Background(), "institute", false)
	if len(results) > defaultTopK {
		t.Errorf("result length %d exceeds K=%d", len(results), defaultTopK)
	}
}
