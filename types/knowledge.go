package types

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// KnowledgeEntry is the unit of retrieval: one plain-text paragraph about a
// single topic. Entries are built in bulk on rebuild and never mutated after.
type KnowledgeEntry struct {
	Type     string            `json:"type"`
	Content  string            `json:"content"`
	Metadata KnowledgeMetadata `json:"metadata"`
}

type KnowledgeMetadata struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
}

// ScoredEntry pairs an entry with its relevance for one query. Transient,
// created per query.
type ScoredEntry struct {
	Entry KnowledgeEntry
	Score float64
}

// Source identifies a knowledge entry that contributed to an answer.
type Source struct {
	Type     string `json:"type"`
	Category string `json:"category"`
}
