package types

// Message represents a single turn in the conversation
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

type ChatRequest struct {
	Query               string    `json:"query"`
	ConversationHistory []Message `json:"conversation_history"`
	UseSemanticSearch   bool      `json:"use_semantic_search"`
}

type ChatResponse struct {
	Answer    string   `json:"answer"`
	Sources   []Source `json:"sources"`
	Timestamp int64    `json:"timestamp"`
}
