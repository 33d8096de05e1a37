package service

import (
	"strings"

	"github.com/nextute/chatbot-be/types"
)

// maxHistoryTurns bounds the conversation window handed to the generator:
// the last three exchanges. Older turns are dropped, never summarized.
const maxHistoryTurns = 6

const instructionPreamble = `You are NexBot, the support assistant for Nextute, an education platform that helps students discover and compare coaching institutes.
Guidelines:
- Answer only from the provided context. If the context does not cover the question, say so and point the student to the browse and search pages.
- Keep answers short, friendly and factual. Never invent institute names, fees or ratings.
- Stay on topic: institutes, courses, fees, mentorship plans, registration, reviews and contact details.`

// PromptBundle is the bounded input the generator consumes.
type PromptBundle struct {
	Preamble string
	Context  string
	History  []types.Message
	Query    string
}

// ContextAssembler turns ranked entries plus the raw conversation into a
// PromptBundle. Pure: no side effects, an empty retrieval yields an empty
// context string.
type ContextAssembler struct{}

func (ContextAssembler) Assemble(results []types.ScoredEntry, history []types.Message, query string) PromptBundle {
	parts := make([]string, 0, len(results))
	for _, result := range results {
		parts = append(parts, result.Entry.Content)
	}
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	return PromptBundle{
		Preamble: instructionPreamble,
		Context:  strings.Join(parts, "\n\n"),
		History:  history,
		Query:    query,
	}
}
