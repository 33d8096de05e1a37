package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/nextute/chatbot-be/types"
)

const fallbackMenu = `I can help you with:
- Finding coaching institutes by city or course
- Comparing institutes, fees and ratings
- Mentorship plans and pricing
- Registering on Nextute and contacting our team
What would you like to know?`

const browsePrompt = "\n\nYou can keep browsing institutes on Nextute for more details."

// ChatService is the entry point of the query path: validate, retrieve,
// assemble, generate. Provider failures never reach the caller; the answer
// degrades instead.
type ChatService struct {
	retriever *Retriever
	assembler ContextAssembler
	ai        AIService
}

func NewChatService(retriever *Retriever, ai AIService) *ChatService {
	return &ChatService{
		retriever: retriever,
		ai:        ai,
	}
}

// Answer handles one query. The only error it returns is ErrEmptyQuery for a
// blank query; a failed generator call is converted into a degraded but
// successful answer built from the retrieval result.
func (s *ChatService) Answer(ctx context.Context, query string, history []types.Message, useSemantic bool) (*types.ChatResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, types.ErrEmptyQuery
	}

	results := s.retriever.Retrieve(ctx, query, useSemantic)
	bundle := s.assembler.Assemble(results, history, query)

	sources := make([]types.Source, 0, len(results))
	for _, result := range results {
		sources = append(sources, types.Source{
			Type:     result.Entry.Type,
			Category: result.Entry.Metadata.Category,
		})
	}

	answer, err := s.generate(ctx, bundle)
	if err != nil {
		log.Println("generation failed, degrading to canned answer:", err)
		answer = fallbackAnswer(results)
	}

	return &types.ChatResponse{
		Answer:    answer,
		Sources:   sources,
		Timestamp: time.Now().Unix(),
	}, nil
}

func (s *ChatService) generate(ctx context.Context, bundle PromptBundle) (string, error) {
	messages := make([]types.Message, 0, len(bundle.History)+1)
	messages = append(messages, bundle.History...)

	userContent := bundle.Query
	if bundle.Context != "" {
		userContent = "Context:\n" + bundle.Context + "\n\nQuestion: " + bundle.Query
	}
	messages = append(messages, types.Message{Role: "user", Content: userContent})

	return s.ai.Chat(ctx, bundle.Preamble, messages)
}

// fallbackAnswer is the degraded reply when the generator is unavailable:
// the top-ranked entry verbatim, or a fixed topic menu when retrieval came
// back empty.
func fallbackAnswer(results []types.ScoredEntry) string {
	if len(results) == 0 {
		return fallbackMenu
	}
	return results[0].Entry.Content + browsePrompt
}
