package service

import (
	"context"
	"time"

	"github.com/nextute/chatbot-be/types"
)

// Generation parameters are fixed constants, not user-configurable.
const (
	generationTemperature = 0.4
	generationMaxTokens   = 512
	generationTimeout     = 30 * time.Second
)

// AIService generates the final answer from a system prompt and conversation
// messages. Implementations wrap a single LLM provider.
type AIService interface {
	Chat(ctx context.Context, system string, messages []types.Message) (string, error)
}
