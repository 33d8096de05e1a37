package service

import (
	"context"
	"time"

	"github.com/nextute/chatbot-be/types"
	"github.com/sashabaranov/go-openai"
)

const embeddingTimeout = 10 * time.Second

// Embedder turns text into a vector. Provider failures (timeout, auth,
// quota) come back as errors; callers decide how to degrade.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbedder(baseURL, apiKey, model string) *OpenAIEmbedder {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	embeddingModel := openai.EmbeddingModel(model)
	if model == "" {
		embeddingModel = openai.SmallEmbedding3
	}
	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(config),
		model:  embeddingModel,
	}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, embeddingTimeout)
	defer cancel()

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: e.model,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, types.ErrNoResponse
	}
	return resp.Data[0].Embedding, nil
}
