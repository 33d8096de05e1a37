package service

import (
	"context"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/nextute/chatbot-be/types"
	"google.golang.org/api/option"
)

// GeminiService rotates through a pool of API keys: when a request fails it
// switches to the next key and retries once.
type GeminiService struct {
	apiKeys    []string
	currentKey int
	modelName  string
	client     *genai.Client
	model      *genai.GenerativeModel
	mu         sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, types.ErrNoAPIKeys
	}

	service := &GeminiService{
		apiKeys:   apiKeys,
		modelName: modelName,
	}
	if err := service.initClient(); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *GeminiService) initClient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(generationTemperature)
	model.SetMaxOutputTokens(generationMaxTokens)
	s.model = model
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	if err := s.client.Close(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	return s.initClient()
}

func (s *GeminiService) Chat(ctx context.Context, system string, messages []types.Message) (string, error) {
	if len(messages) == 0 {
		return "", types.ErrNoResponse
	}
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	// Gemini takes the latest user message as the prompt and everything
	// before it as chat history.
	prompt := messages[len(messages)-1].Content
	history := make([]*genai.Content, 0, len(messages)-1)
	for _, msg := range messages[:len(messages)-1] {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		history = append(history, &genai.Content{
			Parts: []genai.Part{genai.Text(msg.Content)},
			Role:  role,
		})
	}

	resp, err := s.sendMessage(ctx, system, history, prompt)
	if err != nil {
		// Try the next API key before giving up
		if rerr := s.rotateAPIKey(); rerr != nil {
			return "", rerr
		}
		resp, err = s.sendMessage(ctx, system, history, prompt)
		if err != nil {
			return "", err
		}
	}

	if len(resp.Candidates) == 0 {
		return "", types.ErrNoResponse
	}
	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}

func (s *GeminiService) sendMessage(ctx context.Context, system string, history []*genai.Content, prompt string) (*genai.GenerateContentResponse, error) {
	s.mu.Lock()
	model := s.model
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}
	s.mu.Unlock()

	chat := model.StartChat()
	chat.History = history
	return chat.SendMessage(ctx, genai.Text(prompt))
}
