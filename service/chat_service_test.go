package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nextute/chatbot-be/types"
)

type fakeAI struct {
	reply        string
	err          error
	lastSystem   string
	lastMessages []types.Message
}

func (f *fakeAI) Chat(ctx context.Context, system string, messages []types.Message) (string, error) {
	f.lastSystem = system
	f.lastMessages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newChatService(t *testing.T, institutes []types.Institute, ai AIService) *ChatService {
	t.Helper()
	store := storeWithInstitutes(t, institutes)
	return NewChatService(NewRetriever(store, nil, 3), ai)
}

func TestAnswerEmptyQuery(t *testing.T) {
	svc := newChatService(t, nil, &fakeAI{reply: "hi"})

	for _, query := range []string{"", "   ", "\n\t"} {
		_, err := svc.Answer(context.Background(), query, nil, false)
		if !errors.Is(err, types.ErrEmptyQuery) {
			t.Errorf("query %q: err = %v, want ErrEmptyQuery", query, err)
		}
	}
}

func TestAnswerSuccessUsesGenerator(t *testing.T) {
	ai := &fakeAI{reply: "Here are the mentorship plans."}
	svc := newChatService(t, nil, ai)

	resp, err := svc.Answer(context.Background(), "mentorship pricing", nil, false)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if resp.Answer != ai.reply {
		t.Errorf("answer = %q, want generator reply", resp.Answer)
	}
	if resp.Timestamp == 0 {
		t.Error("timestamp not set")
	}
	if ai.lastSystem == "" {
		t.Error("system preamble not passed to generator")
	}
	last := ai.lastMessages[len(ai.lastMessages)-1]
	if last.Role != "user" || !strings.Contains(last.Content, "mentorship pricing") {
		t.Errorf("final message must carry the query: %+v", last)
	}
	if !strings.Contains(last.Content, "Context:") {
		t.Errorf("retrieved context missing from prompt: %q", last.Content)
	}
}

func TestAnswerGeneratorFailureReturnsTopEntry(t *testing.T) {
	svc := newChatService(t, nil, &fakeAI{err: errors.New("rate limited")})

	resp, err := svc.Answer(context.Background(), "mentorship", nil, false)
	if err != nil {
		t.Fatalf("generator failure must not surface: %v", err)
	}
	// the top-ranked entry is the static mentorship paragraph
	if !strings.Contains(resp.Answer, "₹1,000") || !strings.Contains(resp.Answer, "₹1,499") {
		t.Errorf("degraded answer should quote the top entry verbatim: %q", resp.Answer)
	}
	if len(resp.Sources) == 0 {
		t.Error("sources must still reflect the retrieval result")
	}
}

func TestAnswerGeneratorFailureEmptyRetrieval(t *testing.T) {
	svc := newChatService(t, nil, &fakeAI{err: errors.New("rate limited")})

	// no entry matches: degraded answer is the fixed topic menu
	resp, err := svc.Answer(context.Background(), "qqqqq", nil, false)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if resp.Answer != fallbackMenu {
		t.Errorf("answer = %q, want the canned topic menu", resp.Answer)
	}
	if len(resp.Sources) != 0 {
		t.Errorf("expected no sources, got %d", len(resp.Sources))
	}
}

func TestAnswerEmptyHistoryCompletes(t *testing.T) {
	svc := newChatService(t, nil, &fakeAI{reply: "answer"})

	resp, err := svc.Answer(context.Background(), "how do I register", nil, false)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if resp == nil || resp.Answer == "" {
		t.Fatal("expected a non-empty answer with empty history")
	}
}

func TestAnswerSourcesInRankedOrder(t *testing.T) {
	ai := &fakeAI{reply: "ok"}
	svc := newChatService(t, nil, ai)

	resp, err := svc.Answer(context.Background(), "mentorship", nil, false)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if len(resp.Sources) == 0 {
		t.Fatal("expected sources for a matching query")
	}
	if resp.Sources[0].Type != "mentorship" || resp.Sources[0].Category != "pricing" {
		t.Errorf("top source = %+v, want the mentorship/pricing entry", resp.Sources[0])
	}
	if len(resp.Sources) > 3 {
		t.Errorf("sources exceed K: %d", len(resp.Sources))
	}
}

func TestAnswerTrimsHistoryBeforeGeneration(t *testing.T) {
	ai := &fakeAI{reply: "ok"}
	svc := newChatService(t, nil, ai)

	var history []types.Message
	for i := 0; i < 12; i++ {
		history = append(history, types.Message{Role: "user", Content: "turn"})
	}
	if _, err := svc.Answer(context.Background(), "mentorship", history, false); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	// 6 history turns plus the final user message
	if len(ai.lastMessages) != maxHistoryTurns+1 {
		t.Errorf("generator received %d messages, want %d", len(ai.lastMessages), maxHistoryTurns+1)
	}
}
