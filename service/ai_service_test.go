package service

import (
	"context"
	"io"
	"testing"

	"github.com/baonguyen204/doc-summarizer-be/config"
)

var _ io.Closer = (*GeminiService)(nil)

type closableAI struct {
	closed int
}

func (c *closableAI) Summarize(ctx context.Context, text string) (string, error) {
	return "", nil
}

func (c *closableAI) Close() error {
	c.closed++
	return nil
}

func TestCloseSummarizerClosesBackend(t *testing.T) {
	ai := &closableAI{}
	CloseSummarizer(ai)
	if ai.closed != 1 {
		t.Errorf("expected one close, got %d", ai.closed)
	}
}

func TestCloseSummarizerWithoutCloser(t *testing.T) {
	// Must not panic for summarizers that hold no connection.
	CloseSummarizer(&fakeAI{})
}

func TestNewSummarizerProviderSelection(t *testing.T) {
	ai, err := NewSummarizer(context.Background(), config.AIConfig{Provider: "openai", OpenAIAPIKey: "k"})
	if err != nil {
		t.Fatalf("openai provider failed: %v", err)
	}
	if _, ok := ai.(*OpenAIService); !ok {
		t.Errorf("expected an OpenAI summarizer, got %T", ai)
	}

	if _, err := NewSummarizer(context.Background(), config.AIConfig{Provider: "bogus"}); err == nil {
		t.Error("unknown provider must be rejected")
	}
}
