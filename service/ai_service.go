package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/baonguyen204/doc-summarizer-be/config"
)

// AIService produces a summary for extracted document text.
type AIService interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// NewSummarizer builds the summarization backend selected by config.
func NewSummarizer(ctx context.Context, cfg config.AIConfig) (AIService, error) {
	switch cfg.Provider {
	case "", "openai":
		return NewOpenAIService(cfg.Endpoint, cfg.OpenAIAPIKey, cfg.Model), nil
	case "gemini":
		return NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}

// CloseSummarizer releases the backend connection for summarizers that hold
// one. Safe to call on any summarizer.
func CloseSummarizer(ai AIService) {
	if closer, ok := ai.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Printf("Failed to close summarizer: %v", err)
		}
	}
}
