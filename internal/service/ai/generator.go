package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/zhouzirui/vitrine/backend/internal/config"
)

var (
	ErrNotConfigured = errors.New("language model not configured")
	ErrEmptyAnswer   = errors.New("language model returned no choices")
)

// Params are the sampling parameters of one generation.
// A nil Temperature leaves the provider default in place.
type Params struct {
	Temperature *float32
	MaxTokens   int
}

// Generator turns a message list into generated text.
type Generator interface {
	Generate(ctx context.Context, messages []*schema.Message, params Params) (string, error)
}

// Float32 is a helper for Params.Temperature.
func Float32(v float32) *float32 {
	return &v
}

// NewGenerator builds the generator selected by cfg.Provider.
func NewGenerator(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	var g Generator
	switch cfg.Provider {
	case config.ProviderArk:
		chatModel, err := cfg.NewChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create chat model: %w", err)
		}
		g = NewChatModelGenerator(chatModel)
	default:
		g = NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	}

	if cfg.Timeout > 0 {
		g = WithTimeout(g, cfg.Timeout)
	}
	return g, nil
}

type timeoutGenerator struct {
	next    Generator
	timeout time.Duration
}

// WithTimeout bounds every call made through next.
func WithTimeout(next Generator, timeout time.Duration) Generator {
	return &timeoutGenerator{next: next, timeout: timeout}
}

func (g *timeoutGenerator) Generate(ctx context.Context, messages []*schema.Message, params Params) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.next.Generate(ctx, messages, params)
}
