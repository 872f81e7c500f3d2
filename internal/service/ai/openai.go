package ai

import (
	"context"
	"fmt"
	"math"

	"github.com/cloudwego/eino/schema"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator talks to the OpenAI chat completions API or any
// compatible endpoint.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates a generator. An empty baseURL keeps the
// public OpenAI endpoint.
func NewOpenAIGenerator(apiKey, baseURL, model string) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Generate runs one chat completion and returns the first choice verbatim.
func (g *OpenAIGenerator) Generate(ctx context.Context, messages []*schema.Message, params Params) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     g.model,
		Messages:  toOpenAIMessages(messages),
		MaxTokens: params.MaxTokens,
	}
	if params.Temperature != nil {
		temperature := *params.Temperature
		if temperature == 0 {
			// the request field is omitempty, an exact zero would not be sent
			temperature = math.SmallestNonzeroFloat32
		}
		req.Temperature = temperature
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyAnswer
	}
	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []*schema.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		if m == nil {
			continue
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}
