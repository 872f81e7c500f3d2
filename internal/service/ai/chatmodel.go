package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ChatModelGenerator adapts an eino chat model (Ark and friends).
type ChatModelGenerator struct {
	chatModel model.BaseChatModel
}

// NewChatModelGenerator wraps chatModel.
func NewChatModelGenerator(chatModel model.BaseChatModel) *ChatModelGenerator {
	return &ChatModelGenerator{chatModel: chatModel}
}

// Generate maps Params onto eino call options.
func (g *ChatModelGenerator) Generate(ctx context.Context, messages []*schema.Message, params Params) (string, error) {
	var opts []model.Option
	if params.Temperature != nil {
		opts = append(opts, model.WithTemperature(*params.Temperature))
	}
	if params.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(params.MaxTokens))
	}

	msg, err := g.chatModel.Generate(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("chat model generate: %w", err)
	}
	if msg == nil {
		return "", ErrEmptyAnswer
	}
	return msg.Content, nil
}
