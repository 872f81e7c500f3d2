package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/zhouzirui/vitrine/backend/internal/analysis/textnorm"
	"github.com/zhouzirui/vitrine/backend/internal/model/faq"
	"github.com/zhouzirui/vitrine/backend/internal/service/ai"
)

// ErrQuestionRequired is returned for a blank question.
var ErrQuestionRequired = errors.New("question is required")

// Service answers visitor questions from the FAQ through the language model.
type Service struct {
	generator ai.Generator
	context   string
	maxTokens int
	logger    *zap.Logger
}

// NewService prepares the FAQ context once; the FAQ never changes at runtime.
func NewService(generator ai.Generator, faqs faq.Store, maxTokens int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		generator: generator,
		context:   BuildContext(faqs.List()),
		maxTokens: maxTokens,
		logger:    logger.Named("chat"),
	}
}

// Answer normalizes question and asks the model to pick the matching FAQ
// answer. The model output is returned as-is.
func (s *Service) Answer(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrQuestionRequired
	}

	normalized := textnorm.Normalize(question)

	messages, err := ai.FAQMessages(ctx, s.context, normalized)
	if err != nil {
		return "", fmt.Errorf("failed to build faq prompt: %w", err)
	}

	answer, err := s.generator.Generate(ctx, messages, ai.Params{
		Temperature: ai.Float32(0),
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate faq answer: %w", err)
	}

	s.logger.Debug("faq answer generated",
		zap.String("question", normalized),
		zap.Int("length", len(answer)))
	return answer, nil
}

// BuildContext renders every entry as "Q: <normalized question>\nR: <answer>",
// separated by blank lines, in list order.
func BuildContext(entries []faq.Entry) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, "Q: "+textnorm.Normalize(e.Question)+"\nR: "+e.Answer)
	}
	return strings.Join(blocks, "\n\n")
}
