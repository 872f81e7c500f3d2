package seo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/zhouzirui/vitrine/backend/internal/model/seo"
	"github.com/zhouzirui/vitrine/backend/internal/service/ai"
)

const (
	DefaultTitle       = "Titre par défaut"
	DefaultDescription = "Description par défaut"
)

// ErrContentRequired is returned for blank content.
var ErrContentRequired = errors.New("content is required")

var (
	titlePattern       = regexp.MustCompile(`(?i)Titre:\s*(.+)`)
	descriptionPattern = regexp.MustCompile(`(?i)Description:\s*(.+)`)
)

// Service asks the model for SEO metadata.
type Service struct {
	generator ai.Generator
	maxTokens int
	logger    *zap.Logger
}

// NewService creates the SEO service.
func NewService(generator ai.Generator, maxTokens int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{generator: generator, maxTokens: maxTokens, logger: logger.Named("seo")}
}

// Generate returns a complete pair; malformed model output degrades to defaults.
func (s *Service) Generate(ctx context.Context, content string) (seo.Metadata, error) {
	if strings.TrimSpace(content) == "" {
		return seo.Metadata{}, ErrContentRequired
	}

	messages, err := ai.SEOMessages(ctx, content)
	if err != nil {
		return seo.Metadata{}, fmt.Errorf("failed to build seo prompt: %w", err)
	}

	text, err := s.generator.Generate(ctx, messages, ai.Params{MaxTokens: s.maxTokens})
	if err != nil {
		return seo.Metadata{}, fmt.Errorf("failed to generate seo metadata: %w", err)
	}

	meta := Parse(text)
	if meta.Title == DefaultTitle || meta.Description == DefaultDescription {
		s.logger.Warn("seo output missing a line, defaults applied", zap.String("output", text))
	}
	return meta, nil
}

// Parse extracts the "Titre:" and "Description:" lines from text.
func Parse(text string) seo.Metadata {
	meta := seo.Metadata{Title: DefaultTitle, Description: DefaultDescription}

	if m := titlePattern.FindStringSubmatch(text); m != nil {
		meta.Title = strings.TrimSpace(m[1])
	}
	if m := descriptionPattern.FindStringSubmatch(text); m != nil {
		meta.Description = strings.TrimSpace(m[1])
	}
	return meta
}
