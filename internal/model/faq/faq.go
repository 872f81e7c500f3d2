package faq

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one hand-authored question/answer pair.
type Entry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

//go:embed faq.yaml
var seedYAML []byte

type catalogue struct {
	Entries []Entry `yaml:"entries"`
}

// Parse decodes a YAML catalogue and rejects blank questions or answers.
func Parse(data []byte) ([]Entry, error) {
	var c catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode faq catalogue: %w", err)
	}

	for i, e := range c.Entries {
		if strings.TrimSpace(e.Question) == "" || strings.TrimSpace(e.Answer) == "" {
			return nil, fmt.Errorf("faq entry %d: question and answer are required", i)
		}
	}
	return c.Entries, nil
}

// Seed returns the FAQ compiled into the binary.
func Seed() []Entry {
	entries, err := Parse(seedYAML)
	if err != nil {
		// the embedded file is part of the build
		panic(err)
	}
	return entries
}
