package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedKeepsAuthoringOrder(t *testing.T) {
	entries := Seed()
	require.Len(t, entries, 5)
	assert.Equal(t, "Quels sont vos tarifs ?", entries[0].Question)
	assert.Equal(t, "Nos tarifs commencent à 2'200 CHF pour un site IA livré en 7 jours.", entries[0].Answer)
	assert.Equal(t, "Comment puis-je vous contacter ?", entries[4].Question)
}

func TestParseRejectsBlankEntries(t *testing.T) {
	_, err := Parse([]byte("entries:\n  - question: \"Q ?\"\n    answer: \"  \"\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("entries: ["))
	assert.Error(t, err)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore(Seed())

	list := store.List()
	list[0].Answer = "changed"

	assert.NotEqual(t, "changed", store.List()[0].Answer)
}
