package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Words(t *testing.T) {
	c := New()

	t.Run("known language returns its list", func(t *testing.T) {
		words := c.Words("Spanish")
		assert.Len(t, words, 10)
	})

	t.Run("unknown language falls back to the default list", func(t *testing.T) {
		assert.Equal(t, c.Words(DefaultLanguage), c.Words("Klingon"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		words := c.Words("French")
		require.NotEmpty(t, words)
		original := words[0]
		words[0] = Entry{Word: "mutated"}
		assert.Equal(t, original, c.Words("French")[0])
	})
}

func TestCatalog_Find(t *testing.T) {
	c := New()

	t.Run("finds a word case-insensitively", func(t *testing.T) {
		entry, ok := c.Find("Spanish", "  HOLA ")
		require.True(t, ok)
		assert.Equal(t, "hola", entry.Word)
		assert.Equal(t, "hello", entry.Translation)
	})

	t.Run("does not fall back to the default language", func(t *testing.T) {
		_, ok := c.Find("Klingon", "hola")
		assert.False(t, ok)
	})

	t.Run("unknown word finds nothing", func(t *testing.T) {
		_, ok := c.Find("Spanish", "zzz")
		assert.False(t, ok)
	})
}

func TestCatalog_Languages(t *testing.T) {
	langs := New().Languages()
	assert.Contains(t, langs, "Spanish")
	assert.Contains(t, langs, "French")
	assert.Len(t, langs, 7)
}
