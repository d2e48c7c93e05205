// Package catalog holds the static per-language word lists bundled with
// the application. The lists are immutable after construction and shared
// across requests.
package catalog

import "strings"

// Entry is one (word, translation) pair of a language's word list.
type Entry struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
}

// DefaultLanguage is used when a user's target language has no word list.
const DefaultLanguage = "Spanish"

type Catalog struct {
	languages map[string][]Entry
}

// New returns the built-in catalog.
func New() *Catalog {
	return &Catalog{languages: builtinWords}
}

// NewFromMap builds a catalog from an explicit language map. Intended for
// tests and for loading an alternative word list from configuration.
func NewFromMap(languages map[string][]Entry) *Catalog {
	m := make(map[string][]Entry, len(languages))
	for lang, entries := range languages {
		m[lang] = append([]Entry(nil), entries...)
	}
	return &Catalog{languages: m}
}

// Words returns the list for the given language, falling back to the
// default language's list when the language is unknown. The returned
// slice is a copy and safe for callers to shuffle or filter.
func (c *Catalog) Words(language string) []Entry {
	entries, ok := c.languages[language]
	if !ok {
		entries = c.languages[DefaultLanguage]
	}
	return append([]Entry(nil), entries...)
}

// Find looks up a word in a specific language's list. Unlike Words it
// does not fall back to the default language: a search against an
// uncataloged language simply finds nothing.
func (c *Catalog) Find(language, word string) (Entry, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	for _, e := range c.languages[language] {
		if e.Word == word {
			return e, true
		}
	}
	return Entry{}, false
}

// Languages lists the languages with a bundled word list.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.languages))
	for lang := range c.languages {
		langs = append(langs, lang)
	}
	return langs
}
