// Package catalog holds the static word list, partitioned into stages.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/tiles"
)

// WordsPerStage is the fixed window size of one stage.
const WordsPerStage = 10

//go:embed words.json
var wordsJSON []byte

// WordEntry pairs a word with its pre-recorded pronunciation clip name.
// Entries are immutable once loaded.
type WordEntry struct {
	Word string `json:"word"`
	Clip string `json:"clip"`
}

// Catalog is an ordered word sequence sliced into fixed-size stages.
type Catalog struct {
	entries []WordEntry
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(wordsJSON)
}

// Parse builds a Catalog from raw JSON, validating it against the catalog
// schema first.
func Parse(data []byte) (*Catalog, error) {
	if err := validateCatalog(data); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var doc struct {
		Words []WordEntry `json:"words"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	entries := make([]WordEntry, 0, len(doc.Words))
	for _, e := range doc.Words {
		cleaned := tiles.Clean(e.Word)
		if cleaned == "" {
			return nil, fmt.Errorf("catalog entry %q has no letters", e.Word)
		}
		entries = append(entries, WordEntry{Word: cleaned, Clip: e.Clip})
	}

	if len(entries)%WordsPerStage != 0 {
		return nil, fmt.Errorf("catalog has %d words, want a multiple of %d", len(entries), WordsPerStage)
	}

	return &Catalog{entries: entries}, nil
}

// New builds a Catalog directly from entries. Intended for tests.
func New(entries []WordEntry) *Catalog {
	return &Catalog{entries: entries}
}

// Len returns the total number of words.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// StageCount returns the number of complete stages.
func (c *Catalog) StageCount() int {
	return len(c.entries) / WordsPerStage
}

// Word returns the entry at the given stage and word index. The second
// return is false when either index is out of range; callers treat that as
// a completion signal rather than an error.
func (c *Catalog) Word(stage, index int) (WordEntry, bool) {
	if stage < 0 || index < 0 || index >= WordsPerStage {
		return WordEntry{}, false
	}
	pos := stage*WordsPerStage + index
	if pos >= len(c.entries) {
		return WordEntry{}, false
	}
	return c.entries[pos], true
}

// StageWords returns the ten entries of one stage, or nil if out of range.
func (c *Catalog) StageWords(stage int) []WordEntry {
	if stage < 0 || stage >= c.StageCount() {
		return nil
	}
	start := stage * WordsPerStage
	out := make([]WordEntry, WordsPerStage)
	copy(out, c.entries[start:start+WordsPerStage])
	return out
}
