// Package tiles builds the shuffled letter-tile pool for a spelling round.
package tiles

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// ExtraTiles is the number of decoy letters mixed into every pool.
const ExtraTiles = 4

// ErrNoLetters is returned when a word contains no alphabetic characters.
var ErrNoLetters = errors.New("tiles: word has no alphabetic characters")

// Tile is a single selectable letter in the round's pool. The ID is unique
// within a pool and stable for the tile's lifetime.
type Tile struct {
	ID     string
	Letter rune
	Used   bool
}

// Generator produces tile pools from an injected random source so tests can
// seed it. Zero decoy count is allowed; negative counts are treated as zero.
type Generator struct {
	rng   *rand.Rand
	extra int
}

// NewGenerator creates a Generator with the given random source. A nil rng
// falls back to a freshly seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng, extra: ExtraTiles}
}

// WithExtra overrides the decoy count. Used by tests and practice variants.
func (g *Generator) WithExtra(n int) *Generator {
	if n < 0 {
		n = 0
	}
	g.extra = n
	return g
}

// Clean uppercases the word and strips everything outside A-Z.
func Clean(word string) string {
	upper := strings.ToUpper(word)
	var b strings.Builder
	for _, r := range upper {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Generate builds the pool for a target word: one mandatory tile per cleaned
// letter plus decoys drawn uniformly (with replacement) from the letters the
// word does not contain, shuffled into a uniformly random order.
func (g *Generator) Generate(word string) ([]Tile, error) {
	cleaned := Clean(word)
	if cleaned == "" {
		return nil, ErrNoLetters
	}

	pool := make([]Tile, 0, len(cleaned)+g.extra)
	for _, r := range cleaned {
		pool = append(pool, Tile{ID: uuid.NewString(), Letter: r})
	}

	var present [26]bool
	for _, r := range cleaned {
		present[r-'A'] = true
	}
	candidates := make([]rune, 0, 26)
	for i := 0; i < 26; i++ {
		if !present[i] {
			candidates = append(candidates, rune('A'+i))
		}
	}

	// A word covering the whole alphabet leaves no decoy candidates;
	// degrade to zero decoys instead of looping.
	if len(candidates) > 0 {
		for i := 0; i < g.extra; i++ {
			letter := candidates[g.rng.IntN(len(candidates))]
			pool = append(pool, Tile{ID: uuid.NewString(), Letter: letter})
		}
	}

	// Fisher-Yates.
	for i := len(pool) - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool, nil
}
