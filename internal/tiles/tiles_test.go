package tiles

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func seeded(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed)))
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cat", "CAT"},
		{"ice cream", "ICECREAM"},
		{"don't", "DONT"},
		{"  Bee!  ", "BEE"},
		{"123", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got := Clean(tt.in)
		if got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeneratePoolSize(t *testing.T) {
	g := seeded(1)
	for _, word := range []string{"CAT", "elephant", "ice cream"} {
		pool, err := g.Generate(word)
		if err != nil {
			t.Fatalf("Generate(%q): %v", word, err)
		}
		want := len(Clean(word)) + ExtraTiles
		if len(pool) != want {
			t.Errorf("Generate(%q) pool size = %d, want %d", word, len(pool), want)
		}
	}
}

func TestGenerateEmptyWord(t *testing.T) {
	g := seeded(1)
	if _, err := g.Generate("!?123"); err != ErrNoLetters {
		t.Errorf("expected ErrNoLetters, got %v", err)
	}
}

// Removing the decoys must leave exactly the cleaned word's letters, in
// original order once the shuffle is undone by position of mandatory tiles.
func TestGenerateContainsWordMultiset(t *testing.T) {
	g := seeded(7)
	word := "BALLOON"
	pool, err := g.Generate(word)
	if err != nil {
		t.Fatal(err)
	}

	counts := make(map[rune]int)
	for _, tile := range pool {
		counts[tile.Letter]++
	}
	for _, r := range Clean(word) {
		counts[r]--
	}
	for letter, n := range counts {
		if n < 0 {
			t.Errorf("letter %c missing from pool (deficit %d)", letter, -n)
		}
		if n > 0 && strings.ContainsRune(Clean(word), letter) {
			t.Errorf("letter %c appears %d extra times but is in the word; decoys must not overlap", letter, n)
		}
	}
}

func TestDecoysOutsideWordLetters(t *testing.T) {
	g := seeded(42)
	word := "QUEEN"
	cleaned := Clean(word)

	for trial := 0; trial < 50; trial++ {
		pool, err := g.Generate(word)
		if err != nil {
			t.Fatal(err)
		}

		// Strike off mandatory letters; whatever remains is a decoy.
		remaining := []rune(cleaned)
		for _, tile := range pool {
			matched := false
			for i, r := range remaining {
				if r == tile.Letter {
					remaining = append(remaining[:i], remaining[i+1:]...)
					matched = true
					break
				}
			}
			if !matched && strings.ContainsRune(cleaned, tile.Letter) {
				t.Fatalf("decoy %c overlaps the word's letter set", tile.Letter)
			}
		}
		if len(remaining) != 0 {
			t.Fatalf("pool missing word letters: %q", string(remaining))
		}
	}
}

func TestTileIDsUnique(t *testing.T) {
	g := seeded(3)
	pool, err := g.Generate("HIPPOPOTAMUS")
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for _, tile := range pool {
		if tile.ID == "" {
			t.Fatal("empty tile ID")
		}
		if seen[tile.ID] {
			t.Fatalf("duplicate tile ID %s", tile.ID)
		}
		seen[tile.ID] = true
	}
}

func TestAllTilesStartUnused(t *testing.T) {
	g := seeded(9)
	pool, err := g.Generate("DOG")
	if err != nil {
		t.Fatal(err)
	}
	for _, tile := range pool {
		if tile.Used {
			t.Errorf("tile %c created as used", tile.Letter)
		}
	}
}

// A word containing all 26 letters leaves no decoy candidates; the pool
// degrades to the mandatory tiles only.
func TestPangramDegradesToZeroDecoys(t *testing.T) {
	g := seeded(11)
	pangram := "the quick brown fox jumps over the lazy dog"
	pool, err := g.Generate(pangram)
	if err != nil {
		t.Fatal(err)
	}
	if len(pool) != len(Clean(pangram)) {
		t.Errorf("pool size = %d, want %d (no decoys)", len(pool), len(Clean(pangram)))
	}
}

// Statistical check that the shuffle actually moves tiles around: over many
// runs the first tile should not always carry the word's first letter.
func TestShuffleDisturbsOrder(t *testing.T) {
	g := seeded(99)
	firstIsA := 0
	const trials = 200
	for i := 0; i < trials; i++ {
		pool, err := g.Generate("ABCDEFG")
		if err != nil {
			t.Fatal(err)
		}
		if pool[0].Letter == 'A' {
			firstIsA++
		}
	}
	// 11 tiles per pool; expected ~trials/11. Anything above half signals
	// a broken shuffle.
	if firstIsA > trials/2 {
		t.Errorf("first tile was 'A' %d/%d times; shuffle looks biased", firstIsA, trials)
	}
}

func TestWithExtraZero(t *testing.T) {
	g := seeded(5).WithExtra(0)
	pool, err := g.Generate("CAT")
	if err != nil {
		t.Fatal(err)
	}
	if len(pool) != 3 {
		t.Errorf("pool size = %d, want 3", len(pool))
	}
}
