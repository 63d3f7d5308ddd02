package round

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/tiles"
)

func newRound(t *testing.T, word string) *Controller {
	t.Helper()
	gen := tiles.NewGenerator(rand.New(rand.NewPCG(1, 1)))
	c, err := New(word, gen)
	if err != nil {
		t.Fatalf("New(%q): %v", word, err)
	}
	return c
}

// tileFor finds an unused tile carrying the wanted letter.
func tileFor(t *testing.T, c *Controller, letter rune) tiles.Tile {
	t.Helper()
	for _, tile := range c.Tiles() {
		if !tile.Used && tile.Letter == letter {
			return tile
		}
	}
	t.Fatalf("no unused tile for %c", letter)
	return tiles.Tile{}
}

func TestCorrectSequenceWins(t *testing.T) {
	c := newRound(t, "CAT")

	events := []Event{}
	for _, r := range "CAT" {
		events = append(events, c.Select(tileFor(t, c, r).ID))
	}

	want := []Event{EventPlaced, EventPlaced, EventWon}
	for i, e := range events {
		if e != want[i] {
			t.Errorf("event %d = %v, want %v", i, e, want[i])
		}
	}
	if !c.Done() {
		t.Error("round should be done after the last letter")
	}
	if c.Typed() != "CAT" {
		t.Errorf("Typed = %q, want CAT", c.Typed())
	}
}

func TestWrongTileCountsMistakeAndStaysAvailable(t *testing.T) {
	c := newRound(t, "CAT")

	c.Select(tileFor(t, c, 'C').ID)
	c.Select(tileFor(t, c, 'A').ID)

	// With "CA" assembled, picking the word's own 'C' again is wrong:
	// the next expected letter is 'T'. But there is no second C tile, so
	// use any tile that is not T.
	var wrong tiles.Tile
	for _, tile := range c.Tiles() {
		if !tile.Used && tile.Letter != 'T' {
			wrong = tile
			break
		}
	}
	if wrong.ID == "" {
		t.Skip("pool had only the T tile left")
	}

	if e := c.Select(wrong.ID); e != EventMistake {
		t.Fatalf("wrong pick = %v, want EventMistake", e)
	}
	if c.Mistakes() != 1 {
		t.Errorf("Mistakes = %d, want 1", c.Mistakes())
	}
	if c.Typed() != "CA" {
		t.Errorf("Typed = %q, want CA (mistake must not extend prefix)", c.Typed())
	}

	// The wrongly picked tile stays selectable.
	for _, tile := range c.Tiles() {
		if tile.ID == wrong.ID && tile.Used {
			t.Error("wrong pick consumed the tile")
		}
	}
}

func TestCorrectPickConsumesTile(t *testing.T) {
	c := newRound(t, "BEE")
	first := tileFor(t, c, 'B')
	c.Select(first.ID)

	for _, tile := range c.Tiles() {
		if tile.ID == first.ID && !tile.Used {
			t.Error("correct pick should mark the tile used")
		}
	}
	// Re-selecting the consumed tile is a no-op, not a mistake.
	if e := c.Select(first.ID); e != EventNone {
		t.Errorf("re-pick of used tile = %v, want EventNone", e)
	}
	if c.Mistakes() != 0 {
		t.Errorf("Mistakes = %d, want 0", c.Mistakes())
	}
}

func TestDuplicateLettersUseDistinctTiles(t *testing.T) {
	c := newRound(t, "BEE")

	c.Select(tileFor(t, c, 'B').ID)
	first := tileFor(t, c, 'E')
	if e := c.Select(first.ID); e != EventPlaced {
		t.Fatalf("first E = %v, want EventPlaced", e)
	}
	second := tileFor(t, c, 'E')
	if second.ID == first.ID {
		t.Fatal("tileFor returned a used tile")
	}
	if e := c.Select(second.ID); e != EventWon {
		t.Fatalf("second E = %v, want EventWon", e)
	}
}

func TestUnknownTileIgnored(t *testing.T) {
	c := newRound(t, "CAT")
	if e := c.Select("not-a-tile"); e != EventNone {
		t.Errorf("unknown tile = %v, want EventNone", e)
	}
	if c.Mistakes() != 0 {
		t.Errorf("Mistakes = %d, want 0", c.Mistakes())
	}
}

func TestSelectLetter(t *testing.T) {
	c := newRound(t, "DOG")

	if e := c.SelectLetter('D'); e != EventPlaced {
		t.Fatalf("D = %v, want EventPlaced", e)
	}
	if e := c.SelectLetter('X'); e != EventMistake {
		// X may or may not be a decoy in the pool; either way it is not
		// the next letter, so it must count.
		t.Fatalf("X = %v, want EventMistake", e)
	}
	if c.Mistakes() != 1 {
		t.Errorf("Mistakes = %d, want 1", c.Mistakes())
	}
	if e := c.SelectLetter('O'); e != EventPlaced {
		t.Fatalf("O = %v, want EventPlaced", e)
	}
	if e := c.SelectLetter('G'); e != EventWon {
		t.Fatalf("G = %v, want EventWon", e)
	}
}

func TestSelectAfterDoneIsNoop(t *testing.T) {
	c := newRound(t, "AX")
	c.SelectLetter('A')
	c.SelectLetter('X')
	if !c.Done() {
		t.Fatal("round should be done")
	}
	if e := c.SelectLetter('A'); e != EventNone {
		t.Errorf("select after done = %v, want EventNone", e)
	}
}

func TestSkipOutcomeIsNeutral(t *testing.T) {
	c := newRound(t, "CAT")
	c.SelectLetter('Z')
	c.SelectLetter('Z')

	out := c.Skip()
	if !out.Skipped {
		t.Error("outcome should be marked skipped")
	}
	if out.Mistakes != 0 {
		t.Errorf("skipped Mistakes = %d, want 0", out.Mistakes)
	}
	if out.TimeSpent != 0 {
		t.Errorf("skipped TimeSpent = %v, want 0", out.TimeSpent)
	}
	if !c.Done() {
		t.Error("skip should end the round")
	}
}

func TestOutcomeMeasuresElapsedTime(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	c := newRound(t, "CAT").WithClock(now)
	clock = clock.Add(42 * time.Second)

	c.SelectLetter('Z')
	c.SelectLetter('C')
	c.SelectLetter('A')
	c.SelectLetter('T')

	out := c.Outcome()
	if out.TimeSpent != 42*time.Second {
		t.Errorf("TimeSpent = %v, want 42s", out.TimeSpent)
	}
	if out.Mistakes != 1 {
		t.Errorf("Mistakes = %d, want 1", out.Mistakes)
	}
	if out.Word != "CAT" {
		t.Errorf("Word = %q, want CAT", out.Word)
	}
}
