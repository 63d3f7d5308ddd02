// Package round runs a single spelling attempt: one target word, one tile
// pool, a typed prefix that only ever grows by correct letters.
package round

import (
	"time"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/tiles"
)

// Event describes what a tile selection did to the round.
type Event int

const (
	// EventNone means the selection had no effect (unknown or used tile).
	EventNone Event = iota
	// EventPlaced means a correct letter extended the typed prefix.
	EventPlaced
	// EventMistake means the selected letter was not the next one needed.
	EventMistake
	// EventWon means the placed letter completed the word.
	EventWon
)

// Outcome summarizes a finished round. A skipped round reports zero
// mistakes and zero time so it never drags the stage score down twice.
type Outcome struct {
	Word      string
	Mistakes  int
	TimeSpent time.Duration
	Skipped   bool
}

// Controller holds the mutable state of one round. It is not safe for
// concurrent use; the UI drives it from a single update loop.
type Controller struct {
	word     string
	pool     []tiles.Tile
	typed    []rune
	mistakes int
	started  time.Time
	now      func() time.Time
	done     bool
	skipped  bool
}

// New creates a round for the given word, generating a fresh tile pool.
func New(word string, gen *tiles.Generator) (*Controller, error) {
	if gen == nil {
		gen = tiles.NewGenerator(nil)
	}
	pool, err := gen.Generate(word)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		word: tiles.Clean(word),
		pool: pool,
		now:  time.Now,
	}
	c.started = c.now()
	return c, nil
}

// WithClock replaces the round's clock. Intended for tests.
func (c *Controller) WithClock(now func() time.Time) *Controller {
	c.now = now
	c.started = now()
	return c
}

// Word returns the cleaned target word.
func (c *Controller) Word() string { return c.word }

// Typed returns the correctly assembled prefix so far.
func (c *Controller) Typed() string { return string(c.typed) }

// Mistakes returns the number of wrong selections so far.
func (c *Controller) Mistakes() int { return c.mistakes }

// Done reports whether the round has ended, by win or by skip.
func (c *Controller) Done() bool { return c.done }

// Tiles returns a snapshot of the pool. Mutating the returned slice does
// not affect the round.
func (c *Controller) Tiles() []tiles.Tile {
	out := make([]tiles.Tile, len(c.pool))
	copy(out, c.pool)
	return out
}

// Select applies a tile pick by ID. Used or unknown tiles are ignored.
// A correct pick consumes the tile; a wrong pick leaves it available and
// counts a mistake.
func (c *Controller) Select(tileID string) Event {
	if c.done {
		return EventNone
	}

	idx := -1
	for i, t := range c.pool {
		if t.ID == tileID {
			idx = i
			break
		}
	}
	if idx == -1 || c.pool[idx].Used {
		return EventNone
	}

	expected := rune(c.word[len(c.typed)])
	if c.pool[idx].Letter != expected {
		c.mistakes++
		return EventMistake
	}

	c.pool[idx].Used = true
	c.typed = append(c.typed, expected)
	if len(c.typed) == len(c.word) {
		c.done = true
		return EventWon
	}
	return EventPlaced
}

// SelectLetter picks the first unused tile carrying the given letter, for
// keyboard play. A letter with no unused tile in the pool still counts as
// a mistake: the learner pressed something the word does not need.
func (c *Controller) SelectLetter(r rune) Event {
	if c.done {
		return EventNone
	}

	for _, t := range c.pool {
		if !t.Used && t.Letter == r {
			return c.Select(t.ID)
		}
	}
	c.mistakes++
	return EventMistake
}

// Skip abandons the round. The outcome is neutral: no mistakes, no time.
func (c *Controller) Skip() Outcome {
	c.done = true
	c.skipped = true
	return c.Outcome()
}

// Outcome reports the round's result. Call after Done returns true; the
// elapsed time is measured at call time for won rounds.
func (c *Controller) Outcome() Outcome {
	if c.skipped {
		return Outcome{Word: c.word, Skipped: true}
	}
	return Outcome{
		Word:      c.word,
		Mistakes:  c.mistakes,
		TimeSpent: c.now().Sub(c.started),
	}
}
