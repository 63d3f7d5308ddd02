// Package stage scores a run of ten spelling rounds and turns it into a
// star rating on the unlock ladder.
package stage

import (
	"time"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/progress"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/round"
)

// WordCount is the number of words played per stage.
const WordCount = 10

// Stars maps the number of correctly spelled words to a rating.
// A perfect stage earns three stars.
func Stars(correct int) int {
	switch {
	case correct >= WordCount:
		return 3
	case correct >= 7:
		return 2
	case correct >= 3:
		return 1
	default:
		return 0
	}
}

// Result summarizes a finished stage run.
type Result struct {
	Stage     int
	Correct   int
	Skipped   int
	Mistakes  int
	TimeSpent time.Duration
	Stars     int
}

// Controller accumulates round outcomes for one stage run.
type Controller struct {
	stage    int
	outcomes []round.Outcome
}

// New starts a run for the given stage index.
func New(stageIndex int) *Controller {
	return &Controller{stage: stageIndex}
}

// Stage returns the stage index of this run.
func (c *Controller) Stage() int { return c.stage }

// Record adds a finished round's outcome to the run.
func (c *Controller) Record(out round.Outcome) {
	c.outcomes = append(c.outcomes, out)
}

// Played returns how many rounds have been recorded.
func (c *Controller) Played() int { return len(c.outcomes) }

// Correct returns how many recorded rounds were won rather than skipped.
func (c *Controller) Correct() int {
	n := 0
	for _, o := range c.outcomes {
		if !o.Skipped {
			n++
		}
	}
	return n
}

// Done reports whether the full stage window has been played.
func (c *Controller) Done() bool { return len(c.outcomes) >= WordCount }

// Result folds the recorded outcomes into a scored result.
func (c *Controller) Result() Result {
	r := Result{Stage: c.stage}
	for _, o := range c.outcomes {
		if o.Skipped {
			r.Skipped++
			continue
		}
		r.Correct++
		r.Mistakes += o.Mistakes
		r.TimeSpent += o.TimeSpent
	}
	r.Stars = Stars(r.Correct)
	return r
}

// Complete scores the run and merges it into the ladder. The ladder only
// improves: a worse replay leaves earlier stars and unlocks in place.
func (c *Controller) Complete(l *progress.Ladder) Result {
	r := c.Result()
	l.Merge(r.Stage, r.Stars, r.Correct)
	return r
}
