// Package progress tracks the unlock ladder: per-stage stars and which
// stages the learner may enter.
package progress

import "encoding/json"

// StageCount is the length of the ladder.
const StageCount = 10

// MaxStars is the best rating a stage can earn.
const MaxStars = 3

// StageProgress is the persisted record of one stage.
type StageProgress struct {
	Stars       int  `json:"stars"`
	Unlocked    bool `json:"unlocked"`
	BestCorrect int  `json:"best_correct"`
}

// Ladder is the full progression state. The zero value is not playable;
// use DefaultLadder.
type Ladder [StageCount]StageProgress

// DefaultLadder returns a fresh ladder with only the first stage open.
func DefaultLadder() Ladder {
	var l Ladder
	l[0].Unlocked = true
	return l
}

// Merge folds a completed stage result into the ladder without ever
// regressing: stars and best-correct only move up, unlocks never close.
// The next stage opens only when the run earned at least one star; a
// starless finish records its best-correct but climbs nothing. A stage
// index out of range is ignored. Returns true when anything changed.
func (l *Ladder) Merge(stage, stars, correct int) bool {
	if stage < 0 || stage >= StageCount {
		return false
	}
	if stars > MaxStars {
		stars = MaxStars
	}

	changed := false
	if stars > l[stage].Stars {
		l[stage].Stars = stars
		changed = true
	}
	if correct > l[stage].BestCorrect {
		l[stage].BestCorrect = correct
		changed = true
	}
	if stars >= 1 && l.Unlock(stage+1) {
		changed = true
	}
	return changed
}

// Unlock opens a stage. Out-of-range indexes are ignored. Returns true
// when the stage was previously locked.
func (l *Ladder) Unlock(stage int) bool {
	if stage < 0 || stage >= StageCount {
		return false
	}
	if l[stage].Unlocked {
		return false
	}
	l[stage].Unlocked = true
	return true
}

// Unlocked reports whether a stage may be entered.
func (l *Ladder) Unlocked(stage int) bool {
	if stage < 0 || stage >= StageCount {
		return false
	}
	return l[stage].Unlocked
}

// TotalStars sums the stars across all stages.
func (l *Ladder) TotalStars() int {
	total := 0
	for _, s := range l {
		total += s.Stars
	}
	return total
}

// Encode serializes the ladder for storage.
func (l *Ladder) Encode() ([]byte, error) {
	return json.Marshal(l)
}

// Decode restores a ladder from stored bytes. Malformed or suspicious
// data falls back to the default ladder rather than failing: a broken
// save file should never lock a kid out of the game.
func Decode(data []byte) Ladder {
	var l Ladder
	if err := json.Unmarshal(data, &l); err != nil {
		return DefaultLadder()
	}
	for i := range l {
		if l[i].Stars < 0 || l[i].Stars > MaxStars || l[i].BestCorrect < 0 {
			return DefaultLadder()
		}
	}
	// Stage one must always be open.
	l[0].Unlocked = true
	return l
}
