// Package game models the high level play session as a small state
// machine, kept free of UI concerns so transitions can be tested directly.
package game

import "github.com/mshoubaki/Spelling-Bee-Trainer/internal/progress"

// State is a phase of the play session.
type State int

const (
	// StateStart is the welcome screen.
	StateStart State = iota
	// StateStageSelect is the stage picker.
	StateStageSelect
	// StatePlaying is an active spelling round.
	StatePlaying
	// StateCelebrating is the short burst between a win and the next word.
	StateCelebrating
	// StateGameOver is the stage summary after the last word.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateStageSelect:
		return "stage-select"
	case StatePlaying:
		return "playing"
	case StateCelebrating:
		return "celebrating"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Flow tracks the current phase plus which stage and word are active.
type Flow struct {
	state State
	stage int
	word  int
}

// NewFlow starts a session at the welcome screen.
func NewFlow() *Flow {
	return &Flow{state: StateStart}
}

// State returns the current phase.
func (f *Flow) State() State { return f.state }

// Stage returns the active stage index. Meaningful once playing.
func (f *Flow) Stage() int { return f.stage }

// Word returns the active word index within the stage.
func (f *Flow) Word() int { return f.word }

// Begin moves from the welcome screen to stage selection.
func (f *Flow) Begin() {
	if f.state == StateStart {
		f.state = StateStageSelect
	}
}

// SelectStage enters a stage if the ladder has it unlocked. Locked or
// out-of-range stages are rejected and the flow stays where it is.
func (f *Flow) SelectStage(stageIndex int, l *progress.Ladder) bool {
	if f.state != StateStageSelect {
		return false
	}
	if l == nil || !l.Unlocked(stageIndex) {
		return false
	}
	f.state = StatePlaying
	f.stage = stageIndex
	f.word = 0
	return true
}

// Win records a spelled word. Mid-stage wins pause on the celebration;
// the final word goes straight to the stage summary.
func (f *Flow) Win(lastWord bool) {
	if f.state != StatePlaying {
		return
	}
	if lastWord {
		f.state = StateGameOver
		return
	}
	f.state = StateCelebrating
}

// SkipWord moves past the current word without celebrating. Skipping the
// final word still ends the stage.
func (f *Flow) SkipWord(lastWord bool) {
	if f.state != StatePlaying {
		return
	}
	if lastWord {
		f.state = StateGameOver
		return
	}
	f.word++
}

// AdvanceWord ends the celebration and starts the next word.
func (f *Flow) AdvanceWord() {
	if f.state != StateCelebrating {
		return
	}
	f.word++
	f.state = StatePlaying
}

// Replay restarts the just-finished stage from its first word.
func (f *Flow) Replay() {
	if f.state != StateGameOver {
		return
	}
	f.word = 0
	f.state = StatePlaying
}

// Back returns to stage selection from play or the stage summary.
func (f *Flow) Back() {
	switch f.state {
	case StatePlaying, StateCelebrating, StateGameOver:
		f.state = StateStageSelect
	}
}
