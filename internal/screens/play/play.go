// Package play runs the spelling rounds of one stage: pronounce, pick
// tiles, celebrate, repeat.
package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/catalog"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/game"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/round"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/router"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/screen"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/stage"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/store"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/components"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/layout"
)

const (
	celebrateDur = 1200 * time.Millisecond
	flashDur     = 350 * time.Millisecond
	speechDelay  = 400 * time.Millisecond
)

// GameOverFactory builds the stage summary screen pushed after the last
// word. Injected to keep the screen packages cycle-free.
type GameOverFactory func(session *game.Session, result stage.Result, replay func() screen.Screen) screen.Screen

// PlayScreen drives one stage run.
type PlayScreen struct {
	session  *game.Session
	flow     *game.Flow
	stageCtl *stage.Controller
	rnd      *round.Controller
	entry    catalog.WordEntry

	gameOverFactory GameOverFactory

	cursor    int
	flash     bool
	errMsg    string
	speaking  bool
	speechGen int
	spin      components.Spinner
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for the given stage. The stage must already be
// unlocked; a locked stage yields an error view.
func New(session *game.Session, stageIndex int, gameOverFactory GameOverFactory) *PlayScreen {
	p := &PlayScreen{
		session:         session,
		flow:            game.NewFlow(),
		gameOverFactory: gameOverFactory,
		spin:            components.NewSpinner(),
	}

	p.flow.Begin()
	if !p.flow.SelectStage(stageIndex, &session.Ladder) {
		p.errMsg = "that stage is still locked"
		return p
	}
	p.stageCtl = stage.New(stageIndex)
	return p
}

func (p *PlayScreen) Init() tea.Cmd {
	if p.errMsg != "" {
		return nil
	}
	return tea.Batch(p.startWord(), p.spin.Init())
}

func (p *PlayScreen) Title() string {
	return "Spell It!"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.flow.State() == game.StateCelebrating {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next word"},
		}
	}
	return []layout.KeyHint{
		{Key: "a-z", Description: "Pick letter"},
		{Key: "←→", Description: "Move"},
		{Key: "Ctrl+R", Description: "Hear again"},
		{Key: "Ctrl+S", Description: "Skip"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case speechDoneMsg:
		// Results for earlier words arrive late; ignore them.
		if msg.Gen == p.speechGen {
			p.speaking = false
		}
		return p, nil

	case celebrateDoneMsg:
		if msg.Gen != p.speechGen || p.flow.State() != game.StateCelebrating {
			return p, nil
		}
		return p, p.advanceWord()

	case flashClearMsg:
		p.flash = false
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.speaking {
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.errMsg != "" {
		return p, popCmd()
	}

	if p.flow.State() == game.StateCelebrating {
		return p, p.advanceWord()
	}

	if p.flow.State() != game.StatePlaying || p.rnd == nil {
		return p, nil
	}

	// Commands stay off the letter keys so every letter can pick a tile.
	switch key {
	case "esc":
		return p, popCmd()
	case "ctrl+r":
		return p, p.pronounce(0)
	case "ctrl+s":
		return p.skipWord()
	case "left":
		p.moveCursor(-1)
		return p, nil
	case "right":
		p.moveCursor(1)
		return p, nil
	case "enter", "space":
		tilesNow := p.rnd.Tiles()
		if p.cursor >= 0 && p.cursor < len(tilesNow) {
			return p.applyEvent(p.rnd.Select(tilesNow[p.cursor].ID))
		}
		return p, nil
	}

	if len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
		return p.applyEvent(p.rnd.SelectLetter(rune(key[0] - 'a' + 'A')))
	}
	if len(key) == 1 && key[0] >= 'A' && key[0] <= 'Z' {
		return p.applyEvent(p.rnd.SelectLetter(rune(key[0])))
	}

	return p, nil
}

func (p *PlayScreen) applyEvent(ev round.Event) (screen.Screen, tea.Cmd) {
	switch ev {
	case round.EventMistake:
		p.flash = true
		return p, tea.Tick(flashDur, func(time.Time) tea.Msg {
			return flashClearMsg{}
		})

	case round.EventPlaced:
		p.snapCursor()
		return p, nil

	case round.EventWon:
		return p.winWord()
	}
	return p, nil
}

func (p *PlayScreen) winWord() (screen.Screen, tea.Cmd) {
	out := p.rnd.Outcome()
	p.stageCtl.Record(out)
	p.appendRound(out)

	last := p.isLastWord()
	p.flow.Win(last)
	if last {
		return p, p.finishStage()
	}

	gen := p.speechGen
	return p, tea.Tick(celebrateDur, func(time.Time) tea.Msg {
		return celebrateDoneMsg{Gen: gen}
	})
}

func (p *PlayScreen) skipWord() (screen.Screen, tea.Cmd) {
	out := p.rnd.Skip()
	p.stageCtl.Record(out)
	p.appendRound(out)

	last := p.isLastWord()
	p.flow.SkipWord(last)
	if last {
		return p, p.finishStage()
	}
	return p, p.startWord()
}

func (p *PlayScreen) advanceWord() tea.Cmd {
	p.flow.AdvanceWord()
	return p.startWord()
}

// startWord builds the round for the flow's current word and kicks off
// pronunciation after a short beat.
func (p *PlayScreen) startWord() tea.Cmd {
	entry, ok := p.session.Catalog.Word(p.flow.Stage(), p.flow.Word())
	if !ok {
		// A short catalog ends the stage early rather than crashing.
		return p.finishStage()
	}
	p.entry = entry

	rnd, err := round.New(entry.Word, p.session.Gen)
	if err != nil {
		p.errMsg = err.Error()
		return nil
	}
	p.rnd = rnd
	p.cursor = 0
	p.flash = false

	return p.pronounce(speechDelay)
}

// pronounce speaks the current word asynchronously. The generation
// counter keeps a slow synthesis for word N from flagging word N+1.
func (p *PlayScreen) pronounce(delay time.Duration) tea.Cmd {
	if p.session.Speaker == nil {
		return nil
	}

	p.speechGen++
	gen := p.speechGen
	p.speaking = true

	word, clip := p.entry.Word, p.entry.Clip
	speaker := p.session.Speaker

	return tea.Batch(
		func() tea.Msg {
			if delay > 0 {
				time.Sleep(delay)
			}
			err := speaker.Speak(context.Background(), word, clip)
			return speechDoneMsg{Gen: gen, Err: err}
		},
		p.spin.Init(),
	)
}

func (p *PlayScreen) isLastWord() bool {
	return p.flow.Word() >= catalog.WordsPerStage-1
}

// finishStage scores the run, merges the ladder, persists, and shows the
// summary.
func (p *PlayScreen) finishStage() tea.Cmd {
	ctx := context.Background()
	result := p.stageCtl.Complete(&p.session.Ladder)

	_ = p.session.Store.AppendStage(ctx, store.StageEvent{
		Stage:   result.Stage,
		Correct: result.Correct,
		Stars:   result.Stars,
	})
	_ = p.session.SaveProgress(ctx)

	session := p.session
	factory := p.gameOverFactory
	stageIndex := result.Stage
	replay := func() screen.Screen {
		return New(session, stageIndex, factory)
	}

	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: factory(session, result, replay),
		}
	}
}

func (p *PlayScreen) appendRound(out round.Outcome) {
	_ = p.session.Store.AppendRound(context.Background(), store.RoundEvent{
		Word:      out.Word,
		Mistakes:  out.Mistakes,
		TimeSpent: out.TimeSpent,
		Skipped:   out.Skipped,
	})
}

// moveCursor shifts the tile cursor, skipping used tiles.
func (p *PlayScreen) moveCursor(dir int) {
	tilesNow := p.rnd.Tiles()
	if len(tilesNow) == 0 {
		return
	}
	i := p.cursor
	for step := 0; step < len(tilesNow); step++ {
		i += dir
		if i < 0 || i >= len(tilesNow) {
			return
		}
		if !tilesNow[i].Used {
			p.cursor = i
			return
		}
	}
}

// snapCursor keeps the cursor on an unused tile after a pick consumes one.
func (p *PlayScreen) snapCursor() {
	tilesNow := p.rnd.Tiles()
	if p.cursor < len(tilesNow) && !tilesNow[p.cursor].Used {
		return
	}
	for i, t := range tilesNow {
		if !t.Used {
			p.cursor = i
			return
		}
	}
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
