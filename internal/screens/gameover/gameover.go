// Package gameover shows the stage summary: stars, words spelled, and
// the choice to replay or pick another stage.
package gameover

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/catalog"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/game"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/router"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/screen"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/stage"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/components"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/layout"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/theme"
)

// GameOverScreen displays the finished stage's result.
type GameOverScreen struct {
	session *game.Session
	result  stage.Result
	replay  func() screen.Screen
	menu    components.Menu
}

var _ screen.Screen = (*GameOverScreen)(nil)
var _ screen.KeyHintProvider = (*GameOverScreen)(nil)

// New creates a GameOverScreen. replay builds a fresh play screen for the
// same stage.
func New(session *game.Session, result stage.Result, replay func() screen.Screen) *GameOverScreen {
	g := &GameOverScreen{session: session, result: result, replay: replay}
	g.menu = components.NewMenu([]components.MenuItem{
		{Label: "Play again", Action: func() tea.Cmd {
			next := g.replay()
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}},
		{Label: "Back to stages", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	})
	return g
}

func (g *GameOverScreen) Init() tea.Cmd {
	return nil
}

func (g *GameOverScreen) Title() string {
	return "Stage Complete"
}

func (g *GameOverScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "R", Description: "Play again"},
		{Key: "Esc", Description: "Stage list"},
	}
}

func (g *GameOverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "r", "R":
		next := g.replay()
		return g, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	case "esc":
		return g, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	g.menu, cmd = g.menu.Update(msg)
	return g, cmd
}

func (g *GameOverScreen) View(width, height int) string {
	r := g.result
	var b strings.Builder

	headline := "Stage complete!"
	if r.Stars == components.MaxStars {
		headline = "Perfect! The whole hive is buzzing!"
	} else if r.Stars == 0 {
		headline = "Good try! Practice makes perfect."
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.BigStarRow(r.Stars)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Words spelled: %d/%d        Skipped: %d        Mistakes: %d",
		r.Correct, catalog.WordsPerStage, r.Skipped, r.Mistakes)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	mins := int(r.TimeSpent.Minutes())
	secs := int(r.TimeSpent.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time spelling: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	// Unlock callout when this run opened the next stage.
	next := r.Stage + 1
	if next < g.session.Catalog.StageCount() && g.session.Ladder.Unlocked(next) && r.Correct > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Stage %d is now open!", next+1)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.menu.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
