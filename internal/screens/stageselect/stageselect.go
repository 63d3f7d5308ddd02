// Package stageselect is the stage picker: ten rungs, earned stars, and
// locks on the rungs not yet reached.
package stageselect

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/catalog"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/game"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/router"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/screen"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/components"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/layout"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/theme"
)

// StageSelectScreen lists every stage with its rating and lock state.
type StageSelectScreen struct {
	session     *game.Session
	playFactory func(stageIndex int) screen.Screen
	cursor      int
}

var _ screen.Screen = (*StageSelectScreen)(nil)
var _ screen.KeyHintProvider = (*StageSelectScreen)(nil)

// New creates a StageSelectScreen. playFactory builds the play screen for
// a chosen stage.
func New(session *game.Session, playFactory func(stageIndex int) screen.Screen) *StageSelectScreen {
	s := &StageSelectScreen{
		session:     session,
		playFactory: playFactory,
	}
	s.cursor = s.firstUnlocked()
	return s
}

func (s *StageSelectScreen) firstUnlocked() int {
	for i := 0; i < s.session.Catalog.StageCount(); i++ {
		if s.session.Ladder.Unlocked(i) {
			return i
		}
	}
	return 0
}

func (s *StageSelectScreen) Init() tea.Cmd {
	return nil
}

func (s *StageSelectScreen) Title() string {
	return "Pick a Stage"
}

func (s *StageSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StageSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	count := s.session.Catalog.StageCount()
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < count-1 {
			s.cursor++
		}
	case "enter", "space":
		if !s.session.Ladder.Unlocked(s.cursor) {
			return s, nil
		}
		idx := s.cursor
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: s.playFactory(idx)}
		}
	}

	return s, nil
}

func (s *StageSelectScreen) View(width, height int) string {
	var b strings.Builder

	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Which stage today?")
	b.WriteString(heading)
	b.WriteString("\n\n")

	count := s.session.Catalog.StageCount()
	for i := 0; i < count; i++ {
		b.WriteString(s.renderRow(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	summary := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Total stars: %d / %d", s.session.TotalStars(), count*components.MaxStars))
	b.WriteString(summary)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *StageSelectScreen) renderRow(i int) string {
	unlocked := s.session.Ladder.Unlocked(i)
	prog := s.session.Ladder[i]

	label := fmt.Sprintf("Stage %2d", i+1)
	preview := s.stagePreview(i)

	var status string
	if unlocked {
		status = components.StarRow(prog.Stars)
		if prog.BestCorrect > 0 {
			status += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("  best %d/%d", prog.BestCorrect, catalog.WordsPerStage))
		}
	} else {
		status = lipgloss.NewStyle().Foreground(theme.TextDim).Render("🔒 locked")
	}

	line := fmt.Sprintf("%-10s %-14s %s", label, preview, status)

	switch {
	case !unlocked:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + line)
	case i == s.cursor:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ " + line)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text).Render("    " + line)
	}
}

// stagePreview shows the first word of unlocked stages as a taste of the
// difficulty; locked stages stay a mystery.
func (s *StageSelectScreen) stagePreview(i int) string {
	if !s.session.Ladder.Unlocked(i) {
		return "· · ·"
	}
	entry, ok := s.session.Catalog.Word(i, 0)
	if !ok || entry.Word == "" {
		return ""
	}
	lower := strings.ToLower(entry.Word)
	return strings.ToUpper(lower[:1]) + lower[1:] + "…"
}
