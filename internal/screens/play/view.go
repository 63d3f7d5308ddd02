package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/catalog"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/game"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/components"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.errMsg != "" {
		return renderError(width, height, p.errMsg)
	}
	if p.rnd == nil {
		return renderLoading(width, height)
	}
	if p.flow.State() == game.StateCelebrating {
		return p.renderCelebration(width, height)
	}
	return p.renderRound(width, height)
}

func (p *PlayScreen) renderRound(width, height int) string {
	var b strings.Builder

	// Progress line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Stage %d", p.flow.Stage()+1))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Word %d/%d   spelled %d",
			p.flow.Word()+1, catalog.WordsPerStage, p.stageCtl.Correct()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(p.flow.Word())/float64(catalog.WordsPerStage), false, width-8)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// The mascot asks for the word; while audio plays a spinner buzzes.
	prompt := "🐝  Listen and spell the word!"
	if p.speaking {
		prompt = "🐝  " + p.spin.View() + " saying the word..."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(prompt))
	b.WriteString("\n\n")

	// Answer slots.
	slots := components.SpellSlots(p.rnd.Word(), p.rnd.Typed())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, slots))
	b.WriteString("\n\n")

	// Tile rack.
	rack := components.TileRack(tileViews(p), p.cursor, width-8)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rack))
	b.WriteString("\n\n")

	// Mistake flash.
	if p.flash {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Oops, not that one. Try again!"))
	} else if p.rnd.Mistakes() > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("mistakes this word: %d", p.rnd.Mistakes())))
	}

	return b.String()
}

func (p *PlayScreen) renderCelebration(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("🎉  " + p.rnd.Word() + "  🎉"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.HiveYellow).
		Render("✶ ✦ You spelled it! ✦ ✶"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("next word coming up..."))

	return b.String()
}

func tileViews(p *PlayScreen) []components.TileView {
	pool := p.rnd.Tiles()
	views := make([]components.TileView, len(pool))
	for i, t := range pool {
		views[i] = components.TileView{Letter: t.Letter, Used: t.Used}
	}
	return views
}

func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Getting your word ready...")
}

func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
