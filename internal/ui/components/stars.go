package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/theme"
)

// MaxStars is the number of star slots rendered per stage.
const MaxStars = 3

// StarRow renders earned stars as filled glyphs and the remainder hollow.
func StarRow(earned int) string {
	if earned < 0 {
		earned = 0
	}
	if earned > MaxStars {
		earned = MaxStars
	}

	filled := lipgloss.NewStyle().Foreground(theme.HiveYellow).Bold(true)
	hollow := lipgloss.NewStyle().Foreground(theme.TextDim)

	var parts []string
	for i := 0; i < MaxStars; i++ {
		if i < earned {
			parts = append(parts, filled.Render("★"))
		} else {
			parts = append(parts, hollow.Render("☆"))
		}
	}
	return strings.Join(parts, " ")
}

// BigStarRow renders the gameover variant with wider spacing.
func BigStarRow(earned int) string {
	row := StarRow(earned)
	return lipgloss.NewStyle().Padding(0, 1).Render(row)
}
