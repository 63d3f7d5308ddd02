package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/theme"
)

// TileView is the presentation state of a single letter tile.
type TileView struct {
	Letter rune
	Used   bool
}

// TileRack renders a row of letter tiles. The tile at cursor is highlighted
// unless it has already been used. Tiles wrap onto additional rows when the
// rack is wider than width.
func TileRack(tiles []TileView, cursor int, width int) string {
	if len(tiles) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(tiles))
	for i, t := range tiles {
		label := string(t.Letter)
		switch {
		case t.Used:
			rendered = append(rendered, theme.TileUsed.Render(" "))
		case i == cursor:
			rendered = append(rendered, theme.TileSelected.Render(label))
		default:
			rendered = append(rendered, theme.TileUnused.Render(label))
		}
	}

	tileWidth := lipgloss.Width(rendered[0])
	perRow := len(rendered)
	if width > 0 && tileWidth > 0 {
		perRow = width / tileWidth
		if perRow < 1 {
			perRow = 1
		}
	}

	var rows []string
	for start := 0; start < len(rendered); start += perRow {
		end := start + perRow
		if end > len(rendered) {
			end = len(rendered)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
	}

	return strings.Join(rows, "\n")
}

// SpellSlots renders the answer row: one slot per target letter, filled
// slots showing the typed prefix.
func SpellSlots(target string, typed string) string {
	filled := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	empty := lipgloss.NewStyle().Foreground(theme.TextDim)

	slots := make([]string, 0, len(target))
	for i := 0; i < len(target); i++ {
		if i < len(typed) {
			slots = append(slots, filled.Render(string(typed[i])))
		} else {
			slots = append(slots, empty.Render("_"))
		}
	}
	return strings.Join(slots, " ")
}
