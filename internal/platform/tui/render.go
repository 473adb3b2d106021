package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/softskills-arcade/internal/core"
)

func fg(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

// colorStyles maps the game palette to terminal colours.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorWall:      fg("63"),
	core.ColorFloor:     fg("238"),
	core.ColorPlayer:    fg("220").Bold(true),
	core.ColorEnemy:     fg("196").Bold(true),
	core.ColorFrozen:    fg("51"),
	core.ColorAnswer:    fg("45"),
	core.ColorGem:       fg("201"),
	core.ColorKey:       fg("214"),
	core.ColorHUD:       fg("51"),
	core.ColorPrompt:    fg("15").Bold(true),
	core.ColorGood:      fg("42"),
	core.ColorBad:       fg("203"),
	core.ColorFurniture: fg("130"),
	core.ColorNPC:       fg("39"),
	core.ColorMuted:     fg("245"),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one colour share a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
