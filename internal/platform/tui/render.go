package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glptrst/platform-game/internal/core"
)

var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          fg("1"),
	core.ColorBrightRed:    fg("9"),
	core.ColorBrightYellow: fg("11"),
	core.ColorBrightWhite:  fg("15"),
	core.ColorGray:         fg("245"),
	core.ColorPurple:       fg("135"),
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// RenderScreen styles a screen for the terminal, one lipgloss render per
// run of same-colored cells.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()
	var out, run strings.Builder
	out.Grow(w*h*2 + h)

	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < w && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.Get(x, y))
			}
			style, ok := palette[color]
			if !ok {
				style = palette[core.ColorDefault]
			}
			out.WriteString(style.Render(run.String()))
		}
	}
	return out.String()
}
