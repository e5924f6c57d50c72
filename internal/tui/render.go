package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termbrot/internal/fractal"
)

// paintFrame draws every pixel as a space on its background color, one
// terminal line per frame row. Runs of equal pixels share one style so the
// set's large flat regions cost a single escape sequence.
func paintFrame(f *fractal.Frame) string {
	if f == nil || f.Width == 0 || f.Height == 0 {
		return ""
	}
	styles := make(map[fractal.Pixel]lipgloss.Style)
	style := func(p fractal.Pixel) lipgloss.Style {
		s, ok := styles[p]
		if !ok {
			s = lipgloss.NewStyle().Background(lipgloss.Color(p.Hex()))
			styles[p] = s
		}
		return s
	}

	var b strings.Builder
	for y := 0; y < f.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := f.Row(y)
		for x := 0; x < len(row); {
			run := 1
			for x+run < len(row) && row[x+run] == row[x] {
				run++
			}
			b.WriteString(style(row[x]).Render(strings.Repeat(" ", run)))
			x += run
		}
	}
	return b.String()
}
