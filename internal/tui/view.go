package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.frame == nil {
		return dimStyle.Render(" rendering " + m.renderer.Viewport().String() + " …")
	}

	helpView := m.help.View(m.keys)
	painted := m.painted
	if m.height > 0 {
		// the frame gives up its bottom rows so status and help stay on screen
		painted = firstLines(painted, m.height-1-lipgloss.Height(helpView))
	}
	var lines []string
	if painted != "" {
		lines = append(lines, painted)
	}
	lines = append(lines, m.renderStatus(), helpView)
	ui := strings.Join(lines, "\n")
	if m.width > 0 {
		ui = lipgloss.NewStyle().MaxWidth(m.width).Render(ui)
	}
	if m.height > 0 {
		ui = lipgloss.NewStyle().MaxHeight(m.height).Render(ui)
	}
	return ui
}

// renderStatus summarizes the frame on screen: where it is, how deep, and
// how long it took.
func (m Model) renderStatus() string {
	f := m.frame
	cx, cy := f.Window.Center()
	zoom := m.renderer.Budget().Zoom(f.Window.Width())
	info := fmt.Sprintf(" x=%.10g y=%.10g  zoom %.3gx  iter %d  frame #%d %s  %d workers ",
		cx, cy, zoom, f.MaxIter, m.frames, m.took.Round(100*time.Microsecond), f.Workers)
	return titleStyle.Render(" "+m.status+" ") + dimStyle.Render(info)
}

func firstLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
