package tui

import (
	key "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termbrot/internal/fractal"
)

type keyMap struct {
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Reset    key.Binding
	Landmark key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Left:     key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
		Right:    key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
		Up:       key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "down")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Landmark: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next landmark")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Left, k.Right, k.Up, k.Down, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Reset, k.Landmark},
		{k.Help, k.Quit},
	}
}

// action maps a key press to a view adjustment; unknown keys map to None.
func (k keyMap) action(msg tea.KeyMsg) fractal.Action {
	switch {
	case key.Matches(msg, k.ZoomIn):
		return fractal.ZoomIn
	case key.Matches(msg, k.ZoomOut):
		return fractal.ZoomOut
	case key.Matches(msg, k.Left):
		return fractal.PanLeft
	case key.Matches(msg, k.Right):
		return fractal.PanRight
	case key.Matches(msg, k.Up):
		return fractal.PanUp
	case key.Matches(msg, k.Down):
		return fractal.PanDown
	}
	return fractal.None
}
