package tui

import (
	"time"

	help "github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"termbrot/internal/config"
	"termbrot/internal/fractal"
)

// Model is the interactive explorer. The view window is only changed in
// Update, while render commands work on a copy taken when they start.
type Model struct {
	// terminal size, for clipping only; the viewport is fixed
	width  int
	height int

	cfg      config.Config
	renderer *fractal.Renderer

	window   fractal.Window
	landmark int

	frame   *fractal.Frame
	painted string
	frames  int
	took    time.Duration

	status string
	err    error

	keys keyMap
	help help.Model
}

// New builds a Model rendering into vp with the tunables from cfg.
func New(cfg config.Config, vp fractal.Viewport) (Model, error) {
	r, err := fractal.NewRenderer(vp, cfg.Budget, cfg.Workers)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		cfg:      cfg,
		renderer: r,
		window:   cfg.Window,
		status:   "termbrot ready",
		keys:     defaultKeys(),
		help:     help.New(),
	}
	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.FullKey = keyStyle
	return m, nil
}

// Init starts the render loop: every finished frame schedules the next.
func (m Model) Init() tea.Cmd {
	return m.render()
}

// Window returns the current view window.
func (m Model) Window() fractal.Window { return m.window }

// Frame returns the last completed frame, or nil before the first one.
func (m Model) Frame() *fractal.Frame { return m.frame }

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.err }
