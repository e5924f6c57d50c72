package tui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termbrot/internal/config"
	"termbrot/internal/fractal"
)

type frameMsg struct {
	frame *fractal.Frame
	took  time.Duration
}

type frameErrMsg struct{ err error }

type nextFrameMsg struct{}

// ConfigMsg delivers a reloaded configuration. A non-nil Err means the
// reload failed and Config must be ignored.
type ConfigMsg struct {
	Config config.Config
	Err    error
}

// render renders the current window off the update loop. The window and
// renderer are captured now, so later key presses only affect the next frame.
func (m Model) render() tea.Cmd {
	r, w := m.renderer, m.window
	return func() tea.Msg {
		start := time.Now()
		frame, err := r.Render(w)
		if err != nil {
			return frameErrMsg{err}
		}
		return frameMsg{frame: frame, took: time.Since(start)}
	}
}

func (m Model) next() tea.Cmd {
	if d := m.cfg.FrameInterval(); d > 0 {
		return tea.Tick(d, func(time.Time) tea.Msg { return nextFrameMsg{} })
	}
	return func() tea.Msg { return nextFrameMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameMsg:
		m.frame = msg.frame
		m.painted = paintFrame(msg.frame)
		m.took = msg.took
		m.frames++
		return m, m.next()
	case nextFrameMsg:
		return m, m.render()
	case frameErrMsg:
		log.Printf("render failed: %v", msg.err)
		m.err = fmt.Errorf("render frame: %w", msg.err)
		return m, tea.Quit
	case ConfigMsg:
		m.applyConfig(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Reset):
		m.window = m.cfg.Window
		m.status = "home"
	case key.Matches(msg, m.keys.Landmark):
		lm := fractal.Landmarks[m.landmark%len(fractal.Landmarks)]
		m.landmark++
		m.window = lm.Window
		m.status = lm.Name
	default:
		a := m.keys.action(msg)
		if a == fractal.None {
			return m, nil
		}
		w, err := m.window.Apply(a, m.cfg.Step)
		switch {
		case errors.Is(err, fractal.ErrPrecision):
			m.status = "zoom limit reached"
			return m, nil
		case err != nil:
			m.status = "out of range"
			return m, nil
		}
		m.window = w
		m.status = a.String()
	}
	return m, nil
}

// applyConfig swaps in a renderer built from the new tunables. The current
// window is kept; the new home window only applies on reset.
func (m *Model) applyConfig(msg ConfigMsg) {
	if msg.Err != nil {
		log.Printf("config reload ignored: %v", msg.Err)
		m.status = "config error"
		return
	}
	r, err := fractal.NewRenderer(m.renderer.Viewport(), msg.Config.Budget, msg.Config.Workers)
	if err != nil {
		log.Printf("config reload ignored: %v", err)
		m.status = "config error"
		return
	}
	m.cfg = msg.Config
	m.renderer = r
	m.status = "config reloaded"
	log.Printf("config reloaded: workers=%d budget=%+v", r.Workers(), r.Budget())
}
