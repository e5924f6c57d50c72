package tui

import (
	"errors"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termbrot/internal/config"
	"termbrot/internal/fractal"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Workers = 2
	m, err := New(cfg, fractal.Viewport{Width: 16, Height: 8})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func sameWindow(a, b fractal.Window) bool {
	const eps = 1e-12
	return math.Abs(a.Xmin-b.Xmin) <= eps && math.Abs(a.Xmax-b.Xmax) <= eps &&
		math.Abs(a.Ymin-b.Ymin) <= eps && math.Abs(a.Ymax-b.Ymax) <= eps
}

func TestZoomInKeys(t *testing.T) {
	for _, k := range []string{"+", "="} {
		t.Run(k, func(t *testing.T) {
			m, _ := press(t, newTestModel(t), runes(k))
			w := m.Window()
			if math.Abs(w.Width()-2.4) > 1e-12 || math.Abs(w.Height()-2.4) > 1e-12 {
				t.Errorf("after %q window = %s, want 80%% spans", k, w)
			}
			cx, cy := w.Center()
			hx, hy := fractal.Home.Center()
			if math.Abs(cx-hx) > 1e-12 || math.Abs(cy-hy) > 1e-12 {
				t.Errorf("center moved to (%v, %v)", cx, cy)
			}
		})
	}
}

func TestZoomOutThenInRestoresSpan(t *testing.T) {
	m, _ := press(t, newTestModel(t), runes("-"))
	if got := m.Window().Width(); math.Abs(got-3.6) > 1e-12 {
		t.Errorf("width after zoom out = %v, want 3.6", got)
	}
}

func TestPanKeysAreReversible(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
	}{
		{"a then d", []tea.KeyMsg{runes("a"), runes("d")}},
		{"d then a", []tea.KeyMsg{runes("d"), runes("a")}},
		{"w then s", []tea.KeyMsg{runes("w"), runes("s")}},
		{"arrows", []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyUp}, {Type: tea.KeyDown}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			moved, _ := press(t, m, tt.keys[0])
			if moved.Window() == m.Window() {
				t.Fatalf("%v had no effect", tt.keys[0])
			}
			m, _ = press(t, m, tt.keys...)
			if !sameWindow(m.Window(), fractal.Home) {
				t.Errorf("window = %s, want %s", m.Window(), fractal.Home)
			}
		})
	}
}

func TestPanLeftMovesXBoundsDown(t *testing.T) {
	m, _ := press(t, newTestModel(t), runes("a"))
	w := m.Window()
	if math.Abs(w.Xmin-(-2.3)) > 1e-12 || math.Abs(w.Xmax-0.7) > 1e-12 {
		t.Errorf("x bounds = [%v, %v], want [-2.3, 0.7]", w.Xmin, w.Xmax)
	}
	if w.Ymin != fractal.Home.Ymin || w.Ymax != fractal.Home.Ymax {
		t.Errorf("y bounds changed: %s", w)
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	m := newTestModel(t)
	for _, k := range []tea.KeyMsg{runes("x"), runes("é"), {Type: tea.KeyTab}} {
		next, cmd := press(t, m, k)
		if next.Window() != m.Window() || cmd != nil {
			t.Errorf("key %v changed state: %s, cmd %v", k, next.Window(), cmd != nil)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := press(t, newTestModel(t), k)
		if cmd == nil {
			t.Fatalf("%v: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v did not quit", k)
		}
	}
}

func TestResetAndLandmarks(t *testing.T) {
	m, _ := press(t, newTestModel(t), runes("+"), runes("+"), runes("a"))
	m, _ = press(t, m, runes("r"))
	if m.Window() != fractal.Home {
		t.Errorf("after reset window = %s", m.Window())
	}

	for i := 0; i < len(fractal.Landmarks)+1; i++ {
		m, _ = press(t, m, runes("n"))
		want := fractal.Landmarks[i%len(fractal.Landmarks)]
		if m.Window() != want.Window || m.status != want.Name {
			t.Errorf("landmark %d: window %s status %q, want %s %q", i, m.Window(), m.status, want.Window, want.Name)
		}
	}
}

func TestZoomLimit(t *testing.T) {
	m := newTestModel(t)
	m.window = fractal.Window{Xmin: -0.75, Xmax: -0.75 + 5e-14, Ymin: 0.1, Ymax: 0.1 + 5e-14}
	before := m.window
	m, _ = press(t, m, runes("+"))
	if m.Window() != before {
		t.Errorf("window changed past the limit: %s", m.Window())
	}
	if m.status != "zoom limit reached" {
		t.Errorf("status = %q", m.status)
	}
}

func TestRenderLoop(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "rendering") {
		t.Errorf("View before first frame = %q", m.View())
	}

	msg := m.Init()()
	fm, ok := msg.(frameMsg)
	if !ok {
		t.Fatalf("Init produced %T, want frameMsg", msg)
	}
	if fm.frame.Width != 16 || fm.frame.Height != 8 {
		t.Fatalf("frame = %dx%d", fm.frame.Width, fm.frame.Height)
	}

	next, cmd := m.Update(fm)
	m = next.(Model)
	if m.Frame() != fm.frame || m.frames != 1 {
		t.Fatalf("frame not stored")
	}
	if _, ok := cmd().(nextFrameMsg); !ok {
		t.Fatalf("finished frame did not schedule the next one")
	}

	// a key pressed between frames only shows up in the next frame
	m, _ = press(t, m, runes("+"))
	_, cmd = m.Update(nextFrameMsg{})
	fm2, ok := cmd().(frameMsg)
	if !ok {
		t.Fatal("next frame did not render")
	}
	if fm2.frame.Window != m.Window() || fm.frame.Window != fractal.Home {
		t.Errorf("frames rendered %s then %s", fm.frame.Window, fm2.frame.Window)
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) < 8+2 {
		t.Fatalf("View has %d lines, want frame plus status and help", len(lines))
	}
	for i := 0; i < 8; i++ {
		if w := lipgloss.Width(lines[i]); w != 16 {
			t.Errorf("line %d width = %d, want 16", i, w)
		}
	}
}

func TestFullHelpFitsOnScreen(t *testing.T) {
	m := newTestModel(t)
	// terminal is the 8-row viewport plus the 2-row margin
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 10})
	m = next.(Model)
	next, _ = m.Update(m.Init()())
	m = next.(Model)

	m, _ = press(t, m, runes("?"))
	view := m.View()
	if got := lipgloss.Height(view); got > 10 {
		t.Errorf("view is %d lines, terminal has 10", got)
	}
	for _, want := range []string{"quit", "next landmark", "down", "reset", "iter"} {
		if !strings.Contains(view, want) {
			t.Errorf("full help view missing %q:\n%s", want, view)
		}
	}

	m, _ = press(t, m, runes("?"))
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 10 {
		t.Errorf("short help view is %d lines, want 10", len(lines))
	}
}

func TestOutOfRangePan(t *testing.T) {
	m := newTestModel(t)
	m.window = fractal.Window{Xmin: 1e15, Xmax: 1e15 + 0.25, Ymin: -1, Ymax: 1}
	before := m.window
	m, _ = press(t, m, runes("d"))
	if m.Window() != before || m.status != "out of range" {
		t.Errorf("window %s status %q", m.Window(), m.status)
	}
}

func TestFrameErrorQuits(t *testing.T) {
	m := newTestModel(t)
	cause := &fractal.WorkerError{Worker: 1, Cause: errors.New("out of memory")}
	next, cmd := m.Update(frameErrMsg{cause})
	m = next.(Model)
	var we *fractal.WorkerError
	if !errors.As(m.Err(), &we) {
		t.Errorf("Err() = %v, want the worker error", m.Err())
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("frame error did not quit")
	}
}

func TestConfigReload(t *testing.T) {
	m, _ := press(t, newTestModel(t), runes("+"))
	zoomed := m.Window()

	cfg := config.Default()
	cfg.Workers = 3
	cfg.Step = 0.2
	cfg.Budget = fractal.SteepBudget
	next, _ := m.Update(ConfigMsg{Config: cfg})
	m = next.(Model)
	if m.renderer.Workers() != 3 || m.renderer.Budget() != fractal.SteepBudget {
		t.Errorf("renderer not rebuilt: %d workers, %+v", m.renderer.Workers(), m.renderer.Budget())
	}
	if m.Window() != zoomed {
		t.Errorf("reload moved the window to %s", m.Window())
	}
	if m.renderer.Viewport() != (fractal.Viewport{Width: 16, Height: 8}) {
		t.Errorf("viewport changed to %s", m.renderer.Viewport())
	}

	m, _ = press(t, m, runes("-"))
	if got, want := m.Window().Width(), zoomed.Width()*1.4; math.Abs(got-want) > 1e-12 {
		t.Errorf("step not applied: width %v, want %v", got, want)
	}

	before := m.renderer
	next, _ = m.Update(ConfigMsg{Err: errors.New("bad file")})
	m = next.(Model)
	if m.renderer != before || m.status != "config error" {
		t.Errorf("failed reload changed the model: status %q", m.status)
	}
}

func TestPaintFrame(t *testing.T) {
	f := &fractal.Frame{
		Width:  3,
		Height: 2,
		Pix: []fractal.Pixel{
			{R: 0, G: 0, B: 0}, {R: 0, G: 0, B: 0}, {R: 255, G: 0, B: 0},
			{R: 1, G: 2, B: 3}, {R: 1, G: 2, B: 3}, {R: 1, G: 2, B: 3},
		},
	}
	lines := strings.Split(paintFrame(f), "\n")
	if len(lines) != 2 {
		t.Fatalf("painted %d lines, want 2", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 3 {
			t.Errorf("line %d width = %d, want 3", i, w)
		}
	}
	if paintFrame(nil) != "" {
		t.Error("nil frame painted something")
	}
}
