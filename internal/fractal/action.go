package fractal

import (
	"errors"
	"fmt"
)

// ErrPrecision is returned when a zoom would push the window below what
// float64 can resolve.
var ErrPrecision = errors.New("fractal: zoom limit reached")

// Action is a single view adjustment triggered by a key press.
type Action int

const (
	None Action = iota
	ZoomIn
	ZoomOut
	PanLeft
	PanRight
	PanUp
	PanDown
)

var actionNames = [...]string{"none", "zoom in", "zoom out", "pan left", "pan right", "pan up", "pan down"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Apply returns w adjusted by a, where step is the fraction of the current
// range to move each bound by. Zooming shrinks or grows every bound by step
// of its axis range; panning shifts both bounds of one axis. "Up" lowers the
// y bounds since rows grow downwards.
//
// If the result is no longer a valid, resolvable window, w is returned
// unchanged. A zoom in that float64 can no longer resolve reports
// ErrPrecision; any other rejected result wraps ErrInvalidWindow.
func (w Window) Apply(a Action, step float64) (Window, error) {
	dx := w.Width() * step
	dy := w.Height() * step

	next := w
	switch a {
	case ZoomIn:
		next.Xmin += dx
		next.Xmax -= dx
		next.Ymin += dy
		next.Ymax -= dy
	case ZoomOut:
		next.Xmin -= dx
		next.Xmax += dx
		next.Ymin -= dy
		next.Ymax += dy
	case PanLeft:
		next.Xmin -= dx
		next.Xmax -= dx
	case PanRight:
		next.Xmin += dx
		next.Xmax += dx
	case PanUp:
		next.Ymin -= dy
		next.Ymax -= dy
	case PanDown:
		next.Ymin += dy
		next.Ymax += dy
	default:
		return w, nil
	}

	err := next.Validate()
	if err == nil && !next.resolvable() {
		err = fmt.Errorf("%w: %s is out of range", ErrInvalidWindow, next)
	}
	switch {
	case err == nil:
		return next, nil
	case a == ZoomIn:
		return w, ErrPrecision
	default:
		return w, err
	}
}
