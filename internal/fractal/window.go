// Package fractal renders escape-time images of the Mandelbrot set.
package fractal

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidWindow   = errors.New("fractal: invalid window")
	ErrInvalidViewport = errors.New("fractal: invalid viewport")
)

// Window is the region of the complex plane mapped onto the viewport.
type Window struct {
	Xmin float64 `toml:"xmin" yaml:"xmin"`
	Xmax float64 `toml:"xmax" yaml:"xmax"`
	Ymin float64 `toml:"ymin" yaml:"ymin"`
	Ymax float64 `toml:"ymax" yaml:"ymax"`
}

// Home is the classic full view of the set.
var Home = Window{
	Xmin: -2.0,
	Xmax: 1.0,
	Ymin: -1.5,
	Ymax: 1.5,
}

// minRelativeSpan is the smallest span (relative to the window's magnitude)
// that float64 can still subdivide into distinct pixel coordinates.
const minRelativeSpan = 1e-13

func (w Window) Width() float64  { return w.Xmax - w.Xmin }
func (w Window) Height() float64 { return w.Ymax - w.Ymin }

// Center returns the midpoint of the window.
func (w Window) Center() (x, y float64) {
	return w.Xmin + w.Width()/2, w.Ymin + w.Height()/2
}

// Validate reports whether the bounds are finite and strictly ordered.
func (w Window) Validate() error {
	for _, v := range []float64{w.Xmin, w.Xmax, w.Ymin, w.Ymax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %s", ErrInvalidWindow, w)
		}
	}
	if !(w.Xmin < w.Xmax) || !(w.Ymin < w.Ymax) {
		return fmt.Errorf("%w: %s", ErrInvalidWindow, w)
	}
	return nil
}

// resolvable reports whether float64 still has room to tell the bounds apart.
func (w Window) resolvable() bool {
	scale := math.Max(math.Max(math.Abs(w.Xmin), math.Abs(w.Xmax)), 1)
	if w.Width()/scale < minRelativeSpan {
		return false
	}
	scale = math.Max(math.Max(math.Abs(w.Ymin), math.Abs(w.Ymax)), 1)
	return w.Height()/scale >= minRelativeSpan
}

// Point maps pixel (px, py) to the plane through the precomputed fractions.
func (w Window) Point(t *CoordinateTable, px, py int) (x0, y0 float64) {
	return Lerp(t.X[px], w.Xmin, w.Xmax), Lerp(t.Y[py], w.Ymin, w.Ymax)
}

func (w Window) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", w.Xmin, w.Xmax, w.Ymin, w.Ymax)
}

// Landmark is a named region worth visiting.
type Landmark struct {
	Name   string
	Window Window
}

// Landmarks are classic regions of the Mandelbrot set.
var Landmarks = []Landmark{
	// dense filaments and repeating "seahorse" curls
	{"Seahorse Valley", Window{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}},
	// large bulb with trunk-like tendrils
	{"Elephant Valley", Window{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}},
	{"Spiral Minibrot", Window{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}},
	// threefold symmetric spiral structure
	{"Triple Spiral", Window{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}},
	{"Valley of the Dragon", Window{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}},
	// self-similar copy inside a spiral arm
	{"Minibrot in a Mini-Spiral", Window{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}},
}
