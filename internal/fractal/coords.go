package fractal

import "fmt"

// Viewport is the grid of output cells, fixed for the process lifetime.
type Viewport struct {
	Width  int
	Height int
}

// MinViewport is used when the terminal cannot report its size.
var MinViewport = Viewport{Width: 80, Height: 24}

// NewViewport derives the render area from a terminal size, leaving margin
// rows and columns free for the status and help lines. The result is never
// smaller than 1x1.
func NewViewport(cols, rows, margin int) Viewport {
	if cols <= 0 || rows <= 0 {
		cols, rows = MinViewport.Width, MinViewport.Height
	}
	return Viewport{
		Width:  max(1, cols-margin),
		Height: max(1, rows-margin),
	}
}

func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, v.Width, v.Height)
	}
	return nil
}

func (v Viewport) String() string { return fmt.Sprintf("%dx%d", v.Width, v.Height) }

// CoordinateTable holds per-axis pixel fractions in [0,1). It depends only on
// the viewport, so it is built once and reused for every frame.
type CoordinateTable struct {
	X []float64
	Y []float64
}

func NewCoordinateTable(vp Viewport) (*CoordinateTable, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	return &CoordinateTable{
		X: Fractions(vp.Width),
		Y: Fractions(vp.Height),
	}, nil
}

// Fractions returns i/n for every i in [0,n).
func Fractions(n int) []float64 {
	if n <= 0 {
		return nil
	}
	f := make([]float64, n)
	for i := range f {
		f[i] = float64(i) / float64(n)
	}
	return f
}

// Lerp maps fraction f onto [lo, hi].
func Lerp(f, lo, hi float64) float64 {
	return f*(hi-lo) + lo
}
