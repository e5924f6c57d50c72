package fractal

// Frame is a row-major buffer of pixels plus the budget it was rendered with.
type Frame struct {
	Width   int
	Height  int
	Pix     []Pixel
	MaxIter int
	Window  Window
	// Workers is how many workers rendered a non-empty share of rows.
	Workers int
}

func newFrame(vp Viewport, w Window, maxIter int) *Frame {
	return &Frame{
		Width:   vp.Width,
		Height:  vp.Height,
		Pix:     make([]Pixel, vp.Width*vp.Height),
		MaxIter: maxIter,
		Window:  w,
	}
}

// At returns the pixel at column x, row y.
func (f *Frame) At(x, y int) Pixel {
	return f.Pix[y*f.Width+x]
}

// Row returns row y as a slice sharing the frame's storage.
func (f *Frame) Row(y int) []Pixel {
	return f.Pix[y*f.Width : (y+1)*f.Width]
}

// rows returns the storage backing rows [r.Start, r.End).
func (f *Frame) rows(r RowRange) []Pixel {
	return f.Pix[r.Start*f.Width : r.End*f.Width]
}
