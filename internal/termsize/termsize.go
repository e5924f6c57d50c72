// Package termsize queries the terminal dimensions once at startup.
package termsize

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"termbrot/internal/fractal"
)

// Querier reports the terminal size in columns and rows.
type Querier func() (cols, rows int, err error)

// Stdout queries the terminal attached to standard output.
func Stdout() (int, int, error) {
	return Query(os.Stdout.Fd())
}

// Query returns the size of the terminal behind fd.
func Query(fd uintptr) (cols, rows int, err error) {
	if !term.IsTerminal(int(fd)) {
		return 0, 0, fmt.Errorf("termsize: fd %d is not a terminal", fd)
	}
	cols, rows, err = term.GetSize(int(fd))
	if err != nil {
		return 0, 0, fmt.Errorf("termsize: %w", err)
	}
	return cols, rows, nil
}

// Viewport sizes the render area from q, falling back to
// fractal.MinViewport when the query fails or reports nothing usable.
// The returned error is informational; the viewport is always valid.
func Viewport(q Querier, margin int) (fractal.Viewport, error) {
	cols, rows, err := q()
	if err == nil && (cols <= 0 || rows <= 0) {
		err = fmt.Errorf("termsize: terminal reported %dx%d", cols, rows)
	}
	if err != nil {
		cols, rows = fractal.MinViewport.Width, fractal.MinViewport.Height
	}
	return fractal.NewViewport(cols, rows, margin), err
}
