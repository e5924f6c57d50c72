package fractal

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RowRange is a half-open range of rows [Start, End) owned by one worker.
type RowRange struct {
	Start, End int
}

func (r RowRange) Len() int { return r.End - r.Start }

func (r RowRange) String() string { return fmt.Sprintf("rows [%d,%d)", r.Start, r.End) }

// Partition splits height rows between workers. Every worker gets
// height/workers rows and the last one also takes the remainder, so the
// ranges are disjoint and cover [0,height) exactly.
func Partition(height, workers int) []RowRange {
	if height <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	per := height / workers
	ranges := make([]RowRange, workers)
	for i := range ranges {
		ranges[i].Start = i * per
		if i == workers-1 {
			ranges[i].End = height
		} else {
			ranges[i].End = (i + 1) * per
		}
	}
	return ranges
}

// DefaultWorkers is the worker count used when none is configured.
func DefaultWorkers() int { return runtime.NumCPU() }

// WorkerError reports a worker that failed and took its frame down with it.
type WorkerError struct {
	Worker int
	Rows   RowRange
	Cause  any
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("fractal: worker %d (%s) failed: %v", e.Worker, e.Rows, e.Cause)
}

func (e *WorkerError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// Renderer turns a Window into a Frame using a fixed number of workers.
// It is immutable once built, so concurrent Render calls are safe.
type Renderer struct {
	vp      Viewport
	table   *CoordinateTable
	budget  Budget
	workers int
}

// NewRenderer builds the coordinate table for vp once. A worker count of
// zero or less selects DefaultWorkers.
func NewRenderer(vp Viewport, budget Budget, workers int) (*Renderer, error) {
	table, err := NewCoordinateTable(vp)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &Renderer{vp: vp, table: table, budget: budget, workers: workers}, nil
}

func (r *Renderer) Viewport() Viewport { return r.vp }
func (r *Renderer) Budget() Budget     { return r.budget }
func (r *Renderer) Workers() int       { return r.workers }

// Render computes one full frame for w. It returns only after every worker
// has finished; if any worker fails the frame is discarded.
func (r *Renderer) Render(w Window) (*Frame, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	maxIter := r.budget.Iterations(w.Width())
	frame := newFrame(r.vp, w, maxIter)

	// More workers than rows would leave all but the last one idle.
	workers := min(r.workers, r.vp.Height)

	var g errgroup.Group
	for i, rows := range Partition(r.vp.Height, workers) {
		if rows.Len() == 0 {
			continue
		}
		frame.Workers++
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = &WorkerError{Worker: i, Rows: rows, Cause: p}
				}
			}()
			r.fill(frame, w, rows)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frame, nil
}

// fill writes rows into the worker's own slice of the frame.
func (r *Renderer) fill(frame *Frame, w Window, rows RowRange) {
	pix := frame.rows(rows)
	width := r.vp.Width
	for py := rows.Start; py < rows.End; py++ {
		line := pix[(py-rows.Start)*width : (py-rows.Start+1)*width]
		for px := range line {
			x0, y0 := w.Point(r.table, px, py)
			line[px] = Shade(Escape(x0, y0, frame.MaxIter), frame.MaxIter)
		}
	}
}
