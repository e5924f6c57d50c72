package fractal

import "math"

// Budget derives the maximum iteration count from the zoom depth. Deep zooms
// need more iterations to resolve the boundary; shallow ones do not.
//
//	zoom   = ReferenceWidth / currentWidth, at least 1
//	level  = LevelFactor * log_LogBase(zoom), at least 0
//	budget = Base + Scale * level^1.5, at most Ceiling
type Budget struct {
	Base           float64 `toml:"base" yaml:"base"`
	Scale          float64 `toml:"scale" yaml:"scale"`
	LevelFactor    float64 `toml:"level_factor" yaml:"level_factor"`
	LogBase        float64 `toml:"log_base" yaml:"log_base"`
	Ceiling        float64 `toml:"ceiling" yaml:"ceiling"`
	ReferenceWidth float64 `toml:"reference_width" yaml:"reference_width"`
}

// DefaultBudget is tuned for the home window width of 3.
var DefaultBudget = Budget{
	Base:           150,
	Scale:          80,
	LevelFactor:    1,
	LogBase:        10,
	Ceiling:        2_000_000,
	ReferenceWidth: 3,
}

// SteepBudget doubles the log-zoom level and starts lower, trading shallow
// detail for faster growth when diving.
var SteepBudget = Budget{
	Base:           100,
	Scale:          50,
	LevelFactor:    2,
	LogBase:        10,
	Ceiling:        2_000_000,
	ReferenceWidth: 3,
}

// Zoom returns the clamped zoom ratio for a window of the given width.
func (b Budget) Zoom(currentWidth float64) float64 {
	if !(currentWidth > 0) {
		return math.Inf(1)
	}
	zoom := b.ReferenceWidth / currentWidth
	if !(zoom >= 1) {
		zoom = 1
	}
	return zoom
}

// Iterations returns the iteration budget for a window of the given width.
// Non-positive or NaN widths are treated as infinitely deep and get Ceiling.
func (b Budget) Iterations(currentWidth float64) int {
	zoom := b.Zoom(currentWidth)
	if math.IsInf(zoom, 1) {
		return b.ceiling()
	}

	level := b.LevelFactor * math.Log(zoom) / math.Log(b.LogBase)
	if !(level > 0) {
		level = 0
	}

	it := b.Base + b.Scale*math.Pow(level, 1.5)
	if it > b.Ceiling || math.IsNaN(it) {
		return b.ceiling()
	}
	if it < 1 {
		return 1
	}
	return int(it)
}

func (b Budget) ceiling() int {
	return max(1, int(b.Ceiling))
}
