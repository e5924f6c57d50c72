package fractal

// EscapeRadiusSq is the squared escape radius.
const EscapeRadiusSq = 4.0

// Escape iterates z = z^2 + c from z = 0 for c = (x0, y0) and returns the
// iteration at which |z| reached 2, or maxIter if it never did.
func Escape(x0, y0 float64, maxIter int) int {
	var x, y float64
	it := 0
	for x*x+y*y < EscapeRadiusSq && it < maxIter {
		x, y = x*x-y*y+x0, 2*x*y+y0
		it++
	}
	return it
}
