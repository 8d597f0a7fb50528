package geometry

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// imagTolerance is the largest imaginary part accepted as a real root
const imagTolerance = 1e-6

// SolveQuartic returns the real roots of c4·t⁴ + c3·t³ + c2·t² + c1·t + c0
// in ascending order. Roots come from the eigenvalues of the companion
// matrix and are polished with a few Newton steps.
func SolveQuartic(c4, c3, c2, c1, c0 float64) []float64 {
	if math.Abs(c4) < 1e-14 {
		return nil
	}

	b := c3 / c4
	c := c2 / c4
	d := c1 / c4
	e := c0 / c4

	companion := mat.NewDense(4, 4, []float64{
		-b, -c, -d, -e,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	})

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil
	}

	var roots []float64
	for _, v := range eig.Values(nil) {
		if cmplx.IsNaN(v) || math.Abs(imag(v)) > imagTolerance*math.Max(1, math.Abs(real(v))) {
			continue
		}
		roots = append(roots, polishRoot(real(v), b, c, d, e))
	}
	sort.Float64s(roots)
	return roots
}

// polishRoot refines a root of the monic quartic with Newton's method
func polishRoot(t, b, c, d, e float64) float64 {
	for i := 0; i < 4; i++ {
		f := (((t+b)*t+c)*t+d)*t + e
		df := ((4*t+3*b)*t+2*c)*t + d
		if df == 0 {
			break
		}
		step := f / df
		if math.IsNaN(step) || math.IsInf(step, 0) {
			break
		}
		t -= step
		if math.Abs(step) < 1e-12 {
			break
		}
	}
	return t
}
