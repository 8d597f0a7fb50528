package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Construction errors. Constructors wrap these with the offending shape.
var (
	ErrInvalidRadius      = errors.New("radius must be positive and finite")
	ErrZeroNormal         = errors.New("normal must have non-zero length")
	ErrZeroAxis           = errors.New("axis must have non-zero length")
	ErrDegenerateTriangle = errors.New("triangle has zero area")
	ErrInvalidBox         = errors.New("box min corner must be below max corner on every axis")
	ErrNilMaterial        = errors.New("material must not be nil")
)

// validPositive reports whether x is a positive, finite number
func validPositive(x float64) bool {
	return x > 0 && !math.IsNaN(x) && !math.IsInf(x, 0)
}

func checkMaterial(material core.Material) error {
	if material == nil {
		return ErrNilMaterial
	}
	return nil
}

// closerRoot returns the smallest quadratic root within (tMin, tMax)
func closerRoot(a, halfB, c, tMin, tMax float64) (float64, bool) {
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return 0, false
		}
	}
	return root, true
}
