// Package lights implements the ambient, directional and point lights of a
// Whitted scene. Lights are immutable once built and safe for concurrent use.
package lights

import (
	"errors"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var (
	ErrZeroDirection      = errors.New("light direction must have non-zero length")
	ErrNegativeIntensity  = errors.New("light intensity must not be negative")
	ErrInvalidAttenuation = errors.New("attenuation coefficients must be non-negative and not all zero")
)

func checkIntensity(intensity float64) error {
	if intensity < 0 || math.IsNaN(intensity) || math.IsInf(intensity, 0) {
		return ErrNegativeIntensity
	}
	return nil
}

// phong evaluates the Lambertian and Phong lobes for a unit direction toward
// the light. radiance already carries color, intensity and attenuation.
func phong(radiance, toLight, normal, viewDir core.Vec3, shininess float64) core.LightContribution {
	nDotL := normal.Dot(toLight)
	if nDotL <= 0 {
		return core.LightContribution{}
	}

	contribution := core.LightContribution{Diffuse: radiance.Multiply(nDotL)}

	// R = reflect(-L, N)
	r := core.Reflect(toLight.Negate(), normal)
	if rDotV := r.Dot(viewDir); rDotV > 0 && shininess > 0 {
		contribution.Specular = radiance.Multiply(math.Pow(rDotV, shininess))
	}
	return contribution
}
