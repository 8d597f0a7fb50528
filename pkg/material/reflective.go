package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Reflective is a mirror-like surface. Ks blends between the local
// highlights (0) and the reflected scene (1).
type Reflective struct {
	Color     core.Vec3
	Ks        float64
	Shininess float64
}

// NewReflective creates a reflective material
func NewReflective(color core.Vec3, ks, shininess float64) *Reflective {
	return &Reflective{
		Color:     color,
		Ks:        clampCoefficient(ks),
		Shininess: shininess,
	}
}

// Shade returns (1-ks)·local + ks·(color ⊙ reflected)
func (r *Reflective) Shade(hit *core.Intercept, tracer core.Tracer, depth int) core.Vec3 {
	var local core.Vec3
	if r.Ks < 1 {
		light := gatherLight(hit, tracer, r.Shininess)
		local = r.Color.MultiplyVec(light.Ambient).Add(light.Specular)
	}

	reflected := tracer.Trace(reflectionRay(hit), depth+1)

	color := local.Multiply(1 - r.Ks).Add(r.Color.MultiplyVec(reflected).Multiply(r.Ks))
	return color.Clamp01()
}
