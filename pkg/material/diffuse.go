package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Diffuse is an opaque Phong surface
type Diffuse struct {
	Albedo    ColorSource // Base color (can be solid or textured)
	Kd        float64     // Diffuse coefficient
	Ks        float64     // Specular coefficient
	Shininess float64     // Phong exponent
}

// NewDiffuse creates a diffuse material with a solid color
func NewDiffuse(albedo core.Vec3, kd, ks, shininess float64) *Diffuse {
	return NewTexturedDiffuse(NewSolidColor(albedo), kd, ks, shininess)
}

// NewTexturedDiffuse creates a diffuse material whose color comes from a texture
func NewTexturedDiffuse(albedo ColorSource, kd, ks, shininess float64) *Diffuse {
	return &Diffuse{
		Albedo:    albedo,
		Kd:        clampCoefficient(kd),
		Ks:        clampCoefficient(ks),
		Shininess: shininess,
	}
}

// Shade returns albedo·ambient + kd·albedo·diffuse + ks·specular
func (d *Diffuse) Shade(hit *core.Intercept, tracer core.Tracer, depth int) core.Vec3 {
	albedo := d.Albedo.Evaluate(hit.UV, hit.Point)
	light := gatherLight(hit, tracer, d.Shininess)

	color := albedo.MultiplyVec(light.Ambient).
		Add(albedo.MultiplyVec(light.Diffuse).Multiply(d.Kd)).
		Add(light.Specular.Multiply(d.Ks))

	return color.Clamp01()
}
