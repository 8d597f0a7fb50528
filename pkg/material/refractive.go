package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Refractive is a transparent dielectric such as glass or water
type Refractive struct {
	Color     core.Vec3 // Tint applied to transmitted light
	Kd        float64   // Local diffuse weight
	Ks        float64   // Local specular weight
	Shininess float64
	IOR       float64 // Index of refraction (e.g., 1.5 for glass)
	Kr        float64 // Reflection strength
	Kt        float64 // Transmission strength
}

// NewRefractive creates a clear dielectric: kr = kt = 1 and no local shading
func NewRefractive(color core.Vec3, ior float64) *Refractive {
	return &Refractive{
		Color:     color,
		Shininess: 64,
		IOR:       ior,
		Kr:        1,
		Kt:        1,
	}
}

// Fresnel returns Schlick's approximation of reflectance for light arriving
// at cosI from a medium of index n1 into one of index n2
func Fresnel(cosI, n1, n2 float64) float64 {
	r0 := (n1 - n2) / (n1 + n2)
	r0 = r0 * r0
	cosI = max(0.0, min(1.0, cosI))
	return r0 + (1-r0)*math.Pow(1-cosI, 5)
}

// Shade returns kr·F·reflected + kt·(1-F)·(color ⊙ transmitted) + local.
// Under total internal reflection F is 1 and no transmission ray is cast.
func (r *Refractive) Shade(hit *core.Intercept, tracer core.Tracer, depth int) core.Vec3 {
	incident := hit.RayDirection.Normalize()
	facing := hit.FacingNormal()
	cosI := -incident.Dot(facing)

	n1, n2 := 1.0, r.IOR
	if !hit.FrontFace {
		n1, n2 = r.IOR, 1.0
	}

	transmitDir, refracted := core.Refract(incident, hit.Normal, 1.0, r.IOR)

	reflectance := 1.0
	if refracted {
		reflectance = Fresnel(cosI, n1, n2)
	}

	color := core.Vec3{}
	if r.Kd > 0 || r.Ks > 0 {
		light := gatherLight(hit, tracer, r.Shininess)
		color = r.Color.MultiplyVec(light.Ambient.Add(light.Diffuse)).Multiply(r.Kd).
			Add(light.Specular.Multiply(r.Ks))
	}

	if r.Kr > 0 && reflectance > 0 {
		reflected := tracer.Trace(reflectionRay(hit), depth+1)
		color = color.Add(reflected.Multiply(r.Kr * reflectance))
	}

	if refracted && r.Kt > 0 {
		origin := hit.Point.Subtract(facing.Multiply(core.Epsilon))
		transmitted := tracer.Trace(core.NewRay(origin, transmitDir), depth+1)
		color = color.Add(r.Color.MultiplyVec(transmitted).Multiply(r.Kt * (1 - reflectance)))
	}

	return color.Clamp01()
}
