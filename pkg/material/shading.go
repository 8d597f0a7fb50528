package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// illumination is the light arriving at a hit, split by term and not yet
// weighted by material coefficients or albedo. Diffuse and Specular are
// shadow-tested and scaled by ambient occlusion.
type illumination struct {
	Ambient  core.Vec3
	Diffuse  core.Vec3
	Specular core.Vec3
}

// gatherLight sums every scene light at hit
func gatherLight(hit *core.Intercept, tracer core.Tracer, shininess float64) illumination {
	var result illumination

	normal := hit.FacingNormal()
	viewDir := hit.RayDirection.Negate().Normalize()

	for _, light := range tracer.Lights() {
		contribution := light.DirectContribution(hit, normal, viewDir, shininess)

		if light.Type() == core.LightTypeAmbient {
			result.Ambient = result.Ambient.Add(contribution.Diffuse)
			continue
		}

		if contribution.Diffuse.IsZero() && contribution.Specular.IsZero() {
			continue
		}
		if tracer.InShadow(hit, light) {
			continue
		}

		result.Diffuse = result.Diffuse.Add(contribution.Diffuse)
		result.Specular = result.Specular.Add(contribution.Specular)
	}

	if !result.Diffuse.IsZero() || !result.Specular.IsZero() {
		ao := tracer.AmbientOcclusion(hit)
		result.Diffuse = result.Diffuse.Multiply(ao)
		result.Specular = result.Specular.Multiply(ao)
	}

	return result
}

// reflectionRay leaves the surface on the incident side
func reflectionRay(hit *core.Intercept) core.Ray {
	normal := hit.FacingNormal()
	direction := core.Reflect(hit.RayDirection, normal).Normalize()
	return core.NewRay(hit.Point.Add(normal.Multiply(core.Epsilon)), direction)
}

func clampCoefficient(x float64) float64 {
	return max(0.0, min(1.0, x))
}
