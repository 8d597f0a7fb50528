package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// AmbientLight lights every surface uniformly
type AmbientLight struct {
	Color     core.Vec3
	Intensity float64
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(color core.Vec3, intensity float64) (*AmbientLight, error) {
	if err := checkIntensity(intensity); err != nil {
		return nil, fmt.Errorf("ambient light: %w", err)
	}
	return &AmbientLight{Color: color, Intensity: intensity}, nil
}

// Type returns the light type
func (a *AmbientLight) Type() core.LightType {
	return core.LightTypeAmbient
}

// Direction has no meaning for ambient light
func (a *AmbientLight) Direction(from core.Vec3) (core.Vec3, float64) {
	return core.Vec3{}, 0
}

// DirectContribution returns color·intensity regardless of geometry
func (a *AmbientLight) DirectContribution(hit *core.Intercept, normal, viewDir core.Vec3, shininess float64) core.LightContribution {
	return core.LightContribution{Diffuse: a.Color.Multiply(a.Intensity)}
}
