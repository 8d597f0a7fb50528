package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity, such as the sun
type DirectionalLight struct {
	Dir       core.Vec3 // Unit direction the light travels
	Color     core.Vec3
	Intensity float64
}

// NewDirectionalLight creates a directional light travelling along direction
func NewDirectionalLight(direction, color core.Vec3, intensity float64) (*DirectionalLight, error) {
	d := direction.Normalize()
	if d.IsZero() {
		return nil, fmt.Errorf("directional light %v: %w", direction, ErrZeroDirection)
	}
	if err := checkIntensity(intensity); err != nil {
		return nil, fmt.Errorf("directional light %v: %w", direction, err)
	}
	return &DirectionalLight{Dir: d, Color: color, Intensity: intensity}, nil
}

// Type returns the light type
func (d *DirectionalLight) Type() core.LightType {
	return core.LightTypeDirectional
}

// Direction points against the light's travel; the light is infinitely far away
func (d *DirectionalLight) Direction(from core.Vec3) (core.Vec3, float64) {
	return d.Dir.Negate(), math.Inf(1)
}

// DirectContribution evaluates the Lambertian and Phong terms without attenuation
func (d *DirectionalLight) DirectContribution(hit *core.Intercept, normal, viewDir core.Vec3, shininess float64) core.LightContribution {
	return phong(d.Color.Multiply(d.Intensity), d.Dir.Negate(), normal, viewDir, shininess)
}
