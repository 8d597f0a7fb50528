package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Default falloff coefficients, tuned for scenes a few tens of units across
const (
	DefaultConstant  = 1.0
	DefaultLinear    = 0.09
	DefaultQuadratic = 0.032
)

// PointLight radiates from a position with inverse-quadratic falloff
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64

	Constant  float64
	Linear    float64
	Quadratic float64
}

// NewPointLight creates a point light with the default falloff
func NewPointLight(position, color core.Vec3, intensity float64) (*PointLight, error) {
	return NewPointLightWithAttenuation(position, color, intensity, DefaultConstant, DefaultLinear, DefaultQuadratic)
}

// NewPointLightWithAttenuation creates a point light whose radiance falls off
// as 1/(constant + linear·d + quadratic·d²)
func NewPointLightWithAttenuation(position, color core.Vec3, intensity, constant, linear, quadratic float64) (*PointLight, error) {
	if err := checkIntensity(intensity); err != nil {
		return nil, fmt.Errorf("point light at %v: %w", position, err)
	}
	if constant < 0 || linear < 0 || quadratic < 0 || constant+linear+quadratic == 0 {
		return nil, fmt.Errorf("point light at %v: %w", position, ErrInvalidAttenuation)
	}
	return &PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
		Constant:  constant,
		Linear:    linear,
		Quadratic: quadratic,
	}, nil
}

// Type returns the light type
func (p *PointLight) Type() core.LightType {
	return core.LightTypePoint
}

// Direction returns the unit vector toward the light and the distance to it
func (p *PointLight) Direction(from core.Vec3) (core.Vec3, float64) {
	toLight := p.Position.Subtract(from)
	return toLight.Normalize(), toLight.Length()
}

// Attenuation returns the falloff factor at distance d
func (p *PointLight) Attenuation(d float64) float64 {
	denominator := p.Constant + p.Linear*d + p.Quadratic*d*d
	if denominator <= 0 {
		return 0
	}
	return 1.0 / denominator
}

// DirectContribution evaluates the attenuated Lambertian and Phong terms
func (p *PointLight) DirectContribution(hit *core.Intercept, normal, viewDir core.Vec3, shininess float64) core.LightContribution {
	toLight, distance := p.Direction(hit.Point)
	if distance == 0 {
		return core.LightContribution{}
	}
	radiance := p.Color.Multiply(p.Intensity * p.Attenuation(distance))
	return phong(radiance, toLight, normal, viewDir, shininess)
}
