// Package environment provides the colors returned for rays that leave the
// scene without hitting anything.
package environment

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Uniform returns the same color in every direction
type Uniform struct {
	Color core.Vec3
}

// NewUniform creates a uniform environment
func NewUniform(color core.Vec3) *Uniform {
	return &Uniform{Color: color}
}

// Sample returns the uniform color
func (u *Uniform) Sample(direction core.Vec3) core.Vec3 {
	return u.Color
}

// Gradient blends from Bottom (straight down) to Top (straight up)
type Gradient struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradient creates a vertical sky gradient
func NewGradient(top, bottom core.Vec3) *Gradient {
	return &Gradient{Top: top, Bottom: bottom}
}

// Sample maps the direction's Y from [-1,1] to [0,1] and interpolates
func (g *Gradient) Sample(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return g.Bottom.Lerp(g.Top, t)
}

// Equirect wraps a latitude/longitude panorama around the scene
type Equirect struct {
	Texture   *material.ImageTexture
	Intensity float64
}

// NewEquirect creates an environment from an equirectangular image
func NewEquirect(texture *material.ImageTexture) *Equirect {
	return &Equirect{Texture: texture, Intensity: 1}
}

// DirectionToUV maps a unit direction to panorama coordinates:
// u = atan2(z, x)/(2π) + 0.5, v = acos(-y)/π
func DirectionToUV(d core.Vec3) (float64, float64) {
	u := math.Atan2(d.Z, d.X)/(2*math.Pi) + 0.5
	v := math.Acos(max(-1.0, min(1.0, -d.Y))) / math.Pi
	return u, v
}

// Sample looks up the panorama texel along direction
func (e *Equirect) Sample(direction core.Vec3) core.Vec3 {
	d := direction.Normalize()
	if d.IsZero() || e.Texture == nil || e.Texture.Width == 0 {
		return core.Vec3{}
	}
	u, v := DirectionToUV(d)
	return e.Texture.At(u, v).Multiply(e.Intensity)
}
