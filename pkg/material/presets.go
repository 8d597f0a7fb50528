package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Matte is a rough painted surface with a faint highlight
func Matte(color core.Vec3) *Diffuse {
	return NewDiffuse(color, 0.9, 0.05, 16)
}

// Metal is a polished, mostly reflective surface
func Metal(color core.Vec3) *Reflective {
	return NewReflective(color, 0.7, 120)
}

// Mirror reflects the scene perfectly
func Mirror() *Reflective {
	return NewReflective(core.NewVec3(1, 1, 1), 1.0, 0)
}

// Glass is a clear dielectric with a small specular glint
func Glass(ior float64) *Refractive {
	g := NewRefractive(core.NewVec3(1, 1, 1), ior)
	g.Ks = 0.1
	return g
}
