package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/environment"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewGlassScene shows refraction: a solid glass sphere and a flattened
// water lens in front of colored pillars, with ambient occlusion enabled
func NewGlassScene() (*Scene, error) {
	white := core.NewVec3(1, 1, 1)

	config := renderer.DefaultRenderConfig()
	config.SamplesPerPixel = 4
	config.MaxRecursionDepth = 6
	config.EnableAmbientOcclusion = true
	config.AOSamples = 8
	config.AOMaxDistance = 1.5

	b := NewBuilder().
		SetCamera(renderer.CameraConfig{
			Eye:    core.NewVec3(0, 1.5, 5),
			Target: core.NewVec3(0, 1, -1),
			Up:     core.NewVec3(0, 1, 0),
			FOV:    50,
		}).
		SetRenderConfig(config).
		SetBackground(core.NewVec3(0.6, 0.75, 0.95)).
		SetEnvironment(environment.NewGradient(
			core.NewVec3(0.4, 0.6, 0.95),
			core.NewVec3(0.95, 0.95, 0.9),
		))

	// Create materials
	checker := material.NewChecker(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.15, 0.15, 0.15), 0.5)
	ground := material.NewTexturedDiffuse(checker, 0.85, 0.1, 20)
	water := material.NewRefractive(core.NewVec3(0.85, 0.95, 1.0), 1.33)
	pillars := []core.Vec3{
		core.NewVec3(0.85, 0.2, 0.2),
		core.NewVec3(0.2, 0.75, 0.3),
		core.NewVec3(0.2, 0.35, 0.85),
	}

	b.AddShape(geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), ground))
	b.AddShape(geometry.NewSphere(core.NewVec3(-0.6, 1, 0), 1, material.Glass(1.5)))
	b.AddShape(geometry.NewEllipsoid(core.NewVec3(1.6, 0.9, 0.8), core.NewVec3(0.6, 0.6, 0.15), water))

	for i, color := range pillars {
		base := core.NewVec3(-2+2*float64(i), 0, -3)
		b.AddShape(geometry.NewVerticalCylinder(base, 0.35, 2.5, material.Matte(color)))
	}

	b.AddLight(lights.NewAmbientLight(white, 0.2))
	b.AddLight(lights.NewPointLight(core.NewVec3(-3, 5, 4), white, 2.5))
	b.AddLight(lights.NewDirectionalLight(core.NewVec3(0.3, -1, -0.4), white, 0.3))

	return b.Build()
}
