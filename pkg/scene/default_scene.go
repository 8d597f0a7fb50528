package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/environment"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewSpheresScene creates the default scene: matte, metal, mirror and glass
// spheres on a checkered ground under a sky gradient
func NewSpheresScene() (*Scene, error) {
	white := core.NewVec3(1, 1, 1)

	config := renderer.DefaultRenderConfig()
	config.SamplesPerPixel = 4
	config.MaxRecursionDepth = 4

	b := NewBuilder().
		SetCamera(renderer.CameraConfig{
			Eye:    core.NewVec3(0, 1.2, 4),
			Target: core.NewVec3(0, 0.5, 0),
			Up:     core.NewVec3(0, 1, 0),
			FOV:    45,
		}).
		SetRenderConfig(config).
		SetBackground(core.NewVec3(0.5, 0.7, 1.0)).
		SetEnvironment(environment.NewGradient(
			core.NewVec3(0.5, 0.7, 1.0), // blue sky
			core.NewVec3(1.0, 1.0, 1.0), // white horizon
		))

	// Create materials
	checker := material.NewChecker(core.NewVec3(0.85, 0.85, 0.8), core.NewVec3(0.3, 0.3, 0.35), 1.0)
	ground := material.NewTexturedDiffuse(checker, 0.9, 0.1, 16)
	red := material.Matte(core.NewVec3(0.75, 0.2, 0.15))
	gold := material.Metal(core.NewVec3(0.9, 0.7, 0.3))
	glass := material.Glass(1.5)

	b.AddShape(geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), ground))
	b.AddShape(geometry.NewSphere(core.NewVec3(-1.2, 0.5, 0), 0.5, red))
	b.AddShape(geometry.NewSphere(core.NewVec3(0, 0.6, -0.6), 0.6, gold))
	b.AddShape(geometry.NewSphere(core.NewVec3(1.2, 0.5, 0.2), 0.5, glass))
	b.AddShape(geometry.NewSphere(core.NewVec3(-0.3, 0.25, 0.9), 0.25, material.Mirror()))

	b.AddLight(lights.NewAmbientLight(white, 0.15))
	b.AddLight(lights.NewPointLight(core.NewVec3(2, 4, 3), white, 2.0))
	b.AddLight(lights.NewDirectionalLight(core.NewVec3(-1, -1, -0.5), white, 0.4))

	return b.Build()
}
