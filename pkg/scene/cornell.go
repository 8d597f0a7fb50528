package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const cornellBoxSize = 555.0

// NewCornellScene creates a Cornell box lit by a point light under the ceiling.
// The walls are planes: the camera sits inside every wall's half-space, so
// only the inner faces are ever visible.
func NewCornellScene() (*Scene, error) {
	white := core.NewVec3(1, 1, 1)

	config := renderer.DefaultRenderConfig()
	config.Width = 400
	config.Height = 400 // Square aspect ratio for Cornell box
	config.SamplesPerPixel = 4
	config.MaxRecursionDepth = 5

	b := NewBuilder().
		SetCamera(renderer.CameraConfig{
			Eye:    core.NewVec3(278, 278, -800), // Outside the open front, looking in
			Target: core.NewVec3(278, 278, 0),
			Up:     core.NewVec3(0, 1, 0),
			FOV:    40,
		}).
		SetRenderConfig(config).
		SetBackground(core.Vec3{})

	wall := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73), 0.9, 0, 1)
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05), 0.9, 0, 1)
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15), 0.9, 0, 1)

	// Floor, ceiling and back wall
	b.AddShape(geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), wall))
	b.AddShape(geometry.NewPlane(core.NewVec3(0, cornellBoxSize, 0), core.NewVec3(0, -1, 0), wall))
	b.AddShape(geometry.NewPlane(core.NewVec3(0, 0, cornellBoxSize), core.NewVec3(0, 0, -1), wall))

	// Left (red) and right (green) walls
	b.AddShape(geometry.NewPlane(core.Vec3{}, core.NewVec3(1, 0, 0), red))
	b.AddShape(geometry.NewPlane(core.NewVec3(cornellBoxSize, 0, 0), core.NewVec3(-1, 0, 0), green))

	// Short block behind the glass sphere
	b.AddShape(geometry.NewAxisAlignedBox(core.NewVec3(390, 82.5, 420), core.NewVec3(165, 165, 165), material.Matte(core.NewVec3(0.73, 0.73, 0.73))))

	b.AddShape(geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, material.Metal(core.NewVec3(0.8, 0.8, 0.9))))
	b.AddShape(geometry.NewSphere(core.NewVec3(370, 90, 220), 90, material.Glass(1.5)))

	// The box is hundreds of units across, so the light does not fall off
	b.AddLight(lights.NewAmbientLight(white, 0.12))
	b.AddLight(lights.NewPointLightWithAttenuation(core.NewVec3(278, 540, 278), white, 1.0, 1, 0, 0))

	return b.Build()
}
