package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewShapesScene creates a scene with one of every primitive. UV-mapped
// shapes wear a debug texture so their parameterisation is visible.
func NewShapesScene() (*Scene, error) {
	white := core.NewVec3(1, 1, 1)

	b := NewBuilder().
		SetCamera(renderer.CameraConfig{
			Eye:    core.NewVec3(0, 2, 7),
			Target: core.NewVec3(0, 0, -1),
			Up:     core.NewVec3(0, 1, 0),
			FOV:    50,
		}).
		SetBackground(core.NewVec3(0.1, 0.1, 0.12))

	// Create materials
	floorTexture := material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(0.2, 0.2, 0.25))
	floor := material.NewTexturedDiffuse(floorTexture, 0.9, 0.05, 10)
	uvDebug := material.NewTexturedDiffuse(material.NewUVDebugTexture(128, 128), 0.9, 0.2, 32)
	blue := material.NewDiffuse(core.NewVec3(0.2, 0.3, 0.8), 0.85, 0.3, 48)
	green := material.NewDiffuse(core.NewVec3(0.2, 0.7, 0.3), 0.85, 0.3, 48)
	copper := material.Metal(core.NewVec3(0.85, 0.5, 0.35))

	b.AddShape(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), floor))

	// Front row
	b.AddShape(geometry.NewSphere(core.NewVec3(-3, 0, 0), 0.8, uvDebug))
	b.AddShape(geometry.NewAxisAlignedBox(core.NewVec3(-1, -0.4, 0), core.NewVec3(0.6, 0.6, 0.6), blue))
	b.AddShape(geometry.NewCylinder(core.NewVec3(1, -1, 0), core.NewVec3(1.4, 0.8, 0), 0.5, green))
	b.AddShape(geometry.NewEllipsoid(core.NewVec3(3, -0.2, 0), core.NewVec3(0.8, 0.5, 0.5), uvDebug))

	// Back row
	b.AddShape(geometry.NewTorus(core.NewVec3(-2, 0.2, -2.5), core.NewVec3(0, 1, 0.6), 0.7, 0.25, copper))
	b.AddShape(geometry.NewDisc(core.NewVec3(0.3, 0.3, -2.5), core.NewVec3(0, 0.3, 1), 0.8, uvDebug))
	b.AddShape(geometry.NewTriangle(
		core.NewVec3(2, -1, -2.5),
		core.NewVec3(3.5, -1, -2.5),
		core.NewVec3(2.75, 1, -2.5),
		uvDebug,
	))

	// Four-sided pyramid as an indexed mesh, turned 45° about its base centre
	pyramidBase := core.NewVec3(4.3, -1, -1.2)
	pyramidTurn := core.NewVec3(0, math.Pi/4, 0)
	b.AddShapes(geometry.NewTriangleMesh(
		[]core.Vec3{
			core.NewVec3(3.7, -1, -1.8),
			core.NewVec3(4.9, -1, -1.8),
			core.NewVec3(4.9, -1, -0.6),
			core.NewVec3(3.7, -1, -0.6),
			core.NewVec3(4.3, 0.3, -1.2), // apex
		},
		[]int{3, 2, 4, 2, 1, 4, 1, 0, 4, 0, 3, 4},
		material.Matte(core.NewVec3(0.9, 0.75, 0.3)),
		&geometry.TriangleMeshOptions{Rotation: &pyramidTurn, Center: &pyramidBase},
	))

	b.AddLight(lights.NewAmbientLight(white, 0.2))
	b.AddLight(lights.NewPointLight(core.NewVec3(0, 4, 4), white, 3))
	b.AddLight(lights.NewDirectionalLight(core.NewVec3(0, -1, -1), white, 0.3))

	return b.Build()
}
