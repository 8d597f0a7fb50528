package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Room dimensions
const (
	roomFloorY  = -1.0
	roomCeiling = 3.2
	roomBackZ   = -8.0
	roomFrontZ  = 3.5
	roomHalfX   = 4.8
)

// NewRoomScene creates a closed room with a reflective tiled floor, three
// tori along the back wall and three capped cylinders in front of them
func NewRoomScene() (*Scene, error) {
	white := core.NewVec3(1, 1, 1)

	config := renderer.DefaultRenderConfig()
	config.Width = 800
	config.Height = 600

	b := NewBuilder().
		SetCamera(renderer.CameraConfig{
			Eye:    core.NewVec3(0, 1.2, 4),
			Target: core.NewVec3(0, 1.2, 0),
			Up:     core.NewVec3(0, 1, 0),
			FOV:    70,
		}).
		SetRenderConfig(config).
		SetBackground(core.NewVec3(0.94, 0.95, 0.97))

	addRoomShell(b)
	addCheckerTiles(b, 14, 22, 0.9)
	addRoomObjects(b)

	b.AddLight(lights.NewAmbientLight(white, 0.22))
	b.AddLight(lights.NewPointLight(core.NewVec3(0, 3, -2.5), white, 1.35))
	b.AddLight(lights.NewDirectionalLight(core.NewVec3(0.4, -1, -0.2), white, 0.35))
	b.AddLight(lights.NewDirectionalLight(core.NewVec3(-0.4, -1, -0.2), white, 0.35))

	return b.Build()
}

// addRoomShell adds floor, ceiling and three walls, all facing inward
func addRoomShell(b *Builder) {
	wall := material.NewDiffuse(core.NewVec3(0.96, 0.96, 0.97), 0.95, 0.05, 14)
	ceiling := material.NewDiffuse(core.NewVec3(0.98, 0.98, 0.99), 0.96, 0.04, 12)

	b.AddShape(geometry.NewPlane(core.NewVec3(0, roomFloorY, 0), core.NewVec3(0, 1, 0), wall))
	b.AddShape(geometry.NewPlane(core.NewVec3(0, roomCeiling, 0), core.NewVec3(0, -1, 0), ceiling))
	b.AddShape(geometry.NewPlane(core.NewVec3(0, 0, roomBackZ), core.NewVec3(0, 0, 1), wall))
	b.AddShape(geometry.NewPlane(core.NewVec3(-roomHalfX, 0, 0), core.NewVec3(1, 0, 0), wall))
	b.AddShape(geometry.NewPlane(core.NewVec3(roomHalfX, 0, 0), core.NewVec3(-1, 0, 0), wall))
}

// addCheckerTiles lays thin reflective slabs from the back wall to under the
// camera, centered in X. Tiles overlap slightly so no seams show.
func addCheckerTiles(b *Builder, nx, nz int, tileX float64) {
	const (
		slabHeight = 0.02
		overlap    = 0.003
	)

	tiles := [2]*material.Reflective{
		material.NewReflective(core.NewVec3(0.80, 0.77, 0.70), 0.25, 85),
		material.NewReflective(core.NewVec3(0.64, 0.61, 0.55), 0.25, 85),
	}

	halfX := float64(nx) * tileX / 2
	stepZ := (roomFrontZ - roomBackZ) / float64(nz)
	y0 := roomFloorY - 1e-4
	y1 := y0 + slabHeight

	for ix := 0; ix < nx; ix++ {
		for iz := 0; iz < nz; iz++ {
			x0 := -halfX + float64(ix)*tileX
			z0 := roomBackZ + float64(iz)*stepZ

			b.AddShape(geometry.NewBox(
				core.NewVec3(x0-overlap, y0, z0-overlap),
				core.NewVec3(x0+tileX+overlap, y1, z0+stepZ+overlap),
				tiles[(ix+iz)%2],
			))
		}
	}
}

// addRoomObjects adds the tori along the back wall and the pillars in front
func addRoomObjects(b *Builder) {
	metal := material.NewReflective(core.NewVec3(0.92, 0.92, 0.95), 0.9, 200)
	mint := material.NewDiffuse(mustHexColor("#b8caa5"), 0.82, 0.18, 45)
	sky := material.NewDiffuse(mustHexColor("#b4d8d4"), 0.82, 0.18, 45)
	pink := material.NewDiffuse(mustHexColor("#f2cfc9"), 0.85, 0.15, 40)
	coral := material.NewDiffuse(mustHexColor("#dd785b"), 0.83, 0.17, 48)
	olive := material.NewDiffuse(mustHexColor("#c4c66a"), 0.83, 0.17, 48)

	facing := core.NewVec3(0, 0, 1)
	b.AddShape(geometry.NewTorus(core.NewVec3(-2.5, 0.7, -7.2), facing, 1.15, 0.38, metal))
	b.AddShape(geometry.NewTorus(core.NewVec3(0, 0.7, -7.2), facing, 1.15, 0.38, mint))
	b.AddShape(geometry.NewTorus(core.NewVec3(2.5, 0.7, -7.2), facing, 1.15, 0.38, pink))

	const (
		height  = 1.40
		radius  = 0.55
		tileTop = -0.98
	)
	baseY := tileTop + 0.01
	b.AddShape(geometry.NewVerticalCylinder(core.NewVec3(-2.5, baseY, -4.2), radius, height, coral))
	b.AddShape(geometry.NewVerticalCylinder(core.NewVec3(0, baseY, -4.2), radius, height, sky))
	b.AddShape(geometry.NewVerticalCylinder(core.NewVec3(2.5, baseY, -4.2), radius, height, olive))
}

// parseHexColor converts "#rrggbb" to a color in [0,1]
func parseHexColor(s string) (core.Vec3, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return core.Vec3{}, fmt.Errorf("hex color %q: want 6 digits", s)
	}
	rgb, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	return core.NewVec3(
		float64(rgb>>16&0xff)/255,
		float64(rgb>>8&0xff)/255,
		float64(rgb&0xff)/255,
	), nil
}

func mustHexColor(s string) core.Vec3 {
	c, err := parseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
