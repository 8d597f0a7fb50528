package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/environment"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0,1].
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b
	lp, mp, sp = lp*lp*lp, mp*mp*mp, sp*sp*sp

	// LMS to linear RGB
	return core.NewVec3(
		+4.0767416621*lp-3.3077115913*mp+0.2309699292*sp,
		-1.2684380046*lp+2.6097574011*mp-0.3413193965*sp,
		-0.0041960863*lp-0.7034186147*mp+1.7076147010*sp,
	).Clamp01()
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 10

// NewSphereGridScene creates a grid of reflective spheres whose hue varies
// along x and saturation along z. Sharpness of the highlight cycles between
// neighbours so the grid shows the range of reflective materials.
func NewSphereGridScene() (*Scene, error) {
	white := core.NewVec3(1, 1, 1)

	config := renderer.DefaultRenderConfig()
	config.Width = 640
	config.Height = 360 // 16:9
	config.SamplesPerPixel = 2
	config.MaxRecursionDepth = 3

	b := NewBuilder().
		SetCamera(renderer.CameraConfig{
			Eye:    core.NewVec3(4.5, 6, 18),
			Target: core.NewVec3(4.5, 0.8, 4.5),
			Up:     core.NewVec3(0, 1, 0),
			FOV:    40,
		}).
		SetRenderConfig(config).
		SetBackground(core.NewVec3(0.5, 0.7, 1.0)).
		SetEnvironment(environment.NewGradient(
			core.NewVec3(0.5, 0.7, 1.0), // blue sky
			core.NewVec3(1.0, 1.0, 1.0), // white horizon
		))

	b.AddShape(geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), material.Matte(core.NewVec3(0.5, 0.5, 0.5))))

	// Fit the grid in a 9x9 area centred on x = z = 4.5
	targetArea := 9.0
	spacing := targetArea / float64(sphereGridSize-1)
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	const (
		baseLightness = 0.65
		minChroma     = 0.05
		maxChroma     = 0.25
	)

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := float64(i) / float64(sphereGridSize-1) * 360.0
			chroma := minChroma + float64(j)/float64(sphereGridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			shininess := []float64{200, 80, 30}[(i+j)%3]
			mat := material.NewReflective(oklchToRGB(lightness, chroma, hue), 0.6, shininess)
			b.AddShape(geometry.NewSphere(core.NewVec3(x, radius, z), radius, mat))
		}
	}

	// Sun high and to the side
	b.AddLight(lights.NewAmbientLight(white, 0.2))
	b.AddLight(lights.NewDirectionalLight(core.NewVec3(-20, -25, -20), core.NewVec3(1.0, 0.96, 0.9), 0.9))

	return b.Build()
}
