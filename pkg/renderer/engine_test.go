package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/environment"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// floorIntercept is a hit on floor at the origin seen from above
func floorIntercept(floor core.Shape) *core.Intercept {
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	return core.NewIntercept(ray, 1, core.NewVec3(0, 1, 0), floor)
}

func newSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestEngine_InShadow(t *testing.T) {
	white := material.Matte(core.NewVec3(1, 1, 1))
	floor := must[*geometry.Plane](t)(geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), white))
	blocker := must[*geometry.Sphere](t)(geometry.NewSphere(core.NewVec3(0, 5, 0), 1, white))
	pastLight := must[*geometry.Sphere](t)(geometry.NewSphere(core.NewVec3(0, 20, 0), 1, white))
	point := must[*lights.PointLight](t)(lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), 1))
	sun := must[*lights.DirectionalLight](t)(lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1), 1))
	ambient := must[*lights.AmbientLight](t)(lights.NewAmbientLight(core.NewVec3(1, 1, 1), 0.2))

	tests := []struct {
		name     string
		shapes   []core.Shape
		light    core.Light
		shadows  bool
		expected bool
	}{
		{"point light blocked", []core.Shape{floor, blocker}, point, true, true},
		{"point light clear", []core.Shape{floor}, point, true, false},
		{"occluder beyond point light", []core.Shape{floor, pastLight}, point, true, false},
		{"directional light blocked anywhere", []core.Shape{floor, pastLight}, sun, true, true},
		{"ambient light never shadowed", []core.Shape{floor, blocker}, ambient, true, false},
		{"shadows disabled", []core.Shape{floor, blocker}, point, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultRenderConfig()
			config.EnableShadows = tt.shadows
			engine := NewEngine(&testScene{shapes: tt.shapes}, config, nil)

			if got := engine.InShadow(floorIntercept(floor), tt.light); got != tt.expected {
				t.Errorf("Expected InShadow=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEngine_OccludedPointLightContributesNothing(t *testing.T) {
	floorMat := material.NewDiffuse(core.NewVec3(1, 1, 1), 1, 0, 1)
	floor := must[*geometry.Plane](t)(geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), floorMat))
	blocker := must[*geometry.Sphere](t)(geometry.NewSphere(core.NewVec3(0, 5, 0), 1, floorMat))
	point := must[*lights.PointLight](t)(lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), 1))

	ray := core.NewRay(core.NewVec3(2, 1, 0), core.NewVec3(-2, -1, 0).Normalize())

	lit := NewEngine(&testScene{shapes: []core.Shape{floor}, lights: []core.Light{point}}, DefaultRenderConfig(), nil)
	if got := lit.Trace(ray, 0); got.IsZero() {
		t.Fatal("Expected the unblocked floor to be lit")
	}

	shadowed := NewEngine(&testScene{shapes: []core.Shape{floor, blocker}, lights: []core.Light{point}}, DefaultRenderConfig(), nil)
	if got := shadowed.Trace(ray, 0); !got.IsZero() {
		t.Errorf("Expected zero from an occluded point light, got %v", got)
	}
}

func TestEngine_AmbientOcclusion(t *testing.T) {
	white := material.Matte(core.NewVec3(1, 1, 1))
	floor := must[*geometry.Plane](t)(geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), white))
	lid := must[*geometry.Box](t)(geometry.NewBox(core.NewVec3(-50, 0.5, -50), core.NewVec3(50, 0.6, 50), white))

	tests := []struct {
		name     string
		shapes   []core.Shape
		enabled  bool
		strength float64
		check    func(float64) bool
	}{
		{"disabled is exactly one", []core.Shape{floor, lid}, false, 1, func(f float64) bool { return f == 1 }},
		{"open sky is one", []core.Shape{floor}, true, 1, func(f float64) bool { return f == 1 }},
		{"covered floor is dark", []core.Shape{floor, lid}, true, 1, func(f float64) bool { return f >= 0 && f < 0.5 }},
		{"strength limits darkening", []core.Shape{floor, lid}, true, 0.5, func(f float64) bool { return f >= 0.5 && f < 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultRenderConfig()
			config.EnableAmbientOcclusion = tt.enabled
			config.AOSamples = 64
			config.AOStrength = tt.strength
			engine := NewEngine(&testScene{shapes: tt.shapes}, config, newSampler(7))

			factor := engine.AmbientOcclusion(floorIntercept(floor))
			if factor < 0 || factor > 1 || !tt.check(factor) {
				t.Errorf("Unexpected occlusion factor %f", factor)
			}
		})
	}
}

func TestEngine_MirrorSphereReflectsEnvironment(t *testing.T) {
	sky := core.NewVec3(0.3, 0.5, 0.7)
	mirror := must[*geometry.Sphere](t)(geometry.NewSphere(core.Vec3{}, 1, material.Mirror()))
	scene := &testScene{
		shapes:      []core.Shape{mirror},
		environment: environment.NewUniform(sky),
	}
	engine := NewEngine(scene, DefaultRenderConfig(), nil)

	for _, origin := range []core.Vec3{core.NewVec3(0, 0, 5), core.NewVec3(0.5, 0.3, 5), core.NewVec3(3, 3, 3)} {
		ray := core.NewRay(origin, core.NewVec3(0, 0, 0).Subtract(origin).Normalize())
		if got := engine.Trace(ray, 0); !got.Equals(sky) {
			t.Errorf("Expected environment color %v from %v, got %v", sky, origin, got)
		}
	}
}

func TestEngine_RecursionDepth(t *testing.T) {
	background := core.NewVec3(0.1, 0.2, 0.3)
	red := material.NewDiffuse(core.NewVec3(1, 0, 0), 1, 0, 1)
	sphere := must[*geometry.Sphere](t)(geometry.NewSphere(core.Vec3{}, 1, red))
	ambient := must[*lights.AmbientLight](t)(lights.NewAmbientLight(core.NewVec3(1, 1, 1), 1))

	config := DefaultRenderConfig()
	config.MaxRecursionDepth = 2
	engine := NewEngine(&testScene{shapes: []core.Shape{sphere}, lights: []core.Light{ambient}, background: background}, config, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	if got := engine.Trace(ray, 2); !got.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected the surface at the deepest allowed level, got %v", got)
	}
	if got := engine.Trace(ray, 3); !got.Equals(background) {
		t.Errorf("Expected background once depth is exhausted, got %v", got)
	}
}

func TestEngine_FacingMirrorsTerminate(t *testing.T) {
	// Two parallel mirrors bounce forever without the depth limit
	left := must[*geometry.Plane](t)(geometry.NewPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), material.Mirror()))
	right := must[*geometry.Plane](t)(geometry.NewPlane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), material.Mirror()))
	background := core.NewVec3(0.25, 0.25, 0.25)

	config := DefaultRenderConfig()
	config.MaxRecursionDepth = 5
	engine := NewEngine(&testScene{shapes: []core.Shape{left, right}, background: background}, config, nil)

	got := engine.Trace(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), 0)
	if !got.Equals(background) {
		t.Errorf("Expected background after exhausting bounces, got %v", got)
	}
}

func TestEngine_Miss(t *testing.T) {
	background := core.NewVec3(0.1, 0.1, 0.1)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))

	plain := NewEngine(&testScene{background: background}, DefaultRenderConfig(), nil)
	if got := plain.Trace(ray, 0); !got.Equals(background) {
		t.Errorf("Expected background %v, got %v", background, got)
	}

	gradient := environment.NewGradient(core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1))
	withEnv := NewEngine(&testScene{background: background, environment: gradient}, DefaultRenderConfig(), nil)
	if got := withEnv.Trace(ray, 0); !got.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected the environment to override the background, got %v", got)
	}

	if got := withEnv.Trace(ray, math.MaxInt32); !got.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected the environment when depth is exhausted, got %v", got)
	}
}
