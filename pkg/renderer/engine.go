package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Engine traces rays through a scene. It implements core.Tracer for
// materials. An Engine is not safe for concurrent use; each worker owns one.
type Engine struct {
	shapes      []core.Shape
	lights      []core.Light
	background  core.Vec3
	environment core.EnvironmentMap
	config      RenderConfig
	sampler     core.Sampler
}

// NewEngine creates an engine for scene. sampler drives ambient occlusion.
func NewEngine(scene core.Scene, config RenderConfig, sampler core.Sampler) *Engine {
	return &Engine{
		shapes:      scene.GetShapes(),
		lights:      scene.GetLights(),
		background:  scene.GetBackground(),
		environment: scene.GetEnvironment(),
		config:      config,
		sampler:     sampler,
	}
}

// SetSampler replaces the random source used for ambient occlusion
func (e *Engine) SetSampler(sampler core.Sampler) {
	e.sampler = sampler
}

// Lights returns the scene lights in order
func (e *Engine) Lights() []core.Light {
	return e.lights
}

// Trace returns the color seen along ray. depth counts bounces so far.
func (e *Engine) Trace(ray core.Ray, depth int) core.Vec3 {
	if depth > e.config.MaxRecursionDepth {
		return e.miss(ray)
	}

	hit, ok := e.nearestHit(ray, core.Epsilon, math.Inf(1))
	if !ok {
		return e.miss(ray)
	}

	hit.Normal = core.SafeNormalize(hit.Normal, ray.Direction.Negate())

	mat := hit.Material()
	if mat == nil {
		return e.background
	}
	return mat.Shade(hit, e, depth).Clamp01()
}

// miss returns the environment color along ray, or the background
func (e *Engine) miss(ray core.Ray) core.Vec3 {
	if e.environment != nil {
		return e.environment.Sample(ray.Direction).Clamp01()
	}
	return e.background
}

// nearestHit scans every shape and keeps the closest intersection
func (e *Engine) nearestHit(ray core.Ray, tMin, tMax float64) (*core.Intercept, bool) {
	var closest *core.Intercept
	closestT := tMax

	for _, shape := range e.shapes {
		if hit, ok := shape.Hit(ray, tMin, closestT); ok {
			closest = hit
			closestT = hit.T
		}
	}

	return closest, closest != nil
}

// anyHit reports whether anything lies along ray within (tMin, tMax)
func (e *Engine) anyHit(ray core.Ray, tMin, tMax float64) bool {
	for _, shape := range e.shapes {
		if _, ok := shape.Hit(ray, tMin, tMax); ok {
			return true
		}
	}
	return false
}

// InShadow casts a shadow ray from just above hit toward light. Point lights
// are occluded only by shapes closer than the light.
func (e *Engine) InShadow(hit *core.Intercept, light core.Light) bool {
	if !e.config.EnableShadows || light.Type() == core.LightTypeAmbient {
		return false
	}

	toLight, distance := light.Direction(hit.Point)
	if toLight.IsZero() {
		return false
	}

	normal := hit.FacingNormal()
	origin := hit.Point.Add(normal.Multiply(core.Epsilon))
	return e.anyHit(core.NewRay(origin, toLight), core.Epsilon, distance-core.Epsilon)
}

// AmbientOcclusion returns the unoccluded fraction of the hemisphere above
// hit, weighted by AOStrength. It is 1 when occlusion is disabled.
func (e *Engine) AmbientOcclusion(hit *core.Intercept) float64 {
	if !e.config.EnableAmbientOcclusion || e.config.AOSamples <= 0 || e.sampler == nil {
		return 1.0
	}

	normal := hit.FacingNormal()
	origin := hit.Point.Add(normal.Multiply(2 * core.Epsilon))

	occluded := 0
	for i := 0; i < e.config.AOSamples; i++ {
		direction := core.SampleCosineHemisphere(normal, e.sampler.Get2D())
		if e.anyHit(core.NewRay(origin, direction), core.Epsilon, e.config.AOMaxDistance) {
			occluded++
		}
	}

	factor := 1.0 - float64(occluded)/float64(e.config.AOSamples)*e.config.AOStrength
	return max(0.0, min(1.0, factor))
}
