package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Shape interface for surfaces that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection with tMin < t < tMax
	Hit(ray Ray, tMin, tMax float64) (*Intercept, bool)
	GetMaterial() Material
}

// Material computes the color leaving a surface toward the viewer
type Material interface {
	// Shade may call back into tracer for reflection and refraction rays
	Shade(hit *Intercept, tracer Tracer, depth int) Vec3
}

type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
)

// LightContribution is a light's unweighted diffuse and specular response at a point
type LightContribution struct {
	Diffuse  Vec3
	Specular Vec3
}

// Light interface for ambient, directional and point lights
type Light interface {
	Type() LightType

	// Direction returns the unit direction from a point toward the light and
	// the distance to it. Lights at infinity report +Inf. Ambient lights
	// return the zero vector.
	Direction(from Vec3) (Vec3, float64)

	// DirectContribution evaluates the light at hit. Callers are responsible
	// for the shadow test.
	DirectContribution(hit *Intercept, normal, viewDir Vec3, shininess float64) LightContribution
}

// Tracer is the engine side of shading: materials use it to look up lights,
// test visibility and spawn secondary rays.
type Tracer interface {
	Trace(ray Ray, depth int) Vec3
	Lights() []Light
	InShadow(hit *Intercept, light Light) bool
	AmbientOcclusion(hit *Intercept) float64
}

// EnvironmentMap returns a color for rays that escape the scene
type EnvironmentMap interface {
	Sample(direction Vec3) Vec3
}

// Scene is the read-only view of a scene consumed by the renderer
type Scene interface {
	GetShapes() []Shape
	GetLights() []Light
	GetBackground() Vec3
	GetEnvironment() EnvironmentMap
}
