package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrInvalidScene wraps every error reported by Builder.Build
var ErrInvalidScene = errors.New("invalid scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes       []core.Shape        // Objects in the scene, in insertion order
	Lights       []core.Light        // Lights in the scene, in insertion order
	Background   core.Vec3           // Color for rays that hit nothing
	Environment  core.EnvironmentMap // Optional; overrides Background when set
	CameraConfig renderer.CameraConfig
	RenderConfig renderer.RenderConfig
}

func (s *Scene) GetShapes() []core.Shape             { return s.Shapes }
func (s *Scene) GetLights() []core.Light             { return s.Lights }
func (s *Scene) GetBackground() core.Vec3            { return s.Background }
func (s *Scene) GetEnvironment() core.EnvironmentMap { return s.Environment }

// GetPrimitiveCount returns the total number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// Builder assembles a Scene from constructor results. Constructor errors are
// collected rather than checked one by one, so a scene reads as a flat list:
//
//	b.AddShape(geometry.NewSphere(center, 1, mat))
type Builder struct {
	scene *Scene
	errs  []error
}

// NewBuilder starts an empty scene with default camera and render settings
func NewBuilder() *Builder {
	return &Builder{
		scene: &Scene{
			CameraConfig: renderer.DefaultCameraConfig(),
			RenderConfig: renderer.DefaultRenderConfig(),
		},
	}
}

// AddShape appends shape unless err is set, in which case err is recorded
func (b *Builder) AddShape(shape core.Shape, err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("shape %d: %w", len(b.scene.Shapes)+len(b.errs), err))
		return b
	}
	if shape == nil {
		b.errs = append(b.errs, fmt.Errorf("shape %d is nil", len(b.scene.Shapes)+len(b.errs)))
		return b
	}
	b.scene.Shapes = append(b.scene.Shapes, shape)
	return b
}

// AddShapes appends every shape unless err is set
func (b *Builder) AddShapes(shapes []core.Shape, err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("shapes from %d: %w", len(b.scene.Shapes)+len(b.errs), err))
		return b
	}
	for _, shape := range shapes {
		b.AddShape(shape, nil)
	}
	return b
}

// AddLight appends light unless err is set, in which case err is recorded
func (b *Builder) AddLight(light core.Light, err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("light: %w", err))
		return b
	}
	if light == nil {
		b.errs = append(b.errs, errors.New("light is nil"))
		return b
	}
	b.scene.Lights = append(b.scene.Lights, light)
	return b
}

// SetBackground sets the miss color
func (b *Builder) SetBackground(color core.Vec3) *Builder {
	b.scene.Background = color
	return b
}

// SetEnvironment sets the environment map sampled by escaping rays
func (b *Builder) SetEnvironment(env core.EnvironmentMap) *Builder {
	b.scene.Environment = env
	return b
}

// SetCamera replaces the camera configuration
func (b *Builder) SetCamera(config renderer.CameraConfig) *Builder {
	b.scene.CameraConfig = config
	return b
}

// SetRenderConfig replaces the render configuration
func (b *Builder) SetRenderConfig(config renderer.RenderConfig) *Builder {
	b.scene.RenderConfig = config
	return b
}

// Build returns the scene, or every recorded error joined under ErrInvalidScene
func (b *Builder) Build() (*Scene, error) {
	if err := b.scene.RenderConfig.Validate(); err != nil {
		b.errs = append(b.errs, err)
	}
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, errors.Join(b.errs...))
	}
	return b.scene, nil
}
