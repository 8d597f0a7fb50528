package renderer

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// testScene is a minimal core.Scene for renderer tests
type testScene struct {
	shapes      []core.Shape
	lights      []core.Light
	background  core.Vec3
	environment core.EnvironmentMap
}

func (s *testScene) GetShapes() []core.Shape             { return s.shapes }
func (s *testScene) GetLights() []core.Light             { return s.lights }
func (s *testScene) GetBackground() core.Vec3            { return s.background }
func (s *testScene) GetEnvironment() core.EnvironmentMap { return s.environment }

// quietLogger discards renderer output
type quietLogger struct{}

func (quietLogger) Printf(format string, args ...interface{}) {}

// must unwraps a constructor result, failing the test on error
func must[T any](t *testing.T) func(T, error) T {
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected construction error: %v", err)
		}
		return v
	}
}

func testConfig(width, height int) RenderConfig {
	config := DefaultRenderConfig()
	config.Width = width
	config.Height = height
	config.Gamma = 1
	config.TileSize = 4
	config.NumWorkers = 2
	return config
}
