package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// stubMaterial satisfies core.Material for intersection tests
type stubMaterial struct{}

func (stubMaterial) Shade(hit *core.Intercept, tracer core.Tracer, depth int) core.Vec3 {
	return core.Vec3{}
}

const tolerance = 1e-6

func vecNear(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance && math.Abs(a.Z-b.Z) < tolerance
}

// assertUnitNormal fails unless hit carries a unit-length normal
func assertUnitNormal(t *testing.T, hit *core.Intercept) {
	t.Helper()
	if l := hit.Normal.Length(); math.Abs(l-1) > 1e-9 {
		t.Errorf("Expected unit normal, got %v with length %f", hit.Normal, l)
	}
}

func must[T any](t *testing.T) func(T, error) T {
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected construction error: %v", err)
		}
		return v
	}
}
