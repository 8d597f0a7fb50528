package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	tri := must[*Triangle](t)(NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		stubMaterial{},
	))

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		shouldHit bool
	}{
		{"interior", core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1), true},
		{"from behind", core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1), true},
		{"on shared edge", core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1), true},
		{"on vertex", core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), true},
		{"outside", core.NewVec3(0.8, 0.8, 1), core.NewVec3(0, 0, -1), false},
		{"parallel", core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tri.Hit(core.NewRay(tt.origin, tt.direction), core.Epsilon, math.Inf(1))
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			assertUnitNormal(t, hit)
			// Winding (V1-V0) × (V2-V0) gives +Z regardless of the ray side
			if !vecNear(hit.Normal, core.NewVec3(0, 0, 1)) {
				t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
			}
		})
	}
}

func TestTriangle_BarycentricUV(t *testing.T) {
	tri := must[*Triangle](t)(NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		stubMaterial{},
	))

	hit, isHit := tri.Hit(core.NewRay(core.NewVec3(0.5, 1, 1), core.NewVec3(0, 0, -1)), core.Epsilon, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.UV.X-0.25) > 1e-9 || math.Abs(hit.UV.Y-0.5) > 1e-9 {
		t.Errorf("Expected barycentric (0.25, 0.5), got %v", hit.UV)
	}
}

func TestNewTriangle_Degenerate(t *testing.T) {
	_, err := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 1, 1),
		core.NewVec3(2, 2, 2),
		stubMaterial{},
	)
	if !errors.Is(err, ErrDegenerateTriangle) {
		t.Errorf("Expected ErrDegenerateTriangle, got %v", err)
	}
}
