package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	plane := must[*Plane](t)(NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 2, 0), stubMaterial{}))

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		shouldHit bool
		expectedT float64
	}{
		{"straight down", core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), true, 2},
		{"from below", core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0), true, 2},
		{"pointing away", core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), false, 0},
		{"parallel", core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), false, 0},
		{"nearly parallel", core.NewVec3(0, 1, 0), core.NewVec3(1, -1e-8, 0).Normalize(), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := plane.Hit(core.NewRay(tt.origin, tt.direction), core.Epsilon, math.Inf(1))
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			assertUnitNormal(t, hit)
			if !vecNear(hit.Normal, core.NewVec3(0, 1, 0)) {
				t.Errorf("Expected outward normal (0,1,0), got %v", hit.Normal)
			}
		})
	}
}

func TestNewPlane_ZeroNormal(t *testing.T) {
	_, err := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), stubMaterial{})
	if !errors.Is(err, ErrZeroNormal) {
		t.Errorf("Expected ErrZeroNormal, got %v", err)
	}
}
