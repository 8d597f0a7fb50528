package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestDisc_Hit(t *testing.T) {
	disc := must[*Disc](t)(NewDisc(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 1.0, stubMaterial{}))

	tests := []struct {
		name      string
		origin    core.Vec3
		shouldHit bool
	}{
		{"center", core.NewVec3(0, 0, 2), true},
		{"inside radius", core.NewVec3(0.5, 0.5, 2), true},
		{"on the rim", core.NewVec3(1, 0, 2), true},
		{"outside radius", core.NewVec3(1.1, 0, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := disc.Hit(core.NewRay(tt.origin, core.NewVec3(0, 0, -1)), core.Epsilon, math.Inf(1))
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if isHit {
				assertUnitNormal(t, hit)
				if math.Abs(hit.T-2) > 1e-9 {
					t.Errorf("Expected t=2, got %f", hit.T)
				}
			}
		})
	}
}

func TestNewDisc_Validation(t *testing.T) {
	if _, err := NewDisc(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), 1, stubMaterial{}); !errors.Is(err, ErrZeroNormal) {
		t.Errorf("Expected ErrZeroNormal, got %v", err)
	}
	if _, err := NewDisc(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), -2, stubMaterial{}); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("Expected ErrInvalidRadius, got %v", err)
	}
}
