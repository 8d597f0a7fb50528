package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := must[*Sphere](t)(NewSphere(core.NewVec3(0, 0, 0), 1.0, stubMaterial{}))
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, core.Epsilon, math.Inf(1))
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_Distance(t *testing.T) {
	// A ray from (0,0,Z) toward the origin hits a sphere of radius R at t = Z - R
	tests := []struct {
		name   string
		z      float64
		radius float64
	}{
		{"unit sphere", 5, 1},
		{"large sphere", 10, 4},
		{"small sphere", 2, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := must[*Sphere](t)(NewSphere(core.NewVec3(0, 0, 0), tt.radius, stubMaterial{}))
			ray := core.NewRay(core.NewVec3(0, 0, tt.z), core.NewVec3(0, 0, -1))

			hit, isHit := sphere.Hit(ray, core.Epsilon, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-(tt.z-tt.radius)) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.z-tt.radius, hit.T)
			}
			assertUnitNormal(t, hit)
		})
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := must[*Sphere](t)(NewSphere(core.NewVec3(0, 0, 0), 1.0, stubMaterial{}))

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, core.Epsilon, 1000.0)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if !vecNear(hit.Normal, tt.expectedNormal) {
				t.Errorf("Expected outward normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_RespectsEpsilon(t *testing.T) {
	sphere := must[*Sphere](t)(NewSphere(core.NewVec3(0, 0, 0), 1.0, stubMaterial{}))

	// Origin on the surface pointing outward: the only root is t≈0
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))
	if _, isHit := sphere.Hit(ray, core.Epsilon, math.Inf(1)); isHit {
		t.Error("Expected self-intersection at t≈0 to be rejected")
	}
}

func TestSphere_UV(t *testing.T) {
	sphere := must[*Sphere](t)(NewSphere(core.NewVec3(0, 0, 0), 1.0, stubMaterial{}))

	// Hitting the top of the sphere maps to v = 1
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	hit, isHit := sphere.Hit(ray, core.Epsilon, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if !hit.HasUV {
		t.Fatal("Expected sphere hit to carry UV")
	}
	if math.Abs(hit.UV.Y-1.0) > 1e-9 {
		t.Errorf("Expected v=1 at the pole, got %f", hit.UV.Y)
	}

	u, v := SphericalUV(core.NewVec3(1, 0, 0))
	if math.Abs(u-0.5) > 1e-9 || math.Abs(v-0.5) > 1e-9 {
		t.Errorf("Expected (0.5, 0.5) on +X, got (%f, %f)", u, v)
	}
}

func TestNewSphere_Validation(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		material core.Material
		want     error
	}{
		{"zero radius", 0, stubMaterial{}, ErrInvalidRadius},
		{"negative radius", -1, stubMaterial{}, ErrInvalidRadius},
		{"NaN radius", math.NaN(), stubMaterial{}, ErrInvalidRadius},
		{"nil material", 1, nil, ErrNilMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSphere(core.NewVec3(0, 0, 0), tt.radius, tt.material)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}
