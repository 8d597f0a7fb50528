package environment

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestUniform_Sample(t *testing.T) {
	env := NewUniform(core.NewVec3(0.2, 0.3, 0.4))
	for _, d := range []core.Vec3{core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1)} {
		if got := env.Sample(d); !got.Equals(env.Color) {
			t.Errorf("Expected %v toward %v, got %v", env.Color, d, got)
		}
	}
}

func TestGradient_Sample(t *testing.T) {
	env := NewGradient(core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"zenith", core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1)},
		{"nadir", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.5, 0.5, 1)},
		{"unnormalized zenith", core.NewVec3(0, 5, 0), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := env.Sample(tt.direction); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDirectionToUV(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		u, v      float64
	}{
		{"+X", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"+Z", core.NewVec3(0, 0, 1), 0.75, 0.5},
		{"-Z", core.NewVec3(0, 0, -1), 0.25, 0.5},
		{"up", core.NewVec3(0, 1, 0), 0.5, 1},
		{"down", core.NewVec3(0, -1, 0), 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := DirectionToUV(tt.direction)
			if math.Abs(u-tt.u) > 1e-9 || math.Abs(v-tt.v) > 1e-9 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.u, tt.v, u, v)
			}
		})
	}
}

func TestEquirect_Sample(t *testing.T) {
	// Top row sky blue, bottom row ground brown
	sky := core.NewVec3(0.4, 0.6, 1.0)
	ground := core.NewVec3(0.4, 0.3, 0.2)
	texture := material.NewImageTexture(2, 2, []core.Vec3{sky, sky, ground, ground})
	env := NewEquirect(texture)

	if got := env.Sample(core.NewVec3(0.1, 1, 0)); !got.Equals(sky) {
		t.Errorf("Expected sky looking up, got %v", got)
	}
	if got := env.Sample(core.NewVec3(0.1, -1, 0)); !got.Equals(ground) {
		t.Errorf("Expected ground looking down, got %v", got)
	}
	if got := env.Sample(core.Vec3{}); !got.IsZero() {
		t.Errorf("Expected black for a zero direction, got %v", got)
	}

	env.Intensity = 0.5
	if got := env.Sample(core.NewVec3(0, 1, 0.1)); !got.Equals(sky.Multiply(0.5)) {
		t.Errorf("Expected intensity to scale the texel, got %v", got)
	}
}
