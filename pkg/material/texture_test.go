package material

import (
	"image"
	"image/color"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var (
	white = core.NewVec3(1, 1, 1)
	black = core.NewVec3(0, 0, 0)
)

func TestImageTexture_Evaluate(t *testing.T) {
	// Row 0 is the top of the image:
	//   white black
	//   black white
	texture := NewImageTexture(2, 2, []core.Vec3{white, black, black, white})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"bottom-left", core.NewVec2(0.1, 0.1), black},
		{"bottom-right", core.NewVec2(0.9, 0.1), white},
		{"top-left", core.NewVec2(0.1, 0.9), white},
		{"top-right", core.NewVec2(0.9, 0.9), black},
		{"wraps past one", core.NewVec2(1.1, 1.9), white},
		{"wraps negative", core.NewVec2(-0.9, -0.9), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewImageTextureFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})

	texture := NewImageTextureFromImage(img)
	if texture.Width != 2 || texture.Height != 1 {
		t.Fatalf("Expected 2x1 texture, got %dx%d", texture.Width, texture.Height)
	}
	if got := texture.At(0.25, 0.5); !got.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected red on the left, got %v", got)
	}
	if got := texture.At(0.75, 0.5); !got.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected blue on the right, got %v", got)
	}
}

func TestChecker_Evaluate(t *testing.T) {
	world := NewChecker(white, black, 2.0)
	uv := NewUVChecker(white, black, 4)

	tests := []struct {
		name     string
		source   ColorSource
		uv       core.Vec2
		point    core.Vec3
		expected core.Vec3
	}{
		{"world origin cell", world, core.Vec2{}, core.NewVec3(0.5, 0, 0.5), white},
		{"world neighbor cell", world, core.Vec2{}, core.NewVec3(2.5, 0, 0.5), black},
		{"world negative cell", world, core.Vec2{}, core.NewVec3(-0.5, 0, 0.5), black},
		{"world diagonal cell", world, core.Vec2{}, core.NewVec3(2.5, 0, 2.5), white},
		{"uv first cell", uv, core.NewVec2(0.1, 0.1), core.Vec3{}, white},
		{"uv second cell", uv, core.NewVec2(0.3, 0.1), core.Vec3{}, black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.source.Evaluate(tt.uv, tt.point); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewCheckerboardTexture(t *testing.T) {
	texture := NewCheckerboardTexture(4, 4, 2, white, black)
	if got := texture.Pixels[0]; !got.Equals(white) {
		t.Errorf("Expected white at (0,0), got %v", got)
	}
	if got := texture.Pixels[2]; !got.Equals(black) {
		t.Errorf("Expected black at (2,0), got %v", got)
	}
	if got := texture.Pixels[2*4+2]; !got.Equals(white) {
		t.Errorf("Expected white at (2,2), got %v", got)
	}
}

func TestSolidColor(t *testing.T) {
	c := core.NewVec3(0.7, 0.3, 0.1)
	solid := NewSolidColor(c)

	for _, point := range []core.Vec3{{}, core.NewVec3(5, 3, -2)} {
		if got := solid.Evaluate(core.NewVec2(0.5, 0.5), point); !got.Equals(c) {
			t.Errorf("Expected %v at %v, got %v", c, point, got)
		}
	}
}
