package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates two colors on a grid of cells. In world space the cells
// are cubes of side Size; in UV space there are Size cells per unit.
type Checker struct {
	Even, Odd core.Vec3
	Size      float64
	UseUV     bool
}

// NewChecker creates a world-space checkerboard with cubic cells of side size
func NewChecker(even, odd core.Vec3, size float64) *Checker {
	if size <= 0 {
		size = 1
	}
	return &Checker{Even: even, Odd: odd, Size: size}
}

// NewUVChecker creates a checkerboard with cellsPerUnit cells along u and v
func NewUVChecker(even, odd core.Vec3, cellsPerUnit float64) *Checker {
	if cellsPerUnit <= 0 {
		cellsPerUnit = 1
	}
	return &Checker{Even: even, Odd: odd, Size: cellsPerUnit, UseUV: true}
}

// Evaluate picks the cell color for uv or point
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	var sum int
	if c.UseUV {
		sum = cell(uv.X*c.Size) + cell(uv.Y*c.Size)
	} else {
		sum = cell(point.X/c.Size) + cell(point.Y/c.Size) + cell(point.Z/c.Size)
	}
	if sum%2 == 0 {
		return c.Even
	}
	return c.Odd
}

// cell nudges coordinates so surfaces lying exactly on a cell boundary pick one side
func cell(x float64) int {
	return int(math.Floor(x + 1e-6))
}
