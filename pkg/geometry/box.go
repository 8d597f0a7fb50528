package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// faceEpsilon decides which slab face a hit point lies on
const faceEpsilon = 1e-4

// Box represents an axis-aligned box intersected with the slab method
type Box struct {
	Min      core.Vec3     // Minimum corner
	Max      core.Vec3     // Maximum corner
	Material core.Material // Material for all faces
}

// NewBox creates a new axis-aligned box from its two corners. Every extent
// must be positive.
func NewBox(minCorner, maxCorner core.Vec3, material core.Material) (*Box, error) {
	if !(minCorner.X < maxCorner.X && minCorner.Y < maxCorner.Y && minCorner.Z < maxCorner.Z) {
		return nil, fmt.Errorf("box %v..%v: %w", minCorner, maxCorner, ErrInvalidBox)
	}
	if err := checkMaterial(material); err != nil {
		return nil, fmt.Errorf("box %v..%v: %w", minCorner, maxCorner, err)
	}
	return &Box{Min: minCorner, Max: maxCorner, Material: material}, nil
}

// NewAxisAlignedBox creates a box from its center and half-extents
// (a size of (1,1,1) creates a 2x2x2 box)
func NewAxisAlignedBox(center, size core.Vec3, material core.Material) (*Box, error) {
	return NewBox(center.Subtract(size), center.Add(size), material)
}

// GetMaterial returns the box's material
func (b *Box) GetMaterial() core.Material {
	return b.Material
}

// Center returns the center point of the box
func (b *Box) Center() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Hit tests if a ray intersects with the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.Intercept, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)
		lo := b.Min.Component(axis)
		hi := b.Max.Component(axis)

		if math.Abs(direction) < 1e-12 {
			// Parallel to this slab: inside it or a miss
			if origin < lo || origin > hi {
				return nil, false
			}
			continue
		}

		invD := 1.0 / direction
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tNear = math.Max(tNear, t0)
		tFar = math.Min(tFar, t1)
		if tNear > tFar {
			return nil, false
		}
	}

	t := tNear
	if t <= tMin {
		// Origin inside the box: take the exit
		t = tFar
	}
	if t <= tMin || t >= tMax {
		return nil, false
	}

	point := ray.At(t)
	hit := core.NewIntercept(ray, t, b.faceNormal(point), b)
	return hit, true
}

// faceNormal returns the outward normal of the face nearest to point
func (b *Box) faceNormal(point core.Vec3) core.Vec3 {
	best := math.Inf(1)
	normal := core.NewVec3(0, 1, 0)

	for axis := 0; axis < 3; axis++ {
		p := point.Component(axis)
		if d := math.Abs(p - b.Min.Component(axis)); d < best {
			best = d
			normal = axisVector(axis, -1)
		}
		if d := math.Abs(p - b.Max.Component(axis)); d < best {
			best = d
			normal = axisVector(axis, 1)
		}
		if best < faceEpsilon {
			break
		}
	}
	return normal
}

func axisVector(axis int, sign float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}
