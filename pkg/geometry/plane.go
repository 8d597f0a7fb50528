package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// parallelEpsilon is the |D·N| below which a ray counts as parallel to a plane
const parallelEpsilon = 1e-6

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3     // A point on the plane
	Normal   core.Vec3     // Unit normal vector
	Material core.Material // Material of the plane

	tangent, bitangent core.Vec3 // In-plane axes for texture coordinates
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.Material) (*Plane, error) {
	n := normal.Normalize()
	if n.IsZero() {
		return nil, fmt.Errorf("plane through %v: %w", point, ErrZeroNormal)
	}
	if err := checkMaterial(material); err != nil {
		return nil, fmt.Errorf("plane through %v: %w", point, err)
	}

	tangent, bitangent := core.OrthonormalBasis(n)
	return &Plane{
		Point:     point,
		Normal:    n,
		Material:  material,
		tangent:   tangent,
		bitangent: bitangent,
	}, nil
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() core.Material {
	return p.Material
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.Intercept, bool) {
	t, ok := intersectPlane(ray, p.Point, p.Normal, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit := core.NewIntercept(ray, t, p.Normal, p)
	local := hit.Point.Subtract(p.Point)
	hit.SetUV(local.Dot(p.tangent), local.Dot(p.bitangent))

	return hit, true
}

// intersectPlane solves t = (P0 - O)·N / (D·N), rejecting parallel rays
func intersectPlane(ray core.Ray, point, normal core.Vec3, tMin, tMax float64) (float64, bool) {
	denominator := ray.Direction.Dot(normal)
	if math.Abs(denominator) < parallelEpsilon {
		return 0, false
	}

	t := point.Subtract(ray.Origin).Dot(normal) / denominator
	if t <= tMin || t >= tMax {
		return 0, false
	}
	return t, true
}
