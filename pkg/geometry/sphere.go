package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if !validPositive(radius) {
		return nil, fmt.Errorf("sphere at %v with radius %g: %w", center, radius, ErrInvalidRadius)
	}
	if err := checkMaterial(material); err != nil {
		return nil, fmt.Errorf("sphere at %v: %w", center, err)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}, nil
}

// GetMaterial returns the sphere's material
func (s *Sphere) GetMaterial() core.Material {
	return s.Material
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.Intercept, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2(halfB)t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	root, ok := closerRoot(a, halfB, c, tMin, tMax)
	if !ok {
		return nil, false
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius).Normalize()

	hit := core.NewIntercept(ray, root, outwardNormal, s)
	u, v := SphericalUV(outwardNormal)
	hit.SetUV(u, v)

	return hit, true
}

// SphericalUV maps a unit direction to equirectangular texture coordinates:
// u = atan2(z, x)/(2π) + 0.5, v = acos(-y)/π
func SphericalUV(d core.Vec3) (float64, float64) {
	u := math.Atan2(d.Z, d.X)/(2.0*math.Pi) + 0.5
	v := math.Acos(max(-1.0, min(1.0, -d.Y))) / math.Pi
	return u, v
}
