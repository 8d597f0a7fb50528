package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Disc represents a circular disc in 3D space
type Disc struct {
	Center   core.Vec3     // Center of the disc
	Normal   core.Vec3     // Normal vector (pointing "up" from the disc)
	Radius   float64       // Radius of the disc
	Material core.Material // Material of the disc
	Right    core.Vec3     // Right vector (perpendicular to normal)
	Up       core.Vec3     // Up vector (perpendicular to normal and right)
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64, material core.Material) (*Disc, error) {
	n := normal.Normalize()
	if n.IsZero() {
		return nil, fmt.Errorf("disc at %v: %w", center, ErrZeroNormal)
	}
	if !validPositive(radius) {
		return nil, fmt.Errorf("disc at %v with radius %g: %w", center, radius, ErrInvalidRadius)
	}
	if err := checkMaterial(material); err != nil {
		return nil, fmt.Errorf("disc at %v: %w", center, err)
	}

	right, up := core.OrthonormalBasis(n)
	return &Disc{
		Center:   center,
		Normal:   n,
		Radius:   radius,
		Material: material,
		Right:    right,
		Up:       up,
	}, nil
}

// GetMaterial returns the disc's material
func (d *Disc) GetMaterial() core.Material {
	return d.Material
}

// Hit implements the Shape interface
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (*core.Intercept, bool) {
	t, ok := intersectPlane(ray, d.Center, d.Normal, tMin, tMax)
	if !ok {
		return nil, false
	}

	// Check if intersection point is within disc radius
	centerToHit := ray.At(t).Subtract(d.Center)
	if centerToHit.LengthSquared() > d.Radius*d.Radius+1e-8 {
		return nil, false
	}

	hit := core.NewIntercept(ray, t, d.Normal, d)

	// Polar texture coordinates: u is the angle, v the normalized radius
	x := centerToHit.Dot(d.Right)
	y := centerToHit.Dot(d.Up)
	hit.SetUV(math.Atan2(y, x)/(2.0*math.Pi)+0.5, math.Sqrt(x*x+y*y)/d.Radius)

	return hit, true
}
