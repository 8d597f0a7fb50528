package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Ellipsoid is an axis-aligned ellipsoid with per-axis radii
type Ellipsoid struct {
	Center   core.Vec3
	Radii    core.Vec3
	Material core.Material
}

// NewEllipsoid creates a new ellipsoid
func NewEllipsoid(center, radii core.Vec3, material core.Material) (*Ellipsoid, error) {
	if !validPositive(radii.X) || !validPositive(radii.Y) || !validPositive(radii.Z) {
		return nil, fmt.Errorf("ellipsoid at %v with radii %v: %w", center, radii, ErrInvalidRadius)
	}
	if err := checkMaterial(material); err != nil {
		return nil, fmt.Errorf("ellipsoid at %v: %w", center, err)
	}
	return &Ellipsoid{Center: center, Radii: radii, Material: material}, nil
}

// GetMaterial returns the ellipsoid's material
func (e *Ellipsoid) GetMaterial() core.Material {
	return e.Material
}

// Hit scales the ray into the unit-sphere space of the ellipsoid.
// t is preserved by the scaling, so roots apply to the original ray.
func (e *Ellipsoid) Hit(ray core.Ray, tMin, tMax float64) (*core.Intercept, bool) {
	oc := ray.Origin.Subtract(e.Center).DivideVec(e.Radii)
	d := ray.Direction.DivideVec(e.Radii)

	a := d.Dot(d)
	halfB := oc.Dot(d)
	c := oc.Dot(oc) - 1.0

	root, ok := closerRoot(a, halfB, c, tMin, tMax)
	if !ok {
		return nil, false
	}

	// Gradient of (x/a)² + (y/b)² + (z/c)²
	local := ray.At(root).Subtract(e.Center)
	r2 := e.Radii.MultiplyVec(e.Radii)
	outwardNormal := local.DivideVec(r2).Normalize()

	hit := core.NewIntercept(ray, root, outwardNormal, e)
	u, v := SphericalUV(local.DivideVec(e.Radii).Normalize())
	hit.SetUV(u, v)
	return hit, true
}
