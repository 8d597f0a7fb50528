package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder represents a finite cylinder closed by two flat caps
type Cylinder struct {
	BaseCenter core.Vec3
	TopCenter  core.Vec3
	Radius     float64
	Material   core.Material

	// Cached derived values
	axis   core.Vec3 // Unit vector from base to top
	height float64   // Distance between base and top
}

// NewCylinder creates a new capped cylinder
func NewCylinder(baseCenter, topCenter core.Vec3, radius float64, mat core.Material) (*Cylinder, error) {
	axisVector := topCenter.Subtract(baseCenter)
	height := axisVector.Length()
	if height < 1e-12 || !validPositive(height) {
		return nil, fmt.Errorf("cylinder %v..%v: %w", baseCenter, topCenter, ErrZeroAxis)
	}
	if !validPositive(radius) {
		return nil, fmt.Errorf("cylinder %v..%v with radius %g: %w", baseCenter, topCenter, radius, ErrInvalidRadius)
	}
	if err := checkMaterial(mat); err != nil {
		return nil, fmt.Errorf("cylinder %v..%v: %w", baseCenter, topCenter, err)
	}

	return &Cylinder{
		BaseCenter: baseCenter,
		TopCenter:  topCenter,
		Radius:     radius,
		Material:   mat,
		axis:       axisVector.Multiply(1.0 / height),
		height:     height,
	}, nil
}

// NewVerticalCylinder creates a cylinder standing on the Y axis at base
func NewVerticalCylinder(base core.Vec3, radius, height float64, mat core.Material) (*Cylinder, error) {
	return NewCylinder(base, base.Add(core.NewVec3(0, height, 0)), radius, mat)
}

// GetMaterial returns the cylinder's material
func (c *Cylinder) GetMaterial() core.Material {
	return c.Material
}

// Hit tests if a ray intersects with the cylinder side or either cap
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*core.Intercept, bool) {
	closest := tMax
	var normal core.Vec3
	found := false

	// Lateral surface
	if t, ok := c.hitSide(ray, tMin, closest); ok {
		point := ray.At(t)
		h := point.Subtract(c.BaseCenter).Dot(c.axis)
		axisPoint := c.BaseCenter.Add(c.axis.Multiply(h))
		closest = t
		normal = point.Subtract(axisPoint).Normalize()
		found = true
	}

	// Caps
	for _, cp := range [2]struct {
		center core.Vec3
		normal core.Vec3
	}{
		{c.BaseCenter, c.axis.Negate()},
		{c.TopCenter, c.axis},
	} {
		t, ok := intersectPlane(ray, cp.center, cp.normal, tMin, closest)
		if !ok {
			continue
		}
		if ray.At(t).Subtract(cp.center).LengthSquared() > c.Radius*c.Radius {
			continue
		}
		closest = t
		normal = cp.normal
		found = true
	}

	if !found {
		return nil, false
	}
	return core.NewIntercept(ray, closest, normal, c), true
}

// hitSide returns the nearest lateral-surface root within the height bounds
func (c *Cylinder) hitSide(ray core.Ray, tMin, tMax float64) (float64, bool) {
	// Vector from base center to ray origin
	delta := ray.Origin.Subtract(c.BaseCenter)

	DV := ray.Direction.Dot(c.axis) // D · V̂
	deltaV := delta.Dot(c.axis)     // Δ · V̂

	// a = |D|² - (D·V̂)²
	// b = 2[Δ·D - (Δ·V̂)(D·V̂)]
	// cc = |Δ|² - (Δ·V̂)² - r²
	a := ray.Direction.LengthSquared() - DV*DV
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*DV)
	cc := delta.LengthSquared() - deltaV*deltaV - c.Radius*c.Radius

	// Ray parallel to the axis never meets the side
	if math.Abs(a) < 1e-8 {
		return 0, false
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	roots := [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
	if roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	for _, t := range roots {
		if t <= tMin || t >= tMax {
			continue
		}
		h := ray.At(t).Subtract(c.BaseCenter).Dot(c.axis)
		if h >= 0 && h <= c.height {
			return t, true
		}
	}
	return 0, false
}
