package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// barycentricTolerance lets hits on shared edges land on both triangles
const barycentricTolerance = 1e-6

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Material   core.Material // Material of the triangle
	normal     core.Vec3     // Cached normal vector
	edge1      core.Vec3     // V1 - V0
	edge2      core.Vec3     // V2 - V0
}

// NewTriangle creates a new triangle from three vertices.
// The normal follows the winding: (V1-V0) × (V2-V0).
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) (*Triangle, error) {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	cross := edge1.Cross(edge2)
	if cross.Length() < 1e-12 {
		return nil, fmt.Errorf("triangle %v %v %v: %w", v0, v1, v2, ErrDegenerateTriangle)
	}
	if err := checkMaterial(material); err != nil {
		return nil, fmt.Errorf("triangle %v %v %v: %w", v0, v1, v2, err)
	}

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   cross.Normalize(),
		edge1:    edge1,
		edge2:    edge2,
	}, nil
}

// GetMaterial returns the triangle's material
func (t *Triangle) GetMaterial() core.Material {
	return t.Material
}

// GetNormal returns the triangle's normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.Intercept, bool) {
	const epsilon = 1e-10

	// Calculate determinant
	h := ray.Direction.Cross(t.edge2)
	a := t.edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < -barycentricTolerance || u > 1.0+barycentricTolerance {
		return nil, false
	}

	q := s.Cross(t.edge1)
	v := f * ray.Direction.Dot(q)
	if v < -barycentricTolerance || u+v > 1.0+barycentricTolerance {
		return nil, false
	}

	tParam := f * t.edge2.Dot(q)
	if tParam <= tMin || tParam >= tMax {
		return nil, false
	}

	hit := core.NewIntercept(ray, tParam, t.normal, t)
	hit.SetUV(u, v)

	return hit, true
}
