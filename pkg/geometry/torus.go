package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Torus is a ring around Axis through Center. MajorRadius is the distance
// from the center to the tube center, MinorRadius the tube radius.
type Torus struct {
	Center      core.Vec3
	Axis        core.Vec3
	MajorRadius float64
	MinorRadius float64
	Material    core.Material

	u, v core.Vec3 // In-plane axes of the local frame
}

// NewTorus creates a torus whose symmetry axis is axis
func NewTorus(center, axis core.Vec3, majorRadius, minorRadius float64, material core.Material) (*Torus, error) {
	w := axis.Normalize()
	if w.IsZero() {
		return nil, fmt.Errorf("torus at %v: %w", center, ErrZeroAxis)
	}
	if !validPositive(majorRadius) || !validPositive(minorRadius) {
		return nil, fmt.Errorf("torus at %v with radii %g/%g: %w", center, majorRadius, minorRadius, ErrInvalidRadius)
	}
	if err := checkMaterial(material); err != nil {
		return nil, fmt.Errorf("torus at %v: %w", center, err)
	}

	u, v := core.OrthonormalBasis(w)
	return &Torus{
		Center:      center,
		Axis:        w,
		MajorRadius: majorRadius,
		MinorRadius: minorRadius,
		Material:    material,
		u:           u,
		v:           v,
	}, nil
}

// GetMaterial returns the torus's material
func (t *Torus) GetMaterial() core.Material {
	return t.Material
}

// toLocal expresses a world vector in the torus frame, axis along z
func (t *Torus) toLocal(p core.Vec3) core.Vec3 {
	return core.NewVec3(p.Dot(t.u), p.Dot(t.v), p.Dot(t.Axis))
}

func (t *Torus) toWorld(p core.Vec3) core.Vec3 {
	return t.u.Multiply(p.X).Add(t.v.Multiply(p.Y)).Add(t.Axis.Multiply(p.Z))
}

// Hit solves the torus quartic for the ray
func (t *Torus) Hit(ray core.Ray, tMin, tMax float64) (*core.Intercept, bool) {
	R := t.MajorRadius
	r := t.MinorRadius

	o := t.toLocal(ray.Origin.Subtract(t.Center))
	d := t.toLocal(ray.Direction)

	// Bounding sphere rejection
	bound := R + r
	a := d.Dot(d)
	halfB := o.Dot(d)
	c := o.Dot(o) - bound*bound
	disc := halfB*halfB - a*c
	if disc < 0 {
		return nil, false
	}
	sqrtDisc := math.Sqrt(disc)
	tExit := (-halfB + sqrtDisc) / a
	if tExit <= tMin {
		return nil, false
	}

	// Start the quartic near the bounding sphere to keep coefficients small
	shift := math.Max(0, (-halfB-sqrtDisc)/a)
	o = o.Add(d.Multiply(shift))

	s := a
	f := o.Dot(d)
	e := o.Dot(o) - R*R - r*r

	c4 := s * s
	c3 := 4 * s * f
	c2 := 2*s*e + 4*f*f + 4*R*R*d.Z*d.Z
	c1 := 4*f*e + 8*R*R*o.Z*d.Z
	c0 := e*e - 4*R*R*(r*r-o.Z*o.Z)

	for _, root := range SolveQuartic(c4, c3, c2, c1, c0) {
		tHit := root + shift
		if tHit <= tMin || tHit >= tMax {
			continue
		}

		p := o.Add(d.Multiply(root))
		g := p.Dot(p) - r*r - R*R
		localNormal := core.NewVec3(4*p.X*g, 4*p.Y*g, 4*p.Z*(g+2*R*R))
		outwardNormal := t.toWorld(localNormal).Normalize()

		hit := core.NewIntercept(ray, tHit, outwardNormal, t)
		// u runs around the ring, v around the tube
		ringAngle := math.Atan2(p.Y, p.X)
		tubeAngle := math.Atan2(p.Z, math.Hypot(p.X, p.Y)-R)
		hit.SetUV(ringAngle/(2*math.Pi)+0.5, tubeAngle/(2*math.Pi)+0.5)
		return hit, true
	}
	return nil, false
}
