package core

// Intercept records where a ray struck a shape
type Intercept struct {
	Point        Vec3    // Point of intersection
	Normal       Vec3    // Unit outward surface normal
	T            float64 // Parameter t along the ray
	UV           Vec2    // Texture coordinates, valid when HasUV is set
	HasUV        bool    // Whether the shape produced texture coordinates
	RayDirection Vec3    // Direction of the incident ray
	FrontFace    bool    // Whether the ray arrived from the outward side
	Shape        Shape   // Shape that was struck
}

// NewIntercept builds an intercept for ray at t with the given outward normal
func NewIntercept(ray Ray, t float64, outwardNormal Vec3, shape Shape) *Intercept {
	return &Intercept{
		Point:        ray.At(t),
		Normal:       outwardNormal,
		T:            t,
		RayDirection: ray.Direction,
		FrontFace:    ray.Direction.Dot(outwardNormal) < 0,
		Shape:        shape,
	}
}

// SetUV attaches texture coordinates to the intercept
func (h *Intercept) SetUV(u, v float64) {
	h.UV = NewVec2(u, v)
	h.HasUV = true
}

// FacingNormal returns the normal flipped to face the incoming ray
func (h *Intercept) FacingNormal() Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}

// Material returns the material of the struck shape, or nil
func (h *Intercept) Material() Material {
	if h.Shape == nil {
		return nil
	}
	return h.Shape.GetMaterial()
}
