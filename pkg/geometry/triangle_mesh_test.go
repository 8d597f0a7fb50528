package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// unitQuad is two triangles covering [0,1]x[0,1] at z = 0, facing -z
var (
	unitQuadVertices = []core.Vec3{
		core.NewVec3(0, 0, 0), // 0
		core.NewVec3(1, 0, 0), // 1
		core.NewVec3(1, 1, 0), // 2
		core.NewVec3(0, 1, 0), // 3
	}
	unitQuadFaces = []int{
		0, 2, 1, // first triangle
		0, 3, 2, // second triangle
	}
)

// nearest returns the closest hit among shapes, as the renderer's scan does
func nearest(shapes []core.Shape, ray core.Ray) (*core.Intercept, bool) {
	var closest *core.Intercept
	tMax := math.Inf(1)
	for _, s := range shapes {
		if hit, ok := s.Hit(ray, 1e-4, tMax); ok {
			closest, tMax = hit, hit.T
		}
	}
	return closest, closest != nil
}

func TestTriangleMesh_Hit(t *testing.T) {
	mesh := must[[]core.Shape](t)(NewTriangleMesh(unitQuadVertices, unitQuadFaces, stubMaterial{}, nil))
	if len(mesh) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(mesh))
	}

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
	}{
		{"center of quad", core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1)), true},
		{"corner", core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)), true},
		{"shared diagonal", core.NewRay(core.NewVec3(0.3, 0.3, -1), core.NewVec3(0, 0, 1)), true},
		{"outside", core.NewRay(core.NewVec3(2, 2, -1), core.NewVec3(0, 0, 1)), false},
		{"parallel", core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(1, 0, 0)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := nearest(mesh, tt.ray)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-1) > tolerance {
				t.Errorf("Expected t=1, got %f", hit.T)
			}
			if !vecNear(hit.Normal, core.NewVec3(0, 0, -1)) {
				t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
			}
			assertUnitNormal(t, hit)
		})
	}
}

func TestTriangleMesh_Rotation(t *testing.T) {
	center := core.NewVec3(0.5, 0.5, 0)
	rotation := core.NewVec3(math.Pi/2, 0, 0) // Stand the quad up: it now spans y = 0.5, z in [-0.5, 0.5]

	mesh := must[[]core.Shape](t)(NewTriangleMesh(unitQuadVertices, unitQuadFaces, stubMaterial{}, &TriangleMeshOptions{
		Rotation: &rotation,
		Center:   &center,
	}))

	if _, ok := nearest(mesh, core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1))); ok {
		t.Error("Expected the rotated quad to be edge-on to a ray along z")
	}
	hit, ok := nearest(mesh, core.NewRay(core.NewVec3(0.5, 2, 0.2), core.NewVec3(0, -1, 0)))
	if !ok {
		t.Fatal("Expected a ray along -y to hit the rotated quad")
	}
	if !vecNear(hit.Point, core.NewVec3(0.5, 0.5, 0.2)) {
		t.Errorf("Unexpected hit point %v", hit.Point)
	}
}

func TestTriangleMesh_PerTriangleMaterials(t *testing.T) {
	first, second := &stubMaterial{}, &stubMaterial{}
	mesh := must[[]core.Shape](t)(NewTriangleMesh(unitQuadVertices, unitQuadFaces, nil, &TriangleMeshOptions{
		Materials: []core.Material{first, second},
	}))

	if mesh[0].GetMaterial() != core.Material(first) || mesh[1].GetMaterial() != core.Material(second) {
		t.Error("Expected each triangle to carry its own material")
	}
}

func TestTriangleMesh_Errors(t *testing.T) {
	tests := []struct {
		name     string
		vertices []core.Vec3
		faces    []int
		options  *TriangleMeshOptions
		wrapped  error
	}{
		{"incomplete face", unitQuadVertices, []int{0, 1}, nil, nil},
		{"index out of range", unitQuadVertices, []int{0, 1, 4}, nil, nil},
		{"negative index", unitQuadVertices, []int{0, -1, 2}, nil, nil},
		{"material count", unitQuadVertices, unitQuadFaces, &TriangleMeshOptions{Materials: []core.Material{stubMaterial{}}}, nil},
		{"degenerate face", unitQuadVertices, []int{0, 1, 1}, nil, ErrDegenerateTriangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangleMesh(tt.vertices, tt.faces, stubMaterial{}, tt.options)
			if !errors.Is(err, ErrInvalidMesh) {
				t.Errorf("Expected ErrInvalidMesh, got %v", err)
			}
			if tt.wrapped != nil && !errors.Is(err, tt.wrapped) {
				t.Errorf("Expected %v to be wrapped, got %v", tt.wrapped, err)
			}
		})
	}
}
