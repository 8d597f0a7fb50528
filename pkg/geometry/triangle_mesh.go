package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidMesh is wrapped by every mesh construction failure
var ErrInvalidMesh = errors.New("invalid triangle mesh")

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Materials []core.Material // Optional per-triangle materials
	Rotation  *core.Vec3      // Optional X, Y, Z rotation in radians
	Center    *core.Vec3      // Optional center point for rotation
}

// NewTriangleMesh expands an indexed mesh into its triangles. Each group of
// three face indices forms one triangle wound as in NewTriangle. The scene
// scans the triangles like any other shape.
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material, options *TriangleMeshOptions) ([]core.Shape, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("%w: %d face indices is not a multiple of 3", ErrInvalidMesh, len(faces))
	}
	numTriangles := len(faces) / 3
	if options != nil && options.Materials != nil && len(options.Materials) != numTriangles {
		return nil, fmt.Errorf("%w: %d materials for %d triangles", ErrInvalidMesh, len(options.Materials), numTriangles)
	}

	workingVertices := vertices
	if options != nil && options.Rotation != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			if options.Center != nil {
				vertex = vertex.Subtract(*options.Center)
			}
			vertex = rotateVertex(vertex, *options.Rotation)
			if options.Center != nil {
				vertex = vertex.Add(*options.Center)
			}
			workingVertices[i] = vertex
		}
	}

	triangles := make([]core.Shape, numTriangles)
	for i := range triangles {
		idx := faces[i*3 : i*3+3]
		for _, j := range idx {
			if j < 0 || j >= len(workingVertices) {
				return nil, fmt.Errorf("%w: face %d index %d out of range", ErrInvalidMesh, i, j)
			}
		}

		triangleMaterial := material
		if options != nil && options.Materials != nil {
			triangleMaterial = options.Materials[i]
		}

		triangle, err := NewTriangle(workingVertices[idx[0]], workingVertices[idx[1]], workingVertices[idx[2]], triangleMaterial)
		if err != nil {
			return nil, fmt.Errorf("%w: face %d: %w", ErrInvalidMesh, i, err)
		}
		triangles[i] = triangle
	}

	return triangles, nil
}

// rotateVertex applies rotation around X, Y, Z axes (in that order)
func rotateVertex(vertex, rotation core.Vec3) core.Vec3 {
	if rotation.X != 0 {
		sin, cos := math.Sincos(rotation.X)
		vertex = core.NewVec3(vertex.X, vertex.Y*cos-vertex.Z*sin, vertex.Y*sin+vertex.Z*cos)
	}
	if rotation.Y != 0 {
		sin, cos := math.Sincos(rotation.Y)
		vertex = core.NewVec3(vertex.X*cos+vertex.Z*sin, vertex.Y, -vertex.X*sin+vertex.Z*cos)
	}
	if rotation.Z != 0 {
		sin, cos := math.Sincos(rotation.Z)
		vertex = core.NewVec3(vertex.X*cos-vertex.Y*sin, vertex.X*sin+vertex.Y*cos, vertex.Z)
	}
	return vertex
}
