package geometry

import (
	"math/rand"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// TriangleMesh is a collection of triangles sharing a material, intersected
// through an internal BVH rather than a linear scan.
type TriangleMesh struct {
	triangles []core.Shape
	bvh       *BVH
	bbox      core.AABB
}

// MeshOptions carries optional per-vertex data.
type MeshOptions struct {
	VertexUVs []core.Vec2 // one per vertex, interpolated per triangle if present
}

// NewTriangleMesh builds a mesh from a vertex array and a flat triangle
// index list (each run of 3 indices is one face).
func NewTriangleMesh(vertices []core.Vec3, faces []int, materialIndex int, options *MeshOptions) *TriangleMesh {
	numTriangles := len(faces) / 3
	triangles := make([]core.Shape, numTriangles)

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		v0, v1, v2 := vertices[i0], vertices[i1], vertices[i2]

		var tri *Triangle
		if options != nil && options.VertexUVs != nil {
			tri = NewTriangleWithUVs(v0, v1, v2, options.VertexUVs[i0], options.VertexUVs[i1], options.VertexUVs[i2], materialIndex)
		} else {
			tri = NewTriangle(v0, v1, v2, materialIndex)
		}
		triangles[i] = tri
	}

	bvh := NewBVH(triangles, rand.New(rand.NewSource(1)))

	bbox := core.EmptyAABB()
	for _, tri := range triangles {
		bbox = bbox.Union(tri.BoundingBox())
	}

	return &TriangleMesh{triangles: triangles, bvh: bvh, bbox: bbox}
}

func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	return tm.bvh.Hit(ray, tMin, tMax)
}

func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bbox
}

// TriangleCount returns the number of triangles in the mesh.
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}
