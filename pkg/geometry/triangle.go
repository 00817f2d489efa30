package geometry

import "github.com/anthropic-exercise/pathtracer/pkg/core"

// Triangle is a single triangle defined by three vertices. Its normal is the
// cross product of two edges; the source leaves this unnormalized, but this
// implementation always returns a unit normal.
type Triangle struct {
	V0, V1, V2     core.Vec3
	UV0, UV1, UV2  core.Vec2
	normal         core.Vec3
	bbox           core.AABB
	MaterialIndex  int
	PrimitiveIndex int
}

// NewTriangle creates a triangle with barycentric (u,v) used directly as UV.
func NewTriangle(v0, v1, v2 core.Vec3, materialIndex int) *Triangle {
	return NewTriangleWithUVs(v0, v1, v2, core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0, 1), materialIndex)
}

// NewTriangleWithUVs creates a triangle with explicit per-vertex UV
// coordinates, interpolated at the hit point via barycentric weights.
func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, materialIndex int) *Triangle {
	t := &Triangle{
		V0: v0, V1: v1, V2: v2,
		UV0: uv0, UV1: uv1, UV2: uv2,
		MaterialIndex: materialIndex,
	}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// Hit implements the Möller–Trumbore ray-triangle intersection algorithm.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return core.Interaction{}, false // ray lies in the triangle's plane
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.Interaction{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.Interaction{}, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return core.Interaction{}, false
	}

	w := 1.0 - u - v
	uv := t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))

	hit := core.Interaction{
		T:              tParam,
		P:              ray.At(tParam),
		UV:             uv,
		Time:           ray.Time,
		PrimitiveIndex: t.PrimitiveIndex,
		MaterialIndex:  t.MaterialIndex,
	}
	hit.SetFaceNormal(ray, t.normal)

	return hit, true
}

func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}
