package geometry

import (
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// Quad is a parallelogram surface defined by a corner and two edge vectors.
// The axis-aligned constructors below (NewRectXY, NewRectXZ, NewRectYZ)
// build the common case of a rectangle held at a fixed coordinate.
type Quad struct {
	Corner         core.Vec3
	U, V           core.Vec3
	Normal         core.Vec3
	D              float64 // plane equation constant: normal . P = D
	W              core.Vec3
	MaterialIndex  int
	PrimitiveIndex int
}

// NewQuad builds a quad from a corner point and two edge vectors.
func NewQuad(corner, u, v core.Vec3, materialIndex int) *Quad {
	normal := u.Cross(v).Normalize()
	d := normal.Dot(corner)
	cross := u.Cross(v)
	w := normal.Multiply(1.0 / normal.Dot(cross))

	return &Quad{
		Corner:        corner,
		U:             u,
		V:             v,
		Normal:        normal,
		D:             d,
		W:             w,
		MaterialIndex: materialIndex,
	}
}

// NewRectXY builds a rectangle in the XY plane at fixed Z=k spanning
// [x0,x1]x[y0,y1].
func NewRectXY(x0, x1, y0, y1, k float64, materialIndex int) *Quad {
	return NewQuad(core.NewVec3(x0, y0, k), core.NewVec3(x1-x0, 0, 0), core.NewVec3(0, y1-y0, 0), materialIndex)
}

// NewRectXZ builds a rectangle in the XZ plane at fixed Y=k spanning
// [x0,x1]x[z0,z1]. This is the variant used for overhead area lights.
func NewRectXZ(x0, x1, z0, z1, k float64, materialIndex int) *Quad {
	return NewQuad(core.NewVec3(x0, k, z0), core.NewVec3(x1-x0, 0, 0), core.NewVec3(0, 0, z1-z0), materialIndex)
}

// NewRectYZ builds a rectangle in the YZ plane at fixed X=k spanning
// [y0,y1]x[z0,z1].
func NewRectYZ(y0, y1, z0, z1, k float64, materialIndex int) *Quad {
	return NewQuad(core.NewVec3(k, y0, z0), core.NewVec3(0, y1-y0, 0), core.NewVec3(0, 0, z1-z0), materialIndex)
}

// Hit intersects the ray with the quad's plane, then rejects points outside
// the quad's bounds using barycentric coordinates.
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	denominator := ray.Direction.Dot(q.Normal)
	if math.Abs(denominator) < 1e-8 {
		return core.Interaction{}, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return core.Interaction{}, false
	}

	point := ray.At(t)
	hitVector := point.Subtract(q.Corner)

	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.Interaction{}, false
	}

	hit := core.Interaction{
		T:              t,
		P:              point,
		UV:             core.NewVec2(alpha, beta),
		Time:           ray.Time,
		PrimitiveIndex: q.PrimitiveIndex,
		MaterialIndex:  q.MaterialIndex,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

func (q *Quad) BoundingBox() core.AABB {
	corners := [4]core.Vec3{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	}
	box := core.NewAABBFromPoints(corners[0], corners[1], corners[2], corners[3])
	return box.Expand(1e-4)
}

// Area returns the quad's surface area, ‖U x V‖.
func (q *Quad) Area() float64 {
	return q.U.Cross(q.V).Length()
}

// PDFValue returns the solid-angle density for sampling this quad as an area
// light from origin toward direction: t²‖d‖² / (cosθ·area).
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction, 0)
	hit, ok := q.Hit(ray, 1e-3, math.Inf(1))
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Normalize().Dot(hit.Normal))
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * q.Area())
}

// RandomDirection draws a uniformly distributed point in the quad and
// returns the normalized offset from origin.
func (q *Quad) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	u := sampler.Get2D()
	point := q.Corner.Add(q.U.Multiply(u.X)).Add(q.V.Multiply(u.Y))
	return point.Subtract(origin).Normalize()
}
