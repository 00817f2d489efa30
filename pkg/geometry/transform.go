package geometry

import (
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// FlipNormal delegates to the wrapped shape and negates the reported normal,
// used to make an axis-aligned rectangle face the opposite direction without
// duplicating its intersection code.
type FlipNormal struct {
	Shape core.Shape
}

func NewFlipNormal(shape core.Shape) *FlipNormal {
	return &FlipNormal{Shape: shape}
}

func (f *FlipNormal) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	hit, ok := f.Shape.Hit(ray, tMin, tMax)
	if !ok {
		return hit, false
	}
	hit.Normal = hit.Normal.Negate()
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

func (f *FlipNormal) BoundingBox() core.AABB {
	return f.Shape.BoundingBox()
}

// Translate offsets a shape in world space: the ray is intersected in the
// shape's local frame by shifting its origin by −offset, and the resulting
// hit point is shifted back by +offset.
type Translate struct {
	Shape  core.Shape
	Offset core.Vec3
}

func NewTranslate(shape core.Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	localRay := ray
	localRay.Origin = ray.Origin.Subtract(t.Offset)

	hit, ok := t.Shape.Hit(localRay, tMin, tMax)
	if !ok {
		return hit, false
	}
	hit.P = hit.P.Add(t.Offset)
	return hit, true
}

func (t *Translate) BoundingBox() core.AABB {
	box := t.Shape.BoundingBox()
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}

// RotateY rotates a shape about the world Y axis by angleDegrees. The ray is
// rotated into the shape's local space, intersected there, and the resulting
// point and normal are rotated back into world space; t is recomputed from
// the world-space distance since local-space t is not preserved by rotation.
type RotateY struct {
	Shape     core.Shape
	sinTheta  float64
	cosTheta  float64
	worldBox  core.AABB
}

func NewRotateY(shape core.Shape, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180.0
	r := &RotateY{
		Shape:    shape,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	localBox := shape.BoundingBox()
	worldBox := core.EmptyAABB()
	for _, corner := range localBox.Corners() {
		x := r.cosTheta*corner.X + r.sinTheta*corner.Z
		z := -r.sinTheta*corner.X + r.cosTheta*corner.Z
		rotated := core.NewVec3(x, corner.Y, z)
		worldBox = worldBox.Union(core.NewAABB(rotated, rotated))
	}
	r.worldBox = worldBox

	return r
}

func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	x := r.cosTheta*v.X - r.sinTheta*v.Z
	z := r.sinTheta*v.X + r.cosTheta*v.Z
	return core.NewVec3(x, v.Y, z)
}

func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	x := r.cosTheta*v.X + r.sinTheta*v.Z
	z := -r.sinTheta*v.X + r.cosTheta*v.Z
	return core.NewVec3(x, v.Y, z)
}

func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	localRay := ray
	localRay.Origin = r.toLocal(ray.Origin)
	localRay.Direction = r.toLocal(ray.Direction)

	hit, ok := r.Shape.Hit(localRay, tMin, tMax)
	if !ok {
		return hit, false
	}

	hit.P = r.toWorld(hit.P)
	hit.Normal = r.toWorld(hit.Normal)
	hit.T = hit.P.Subtract(ray.Origin).Length()

	return hit, true
}

func (r *RotateY) BoundingBox() core.AABB {
	return r.worldBox
}
