package geometry

import (
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// Cylinder is the finite lateral surface of a circular cylinder aligned with
// the Y axis between YMin and YMax, with no end caps. CappedCylinder below
// composes this with two Disks to close the ends.
type Cylinder struct {
	Center         core.Vec3 // X,Z give the axis location; Y is ignored
	Radius         float64
	YMin, YMax     float64
	MaterialIndex  int
	PrimitiveIndex int
}

func NewCylinder(center core.Vec3, radius, yMin, yMax float64, materialIndex int) *Cylinder {
	return &Cylinder{Center: center, Radius: radius, YMin: yMin, YMax: yMax, MaterialIndex: materialIndex}
}

// Hit solves the lateral quadratic in the XZ plane, rejecting roots outside
// [YMin, YMax].
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	ox, oz := ray.Origin.X-c.Center.X, ray.Origin.Z-c.Center.Z
	dx, dz := ray.Direction.X, ray.Direction.Z

	a := dx*dx + dz*dz
	if a < 1e-12 {
		return core.Interaction{}, false // ray parallel to the axis
	}
	halfB := ox*dx + oz*dz
	cc := ox*ox + oz*oz - c.Radius*c.Radius

	discriminant := halfB*halfB - a*cc
	if discriminant < 0 {
		return core.Interaction{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	point := ray.At(root)
	if root < tMin || root > tMax || point.Y < c.YMin || point.Y > c.YMax {
		root = (-halfB + sqrtD) / a
		point = ray.At(root)
		if root < tMin || root > tMax || point.Y < c.YMin || point.Y > c.YMax {
			return core.Interaction{}, false
		}
	}

	outwardNormal := core.NewVec3((point.X-c.Center.X)/c.Radius, 0, (point.Z-c.Center.Z)/c.Radius)

	angle := math.Atan2(point.Z-c.Center.Z, point.X-c.Center.X)
	u := (angle + math.Pi) / (2 * math.Pi)
	v := (point.Y - c.YMin) / (c.YMax - c.YMin)

	hit := core.Interaction{
		T:              root,
		P:              point,
		UV:             core.NewVec2(u, v),
		Time:           ray.Time,
		PrimitiveIndex: c.PrimitiveIndex,
		MaterialIndex:  c.MaterialIndex,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

func (c *Cylinder) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(c.Center.X-c.Radius, c.YMin, c.Center.Z-c.Radius),
		core.NewVec3(c.Center.X+c.Radius, c.YMax, c.Center.Z+c.Radius),
	)
}

// NewCappedCylinder returns a Cylinder's lateral surface plus top and bottom
// disk caps, composed as a nested List; the nearest sub-hit wins per the
// shared rule for compound primitives.
func NewCappedCylinder(center core.Vec3, radius, yMin, yMax float64, materialIndex int) *List {
	lateral := NewCylinder(center, radius, yMin, yMax, materialIndex)
	bottom := NewDisk(core.NewVec3(center.X, yMin, center.Z), radius, materialIndex)
	top := NewDisk(core.NewVec3(center.X, yMax, center.Z), radius, materialIndex)
	return NewList(lateral, bottom, top)
}
