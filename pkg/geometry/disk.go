package geometry

import (
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// Disk is a horizontal circular disk (normal along +Y) at height Center.Y,
// centered at Center.
type Disk struct {
	Center         core.Vec3
	Radius         float64
	MaterialIndex  int
	PrimitiveIndex int
}

func NewDisk(center core.Vec3, radius float64, materialIndex int) *Disk {
	return &Disk{Center: center, Radius: radius, MaterialIndex: materialIndex}
}

// Hit intersects the ray with the disk's horizontal plane, then applies a
// radial cutoff.
func (d *Disk) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	normal := core.NewVec3(0, 1, 0)
	denom := normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return core.Interaction{}, false
	}

	t := normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return core.Interaction{}, false
	}

	point := ray.At(t)
	centerToHit := point.Subtract(d.Center)
	if centerToHit.LengthSquared() > d.Radius*d.Radius {
		return core.Interaction{}, false
	}

	hit := core.Interaction{
		T:              t,
		P:              point,
		UV:             core.NewVec2((centerToHit.X/d.Radius+1)/2, (centerToHit.Z/d.Radius+1)/2),
		Time:           ray.Time,
		PrimitiveIndex: d.PrimitiveIndex,
		MaterialIndex:  d.MaterialIndex,
	}
	hit.SetFaceNormal(ray, normal)

	return hit, true
}

func (d *Disk) BoundingBox() core.AABB {
	r := core.NewVec3(d.Radius, 1e-4, d.Radius)
	return core.NewAABB(d.Center.Subtract(r), d.Center.Add(r))
}
