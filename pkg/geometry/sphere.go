package geometry

import (
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// Sphere is a sphere with an optional linear motion between two shutter
// times; a stationary sphere has CenterEnd equal to CenterStart.
type Sphere struct {
	CenterStart   core.Vec3
	CenterEnd     core.Vec3
	TimeStart     float64
	TimeEnd       float64
	Radius        float64
	MaterialIndex int
	PrimitiveIndex int
}

// NewSphere creates a stationary sphere.
func NewSphere(center core.Vec3, radius float64, materialIndex int) *Sphere {
	return &Sphere{
		CenterStart:   center,
		CenterEnd:     center,
		TimeStart:     0,
		TimeEnd:       1,
		Radius:        radius,
		MaterialIndex: materialIndex,
	}
}

// NewMovingSphere creates a sphere whose center translates linearly from
// centerStart at timeStart to centerEnd at timeEnd.
func NewMovingSphere(centerStart, centerEnd core.Vec3, timeStart, timeEnd, radius float64, materialIndex int) *Sphere {
	return &Sphere{
		CenterStart:   centerStart,
		CenterEnd:     centerEnd,
		TimeStart:     timeStart,
		TimeEnd:       timeEnd,
		Radius:        radius,
		MaterialIndex: materialIndex,
	}
}

// centerAt returns the sphere's center at the given ray time.
func (s *Sphere) centerAt(time float64) core.Vec3 {
	if s.TimeEnd == s.TimeStart {
		return s.CenterStart
	}
	t := (time - s.TimeStart) / (s.TimeEnd - s.TimeStart)
	return core.Lerp(t, s.CenterStart, s.CenterEnd)
}

// Hit solves ‖o+td−c(t)‖²=r², returning the smaller root in range or, if
// invalid, the larger one.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return core.Interaction{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.Interaction{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)

	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	uv := core.NewVec2(1.0-phi/(2.0*math.Pi), theta/math.Pi)

	hit := core.Interaction{
		T:              root,
		P:              point,
		UV:             uv,
		Time:           ray.Time,
		PrimitiveIndex: s.PrimitiveIndex,
		MaterialIndex:  s.MaterialIndex,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	boxStart := core.NewAABB(s.CenterStart.Subtract(r), s.CenterStart.Add(r))
	if s.CenterStart.Equals(s.CenterEnd) {
		return boxStart
	}
	boxEnd := core.NewAABB(s.CenterEnd.Subtract(r), s.CenterEnd.Add(r))
	return boxStart.Union(boxEnd)
}

// PDFValue returns the solid-angle density of sampling this sphere as seen
// from origin toward direction, falling back to uniform-surface density when
// origin lies inside the sphere.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction, 0)
	if _, hit := s.Hit(ray, 1e-3, math.Inf(1)); !hit {
		return 0
	}

	distance := s.centerAt(0).Subtract(origin).Length()
	return core.SphereConePDF(distance, s.Radius)
}

// RandomDirection draws a direction from origin toward a visible point on
// the sphere, sampling within the cone the sphere subtends (or uniformly
// over the whole surface when origin is inside).
func (s *Sphere) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	center := s.centerAt(0)
	toCenter := center.Subtract(origin)
	distance := toCenter.Length()

	if distance <= s.Radius {
		return core.RandomUnitVector(sampler)
	}

	basis := core.NewONB(toCenter.Normalize())
	sinThetaMax := s.Radius / distance
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))

	u := sampler.Get2D()
	cosTheta := 1.0 - u.X*(1.0-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * u.Y

	local := core.NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return basis.Local(local)
}
