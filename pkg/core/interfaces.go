package core

// Shape is the contract every intersectable primitive and transform wrapper
// satisfies: given a ray and a parametric interval, return the closest valid
// interaction within that interval, plus a conservative world-space bound
// used by the BVH.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (Interaction, bool)
	BoundingBox() AABB
}

// AreaSampler is implemented by shapes that can serve as an explicit-light
// sample target: a directional PDF for a given query direction, and a
// sampler that draws a direction from an origin toward the shape. Quads
// (including the axis-aligned rectangles) and spheres implement this; most
// shapes, disks among them, do not.
type AreaSampler interface {
	Shape
	PDFValue(origin, direction Vec3) float64
	RandomDirection(origin Vec3, sampler Sampler) Vec3
}

// Interaction is the result of a successful ray/primitive intersection.
type Interaction struct {
	T              float64 // parametric distance along the ray
	P              Vec3    // world-space hit point
	Normal         Vec3    // unit shading normal, pointing against the incident ray
	UV             Vec2    // surface parameterization
	FrontFace      bool    // true if the incident ray approached the outward-facing side
	Time           float64 // copied from the incident ray
	PrimitiveIndex int     // back-reference into the scene's primitive list
	MaterialIndex  int     // index into the scene's material list
	Medium         MediumInterface
}

// SetFaceNormal orients Normal against the incident ray and records which
// side of the surface was hit, given the shape's geometric outward normal.
func (hit *Interaction) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	hit.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if hit.FrontFace {
		hit.Normal = outwardNormal
	} else {
		hit.Normal = outwardNormal.Negate()
	}
}

// Logger is the narrow logging contract the renderer depends on, so call
// sites can format a message without depending on any particular backend.
type Logger interface {
	Printf(format string, args ...interface{})
}
