package core

import "math"

// PDF is a sampling strategy over directions: it can draw a direction and
// evaluate its own density for an arbitrary direction, the two operations
// the integrator needs to combine strategies via multiple importance
// sampling.
type PDF interface {
	Generate(sampler Sampler) Vec3
	Value(direction Vec3) float64
}

// CosinePDF samples directions cosine-weighted around a normal via Malley's
// method: a uniform sample on the unit disk lifted onto the hemisphere.
type CosinePDF struct {
	basis ONB
}

// NewCosinePDF builds a cosine-weighted hemisphere PDF around normal.
func NewCosinePDF(normal Vec3) CosinePDF {
	return CosinePDF{basis: NewONB(normal)}
}

// Generate draws a cosine-weighted direction in the hemisphere around the
// PDF's normal.
func (p CosinePDF) Generate(sampler Sampler) Vec3 {
	return p.basis.Local(RandomCosineDirection(sampler))
}

// Value returns cos(theta)/pi for theta the angle from the normal, zero
// below the hemisphere.
func (p CosinePDF) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.basis.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// UniformHemispherePDF samples directions uniformly over the hemisphere
// around a normal; density is the constant 1/(2*pi).
type UniformHemispherePDF struct {
	basis ONB
}

// NewUniformHemispherePDF builds a uniform-hemisphere PDF around normal.
func NewUniformHemispherePDF(normal Vec3) UniformHemispherePDF {
	return UniformHemispherePDF{basis: NewONB(normal)}
}

func (p UniformHemispherePDF) Generate(sampler Sampler) Vec3 {
	return p.basis.Local(RandomUniformHemisphereDirection(sampler))
}

func (p UniformHemispherePDF) Value(direction Vec3) float64 {
	if direction.Normalize().Dot(p.basis.W) <= 0 {
		return 0
	}
	return 1.0 / (2.0 * math.Pi)
}

// ShapePDF wraps an AreaSampler shape and an origin point: density and
// generation both delegate to the shape's own area-light query, so any
// emissive primitive can be used as a direct-light sampling strategy.
type ShapePDF struct {
	Origin Vec3
	Shape  AreaSampler
}

// NewShapePDF builds a shape-directed PDF aimed from origin at shape.
func NewShapePDF(origin Vec3, shape AreaSampler) ShapePDF {
	return ShapePDF{Origin: origin, Shape: shape}
}

func (p ShapePDF) Generate(sampler Sampler) Vec3 {
	return p.Shape.RandomDirection(p.Origin, sampler)
}

func (p ShapePDF) Value(direction Vec3) float64 {
	return p.Shape.PDFValue(p.Origin, direction)
}

// MixturePDF combines two PDFs with equal weight: sampling flips a fair
// coin between the two strategies, and the density is their arithmetic
// mean, the standard construction for combining a light-directed estimator
// with a BSDF-directed one.
type MixturePDF struct {
	P0, P1 PDF
}

// NewMixturePDF builds an equal-weight mixture of p0 and p1.
func NewMixturePDF(p0, p1 PDF) MixturePDF {
	return MixturePDF{P0: p0, P1: p1}
}

func (p MixturePDF) Generate(sampler Sampler) Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.P0.Generate(sampler)
	}
	return p.P1.Generate(sampler)
}

func (p MixturePDF) Value(direction Vec3) float64 {
	return 0.5*p.P0.Value(direction) + 0.5*p.P1.Value(direction)
}

// RandomInUnitDisk draws a point uniformly inside the unit disk by
// rejection sampling, used for camera lens-aperture jitter.
func RandomInUnitDisk(sampler Sampler) Vec2 {
	for {
		p := Vec2{X: 2*sampler.Get1D() - 1, Y: 2*sampler.Get1D() - 1}
		if p.X*p.X+p.Y*p.Y < 1 {
			return p
		}
	}
}

// RandomConcentricDisk draws a point uniformly inside the unit disk using
// Shirley's concentric mapping, which avoids the distortion of the naive
// polar mapping and is the basis for Malley's cosine-hemisphere method.
func RandomConcentricDisk(sampler Sampler) Vec2 {
	u := sampler.Get2D()
	ox, oy := 2*u.X-1, 2*u.Y-1

	if ox == 0 && oy == 0 {
		return Vec2{}
	}

	var radius, theta float64
	if math.Abs(ox) > math.Abs(oy) {
		radius = ox
		theta = (math.Pi / 4) * (oy / ox)
	} else {
		radius = oy
		theta = (math.Pi / 2) - (math.Pi/4)*(ox/oy)
	}

	return Vec2{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
}

// RandomCosineDirection draws a cosine-weighted direction in the local +Z
// hemisphere via Malley's method: lift a concentric-disk sample to the
// hemisphere with z = sqrt(max(0, 1 - x^2 - y^2)).
func RandomCosineDirection(sampler Sampler) Vec3 {
	d := RandomConcentricDisk(sampler)
	z := math.Sqrt(math.Max(0, 1-d.X*d.X-d.Y*d.Y))
	return NewVec3(d.X, d.Y, z)
}

// RandomUniformHemisphereDirection draws a direction uniformly distributed
// over the local +Z hemisphere (density 1/(2*pi)).
func RandomUniformHemisphereDirection(sampler Sampler) Vec3 {
	u := sampler.Get2D()
	z := u.X // uniform in [0,1) directly gives a uniform-in-z hemisphere point
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomUnitVector draws a direction uniformly distributed over the full
// sphere, used by the isotropic phase function.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := sampler.Get3D()
		lenSq := p.LengthSquared()
		if lenSq > 1e-12 && lenSq <= 1 {
			return p.Multiply(1 / math.Sqrt(lenSq))
		}
	}
}
