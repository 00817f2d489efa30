// Package lights provides the explicit-light sampling primitives the path
// tracer uses for next-event estimation: a Light wraps an emissive shape and
// its emitted radiance, and a LightSampler picks which light to sample at
// each shading point.
package lights

import "github.com/anthropic-exercise/pathtracer/pkg/core"

// Light pairs a shape capable of area sampling with the radiance it emits.
// Scenes carry one Light per emissive primitive so the integrator can sample
// direct illumination without scanning every primitive for materials that
// happen to emit.
type Light struct {
	Shape    core.AreaSampler
	Emission core.Vec3
}

// NewLight constructs a Light over the given shape and constant emitted
// radiance.
func NewLight(shape core.AreaSampler, emission core.Vec3) *Light {
	return &Light{Shape: shape, Emission: emission}
}

// LightSample is the result of sampling a direction toward a light from a
// shading point: the direction to sample, the solid-angle PDF of that
// direction under this light alone, and the light's emitted radiance.
type LightSample struct {
	Direction core.Vec3
	PDF       float64
	Emission  core.Vec3
}

// Sample draws a direction from origin toward the light's shape and reports
// the light's solid-angle PDF along that direction.
func (l *Light) Sample(origin core.Vec3, sampler core.Sampler) LightSample {
	direction := l.Shape.RandomDirection(origin, sampler)
	pdf := l.Shape.PDFValue(origin, direction)
	return LightSample{Direction: direction, PDF: pdf, Emission: l.Emission}
}

// PDFValue reports this light's solid-angle PDF for a direction already
// chosen by some other means (used when combining light sampling with BSDF
// sampling via multiple importance sampling).
func (l *Light) PDFValue(origin, direction core.Vec3) float64 {
	return l.Shape.PDFValue(origin, direction)
}
