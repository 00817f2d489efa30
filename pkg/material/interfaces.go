package material

import "github.com/anthropic-exercise/pathtracer/pkg/core"

// Material implements the scatter half of a BSDF: given the incident ray
// and the surface interaction, it returns either "absorbed" or a
// continuation ray together with the importance weight the integrator needs.
// Scattering direction is supplied by the material for specular surfaces
// (metal, dielectric) or drawn from an externally chosen PDF (cosine,
// direct-light, or mixture) for diffuse ones; ScatterResult.PDF is zero in
// the specular case.
type Material interface {
	Scatter(rayIn core.Ray, hit core.Interaction, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter is implemented only by materials that emit light; non-emitters
// need not implement it.
type Emitter interface {
	Emit(hit core.Interaction) core.Vec3
}

// ScatterResult is the outcome of a successful Scatter call.
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.Vec3
	PDF         float64 // 0 for specular materials (no externally supplied PDF)
}

// IsSpecular reports whether this scattering event used a delta-function
// direction rather than one drawn from an externally supplied PDF.
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}
