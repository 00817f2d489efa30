package material

import "github.com/anthropic-exercise/pathtracer/pkg/core"

// Metal is a specular reflector perturbed by a fuzz factor.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // clamped to [0,1]
}

func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: core.Clamp(fuzz, 0, 1)}
}

// Scatter reflects the incident direction about the normal, perturbed by a
// uniform sample inside the unit sphere scaled by Fuzz; scattering fails iff
// the perturbed direction points into the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit core.Interaction, sampler core.Sampler) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		perturbation := sampler.Get3D().Multiply(m.Fuzz)
		reflected = reflected.Add(perturbation)
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	scattered := core.NewRay(hit.P, reflected, rayIn.Time)
	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
		PDF:         0,
	}, true
}

// reflect computes r = v − 2·(v·n)·n.
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
