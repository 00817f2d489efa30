package material

import "github.com/anthropic-exercise/pathtracer/pkg/core"

// Isotropic scatters uniformly over the full sphere of directions; it backs
// the phase function of a participating medium (geometry.ConstantMedium).
type Isotropic struct {
	Albedo Texture
}

func NewIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (i *Isotropic) Scatter(rayIn core.Ray, hit core.Interaction, sampler core.Sampler) (ScatterResult, bool) {
	direction := core.RandomUnitVector(sampler)
	scattered := core.NewRay(hit.P, direction, rayIn.Time)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.P),
		PDF:         0,
	}, true
}
