package material

import "github.com/anthropic-exercise/pathtracer/pkg/core"

// DiffuseLight is an emission-only material: it never scatters and emits
// its texture's value unconditionally (no attenuation with angle).
type DiffuseLight struct {
	Emission Texture
}

func NewDiffuseLight(emission Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

func (e *DiffuseLight) Scatter(rayIn core.Ray, hit core.Interaction, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func (e *DiffuseLight) Emit(hit core.Interaction) core.Vec3 {
	return e.Emission.Evaluate(hit.UV, hit.P)
}
