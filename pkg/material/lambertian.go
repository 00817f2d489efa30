package material

import (
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// Lambertian is a perfectly diffuse material. Its Scatter always succeeds
// and draws a cosine-weighted direction; the integrator may replace that
// direction with one drawn from its own PDF (cosine, direct-light, or
// mixture) and weights it with f = albedo/π times cosθ over that PDF.
type Lambertian struct {
	Albedo Texture
}

func NewLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter draws a cosine-weighted direction and reports Attenuation = f =
// albedo/π together with that direction's density PDF = cosθ/π; callers
// that supply their own PDF recompute the weight themselves from f.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.Interaction, sampler core.Sampler) (ScatterResult, bool) {
	pdf := core.NewCosinePDF(hit.Normal)
	direction := pdf.Generate(sampler)
	scattered := core.NewRay(hit.P, direction, rayIn.Time)

	cosine := math.Max(0, direction.Normalize().Dot(hit.Normal))
	albedo := l.Albedo.Evaluate(hit.UV, hit.P)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: albedo.Multiply(1.0 / math.Pi),
		PDF:         cosine / math.Pi,
	}, true
}

// BRDF returns f = albedo/π, the Lambertian reflectance kernel, independent
// of direction.
func (l *Lambertian) BRDF(hit core.Interaction) core.Vec3 {
	return l.Albedo.Evaluate(hit.UV, hit.P).Multiply(1.0 / math.Pi)
}
