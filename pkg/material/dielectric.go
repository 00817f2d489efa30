package material

import (
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// Dielectric is a transparent material (glass, water) that either reflects
// or refracts the incident ray, chosen stochastically by Schlick's
// approximation of the Fresnel reflectance.
type Dielectric struct {
	RefractiveIndex float64
}

func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

func (d *Dielectric) Scatter(rayIn core.Ray, hit core.Interaction, sampler core.Sampler) (ScatterResult, bool) {
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // entering the medium
	} else {
		refractionRatio = d.RefractiveIndex // exiting the medium
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, refractionRatio)
	}

	scattered := core.NewRay(hit.P, direction, rayIn.Time)
	return ScatterResult{
		Scattered:   scattered,
		Attenuation: core.NewVec3(1, 1, 1),
		PDF:         0,
	}, true
}

// refract computes the Snell's-law refraction of uv about normal n with
// index ratio etaiOverEtat.
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// schlickReflectance approximates the Fresnel reflectance: r0+(1-r0)(1-cosθ)^5
// where r0=((1-η)/(1+η))².
func schlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
