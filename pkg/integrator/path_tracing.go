// Package integrator evaluates the Monte-Carlo light transport estimator:
// given a primary ray and a scene, it returns the radiance carried back
// along that ray.
package integrator

import (
	"fmt"
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
	"github.com/anthropic-exercise/pathtracer/pkg/scene"
)

const (
	shadowEpsilon  = 1e-3
	maxRayDistance = 1e4
)

// PathTracingIntegrator implements unidirectional path tracing with an
// iterative (not recursive) bounce loop, matching the scheduling model's
// requirement that intersection, scattering and sample draws never block.
type PathTracingIntegrator struct {
	config  scene.SamplingConfig
	Verbose bool

	// ClampFirstBounceEmission, when true, makes a primary ray that hits an
	// emitter return that emission clamped to [0,1] (bloom suppression);
	// when false the unclamped emission is returned.
	ClampFirstBounceEmission bool
}

// NewPathTracingIntegrator builds an integrator bound to the given sampling
// configuration (depth cap), with ClampFirstBounceEmission enabled.
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config, ClampFirstBounceEmission: true}
}

// RayColor evaluates the estimator for a single primary ray against s,
// iterating bounces up to the configured max depth and NaN-scrubbing the
// result before returning it. Termination is the fixed depth cap alone; no
// Russian Roulette is applied.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	radiance := core.NewVec3(0, 0, 0)
	currentRay := ray

	for bounce := 0; bounce < pt.config.MaxDepth; bounce++ {
		hit, isHit := s.BVH.Hit(currentRay, shadowEpsilon, maxRayDistance)
		if !isHit {
			radiance = radiance.Add(throughput.MultiplyVec(pt.backgroundGradient(currentRay)))
			break
		}

		mat := s.Materials[hit.MaterialIndex]
		emission := pt.emittedLight(mat, hit)

		if bounce == 0 && emission.Luminance() > 0 {
			if pt.ClampFirstBounceEmission {
				return emission.Clamp(0, 1).ScrubNaN()
			}
			return emission.ScrubNaN()
		}

		scatterResult, didScatter := mat.Scatter(currentRay, hit, sampler)
		if !didScatter {
			radiance = radiance.Add(throughput.MultiplyVec(emission))
			break
		}

		radiance = radiance.Add(throughput.MultiplyVec(emission))

		weight, nextRay, ok := pt.sampleBounce(mat, scatterResult, hit, s, sampler)
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(weight)
		currentRay = nextRay

		pt.logf("bounce=%d throughput=%v\n", bounce, throughput)
	}

	return radiance.ScrubNaN()
}

// sampleBounce computes the next ray and its per-bounce weight for the
// scattered direction, per spec.md 4.6's material-variant weight rules.
func (pt *PathTracingIntegrator) sampleBounce(mat material.Material, scatter material.ScatterResult, hit core.Interaction, s *scene.Scene, sampler core.Sampler) (core.Vec3, core.Ray, bool) {
	if scatter.IsSpecular() {
		return scatter.Attenuation, scatter.Scattered, true
	}

	// Lambertian-style diffuse bounce: mix a light-directed PDF with the
	// cosine PDF already embedded in scatter.Scattered's direction only
	// when at least one light exists; otherwise fall back to pure cosine
	// sampling (the PDF the material itself already sampled from).
	lambertian, isLambertian := mat.(*material.Lambertian)
	if !isLambertian {
		if scatter.PDF <= 0 {
			return core.Vec3{}, core.Ray{}, false
		}
		cosine := scatter.Scattered.Direction.Dot(hit.Normal)
		if cosine <= 0 {
			return core.Vec3{}, core.Ray{}, false
		}
		scatteringPDF := cosine / math.Pi
		weight := scatter.Attenuation.Multiply(scatteringPDF / scatter.PDF)
		return weight, scatter.Scattered, true
	}

	cosinePDF := core.NewCosinePDF(hit.Normal)
	var pdf core.PDF = cosinePDF
	if s.LightSampler != nil && s.LightSampler.Count() > 0 {
		light, _ := s.LightSampler.SampleLight(sampler.Get1D())
		if light != nil {
			shapePDF := core.NewShapePDF(hit.P, light.Shape)
			pdf = core.NewMixturePDF(shapePDF, cosinePDF)
		}
	}

	direction := pdf.Generate(sampler)
	pdfVal := pdf.Value(direction)
	if pdfVal <= 0 {
		return core.Vec3{}, core.Ray{}, false
	}

	scatteringPDF := math.Abs(hit.Normal.Dot(direction)) / math.Pi
	nextRay := core.NewRay(hit.P, direction, currentTimeOf(scatter))
	weight := lambertian.BRDF(hit).Multiply(math.Pi).Multiply(scatteringPDF / pdfVal)
	return weight, nextRay, true
}

func currentTimeOf(scatter material.ScatterResult) float64 {
	return scatter.Scattered.Time
}

func (pt *PathTracingIntegrator) emittedLight(mat material.Material, hit core.Interaction) core.Vec3 {
	if emitter, ok := mat.(material.Emitter); ok {
		return emitter.Emit(hit)
	}
	return core.Vec3{}
}

// backgroundGradient returns the implementation-defined sky term for rays
// that escape the scene: a vertical gradient from white straight down to
// soft blue straight up, an even blend of the two at the horizon.
func (pt *PathTracingIntegrator) backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	white := core.NewVec3(1.0, 1.0, 1.0)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1.0 - t).Add(blue.Multiply(t))
}

func (pt *PathTracingIntegrator) logf(format string, a ...interface{}) {
	if pt.Verbose {
		fmt.Printf(format, a...)
	}
}
