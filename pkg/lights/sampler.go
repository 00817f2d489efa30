package lights

import "github.com/anthropic-exercise/pathtracer/pkg/core"

// LightSampler selects which light to sample for next-event estimation at a
// shading point, and reports the probability with which a given light would
// have been chosen (needed to turn a per-light PDF into a scene-wide one for
// multiple importance sampling).
type LightSampler interface {
	// SampleLight picks a light using u in [0,1) and returns it along with
	// the probability it was selected. Returns nil, 0 if there are no lights.
	SampleLight(u float64) (*Light, float64)
	// Probability reports the selection probability for the light at index i.
	Probability(i int) float64
	Count() int
}

// UniformLightSampler picks among the scene's lights with equal probability.
// This is the simplest strategy and matches the teacher's unweighted light
// list for scenes where no light dominates.
type UniformLightSampler struct {
	lights []*Light
}

// NewUniformLightSampler builds a sampler that treats every light equally.
func NewUniformLightSampler(lights []*Light) *UniformLightSampler {
	return &UniformLightSampler{lights: lights}
}

func (s *UniformLightSampler) SampleLight(u float64) (*Light, float64) {
	n := len(s.lights)
	if n == 0 {
		return nil, 0
	}
	idx := int(u * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return s.lights[idx], 1.0 / float64(n)
}

func (s *UniformLightSampler) Probability(i int) float64 {
	if len(s.lights) == 0 {
		return 0
	}
	return 1.0 / float64(len(s.lights))
}

func (s *UniformLightSampler) Count() int { return len(s.lights) }

// WeightedLightSampler picks lights with probability proportional to their
// emitted luminance, so a bright light contributes more samples than a dim
// one of the same shape. Grounded on the teacher's weighted light selection:
// a cumulative-weight array walked by a single uniform draw.
type WeightedLightSampler struct {
	lights      []*Light
	weights     []float64
	cumulative  []float64
	totalWeight float64
}

// NewWeightedLightSampler builds a sampler weighted by each light's emitted
// luminance (the standard Rec. 709 weighting of its RGB emission).
func NewWeightedLightSampler(lights []*Light) *WeightedLightSampler {
	s := &WeightedLightSampler{lights: lights}
	s.weights = make([]float64, len(lights))
	s.cumulative = make([]float64, len(lights))
	running := 0.0
	for i, light := range lights {
		w := light.Emission.Luminance()
		if w <= 0 {
			w = 1e-6
		}
		s.weights[i] = w
		running += w
		s.cumulative[i] = running
	}
	s.totalWeight = running
	return s
}

func (s *WeightedLightSampler) SampleLight(u float64) (*Light, float64) {
	n := len(s.lights)
	if n == 0 || s.totalWeight <= 0 {
		return nil, 0
	}
	target := u * s.totalWeight
	idx := 0
	for i, cum := range s.cumulative {
		if target <= cum {
			idx = i
			break
		}
		idx = i
	}
	return s.lights[idx], s.Probability(idx)
}

func (s *WeightedLightSampler) Probability(i int) float64 {
	if s.totalWeight <= 0 || i < 0 || i >= len(s.weights) {
		return 0
	}
	return s.weights[i] / s.totalWeight
}

func (s *WeightedLightSampler) Count() int { return len(s.lights) }
