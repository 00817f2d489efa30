package lights

import (
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func makeTestLights() []*Light {
	dim := geometry.NewRectXZ(-1, 1, -1, 1, 5, 0)
	bright := geometry.NewRectXZ(-1, 1, -1, 1, -5, 0)
	return []*Light{
		NewLight(dim, core.NewVec3(0.1, 0.1, 0.1)),
		NewLight(bright, core.NewVec3(10, 10, 10)),
	}
}

func TestUniformLightSamplerEqualProbability(t *testing.T) {
	s := NewUniformLightSampler(makeTestLights())
	assert.Equal(t, 2, s.Count())
	assert.InDelta(t, 0.5, s.Probability(0), 1e-9)
	assert.InDelta(t, 0.5, s.Probability(1), 1e-9)

	light, prob := s.SampleLight(0.25)
	assert.NotNil(t, light)
	assert.InDelta(t, 0.5, prob, 1e-9)
}

func TestUniformLightSamplerEmptyReturnsNil(t *testing.T) {
	s := NewUniformLightSampler(nil)
	light, prob := s.SampleLight(0.5)
	assert.Nil(t, light)
	assert.Equal(t, 0.0, prob)
}

func TestWeightedLightSamplerFavorsBrighterLight(t *testing.T) {
	s := NewWeightedLightSampler(makeTestLights())

	assert.Greater(t, s.Probability(1), s.Probability(0))

	light, prob := s.SampleLight(0.999)
	assert.Same(t, s.lights[1], light)
	assert.InDelta(t, s.Probability(1), prob, 1e-9)
}

func TestWeightedLightSamplerProbabilitiesSumToOne(t *testing.T) {
	s := NewWeightedLightSampler(makeTestLights())
	sum := 0.0
	for i := 0; i < s.Count(); i++ {
		sum += s.Probability(i)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
