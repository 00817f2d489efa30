package material

import (
	"math"
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestLambertianScatterAboveSurface(t *testing.T) {
	l := NewLambertian(NewConstantTexture(core.NewVec3(0.5, 0.5, 0.5)))
	hit := core.Interaction{P: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	sampler := core.NewThreadSampler(1, 0)
	rayIn := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0)

	result, ok := l.Scatter(rayIn, hit, sampler)
	assert.True(t, ok)
	assert.Greater(t, result.Scattered.Direction.Dot(hit.Normal), -1e-9)
	assert.False(t, result.IsSpecular())
}

func TestLambertianBRDFIsAlbedoOverPi(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.2, 0.4)
	l := NewLambertian(NewConstantTexture(albedo))
	hit := core.Interaction{Normal: core.NewVec3(0, 1, 0)}

	expected := albedo.Multiply(1.0 / math.Pi)
	assert.True(t, expected.Equals(l.BRDF(hit)))
}
