package material

import (
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestIsotropicScatterIsUnitLength(t *testing.T) {
	iso := NewIsotropic(NewConstantTexture(core.NewVec3(0.9, 0.9, 0.9)))
	hit := core.Interaction{P: core.NewVec3(0, 0, 0)}
	sampler := core.NewThreadSampler(1, 0)

	result, ok := iso.Scatter(core.Ray{}, hit, sampler)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, result.Scattered.Direction.Length(), 1e-6)
	assert.True(t, result.IsSpecular())
}
