package material

import (
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestDielectricAttenuationIsUnity(t *testing.T) {
	d := NewDielectric(1.5)
	hit := core.Interaction{P: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0)
	sampler := core.NewThreadSampler(1, 0)

	result, ok := d.Scatter(rayIn, hit, sampler)
	assert.True(t, ok)
	assert.True(t, result.Attenuation.Equals(core.NewVec3(1, 1, 1)))
	assert.True(t, result.IsSpecular())
}

func TestSchlickReflectanceAtNormalIncidenceMatchesR0(t *testing.T) {
	eta := 1.5
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0

	assert.InDelta(t, r0, schlickReflectance(1.0, eta), 1e-9)
}

func TestSchlickReflectanceGrazingAngleApproachesOne(t *testing.T) {
	assert.InDelta(t, 1.0, schlickReflectance(0.0, 1.5), 1e-9)
}

func TestDielectricTotalInternalReflectionAlwaysReflects(t *testing.T) {
	d := NewDielectric(1.5)
	// Exiting the medium at a steep angle beyond the critical angle.
	hit := core.Interaction{P: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: false}
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.99, -0.1, 0), 0)
	sampler := core.NewThreadSampler(1, 0)

	result, ok := d.Scatter(rayIn, hit, sampler)
	assert.True(t, ok)
	assert.Greater(t, result.Scattered.Direction.Dot(hit.Normal), 0.0)
}
