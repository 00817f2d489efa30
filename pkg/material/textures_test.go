package material

import (
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestConstantTextureIgnoresUVAndPoint(t *testing.T) {
	tex := NewConstantTexture(core.NewVec3(1, 2, 3))
	a := tex.Evaluate(core.NewVec2(0, 0), core.NewVec3(0, 0, 0))
	b := tex.Evaluate(core.NewVec2(1, 1), core.NewVec3(5, 5, 5))
	assert.True(t, a.Equals(b))
}

func TestCheckerTextureAlternates(t *testing.T) {
	odd := NewConstantTexture(core.NewVec3(0, 0, 0))
	even := NewConstantTexture(core.NewVec3(1, 1, 1))
	checker := NewCheckerTexture(odd, even)

	// freq=10, point (0,0,0): sin(0)=0 so sines==0, not < 0, takes even branch.
	result := checker.Evaluate(core.NewVec2(0, 0), core.NewVec3(0, 0, 0))
	assert.True(t, result.Equals(core.NewVec3(1, 1, 1)))
}

func TestNoiseTextureIsDeterministicForSameSeed(t *testing.T) {
	a := NewNoiseTexture(1.0, 42)
	b := NewNoiseTexture(1.0, 42)

	point := core.NewVec3(1.23, 4.56, 7.89)
	va := a.Evaluate(core.NewVec2(0, 0), point)
	vb := b.Evaluate(core.NewVec2(0, 0), point)

	assert.True(t, va.Equals(vb))
}

func TestImageTextureSamplesNearestPixel(t *testing.T) {
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
	}
	tex := NewImageTexture(2, 2, pixels)

	// v=1 maps to the top row (y=0): u=0 -> pixel (1,0,0).
	result := tex.Evaluate(core.NewVec2(0, 1), core.NewVec3(0, 0, 0))
	assert.True(t, result.Equals(core.NewVec3(1, 0, 0)))
}
