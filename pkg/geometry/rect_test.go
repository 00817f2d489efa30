package geometry

import (
	"math"
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestRectXZHitInsideBounds(t *testing.T) {
	quad := NewRectXZ(-1, 1, -1, 1, 2, 5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)

	hit, ok := quad.Hit(ray, 0, math.Inf(1))
	assert.True(t, ok)
	// NewRay nudges the origin 1e-5 along the direction, so t is measured
	// from y = 1e-5.
	assert.InDelta(t, 2-1e-5, hit.T, 1e-6)
	assert.Equal(t, 5, hit.MaterialIndex)
}

func TestRectXZMissesOutsideBounds(t *testing.T) {
	quad := NewRectXZ(-1, 1, -1, 1, 2, 0)
	ray := core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 1, 0), 0)

	_, ok := quad.Hit(ray, 0, math.Inf(1))
	assert.False(t, ok)
}

func TestRectAreaMatchesSides(t *testing.T) {
	quad := NewRectXZ(0, 2, 0, 3, 0, 0)
	assert.InDelta(t, 6, quad.Area(), 1e-9)
}

func TestRectPDFValuePositiveWhenVisible(t *testing.T) {
	quad := NewRectXZ(-1, 1, -1, 1, 5, 0)
	origin := core.NewVec3(0, 0, 0)
	direction := core.NewVec3(0, 1, 0)

	pdf := quad.PDFValue(origin, direction)
	assert.Greater(t, pdf, 0.0)
}
