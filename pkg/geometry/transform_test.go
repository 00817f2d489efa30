package geometry

import (
	"math"
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestFlipNormalNegatesNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, 0)
	flipped := NewFlipNormal(sphere)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0)

	plain, _ := sphere.Hit(ray, 0, math.Inf(1))
	flippedHit, ok := flipped.Hit(ray, 0, math.Inf(1))

	assert.True(t, ok)
	assert.True(t, plain.Normal.Negate().Equals(flippedHit.Normal))
}

func TestTranslateShiftsHitPoint(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, 0)
	offset := core.NewVec3(5, 0, 0)
	translated := NewTranslate(sphere, offset)

	ray := core.NewRay(core.NewVec3(5, 0, -5), core.NewVec3(0, 0, 1), 0)
	hit, ok := translated.Hit(ray, 0, math.Inf(1))

	assert.True(t, ok)
	assert.InDelta(t, 0, hit.P.Subtract(core.NewVec3(5, 0, -1)).Length(), 1e-6)
}

func TestRotateYPreservesDistanceFromAxis(t *testing.T) {
	sphere := NewSphere(core.NewVec3(2, 0, 0), 0.5, 0)
	rotated := NewRotateY(sphere, 90)

	// Rotating a sphere centered at (2,0,0) by 90 degrees about Y moves its
	// center toward (0,0,-2); a ray straight down the new center position
	// should still hit it.
	ray := core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), 0)
	hit, ok := rotated.Hit(ray, 0, math.Inf(1))

	assert.True(t, ok)
	assert.InDelta(t, 1, hit.Normal.Length(), 1e-6)
}

func TestRotateYBoundingBoxEnclosesOriginal(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), 0)
	rotated := NewRotateY(box, 45)
	worldBox := rotated.BoundingBox()

	assert.True(t, worldBox.IsValid())
	assert.Greater(t, worldBox.Max.X, 0.0)
}
