package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestBVHFindsClosestOfOverlappingSpheres(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, 0), 1, 1)
	far := NewSphere(core.NewVec3(0, 0, 5), 1, 2)

	bvh := NewBVH([]core.Shape{near, far}, rand.New(rand.NewSource(1)))
	ray := core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), 0)

	hit, ok := bvh.Hit(ray, 0, math.Inf(1))
	assert.True(t, ok)
	assert.Equal(t, 1, hit.MaterialIndex)
}

func TestBVHMissesWhenNothingIntersects(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, 0), 1, 0)
	bvh := NewBVH([]core.Shape{s}, rand.New(rand.NewSource(2)))
	ray := core.NewRay(core.NewVec3(10, 10, -10), core.NewVec3(0, 0, 1), 0)

	_, ok := bvh.Hit(ray, 0, math.Inf(1))
	assert.False(t, ok)
}

func TestBVHMatchesLinearScanOverManyShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	shapes := make([]core.Shape, 0, 64)
	for i := 0; i < 64; i++ {
		center := core.NewVec3(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
		shapes = append(shapes, NewSphere(center, 0.5, i))
	}

	bvh := NewBVH(shapes, rand.New(rand.NewSource(7)))
	ray := core.NewRay(core.NewVec3(-100, 0, 0), core.NewVec3(1, 0, 0), 0)

	bvhHit, bvhOK := bvh.Hit(ray, 0, math.Inf(1))

	var linearHit core.Interaction
	linearOK := false
	closest := math.Inf(1)
	for _, s := range shapes {
		if hit, ok := s.Hit(ray, 0, closest); ok {
			linearHit = hit
			linearOK = true
			closest = hit.T
		}
	}

	assert.Equal(t, linearOK, bvhOK)
	if linearOK {
		assert.InDelta(t, linearHit.T, bvhHit.T, 1e-9)
	}
}

func TestEmptyBVHNeverHits(t *testing.T) {
	bvh := NewBVH(nil, rand.New(rand.NewSource(1)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0)

	_, ok := bvh.Hit(ray, 0, math.Inf(1))
	assert.False(t, ok)
}
