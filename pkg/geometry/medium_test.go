package geometry

import (
	"math"
	"sync"
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestConstantMediumHitStaysInsideBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	medium := NewConstantMedium(boundary, 5.0, 0)

	ray := core.NewRay(core.NewVec3(-2, 0, 0), core.NewVec3(1, 0, 0), 0)
	hit, ok := medium.Hit(ray, 0, math.Inf(1))
	if ok {
		assert.LessOrEqual(t, hit.T, 3.0)
		assert.GreaterOrEqual(t, hit.T, 1.0)
	}
}

func TestConstantMediumMissesWhenRayMissesBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	medium := NewConstantMedium(boundary, 5.0, 0)

	ray := core.NewRay(core.NewVec3(-2, 5, 0), core.NewVec3(1, 0, 0), 0)
	_, ok := medium.Hit(ray, 0, math.Inf(1))
	assert.False(t, ok)
}

func TestConstantMediumHitIsSafeForConcurrentUse(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	medium := NewConstantMedium(boundary, 1.0, 0)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ray := core.NewRay(core.NewVec3(-2, 0, 0), core.NewVec3(1, 0, 0), 0)
			medium.Hit(ray, 0, math.Inf(1))
		}()
	}
	wg.Wait()
}

func TestConstantMediumBoundingBoxMatchesBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(1, 2, 3), 2.0, 0)
	medium := NewConstantMedium(boundary, 1.0, 0)
	assert.Equal(t, boundary.BoundingBox(), medium.BoundingBox())
}
