package camera

import (
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   1.0,
		Aperture:      0,
		FocusDistance: 1.0,
	}
}

func TestCameraCenterRayPointsAtLookAt(t *testing.T) {
	cam := NewCamera(testConfig())
	sampler := core.NewThreadSampler(1, 0)

	ray := cam.GetRay(0.5, 0.5, sampler)
	assert.InDelta(t, 0.0, ray.Origin.X, 1e-4)
	assert.InDelta(t, 0.0, ray.Origin.Y, 1e-4)
	assert.Less(t, ray.Direction.Z, 0.0)
}

func TestCameraZeroApertureProducesNoLensJitter(t *testing.T) {
	cam := NewCamera(testConfig())
	sampler := core.NewThreadSampler(1, 0)

	for i := 0; i < 8; i++ {
		ray := cam.GetRay(0.3, 0.7, sampler)
		assert.InDelta(t, 0.0, ray.Origin.X, 1e-4)
		assert.InDelta(t, 0.0, ray.Origin.Y, 1e-4)
		assert.InDelta(t, 0.0, ray.Origin.Z, 1e-4)
	}
}

func TestCameraNonzeroApertureJittersOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.Aperture = 2.0
	cam := NewCamera(cfg)
	sampler := core.NewThreadSampler(1, 0)

	allSame := true
	first := cam.GetRay(0.5, 0.5, sampler).Origin
	for i := 0; i < 16; i++ {
		ray := cam.GetRay(0.5, 0.5, sampler)
		if !ray.Origin.Equals(first) {
			allSame = false
		}
	}
	assert.False(t, allSame)
}

func TestCameraTimeRangeIsRespected(t *testing.T) {
	cfg := testConfig()
	cfg.TimeStart = 0.0
	cfg.TimeEnd = 1.0
	cam := NewCamera(cfg)
	sampler := core.NewThreadSampler(1, 0)

	for i := 0; i < 16; i++ {
		ray := cam.GetRay(0.5, 0.5, sampler)
		assert.GreaterOrEqual(t, ray.Time, 0.0)
		assert.LessOrEqual(t, ray.Time, 1.0)
	}
}

func TestCameraZeroTimeRangeAlwaysTimeStart(t *testing.T) {
	cam := NewCamera(testConfig())
	sampler := core.NewThreadSampler(1, 0)
	ray := cam.GetRay(0.5, 0.5, sampler)
	assert.Equal(t, 0.0, ray.Time)
}
