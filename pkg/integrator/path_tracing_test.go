package integrator

import (
	"math"
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
	"github.com/anthropic-exercise/pathtracer/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptySceneWithSky() *scene.Scene {
	s := scene.NewScene(camera.Config{AspectRatio: 1, VFov: 40, FocusDistance: 1}, scene.SamplingConfig{
		MaxDepth: 8,
	})
	_ = s.Preprocess()
	return s
}

func TestRayColorMissReturnsBackgroundGradient(t *testing.T) {
	pt := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 8})
	s := emptySceneWithSky()
	sampler := core.NewThreadSampler(1, 0)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)
	color := pt.RayColor(ray, s, sampler)

	assert.Greater(t, color.Luminance(), 0.0)
}

func TestRayColorFirstBounceEmitterReturnsClampedEmission(t *testing.T) {
	s := scene.NewScene(camera.Config{AspectRatio: 1, VFov: 40, FocusDistance: 1}, scene.SamplingConfig{MaxDepth: 8})
	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewSphere(core.NewVec3(0, 0, 3), 1.0, materialIndex)
	}, core.NewVec3(4, 4, 4))
	require.NoError(t, s.Preprocess())

	pt := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 8})
	sampler := core.NewThreadSampler(1, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0)

	color := pt.RayColor(ray, s, sampler)
	assert.LessOrEqual(t, color.X, 1.0)
	assert.LessOrEqual(t, color.Y, 1.0)
	assert.LessOrEqual(t, color.Z, 1.0)
	assert.Greater(t, color.Luminance(), 0.0)
}

func TestRayColorNeverProducesNaN(t *testing.T) {
	s := scene.NewScene(camera.Config{AspectRatio: 1, VFov: 40, FocusDistance: 1}, scene.SamplingConfig{
		MaxDepth: 12,
	})
	gray := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.5, 0.5, 0.5))))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 3), 1.0, gray))
	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewSphere(core.NewVec3(2, 2, 3), 0.5, materialIndex)
	}, core.NewVec3(6, 6, 6))
	require.NoError(t, s.Preprocess())

	pt := NewPathTracingIntegrator(s.SamplingConfig)
	sampler := core.NewThreadSampler(1, 0)

	for i := 0; i < 32; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0)
		color := pt.RayColor(ray, s, sampler)
		assert.False(t, math.IsNaN(color.X) || math.IsNaN(color.Y) || math.IsNaN(color.Z))
	}
}
