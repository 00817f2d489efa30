package renderer

import (
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
	"github.com/anthropic-exercise/pathtracer/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRejectsUnpreprocessedScene(t *testing.T) {
	s := scene.NewScene(camera.Config{AspectRatio: 1, VFov: 40, FocusDistance: 1}, scene.SamplingConfig{
		Width: 4, Height: 4,
	})
	_, err := Render(s, 4, 0)
	assert.Error(t, err)
}

func TestRenderRejectsNonPositiveSampleCount(t *testing.T) {
	s := testScene(t)
	_, err := Render(s, 0, 0)
	assert.Error(t, err)
}

func TestRenderProducesFullyCoveredFilm(t *testing.T) {
	s := scene.NewScene(camera.Config{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, 1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1,
		FocusDistance: 1,
	}, scene.SamplingConfig{
		Width:    8,
		Height:   8,
		MaxDepth: 4,
	})
	gray := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.5, 0.5, 0.5))))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 3), 1.0, gray))
	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewSphere(core.NewVec3(2, 2, 2), 0.5, materialIndex)
	}, core.NewVec3(5, 5, 5))
	require.NoError(t, s.Preprocess())

	film, err := Render(s, 2, 0)
	require.NoError(t, err)
	require.NotNil(t, film)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, 1, film.counts[film.index(x, y)])
		}
	}
}
