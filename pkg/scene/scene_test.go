package scene

import (
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAreaLightRegistersShapeAndLight(t *testing.T) {
	s := NewScene(camera.Config{AspectRatio: 1, VFov: 40, FocusDistance: 1}, SamplingConfig{})

	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewSphere(core.NewVec3(0, 5, 0), 1.0, materialIndex)
	}, core.NewVec3(5, 5, 5))

	assert.Len(t, s.Shapes, 1)
	assert.Len(t, s.Lights, 1)
	assert.Len(t, s.Materials, 1)
	assert.True(t, s.Lights[0].Emission.Equals(core.NewVec3(5, 5, 5)))
}

func TestPreprocessBuildsBVHAndDefaultLightSampler(t *testing.T) {
	s := NewScene(camera.Config{AspectRatio: 1, VFov: 40, FocusDistance: 1}, SamplingConfig{})
	gray := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.5, 0.5, 0.5))))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, gray))

	require.NoError(t, s.Preprocess())
	assert.NotNil(t, s.BVH)
	assert.NotNil(t, s.LightSampler)
}

func TestPrimitiveCountCountsTriangleMeshLeaves(t *testing.T) {
	s := NewScene(camera.Config{AspectRatio: 1, VFov: 40, FocusDistance: 1}, SamplingConfig{})
	gray := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.5, 0.5, 0.5))))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, gray))

	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(1, 1, 0),
	}
	faces := []int{0, 1, 2, 1, 3, 2}
	s.AddShape(geometry.NewTriangleMesh(vertices, faces, gray, nil))

	assert.Equal(t, 3, s.PrimitiveCount())
}
