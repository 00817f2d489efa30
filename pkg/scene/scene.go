// Package scene assembles primitives, materials and lights into a renderable
// Scene: an index-based material/shape registry, an acceleration structure,
// and a camera.
package scene

import (
	"math/rand"

	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/lights"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
)

// SamplingConfig holds the tile driver and integrator's rendering parameters.
type SamplingConfig struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
}

// Scene holds everything the integrator and tile driver need to render an
// image: a camera, a BVH-accelerated shape list, an index-based material
// registry, and the lights available for next-event estimation.
type Scene struct {
	Camera         *camera.Camera
	CameraConfig   camera.Config
	Materials      []material.Material
	Shapes         []core.Shape
	Lights         []*lights.Light
	LightSampler   lights.LightSampler
	SamplingConfig SamplingConfig
	BVH            *geometry.BVH

	// bvhSeed drives the BVH's internal random-axis partitioning. Scene
	// construction is otherwise deterministic; this seed is not part of the
	// rendering-visible sample stream.
	bvhSeed int64
}

// NewScene constructs an empty scene with the given camera and sampling
// configuration.
func NewScene(cfg camera.Config, sampling SamplingConfig) *Scene {
	return &Scene{
		CameraConfig:   cfg,
		Camera:         camera.NewCamera(cfg),
		SamplingConfig: sampling,
		bvhSeed:        1,
	}
}

// AddMaterial registers a material and returns its index.
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddShape registers a primitive for intersection and BVH inclusion.
func (s *Scene) AddShape(shape core.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddAreaLight registers an emissive shape both as an intersectable
// primitive and as an explicit-sampling light: it appends a DiffuseLight
// material bound to emission, adds the shape to the BVH's shape list, and
// records a lights.Light wrapping the same shape for next-event estimation.
func (s *Scene) AddAreaLight(makeShape func(materialIndex int) core.Shape, emission core.Vec3) {
	matIndex := s.AddMaterial(material.NewDiffuseLight(material.NewConstantTexture(emission)))
	shape := makeShape(matIndex)
	s.AddShape(shape)
	if sampler, ok := shape.(core.AreaSampler); ok {
		s.Lights = append(s.Lights, lights.NewLight(sampler, emission))
	}
}

// Preprocess builds the BVH over the scene's shapes and, if none was set
// explicitly, a weighted light sampler over the scene's lights. It must be
// called once after all shapes and lights have been added and before the
// scene is rendered.
func (s *Scene) Preprocess() error {
	rng := rand.New(rand.NewSource(s.bvhSeed))
	s.BVH = geometry.NewBVH(s.Shapes, rng)

	if s.LightSampler == nil {
		s.LightSampler = lights.NewWeightedLightSampler(s.Lights)
	}
	return nil
}

// PrimitiveCount returns the total number of leaf primitives in the scene,
// expanding compound shapes (triangle meshes) into their constituent count.
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += primitiveCount(shape)
	}
	return count
}

func primitiveCount(shape core.Shape) int {
	switch v := shape.(type) {
	case *geometry.TriangleMesh:
		return v.TriangleCount()
	case *geometry.List:
		total := 0
		for _, child := range v.Shapes {
			total += primitiveCount(child)
		}
		return total
	default:
		return 1
	}
}
