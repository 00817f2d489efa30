package scene

import (
	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
)

// NewTextureTestScene lines up a sphere, capped cylinder, box, disk, quad and
// triangle on a ground quad, each wearing one of three procedural textures
// (checker, Perlin noise, brick-toned checker), for visual regression
// checking of the material and texture evaluation paths.
func NewTextureTestScene() *Scene {
	cfg := camera.Config{
		Center:        core.NewVec3(0, 2, 10),
		LookAt:        core.NewVec3(0, 1, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          50.0,
		Aperture:      0.0,
		FocusDistance: 12.0,
	}

	s := NewScene(cfg, SamplingConfig{
		Width:           800,
		Height:          450,
		SamplesPerPixel: 100,
		MaxDepth:        10,
	})

	checker := material.NewCheckerTexture(
		material.NewConstantTexture(core.NewVec3(0.9, 0.9, 0.9)),
		material.NewConstantTexture(core.NewVec3(0.2, 0.2, 0.8)),
	)
	noise := material.NewNoiseTexture(4.0, 7)
	brick := material.NewCheckerTexture(
		material.NewConstantTexture(core.NewVec3(0.7, 0.3, 0.1)),
		material.NewConstantTexture(core.NewVec3(0.5, 0.2, 0.05)),
	)

	checkerMat := s.AddMaterial(material.NewLambertian(checker))
	noiseMat := s.AddMaterial(material.NewLambertian(noise))
	brickMat := s.AddMaterial(material.NewLambertian(brick))

	s.AddShape(geometry.NewSphere(core.NewVec3(-6, 1, 0), 1.0, checkerMat))
	s.AddShape(geometry.NewCappedCylinder(core.NewVec3(-4, 0, 0), 0.6, 0, 2, noiseMat))
	s.AddShape(geometry.NewBox(core.NewVec3(-2.8, 0.2, -0.8), core.NewVec3(-1.2, 1.8, 0.8), brickMat))
	s.AddShape(geometry.NewDisk(core.NewVec3(0, 1.2, 0), 0.9, checkerMat))
	s.AddShape(geometry.NewQuad(core.NewVec3(1.5, 0, 0.2), core.NewVec3(1.5, 0, -0.3), core.NewVec3(0, 2, 0), noiseMat))
	s.AddShape(geometry.NewTriangle(core.NewVec3(3.5, 0, 0), core.NewVec3(5, 0, 0), core.NewVec3(4.25, 2, 0), brickMat))
	s.AddShape(geometry.NewQuad(core.NewVec3(-10, 0, -5), core.NewVec3(20, 0, 0), core.NewVec3(0, 0, 15), brickMat))

	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewSphere(core.NewVec3(0, 8, 5), 2.0, materialIndex)
	}, core.NewVec3(20, 20, 20))

	return s
}
