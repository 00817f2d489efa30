package scene

import (
	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
)

// NewCornellScene builds the classic Cornell box: five quad walls, a
// recessed ceiling light, a metal sphere and a glass sphere.
func NewCornellScene() *Scene {
	cfg := camera.Config{
		Center:        core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   1.0,
		VFov:          40.0,
		Aperture:      0.0,
		FocusDistance: 800.0,
	}

	s := NewScene(cfg, SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 150,
		MaxDepth:        40,
	})

	white := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.73, 0.73, 0.73))))
	red := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.65, 0.05, 0.05))))
	green := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.12, 0.45, 0.15))))

	const boxSize = 555.0

	floor := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	ceiling := geometry.NewQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	backWall := geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)
	leftWall := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red)
	rightWall := geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green)

	s.AddShape(floor)
	s.AddShape(ceiling)
	s.AddShape(backWall)
	s.AddShape(leftWall)
	s.AddShape(rightWall)

	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewQuad(
			core.NewVec3(lightOffset, boxSize-1, lightOffset),
			core.NewVec3(lightSize, 0, 0),
			core.NewVec3(0, 0, lightSize),
			materialIndex,
		)
	}, core.NewVec3(15.0, 15.0, 15.0))

	metalSphere := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0))
	glassSphere := s.AddMaterial(material.NewDielectric(1.5))

	s.AddShape(geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, metalSphere))
	s.AddShape(geometry.NewSphere(core.NewVec3(370, 90, 351), 90, glassSphere))

	return s
}
