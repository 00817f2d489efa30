package scene

import (
	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
)

// NewCornellSmokeScene is the Cornell box with its two boxes replaced by
// participating media: a dark smoke box and a light smoke box, each a
// geometry.ConstantMedium bounded by a rotated geometry.Box.
func NewCornellSmokeScene() *Scene {
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
		SamplesPerPixel: 200,
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
	}, core.NewVec3(7.0, 7.0, 7.0))

	darkSmoke := s.AddMaterial(material.NewIsotropic(material.NewConstantTexture(core.NewVec3(0, 0, 0))))
	lightSmoke := s.AddMaterial(material.NewIsotropic(material.NewConstantTexture(core.NewVec3(1, 1, 1))))

	var tallBox core.Shape = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallBox = geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295))
	s.AddShape(geometry.NewConstantMedium(tallBox, 0.01, darkSmoke))

	var shortBox core.Shape = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	shortBox = geometry.NewTranslate(geometry.NewRotateY(shortBox, -18), core.NewVec3(130, 0, 65))
	s.AddShape(geometry.NewConstantMedium(shortBox, 0.01, lightSmoke))

	return s
}
