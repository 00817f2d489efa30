package scene

import (
	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
)

// NewCylinderScene builds a showcase of Y-axis cylinders: an uncapped gold
// tube, a capped red tube, a capped blue tube, and a short capped glass
// tube, over a gray ground quad, lit by a sphere light.
func NewCylinderScene() *Scene {
	cfg := camera.Config{
		Center:        core.NewVec3(0, 1.5, 4),
		LookAt:        core.NewVec3(0, 1, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          50.0,
		Aperture:      0.0,
		FocusDistance: 5.0,
	}

	s := NewScene(cfg, SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	})

	gray := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.5, 0.5, 0.5))))
	red := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.8, 0.2, 0.2))))
	blue := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.2, 0.2, 0.8))))
	gold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1))
	glass := s.AddMaterial(material.NewDielectric(1.5))

	s.AddShape(NewGroundQuad(core.NewVec3(0, 0, 0), 10000.0, gray))

	// Uncapped gold tube, open at both ends.
	s.AddShape(geometry.NewCylinder(core.NewVec3(-0.3, 0, -1.5), 0.35, 0.0, 2.2, gold))

	// Capped red tube.
	s.AddShape(geometry.NewCappedCylinder(core.NewVec3(1.8, 0, 0), 0.5, 0, 2, red))

	// Capped blue tube, short and wide.
	s.AddShape(geometry.NewCappedCylinder(core.NewVec3(-2.0, 0, 0), 0.3, 0, 0.6, blue))

	// Small capped glass tube in front.
	s.AddShape(geometry.NewCappedCylinder(core.NewVec3(0.5, 0, 1), 0.2, 0, 0.6, glass))

	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewSphere(core.NewVec3(3, 5, 3), 1.5, materialIndex)
	}, core.NewVec3(10.0, 10.0, 10.0))

	return s
}
