package scene

import (
	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
)

// NewGroundQuad builds a large finite quad standing in for an infinite
// ground plane, centered at center with normal pointing up.
func NewGroundQuad(center core.Vec3, size float64, materialIndex int) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, size)
	return geometry.NewQuad(corner, u, v, materialIndex)
}

// NewDefaultScene builds a small showcase scene: three spheres over a
// ground quad, a glass sphere, a hollow glass shell around a blue
// Lambertian core, and a single bright sphere light.
func NewDefaultScene() *Scene {
	cfg := camera.Config{
		Center:        core.NewVec3(0, 0.75, 2),
		LookAt:        core.NewVec3(0, 0.5, -1),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.05,
		FocusDistance: 3.2,
	}

	s := NewScene(cfg, SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	})

	lambertianGreen := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.48, 0.48, 0.0))))
	lambertianBlue := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.1, 0.2, 0.5))))
	lambertianRed := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.65, 0.25, 0.2))))
	metalSilver := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0))
	metalGold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))
	glass := s.AddMaterial(material.NewDielectric(1.5))

	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed))
	s.AddShape(geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver))
	s.AddShape(geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold))
	s.AddShape(NewGroundQuad(core.NewVec3(0, 0, 0), 10000.0, lambertianGreen))
	s.AddShape(geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass))

	hollowCenter := core.NewVec3(-0.5, 0.25, -0.5)
	s.AddShape(geometry.NewSphere(hollowCenter, 0.25, glass))
	s.AddShape(geometry.NewSphere(hollowCenter, -0.24, glass))
	s.AddShape(geometry.NewSphere(hollowCenter, 0.20, lambertianBlue))

	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewSphere(core.NewVec3(30, 30.5, 15), 10, materialIndex)
	}, core.NewVec3(15.0, 14.0, 13.0))

	return s
}
