package scene

import (
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
)

// NewTriangleMeshScene builds a scene comparing a UV-sphere triangle mesh
// against an analytic sphere of the same size and material, under
// symmetrical three-point lighting.
func NewTriangleMeshScene(complexity int) *Scene {
	cfg := camera.Config{
		Center:        core.NewVec3(0, 2, 6),
		LookAt:        core.NewVec3(0, 1, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          45.0,
		Aperture:      0.02,
		FocusDistance: 6.3,
	}

	s := NewScene(cfg, SamplingConfig{
		Width:           600,
		Height:          338,
		SamplesPerPixel: 150,
		MaxDepth:        40,
	})

	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewSphere(core.NewVec3(0, 6, 0), 1.5, materialIndex)
	}, core.NewVec3(15.0, 15.0, 15.0))
	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewSphere(core.NewVec3(-4, 4, 3), 0.8, materialIndex)
	}, core.NewVec3(8.0, 8.0, 8.0))
	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewSphere(core.NewVec3(4, 4, 3), 0.8, materialIndex)
	}, core.NewVec3(8.0, 8.0, 8.0))

	groundMat := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.7, 0.7, 0.7))))
	s.AddShape(NewGroundQuad(core.NewVec3(0, 0, 0), 10000.0, groundMat))

	goldMetal := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.05))

	latitudeSubdivisions := (complexity * 3) / 4
	if latitudeSubdivisions < 3 {
		latitudeSubdivisions = 3
	}
	meshSphere := newUVSphereMesh(core.NewVec3(-1.5, 1, 0), 1.0, complexity, latitudeSubdivisions, goldMetal)
	s.AddShape(meshSphere)

	s.AddShape(geometry.NewSphere(core.NewVec3(1.5, 1, 0), 1.0, goldMetal))

	return s
}

// newUVSphereMesh tessellates a sphere into a latitude/longitude triangle
// grid of the given subdivision counts.
func newUVSphereMesh(center core.Vec3, radius float64, longitudeSubdivisions, latitudeSubdivisions, materialIndex int) *geometry.TriangleMesh {
	var vertices []core.Vec3
	var faces []int

	for lat := 0; lat <= latitudeSubdivisions; lat++ {
		theta := float64(lat) * math.Pi / float64(latitudeSubdivisions)
		sinTheta := math.Sin(theta)
		cosTheta := math.Cos(theta)

		for lon := 0; lon <= longitudeSubdivisions; lon++ {
			phi := float64(lon) * 2.0 * math.Pi / float64(longitudeSubdivisions)
			x := radius * sinTheta * math.Cos(phi)
			y := radius * cosTheta
			z := radius * sinTheta * math.Sin(phi)
			vertices = append(vertices, center.Add(core.NewVec3(x, y, z)))
		}
	}

	for lat := 0; lat < latitudeSubdivisions; lat++ {
		for lon := 0; lon < longitudeSubdivisions; lon++ {
			current := lat*(longitudeSubdivisions+1) + lon
			next := current + longitudeSubdivisions + 1
			faces = append(faces, current, next, current+1)
			faces = append(faces, current+1, next, next+1)
		}
	}

	return geometry.NewTriangleMesh(vertices, faces, materialIndex, nil)
}
