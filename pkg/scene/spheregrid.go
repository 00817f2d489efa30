package scene

import (
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color coordinates (lightness, chroma, hue in
// degrees) to linear RGB via the OKLab intermediate space.
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(core.Clamp(r, 0, 1), core.Clamp(g, 0, 1), core.Clamp(blue, 0, 1))
}

// NewSphereGridScene builds a grid of metallic spheres with color varied by
// hue and chroma across the grid, over a gray ground quad, lit by a single
// sun-like sphere light.
func NewSphereGridScene() *Scene {
	cfg := camera.Config{
		Center:        core.NewVec3(4.5, 6, 18),
		LookAt:        core.NewVec3(4.5, 0.8, 4.5),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.02,
		FocusDistance: 16.0,
	}

	s := NewScene(cfg, SamplingConfig{
		Width:           800,
		Height:          450,
		SamplesPerPixel: 100,
		MaxDepth:        40,
	})

	s.AddAreaLight(func(materialIndex int) core.Shape {
		return geometry.NewSphere(core.NewVec3(20, 25, 20), 8, materialIndex)
	}, core.NewVec3(12.0, 11.5, 10.0))

	gray := s.AddMaterial(material.NewLambertian(material.NewConstantTexture(core.NewVec3(0.5, 0.5, 0.5))))
	s.AddShape(NewGroundQuad(core.NewVec3(4.5, 0, 4.5), 10000.0, gray))

	const gridSize = 20
	const targetArea = 9.0
	spacing := targetArea / float64(gridSize-1)

	sphereRadius := core.Clamp(spacing*0.35, 0.02, 0.35)

	const baseLightness = 0.65
	const minChroma = 0.05
	const maxChroma = 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			y := sphereRadius

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			metalMat := s.AddMaterial(material.NewMetal(color, roughness))
			s.AddShape(geometry.NewSphere(core.NewVec3(x, y, z), sphereRadius, metalMat))
		}
	}

	return s
}
