package material

import (
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/aquilax/go-perlin"
)

// Texture maps a surface location (UV plus world point, for 3D-procedural
// patterns) to a spectrum.
type Texture interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// ConstantTexture returns the same color everywhere.
type ConstantTexture struct {
	Color core.Vec3
}

func NewConstantTexture(color core.Vec3) *ConstantTexture {
	return &ConstantTexture{Color: color}
}

func (t *ConstantTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return t.Color
}

// CheckerTexture alternates between two sub-textures based on the sign of
// the product of three scaled sines of the world-space point, a 3D pattern
// that doesn't need UV coordinates and so works on any shape.
type CheckerTexture struct {
	Odd, Even Texture
	Frequency float64
}

func NewCheckerTexture(odd, even Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even, Frequency: 10.0}
}

func (t *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(t.Frequency*point.X) * math.Sin(t.Frequency*point.Y) * math.Sin(t.Frequency*point.Z)
	if sines < 0 {
		return t.Odd.Evaluate(uv, point)
	}
	return t.Even.Evaluate(uv, point)
}

// NoiseTexture drives a grayscale turbulence pattern from a Perlin noise
// generator, summing several octaves at decreasing amplitude.
type NoiseTexture struct {
	noise *perlin.Perlin
	Scale float64
}

// NewNoiseTexture builds a turbulence texture seeded deterministically so
// renders are reproducible given the same scene seed.
func NewNoiseTexture(scale float64, seed int64) *NoiseTexture {
	const alpha, beta = 2.0, 2.0
	const octaves int32 = 3
	return &NoiseTexture{
		noise: perlin.NewPerlin(alpha, beta, octaves, seed),
		Scale: scale,
	}
}

func (t *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	n := t.noise.Noise3D(point.X*t.Scale, point.Y*t.Scale, point.Z*t.Scale)
	gray := 0.5 * (1.0 + n)
	return core.NewVec3(gray, gray, gray)
}

// ImageTexture samples a decoded bitmap using nearest-neighbor filtering.
// Decoding the source file is an external collaborator's job (see
// pkg/loaders); this type only holds and samples already-decoded pixels.
type ImageTexture struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, Pixels[y*Width+x]
}

func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(uv.X * float64(t.Width))
	y := int((1.0 - uv.Y) * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}
