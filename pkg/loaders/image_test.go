package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, path string, width, height int, set func(x, y int) color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, set(x, y))
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadImageDecodesPixelsInRowMajorOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")

	corners := map[[2]int]color.RGBA{
		{0, 0}: {R: 255, G: 255, B: 255, A: 255},
		{1, 0}: {R: 255, G: 0, B: 0, A: 255},
		{0, 1}: {R: 0, G: 255, B: 0, A: 255},
		{1, 1}: {R: 0, G: 0, B: 255, A: 255},
	}
	writeTestPNG(t, path, 2, 2, func(x, y int) color.RGBA { return corners[[2]int{x, y}] })

	data, err := LoadImage(path, 0)
	require.NoError(t, err)
	require.Equal(t, 2, data.Width)
	require.Equal(t, 2, data.Height)
	require.Len(t, data.Pixels, 4)

	const tolerance = 0.01
	assert.InDelta(t, 1.0, data.Pixels[0].X, tolerance) // top-left: white
	assert.InDelta(t, 1.0, data.Pixels[1].X, tolerance) // top-right: red
	assert.InDelta(t, 0.0, data.Pixels[1].Y, tolerance)
	assert.InDelta(t, 1.0, data.Pixels[2].Y, tolerance) // bottom-left: green
	assert.InDelta(t, 1.0, data.Pixels[3].Z, tolerance) // bottom-right: blue
}

func TestLoadImageNotFoundReturnsError(t *testing.T) {
	_, err := LoadImage("nonexistent.png", 0)
	assert.Error(t, err)
}

func TestLoadImageDownsamplesAboveMaxDimension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.png")
	writeTestPNG(t, path, 64, 32, func(x, y int) color.RGBA { return color.RGBA{R: 128, G: 64, B: 32, A: 255} })

	data, err := LoadImage(path, 16)
	require.NoError(t, err)
	assert.LessOrEqual(t, data.Width, 16)
	assert.LessOrEqual(t, data.Height, 16)
}

func TestLoadImageTextureSamplesLikeSourceBitmap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.png")
	writeTestPNG(t, path, 4, 4, func(x, y int) color.RGBA { return color.RGBA{R: 200, G: 100, B: 50, A: 255} })

	tex, err := LoadImageTexture(path, 0)
	require.NoError(t, err)

	sample := tex.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{})
	assert.InDelta(t, 200.0/255.0, sample.X, 0.02)
	assert.InDelta(t, 100.0/255.0, sample.Y, 0.02)
	assert.InDelta(t, 50.0/255.0, sample.Z, 0.02)
}
