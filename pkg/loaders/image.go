// Package loaders holds the external-collaborator file decoders the core
// renderer depends on but never implements itself: image bitmaps arrive
// fully decoded at the renderer's doorstep.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder

	// PNG decoder
	_ "image/png"
	"os"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // BMP decoder, beyond stdlib's PNG/JPEG
	_ "golang.org/x/image/tiff" // TIFF decoder, beyond stdlib's PNG/JPEG
)

// ImageData is a decoded bitmap as a row-major Vec3 color array.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage decodes a PNG, JPEG, BMP, or TIFF file into an ImageData. If
// maxDimension is positive and the decoded image exceeds it on either axis,
// the image is downsampled (preserving aspect ratio) before conversion so a
// single oversized texture can't blow out the sampler's memory budget.
func LoadImage(filename string, maxDimension int) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	if maxDimension > 0 && (bounds.Dx() > maxDimension || bounds.Dy() > maxDimension) {
		if bounds.Dx() >= bounds.Dy() {
			img = imaging.Resize(img, maxDimension, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, maxDimension, imaging.Lanczos)
		}
	}

	// imaging.Resize returns an *image.NRGBA anchored at (0, 0); re-fetch
	// bounds so pixel indexing below matches whichever path ran.
	bounds = img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// LoadImageTexture decodes filename and wraps it directly as a
// material.ImageTexture, the collaborator boundary pkg/material's texture
// types are built against.
func LoadImageTexture(filename string, maxDimension int) (*material.ImageTexture, error) {
	data, err := LoadImage(filename, maxDimension)
	if err != nil {
		return nil, err
	}
	return material.NewImageTexture(data.Width, data.Height, data.Pixels), nil
}
