// Package renderer drives the tile-parallel sample loop and accumulates
// results into a Film, the final output image.
package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// Film accumulates per-pixel radiance sums as samples arrive and exposes the
// converged image once rendering completes.
type Film struct {
	Width, Height int
	sums          []core.Vec3
	counts        []int
}

// NewFilm allocates an empty film of the given dimensions.
func NewFilm(width, height int) *Film {
	return &Film{
		Width:  width,
		Height: height,
		sums:   make([]core.Vec3, width*height),
		counts: make([]int, width*height),
	}
}

func (f *Film) index(x, y int) int { return y*f.Width + x }

// AddSample accumulates one radiance sample into pixel (x, y). Per the
// single-writer-per-pixel discipline, only one goroutine may call this for
// a given (x, y) during a render.
func (f *Film) AddSample(x, y int, color core.Vec3) {
	i := f.index(x, y)
	f.sums[i] = f.sums[i].Add(color)
	f.counts[i]++
}

// Pixel returns the gamma-corrected, sample-averaged color at (x, y).
func (f *Film) Pixel(x, y int) core.Vec3 {
	i := f.index(x, y)
	if f.counts[i] == 0 {
		return core.Vec3{}
	}
	avg := f.sums[i].Multiply(1.0 / float64(f.counts[i]))
	return avg.GammaCorrect(2.0)
}

// WritePPM writes the film as an ASCII PPM (P3): header "P3\n<W> <H>\n255\n",
// then one "<r> <g> <b>" line per pixel, rows from the top (y = Height-1)
// down to the bottom (y = 0), each channel multiplied by 255.99 and
// truncated to an integer.
func (f *Film) WritePPM(w io.Writer) error {
	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return err
	}
	for y := f.Height - 1; y >= 0; y-- {
		for x := 0; x < f.Width; x++ {
			c := f.Pixel(x, y).Clamp(0, 1)
			ir := int(255.99 * c.X)
			ig := int(255.99 * c.Y)
			ib := int(255.99 * c.Z)
			if _, err := fmt.Fprintf(buf, "%d %d %d\n", ir, ig, ib); err != nil {
				return err
			}
		}
	}
	return buf.Flush()
}

// ToImage renders the film to an *image.RGBA, top row first, for PNG
// preview output or in-process display.
func (f *Film) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		srcRow := f.Height - 1 - y
		for x := 0; x < f.Width; x++ {
			c := f.Pixel(x, srcRow).Clamp(0, 1)
			img.Set(x, y, color.RGBA{
				R: uint8(255.99 * c.X),
				G: uint8(255.99 * c.Y),
				B: uint8(255.99 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
