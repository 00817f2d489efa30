package renderer

import (
	"image"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/integrator"
	"github.com/anthropic-exercise/pathtracer/pkg/scene"
)

// tileSize is the edge length of each square tile task handed to a worker.
const tileSize = 32

// Tile is one rectangular block of the image, processed as a single
// parallel task.
type Tile struct {
	Bounds image.Rectangle
}

// tiles splits a width x height image into row-major tileSize x tileSize
// blocks, the outer dimension of the two nested parallel decompositions.
func tiles(width, height int) []Tile {
	var out []Tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			maxX := x + tileSize
			if maxX > width {
				maxX = width
			}
			maxY := y + tileSize
			if maxY > height {
				maxY = height
			}
			out = append(out, Tile{Bounds: image.Rect(x, y, maxX, maxY)})
		}
	}
	return out
}

// TileRenderer renders one tile at a time against a fixed scene and
// integrator, taking a fixed number of samples per pixel with no adaptive
// early termination.
type TileRenderer struct {
	scene      *scene.Scene
	integrator *integrator.PathTracingIntegrator
}

// NewTileRenderer builds a tile renderer bound to scene s.
func NewTileRenderer(s *scene.Scene) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		integrator: integrator.NewPathTracingIntegrator(s.SamplingConfig),
	}
}

// RenderTile draws samplesPerPixel independent samples for each pixel in
// bounds and writes their average into film. The sample loop itself is a
// reducible parallel range in the scheduling model; sequentially summing it
// here is the single-goroutine join of that reduction.
func (tr *TileRenderer) RenderTile(bounds image.Rectangle, film *Film, samplesPerPixel int, sampler core.Sampler) {
	width, height := float64(tr.scene.SamplingConfig.Width), float64(tr.scene.SamplingConfig.Height)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum := core.Vec3{}
			for s := 0; s < samplesPerPixel; s++ {
				u := (float64(x) + sampler.Get1D()) / width
				v := (float64(y) + sampler.Get1D()) / height
				ray := tr.scene.Camera.GetRay(u, v, sampler)
				sum = sum.Add(tr.integrator.RayColor(ray, tr.scene, sampler).ScrubNaN())
			}
			film.AddSample(x, y, sum.Multiply(1.0/float64(samplesPerPixel)))
		}
	}
}
