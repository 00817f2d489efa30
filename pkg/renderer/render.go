package renderer

import (
	"github.com/anthropic-exercise/pathtracer/pkg/scene"
	"github.com/pkg/errors"
)

// Render builds a film for s and runs the full tile/sample render to
// completion: it is the one blocking join point in the scheduling model,
// returning only once every tile has finished. s must already have had
// Preprocess called. numWorkers <= 0 auto-detects GOMAXPROCS.
func Render(s *scene.Scene, samplesPerPixel int, numWorkers int) (*Film, error) {
	if s.BVH == nil {
		return nil, errors.New("scene not preprocessed: call Scene.Preprocess before Render")
	}
	if samplesPerPixel <= 0 {
		return nil, errors.Errorf("samplesPerPixel must be positive, got %d", samplesPerPixel)
	}

	film := NewFilm(s.SamplingConfig.Width, s.SamplingConfig.Height)
	tr := NewTileRenderer(s)
	renderParallel(tr, film, s.SamplingConfig.Width, s.SamplingConfig.Height, samplesPerPixel, 1, numWorkers)
	return film, nil
}
