package renderer

import (
	"runtime"
	"sync"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// renderParallel runs tr over every tile of the image using a fixed-size
// worker pool, the outer half of the two nested parallel decompositions
// (blocked range over tiles; reducible range over samples within a tile).
// Each worker draws from its own thread-local sampler, seeded distinctly so
// concurrent goroutines never share RNG state.
func renderParallel(tr *TileRenderer, film *Film, width, height, samplesPerPixel int, sceneSeed int64, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	taskQueue := make(chan Tile, len(tiles(width, height)))
	for _, t := range tiles(width, height) {
		taskQueue <- t
	}
	close(taskQueue)

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			sampler := core.NewThreadSampler(sceneSeed, workerID)
			for task := range taskQueue {
				tr.RenderTile(task.Bounds, film, samplesPerPixel, sampler)
			}
		}(worker)
	}
	wg.Wait()
}
