// Command pathtracer renders a scene to a PPM (and optionally PNG) image.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/anthropic-exercise/pathtracer/pkg/renderer"
	"github.com/anthropic-exercise/pathtracer/pkg/scene"
)

// Config holds all the configuration for a single render invocation.
type Config struct {
	SceneType       string
	SamplesPerPixel int
	Workers         int
	Output          string
	PNG             bool
	Help            bool
	CPUProfile      string
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Println("Starting pathtracer...")
	startTime := time.Now()

	sceneObj, err := createScene(config.SceneType)
	if err != nil {
		fmt.Printf("error creating scene: %v\n", err)
		os.Exit(1)
	}

	if err := sceneObj.Preprocess(); err != nil {
		fmt.Printf("error preprocessing scene: %v\n", err)
		os.Exit(1)
	}

	samples := config.SamplesPerPixel
	if samples <= 0 {
		samples = sceneObj.SamplingConfig.SamplesPerPixel
	}
	if samples <= 0 {
		samples = 64
	}

	film, err := renderer.Render(sceneObj, samples, config.Workers)
	if err != nil {
		fmt.Printf("error rendering scene: %v\n", err)
		os.Exit(1)
	}

	renderTime := time.Since(startTime)
	fmt.Printf("Render completed in %v\n", renderTime)

	if err := writeOutput(film, config); err != nil {
		fmt.Printf("error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", config.Output)
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Built-in scene name, or a path to a .yaml scene file")
	flag.IntVar(&config.SamplesPerPixel, "samples", 0, "Samples per pixel (0 = use the scene's own default)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.Output, "out", "render.ppm", "Output PPM file path (--png adds a .png beside it)")
	flag.BoolVar(&config.PNG, "png", false, "Also write a .png preview alongside the .ppm")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.StringVar(&config.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	flag.Parse()
	return config
}

// showHelp displays help information.
func showHelp() {
	fmt.Println("pathtracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, name := range sceneNames() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pathtracer --scene=cornell --samples=200 --out=cornell.ppm")
	fmt.Println("  pathtracer --scene=scenes/my-scene.yaml --png --out=out/render.ppm")
}

// createScene builds the scene named by sceneType: a path ending in .yaml or
// .yml is loaded as a declarative scene file, anything else is looked up in
// the built-in scene registry.
func createScene(sceneType string) (*scene.Scene, error) {
	if strings.HasSuffix(sceneType, ".yaml") || strings.HasSuffix(sceneType, ".yml") {
		f, err := os.Open(sceneType)
		if err != nil {
			return nil, fmt.Errorf("opening scene file: %w", err)
		}
		defer f.Close()
		return scene.LoadYAML(f)
	}

	fmt.Printf("Using %q scene...\n", sceneType)
	return scene.ByName(sceneType)
}

func sceneNames() []string {
	names := make([]string, 0, len(scene.Builtin))
	for name := range scene.Builtin {
		names = append(names, name)
	}
	return names
}

// writeOutput writes the rendered film to config.Output as a PPM, and
// additionally as a sibling .png if config.PNG is set.
func writeOutput(film *renderer.Film, config Config) error {
	if dir := filepath.Dir(config.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	ppmFile, err := os.Create(config.Output)
	if err != nil {
		return err
	}
	defer ppmFile.Close()
	if err := film.WritePPM(ppmFile); err != nil {
		return err
	}

	if !config.PNG {
		return nil
	}

	pngPath := strings.TrimSuffix(config.Output, filepath.Ext(config.Output)) + ".png"
	pngFile, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer pngFile.Close()
	return png.Encode(pngFile, film.ToImage())
}
