package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/kestrelrender/raytracer/pkg/renderer"
	"github.com/kestrelrender/raytracer/pkg/renderlog"
	"github.com/kestrelrender/raytracer/pkg/scene"
)

// config holds all command-line configuration.
type config struct {
	SceneType       string
	Width           int
	Samples         int
	Depth           int
	Workers         int
	Seed            int64
	LightingEnabled bool
	CoarsePreview   bool
	Help            bool
}

func main() {
	cfg := parseFlags()
	if cfg.Help {
		showHelp()
		return
	}

	fmt.Println("Starting raytracer...")
	startTime := time.Now()

	sceneObj, width, height, err := buildScene(cfg)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	opts := []renderer.Option{
		renderer.WithLogger(renderlog.NewStdLogger()),
		renderer.WithCoarsePreview(cfg.CoarsePreview),
	}
	if cfg.Workers > 0 {
		opts = append(opts, renderer.WithWorkers(cfg.Workers))
	}
	if cfg.Seed != 0 {
		opts = append(opts, renderer.WithSeed(cfg.Seed))
	}

	r := renderer.New(width, height, sceneObj, opts...)
	if err := r.StartRender(); err != nil {
		fmt.Printf("Error starting render: %v\n", err)
		os.Exit(1)
	}
	r.WaitForRenderCompletion()

	renderTime := time.Since(startTime)
	fmt.Printf("Render completed in %v\n", renderTime)

	outputDir := filepath.Join("output", cfg.SceneType)
	timestamp := time.Now().Format("20060102_150405")
	outputPath := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := saveImage(r, width, height, outputPath); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", outputPath)
}

func parseFlags() config {
	cfg := config{}
	flag.StringVar(&cfg.SceneType, "scene", "default", "Built-in scene: 'default' or 'cornell'")
	flag.IntVar(&cfg.Width, "width", 640, "Image width in pixels (height follows the scene's aspect ratio)")
	flag.IntVar(&cfg.Samples, "samples", 0, "Samples per pixel override (0 = scene default)")
	flag.IntVar(&cfg.Depth, "depth", 0, "Max ray depth override (0 = scene default)")
	flag.IntVar(&cfg.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Fix every worker's PRNG for a reproducible render (0 = entropy-seeded)")
	flag.BoolVar(&cfg.LightingEnabled, "lighting", true, "Evaluate full lighting (false = flat unlit preview)")
	flag.BoolVar(&cfg.CoarsePreview, "coarse", false, "Render a fast 1-sample/1-bounce draft")
	flag.BoolVar(&cfg.Help, "help", false, "Show help information")
	flag.Parse()
	return cfg
}

func showHelp() {
	fmt.Println("Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  default - three spheres over a checkerboard plane")
	fmt.Println("  cornell - the Cornell box with two rotated blocks")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  raytracer -scene=cornell -samples=200 -workers=8")
	fmt.Println("  raytracer -scene=default -coarse")
	fmt.Println("Output is saved to output/<scene>/render_<timestamp>.png")
}

// buildScene constructs one of the built-in demo scenes and returns
// its render dimensions derived from the scene's own aspect ratio.
func buildScene(cfg config) (*scene.Scene, int, int, error) {
	aspectRatio := 16.0 / 9.0
	if cfg.SceneType == "cornell" {
		aspectRatio = 1.0
	}
	height := int(float64(cfg.Width) / aspectRatio)

	var sceneObj *scene.Scene
	var err error
	switch cfg.SceneType {
	case "default":
		sceneObj, err = scene.NewDefaultScene(aspectRatio)
	case "cornell":
		sceneObj, err = scene.NewCornellScene()
	default:
		return nil, 0, 0, fmt.Errorf("unknown scene type: %s", cfg.SceneType)
	}
	if err != nil {
		return nil, 0, 0, err
	}

	override := scene.Config{
		MaxRayDepth:     cfg.Depth,
		SamplesPerPixel: cfg.Samples,
		LightingEnabled: cfg.LightingEnabled,
	}
	sceneObj.Config = scene.MergeConfig(sceneObj.Config, override)

	return sceneObj, cfg.Width, height, nil
}

// saveImage converts the renderer's packed RGBA8 buffer to a PNG and
// writes it to path, creating parent directories as needed.
func saveImage(r *renderer.Renderer, width, height int, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	pixels := r.Pixels()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = byte(p)
			img.Pix[offset+1] = byte(p >> 8)
			img.Pix[offset+2] = byte(p >> 16)
			img.Pix[offset+3] = byte(p >> 24)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
