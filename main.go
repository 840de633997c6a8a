package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/cheggaaa/pb"

	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	width     int
	height    int
	samples   int
	depth     int
	workers   int
	seed      int64
	progress  bool
	help      bool
}

func parseFlags(args []string) (options, error) {
	defaults := renderer.DefaultSamplingConfig()
	var opts options

	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.StringVar(&opts.sceneName, "scene", "random", "Scene to render (see -help)")
	fs.IntVar(&opts.width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&opts.height, "height", defaults.Height, "Image height in pixels")
	fs.IntVar(&opts.samples, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&opts.depth, "depth", defaults.MaxDepth, "Maximum ray bounce depth")
	fs.IntVar(&opts.workers, "workers", defaults.NumWorkers, "Number of render goroutines (0 = number of CPUs)")
	fs.Int64Var(&opts.seed, "seed", defaults.Seed, "Random seed")
	fs.BoolVar(&opts.progress, "progress", false, "Show a scanline progress bar on stderr")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// buildConfig converts command line options to a render configuration
func buildConfig(opts options) renderer.SamplingConfig {
	workers := opts.workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return renderer.SamplingConfig{
		Width:           opts.width,
		Height:          opts.height,
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.depth,
		NumWorkers:      workers,
		Seed:            opts.seed,
	}
}

// createScene validates the configuration and builds the named scene
func createScene(name string, config renderer.SamplingConfig) (*scene.Scene, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return scene.NewSceneByName(name, config)
}

func printHelp() {
	fmt.Fprintln(os.Stderr, "Weekend Path Tracer")
	fmt.Fprintln(os.Stderr, "Usage: pathtracer [options] > image.ppm")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -scene, -width, -height, -samples, -depth, -workers, -seed, -progress")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(os.Stderr, "  %-13s %s\n", info.Name, info.Description)
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "The image is written to stdout as a plain-text PPM (P3).")
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if opts.help {
		printHelp()
		return
	}

	// stdout carries the image, so all diagnostics go to stderr
	logger := log.New(os.Stderr, "", log.LstdFlags)

	config := buildConfig(opts)
	selectedScene, err := createScene(opts.sceneName, config)
	if err != nil {
		logger.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Using %s scene with %d objects\n", selectedScene.Name, selectedScene.GetPrimitiveCount())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raytracer := renderer.NewRaytracer(selectedScene, config, logger)
	var bar *pb.ProgressBar
	if opts.progress {
		bar = newProgressBar(config.Height)
		raytracer.SetProgress(bar)
	}

	_, err = raytracer.Render(ctx, os.Stdout)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		logger.Printf("Render failed: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newProgressBar starts a scanline bar on stderr, since stdout carries the image
func newProgressBar(rows int) *pb.ProgressBar {
	bar := pb.New(rows)
	bar.Output = os.Stderr
	bar.Format("[=> ]")
	bar.ShowSpeed = false
	return bar.Start()
}
