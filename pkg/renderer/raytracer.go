package renderer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Goroutines rendering rows; 1 renders on the calling goroutine
	Seed            int64 // Seed for the random source
}

// DefaultSamplingConfig returns the reference image settings
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           800,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
		NumWorkers:      1,
		Seed:            42,
	}
}

// Validate reports configuration values the renderer cannot use
func (c SamplingConfig) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.SamplesPerPixel <= 0 {
		errs = append(errs, fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel))
	}
	if c.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("max depth must be positive, got %d", c.MaxDepth))
	}
	if c.NumWorkers <= 0 {
		errs = append(errs, fmt.Errorf("worker count must be positive, got %d", c.NumWorkers))
	}
	return errors.Join(errs...)
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
}

// Progress receives one tick per finished scanline
type Progress interface {
	Increment() int
}

// Raytracer drives the camera over every pixel and streams the image
type Raytracer struct {
	scene      Scene
	config     SamplingConfig
	integrator *integrator.PathTracingIntegrator
	sampler    core.Sampler
	logger     core.Logger
	progress   Progress
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		sampler:    core.NewSeededSampler(config.Seed),
		logger:     logger,
	}
}

// SetSampler replaces the random source used by single-worker renders
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// SetProgress reports finished scanlines to p instead of logging them
func (rt *Raytracer) SetProgress(p Progress) {
	rt.progress = p
}

// Render writes the image to w as a P3 pixmap, top scanline first
func (rt *Raytracer) Render(ctx context.Context, w io.Writer) (RenderStats, error) {
	stats := RenderStats{
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Workers:         rt.config.NumWorkers,
	}
	if err := rt.config.Validate(); err != nil {
		return stats, fmt.Errorf("invalid sampling config: %w", err)
	}

	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d, %d worker(s)\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth, rt.config.NumWorkers)
	startTime := time.Now()

	out := NewPPMWriter(w, rt.config.Width, rt.config.Height)
	if err := out.WriteHeader(); err != nil {
		return stats, fmt.Errorf("writing ppm header: %w", err)
	}

	var err error
	if rt.config.NumWorkers == 1 {
		err = rt.renderSequential(ctx, out, &stats)
	} else {
		err = rt.renderParallel(ctx, out, &stats)
	}
	if err != nil {
		return stats, err
	}

	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("writing ppm: %w", err)
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d pixels, %.1f samples per pixel)\n",
		stats.Duration, stats.TotalPixels, stats.AverageSamples())
	return stats, nil
}

// renderSequential renders every pixel on the calling goroutine with the shared sampler
func (rt *Raytracer) renderSequential(ctx context.Context, out *PPMWriter, stats *RenderStats) error {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()

	for j := rt.config.Height - 1; j >= 0; j-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := 0; i < rt.config.Width; i++ {
			ps := rt.samplePixel(camera, world, i, j, rt.sampler)
			if err := out.WritePixel(ps.GetColor()); err != nil {
				return fmt.Errorf("writing pixel (%d, %d): %w", i, j, err)
			}
			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
		rt.logProgress(j)
	}
	return nil
}

// renderParallel renders rows on a worker pool and writes them back in scanline order
func (rt *Raytracer) renderParallel(ctx context.Context, out *PPMWriter, stats *RenderStats) error {
	pool := NewWorkerPool(rt, rt.config.NumWorkers, rt.config.Height)
	pool.Start(ctx)
	for j := rt.config.Height - 1; j >= 0; j-- {
		pool.SubmitTask(RowTask{Row: j})
	}
	defer pool.Stop()

	// Rows arrive in any order; hold them until the next scanline is ready
	pending := make(map[int]RowResult)
	next := rt.config.Height - 1
	var firstErr error
	for received := 0; received < rt.config.Height; received++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		if firstErr != nil {
			continue
		}
		pending[result.Row] = result

		for firstErr == nil {
			row, ready := pending[next]
			if !ready {
				break
			}
			delete(pending, next)
			firstErr = rt.writeRow(out, row, stats)
			next--
		}
	}
	return firstErr
}

// writeRow emits one finished scanline
func (rt *Raytracer) writeRow(out *PPMWriter, row RowResult, stats *RenderStats) error {
	for i, color := range row.Pixels {
		if err := out.WritePixel(color); err != nil {
			return fmt.Errorf("writing pixel (%d, %d): %w", i, row.Row, err)
		}
	}
	stats.TotalPixels += len(row.Pixels)
	stats.TotalSamples += row.Samples
	rt.logProgress(row.Row)
	return nil
}

// renderRow computes the averaged linear color of every pixel in row j
func (rt *Raytracer) renderRow(j int, sampler core.Sampler) RowResult {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()

	result := RowResult{Row: j, Pixels: make([]core.Vec3, rt.config.Width)}
	for i := range result.Pixels {
		ps := rt.samplePixel(camera, world, i, j, sampler)
		result.Pixels[i] = ps.GetColor()
		result.Samples += ps.SampleCount
	}
	return result
}

// samplePixel accumulates jittered samples for pixel (i, j)
func (rt *Raytracer) samplePixel(camera *Camera, world geometry.Shape, i, j int, sampler core.Sampler) PixelStats {
	var ps PixelStats
	width := float64(rt.config.Width)
	height := float64(rt.config.Height)

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + sampler.Get1D()) / width
		v := (float64(j) + sampler.Get1D()) / height
		ray := camera.GetRay(u, v, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, world, sampler))
	}
	return ps
}

// logProgress reports remaining scanlines roughly ten times per render
func (rt *Raytracer) logProgress(row int) {
	if rt.progress != nil {
		rt.progress.Increment()
		return
	}
	interval := max(1, rt.config.Height/10)
	if row%interval == 0 {
		rt.logger.Printf("Scanlines remaining: %d\n", row)
	}
}
