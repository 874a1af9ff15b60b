// Package renderer contains the ray-tracing engine: the camera, the
// recursive shading algorithm, and the parallel orchestration that
// evaluates it across a frame into a shared pixel buffer.
package renderer

import (
	"context"
	"fmt"

	"github.com/MarkZuber/rustray/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer orchestrates a frame: it partitions the image into per-row
// or per-pixel tasks, fans them out to a worker pool, and collects the
// results into a PixelBuffer. Scene, camera and config are frozen for
// the duration of the frame; each pixel is written exactly once.
type Renderer struct {
	logger core.Logger
}

// NewRenderer creates a renderer logging through the given logger
func NewRenderer(logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{logger: logger}
}

// RenderFrame renders a complete frame and returns the filled pixel
// buffer. Cancellation is checked between tasks: a canceled context
// stops new rows from being traced and, after the in-flight ones
// finish, returns a nil buffer with ctx.Err so a partial frame can
// never leak to the caller.
func (r *Renderer) RenderFrame(ctx context.Context, camera *Camera, config RenderConfig, scene *core.Scene) (*PixelBuffer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("renderer: invalid frame size %dx%d", config.Width, config.Height)
	}

	pixels := NewPixelBuffer(config.Width, config.Height)
	tracer := NewRayTracer(camera, config, scene)

	if config.NumWorkers <= 1 {
		if err := r.renderSingleThreaded(ctx, tracer, config, pixels); err != nil {
			return nil, err
		}
		return pixels, nil
	}

	r.renderParallel(ctx, tracer, config, pixels)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pixels, nil
}

func (r *Renderer) renderSingleThreaded(ctx context.Context, tracer *RayTracer, config RenderConfig, pixels *PixelBuffer) error {
	for y := 0; y < config.Height; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < config.Width; x++ {
			pixels.SetPixelColor(x, y, tracer.GetPixelColor(x, y))
		}
	}
	return nil
}

func (r *Renderer) renderParallel(ctx context.Context, tracer *RayTracer, config RenderConfig, pixels *PixelBuffer) {
	queueSize := config.Height
	if !config.PerLine {
		queueSize = config.Width * config.Height
	}

	pool := NewWorkerPool(config.NumWorkers, queueSize)
	pool.Start()

	if config.PerLine {
		for y := 0; y < config.Height; y++ {
			pool.Submit(r.rowTask(ctx, tracer, config, pixels, y))
		}
	} else {
		for y := 0; y < config.Height; y++ {
			for x := 0; x < config.Width; x++ {
				pool.Submit(r.pixelTask(ctx, tracer, pixels, x, y))
			}
		}
	}

	pool.Drain()
}

// rowTask computes a full row outside the buffer lock, then writes it
// in a single critical section.
func (r *Renderer) rowTask(ctx context.Context, tracer *RayTracer, config RenderConfig, pixels *PixelBuffer, y int) func() {
	return func() {
		if ctx.Err() != nil {
			return
		}
		row := make([]core.Color, config.Width)
		for x := 0; x < config.Width; x++ {
			row[x] = tracer.GetPixelColor(x, y)
		}
		pixels.SetRow(y, row)
	}
}

func (r *Renderer) pixelTask(ctx context.Context, tracer *RayTracer, pixels *PixelBuffer, x, y int) func() {
	return func() {
		if ctx.Err() != nil {
			return
		}
		pixels.SetPixelColor(x, y, tracer.GetPixelColor(x, y))
	}
}
