package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/MarkZuber/rustray/pkg/renderer"
	"github.com/MarkZuber/rustray/pkg/scene"
)

func main() {
	nffFile := flag.String("nff", "", "Render an NFF scene file instead of the built-in marbles scene")
	output := flag.String("o", "render.png", "Output PNG file path")
	width := flag.Int("width", 0, "Frame width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Frame height in pixels (0 = scene default)")
	maxDepth := flag.Int("depth", 5, "Maximum ray recursion depth")
	numWorkers := flag.Int("workers", 0, "Worker count (0 = CPU count, 1 = single-threaded)")
	perPixel := flag.Bool("per-pixel", false, "Partition work per pixel instead of per row")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("rustray - offline ray tracer")
		fmt.Println("Usage: rustray [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if err := run(*nffFile, *output, *width, *height, *maxDepth, *numWorkers, *perPixel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(nffFile, output string, width, height, maxDepth, numWorkers int, perPixel bool) error {
	logger := renderer.NewDefaultLogger()

	var setup *scene.RenderSetup
	var err error
	if nffFile != "" {
		logger.Printf("Loading NFF scene from %s...\n", nffFile)
		setup, err = scene.LoadNFF(nffFile, maxDepth, numWorkers)
	} else {
		logger.Printf("Using built-in marbles scene...\n")
		setup, err = scene.NewMarblesScene()
	}
	if err != nil {
		return err
	}

	config := setup.Config
	if width > 0 {
		config.Width = width
	}
	if height > 0 {
		config.Height = height
	}
	config.MaxDepth = maxDepth
	if numWorkers > 0 {
		config.NumWorkers = numWorkers
	}
	config.PerLine = !perPixel

	logger.Printf("Rendering %dx%d, depth %d, %d worker(s)...\n",
		config.Width, config.Height, config.MaxDepth, config.NumWorkers)

	startTime := time.Now()
	pixels, err := renderer.NewRenderer(logger).RenderFrame(context.Background(), setup.Camera, config, setup.Scene)
	if err != nil {
		return err
	}
	logger.Printf("Render completed in %v\n", time.Since(startTime))

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("error creating file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, pixels.ToImage()); err != nil {
		return fmt.Errorf("error saving PNG: %v", err)
	}

	logger.Printf("Render saved as %s\n", output)
	return nil
}
