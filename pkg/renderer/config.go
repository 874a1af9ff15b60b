package renderer

import "runtime"

// RenderConfig contains the full rendering configuration: output size,
// recursion bound, parallelism, partitioning granularity and the
// per-term feature toggles.
type RenderConfig struct {
	Width  int
	Height int

	MaxDepth   int  // maximum recursion depth for reflection/refraction
	NumWorkers int  // worker count; <= 1 renders on the calling goroutine
	PerLine    bool // per-row tasks instead of per-pixel tasks

	RenderDiffuse    bool
	RenderReflection bool
	RenderRefraction bool
	RenderShadow     bool
	RenderHighlights bool
}

// DefaultRenderConfig returns sensible default values: row-granularity
// tasks across all CPUs with every shading term enabled.
func DefaultRenderConfig(width, height int) RenderConfig {
	return RenderConfig{
		Width:            width,
		Height:           height,
		MaxDepth:         5,
		NumWorkers:       runtime.NumCPU(),
		PerLine:          true,
		RenderDiffuse:    true,
		RenderReflection: true,
		RenderRefraction: true,
		RenderShadow:     true,
		RenderHighlights: true,
	}
}
