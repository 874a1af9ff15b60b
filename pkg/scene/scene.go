// Package scene assembles renderable setups: built-in demo scenes and
// setups compiled from parsed NFF files.
package scene

import (
	"github.com/MarkZuber/rustray/pkg/core"
	"github.com/MarkZuber/rustray/pkg/loaders"
	"github.com/MarkZuber/rustray/pkg/renderer"
)

// RenderSetup bundles everything a frame needs: the compiled scene,
// the camera, and a render configuration. All three are immutable once
// built and are handed to the renderer as-is.
type RenderSetup struct {
	Scene  *core.Scene
	Camera *renderer.Camera
	Config renderer.RenderConfig
}

// FromNFF compiles a parsed NFF result into a render setup. The NFF
// resolution drives the frame size; depth and worker count come from
// the caller.
func FromNFF(result *loaders.NFFResult, maxDepth, numWorkers int) (*RenderSetup, error) {
	compiled, err := core.NewScene(result.Background, result.Shapes, result.Lights)
	if err != nil {
		return nil, err
	}

	config := renderer.DefaultRenderConfig(result.Width, result.Height)
	config.MaxDepth = maxDepth
	if numWorkers > 0 {
		config.NumWorkers = numWorkers
	}

	return &RenderSetup{
		Scene:  compiled,
		Camera: renderer.NewCamera(result.CameraFrom, result.CameraAt, result.CameraUp, result.FOV),
		Config: config,
	}, nil
}

// LoadNFF parses an NFF file and compiles it into a render setup
func LoadNFF(filename string, maxDepth, numWorkers int) (*RenderSetup, error) {
	result, err := loaders.LoadNFF(filename)
	if err != nil {
		return nil, err
	}
	return FromNFF(result, maxDepth, numWorkers)
}
