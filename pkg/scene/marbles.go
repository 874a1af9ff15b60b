package scene

import (
	"github.com/MarkZuber/rustray/pkg/core"
	"github.com/MarkZuber/rustray/pkg/geometry"
	"github.com/MarkZuber/rustray/pkg/lights"
	"github.com/MarkZuber/rustray/pkg/material"
	"github.com/MarkZuber/rustray/pkg/renderer"
)

// NewMarblesScene builds the built-in demo: three axes of glossy
// colored spheres over a checkerboard plane, lit by two point lights.
func NewMarblesScene() (*RenderSetup, error) {
	const (
		sphereRadius      = 2.0
		distanceIncrement = 4.0
		spheresPerAxis    = 10
	)

	background := core.NewBackground(core.NewColor(0, 0, 0), 0.2)

	blue := material.NewSolid(2.0, 0.2, 0.0, 0.0, core.NewColor(0.0, 0.0, 0.9))
	green := material.NewSolid(2.0, 0.2, 0.0, 0.0, core.NewColor(0.0, 0.9, 0.0))
	red := material.NewSolid(2.0, 0.2, 0.0, 0.0, core.NewColor(0.9, 0.0, 0.0))

	var shapes []core.Shape
	maxAxis := distanceIncrement * spheresPerAxis
	for d := 0.0; d <= maxAxis; d += distanceIncrement {
		shapes = append(shapes,
			geometry.NewSphere(core.NewVec3(d, 0, 0), sphereRadius, blue),
			geometry.NewSphere(core.NewVec3(0, d, 0), sphereRadius, green),
			geometry.NewSphere(core.NewVec3(0, 0, d), sphereRadius, red),
		)
	}

	checker := material.NewCheckerboard(1.0, 0.2, 0.0, 0.0,
		core.NewColor(0.8, 0.8, 0.8), core.NewColor(0, 0, 0), 15.0)
	shapes = append(shapes, geometry.NewPlane(core.NewVec3(1, 0, 0), 1.2, checker))

	sceneLights := []core.Light{
		lights.NewPointLight(core.NewVec3(-5, 10, 10), core.NewColor(0.8, 0.8, 0.8)),
		lights.NewPointLight(core.NewVec3(5, 10, 10), core.NewColor(0.8, 0.8, 0.8)),
	}

	compiled, err := core.NewScene(background, shapes, sceneLights)
	if err != nil {
		return nil, err
	}

	camera := renderer.NewCamera(
		core.NewVec3(30, 30, 70),
		core.NewVec3(-0.1, 0.1, 0),
		core.UnitZ(),
		50.0,
	)

	return &RenderSetup{
		Scene:  compiled,
		Camera: camera,
		Config: renderer.DefaultRenderConfig(1500, 1500),
	}, nil
}
