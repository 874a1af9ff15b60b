// Package material implements the surface appearance model: a solid
// color and a procedural checkerboard, each carrying the scalar
// properties (gloss, reflectivity, refractive index, transparency) the
// shader reads.
package material

import (
	"math"

	"github.com/MarkZuber/rustray/pkg/core"
)

// BaseMaterial holds the scalar surface properties shared by all
// material variants.
type BaseMaterial struct {
	Gloss           float64
	Reflectivity    float64
	RefractiveIndex float64
	Transparency    float64
}

// Solid is a constant-color material
type Solid struct {
	base  BaseMaterial
	color core.Color
}

// NewSolid creates a solid-color material
func NewSolid(gloss, reflectivity, refractiveIndex, transparency float64, color core.Color) *Solid {
	return &Solid{
		base: BaseMaterial{
			Gloss:           gloss,
			Reflectivity:    reflectivity,
			RefractiveIndex: refractiveIndex,
			Transparency:    transparency,
		},
		color: color,
	}
}

// ColorAt returns the material color; uv is ignored
func (m *Solid) ColorAt(u, v float64) core.Color { return m.color }

// HasTexture reports whether the color varies with uv
func (m *Solid) HasTexture() bool { return false }

// Gloss returns the Phong gloss factor
func (m *Solid) Gloss() float64 { return m.base.Gloss }

// Reflectivity returns the mirror reflection weight
func (m *Solid) Reflectivity() float64 { return m.base.Reflectivity }

// RefractiveIndex returns the index of refraction
func (m *Solid) RefractiveIndex() float64 { return m.base.RefractiveIndex }

// Transparency returns the refraction blend weight
func (m *Solid) Transparency() float64 { return m.base.Transparency }

// Checkerboard alternates two colors over a scaled uv tiling
type Checkerboard struct {
	base      BaseMaterial
	colorEven core.Color
	colorOdd  core.Color
	scale     float64
}

// NewCheckerboard creates a checkerboard material with the given tile scale
func NewCheckerboard(gloss, reflectivity, refractiveIndex, transparency float64, colorEven, colorOdd core.Color, scale float64) *Checkerboard {
	return &Checkerboard{
		base: BaseMaterial{
			Gloss:           gloss,
			Reflectivity:    reflectivity,
			RefractiveIndex: refractiveIndex,
			Transparency:    transparency,
		},
		colorEven: colorEven,
		colorOdd:  colorOdd,
		scale:     scale,
	}
}

// wrapUpScale wraps t into [-scale/2, scale/2) in a rotational manner,
// e.g. scale 2: 1.7 -> -0.3, -1.1 -> 0.9, -2.3 -> -0.3.
func wrapUpScale(t, scale float64) float64 {
	x := math.Mod(t, scale)
	if x < -scale/2 {
		x += scale
	}
	if x >= scale/2 {
		x -= scale
	}
	return x
}

// ColorAt selects the even or odd color by the sign of the product of
// the wrapped uv coordinates.
func (m *Checkerboard) ColorAt(u, v float64) core.Color {
	t := wrapUpScale(u, m.scale) * wrapUpScale(v, m.scale)
	if t < 0 {
		return m.colorEven
	}
	return m.colorOdd
}

// HasTexture reports whether the color varies with uv
func (m *Checkerboard) HasTexture() bool { return true }

// Gloss returns the Phong gloss factor
func (m *Checkerboard) Gloss() float64 { return m.base.Gloss }

// Reflectivity returns the mirror reflection weight
func (m *Checkerboard) Reflectivity() float64 { return m.base.Reflectivity }

// RefractiveIndex returns the index of refraction
func (m *Checkerboard) RefractiveIndex() float64 { return m.base.RefractiveIndex }

// Transparency returns the refraction blend weight
func (m *Checkerboard) Transparency() float64 { return m.base.Transparency }
