// Package lights implements the scene's light sources.
package lights

import "github.com/MarkZuber/rustray/pkg/core"

// PointLight is an omnidirectional light at a point
type PointLight struct {
	position core.Vec3
	color    core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color) *PointLight {
	return &PointLight{position: position, color: color}
}

// Position returns the light's position
func (l *PointLight) Position() core.Vec3 { return l.position }

// Color returns the light's color
func (l *PointLight) Color() core.Color { return l.color }
