package renderer

import (
	"math"

	"github.com/MarkZuber/rustray/pkg/core"
)

// degreesToRadians is deliberately this truncated value, not pi/180;
// ray directions, and therefore rendered output, depend on it exactly.
const degreesToRadians = 0.017453239

// Camera converts normalized device coordinates into world-space rays.
// The orthonormal view basis and the projection scale are derived once
// at construction and never change.
type Camera struct {
	position core.Vec3
	lookAt   core.Vec3
	up       core.Vec3
	fov      float64

	right           core.Vec3 // screen x axis
	screenUp        core.Vec3 // screen y axis
	forward         core.Vec3
	projectionScale float64
}

// NewCamera creates a camera at position looking at lookAt, with the
// given up hint and vertical field of view in degrees.
func NewCamera(position, lookAt, up core.Vec3, fov float64) *Camera {
	forward := lookAt.Subtract(position)
	right := forward.Cross(up)
	screenUp := right.Cross(forward)

	viewAngleRadians := fov * degreesToRadians
	projectionScale := math.Cos(viewAngleRadians/2) / math.Sin(viewAngleRadians/2)

	return &Camera{
		position:        position,
		lookAt:          lookAt,
		up:              up,
		fov:             fov,
		right:           right.Normalize(),
		screenUp:        screenUp.Normalize(),
		forward:         forward.Normalize(),
		projectionScale: projectionScale,
	}
}

// Position returns the camera position
func (c *Camera) Position() core.Vec3 { return c.position }

// GetRay builds the world-space ray through NDC point (vx, vy), with
// vx and vy each in [-1, 1].
func (c *Camera) GetRay(vx, vy float64) core.Ray {
	center := c.forward.Multiply(c.projectionScale)
	direction := center.
		Add(c.right.Multiply(vx)).
		Add(c.screenUp.Multiply(vy))

	return core.NewRay(c.position, direction.Normalize())
}
