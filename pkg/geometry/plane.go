package geometry

import "github.com/MarkZuber/rustray/pkg/core"

// Plane represents an infinite plane dot(normal, x) + offset = 0.
// The normal should be unit length.
type Plane struct {
	Normal   core.Vec3
	Offset   float64
	material core.Material
	id       uint32
}

// NewPlane creates a new plane from a unit normal and a signed offset
func NewPlane(normal core.Vec3, offset float64, material core.Material) *Plane {
	return &Plane{
		Normal:   normal.Normalize(),
		Offset:   offset,
		material: material,
	}
}

// ID returns the scene-assigned shape id
func (p *Plane) ID() uint32 { return p.id }

// SetID assigns the shape id; called once during scene compilation
func (p *Plane) SetID(id uint32) { p.id = id }

// Position returns the plane normal; a plane has no anchor point, and
// the shader only uses shape positions directionally.
func (p *Plane) Position() core.Vec3 { return p.Normal }

// Material returns the plane's material
func (p *Plane) Material() core.Material { return p.material }

// Intersect tests the ray against the plane. Only rays approaching the
// front of the plane (vd < 0) can hit; a parallel ray (vd == 0) is a
// miss, never a division by zero.
func (p *Plane) Intersect(ray core.Ray) core.Intersection {
	vd := p.Normal.Dot(ray.Direction)
	if vd >= 0 {
		return core.NoIntersection()
	}

	t := -(p.Normal.Dot(ray.Origin) + p.Offset) / vd
	if t <= 0 {
		return core.NoIntersection()
	}

	position := ray.At(t)

	color := p.material.ColorAt(0, 0)
	if p.material.HasTexture() {
		// Derive a 2D basis in the plane from its normal and project
		// the hit point onto it for uv sampling.
		vecU := core.NewVec3(p.Normal.Y, p.Normal.Z, -p.Normal.X)
		vecV := vecU.Cross(p.Normal)
		color = p.material.ColorAt(position.Dot(vecU), position.Dot(vecV))
	}

	return core.NewIntersection(p.id, t, position, p.Normal, color)
}

// BoundingExtent returns the plane's extent along a cardinal axis. An
// axis-aligned plane gets a thin slab at its offset; any other plane is
// unbounded along the axis and reports a large extent.
func (p *Plane) BoundingExtent(axis core.Vec3) core.Bound {
	const large = 1e6
	const epsilon = 0.001

	if nd := p.Normal.Dot(axis); nd == 1 || nd == -1 {
		at := -p.Offset * nd
		return core.NewBound(at-epsilon, at+epsilon)
	}
	return core.NewBound(-large, large)
}
