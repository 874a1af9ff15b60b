package geometry

import (
	"math"

	"github.com/MarkZuber/rustray/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	material core.Material
	id       uint32
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		material: material,
	}
}

// ID returns the scene-assigned shape id
func (s *Sphere) ID() uint32 { return s.id }

// SetID assigns the shape id; called once during scene compilation
func (s *Sphere) SetID(id uint32) { s.id = id }

// Position returns the sphere center
func (s *Sphere) Position() core.Vec3 { return s.Center }

// Material returns the sphere's material
func (s *Sphere) Material() core.Material { return s.material }

// Intersect tests the ray against the sphere and reports the near root
// of the quadratic only; the far root is never reported.
func (s *Sphere) Intersect(ray core.Ray) core.Intersection {
	dst := ray.Origin.Subtract(s.Center)
	b := dst.Dot(ray.Direction)
	c := dst.Dot(dst) - s.Radius*s.Radius
	d := b*b - c

	if d <= 0 {
		return core.NoIntersection()
	}

	distance := -b - math.Sqrt(d)
	position := ray.At(distance)
	normal := position.Subtract(s.Center).Normalize()

	// Spheres have no uv mapping; textured materials sample at (0,0).
	color := s.material.ColorAt(0, 0)

	return core.NewIntersection(s.id, distance, position, normal, color)
}

// BoundingExtent returns the sphere's extent along a cardinal axis
func (s *Sphere) BoundingExtent(axis core.Vec3) core.Bound {
	cd := axis.Dot(s.Center)
	return core.NewBound(cd-s.Radius, cd+s.Radius)
}
