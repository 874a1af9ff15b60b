package core

// MissDistance is the sentinel distance carried by a non-hit
// Intersection so that nearest-hit comparisons stay total. The literal
// is load-bearing: geometry culls against it, so it stays finite
// rather than +Inf.
const MissDistance = 1e11

// Intersection describes the nearest forward hit of a ray against a
// single shape, or a miss.
type Intersection struct {
	Hit      bool
	Distance float64 // distance along the ray, >= 0 when Hit
	Position Vec3    // world-space hit point
	Normal   Vec3    // surface normal at the hit point
	Color    Color   // base surface color at the hit point
	ShapeID  uint32  // id of the hit shape, 0 if none
}

// NewIntersection creates a hit result for the given shape
func NewIntersection(shapeID uint32, distance float64, position, normal Vec3, color Color) Intersection {
	return Intersection{
		Hit:      true,
		Distance: distance,
		Position: position,
		Normal:   normal,
		Color:    color,
		ShapeID:  shapeID,
	}
}

// NoIntersection creates a miss result
func NoIntersection() Intersection {
	return Intersection{Distance: MissDistance}
}

// Material describes surface appearance: a color query plus the scalar
// properties the shader needs.
type Material interface {
	ColorAt(u, v float64) Color
	HasTexture() bool
	Gloss() float64
	Reflectivity() float64
	RefractiveIndex() float64
	Transparency() float64
}

// Shape is a piece of scene geometry. Shapes are immutable during
// rendering; SetID is called exactly once, by scene compilation.
type Shape interface {
	ID() uint32
	SetID(id uint32)
	Position() Vec3
	Material() Material
	Intersect(ray Ray) Intersection
	BoundingExtent(axis Vec3) Bound
}

// Light is a light source
type Light interface {
	Position() Vec3
	Color() Color
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
