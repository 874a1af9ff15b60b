package core

import "math"

// Bound is a min/max extent along a single axis
type Bound struct {
	Min, Max float64
}

// NewBound creates a Bound, swapping the endpoints if they arrive reversed
func NewBound(min, max float64) Bound {
	if max < min {
		min, max = max, min
	}
	return Bound{Min: min, Max: max}
}

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates an AABB from per-axis bounds
func NewAABB(x, y, z Bound) AABB {
	return AABB{
		Min: Vec3{X: x.Min, Y: y.Min, Z: z.Min},
		Max: Vec3{X: x.Max, Y: y.Max, Z: z.Max},
	}
}

// BoundShape computes a shape's AABB from its extents along the three
// cardinal axes.
func BoundShape(shape Shape) AABB {
	return NewAABB(
		shape.BoundingExtent(UnitX()),
		shape.BoundingExtent(UnitY()),
		shape.BoundingExtent(UnitZ()),
	)
}

// Union returns an AABB enlarged to enclose both boxes
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// IsValid returns true if min <= max on all axes
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	delta := aabb.Max.Subtract(aabb.Min)
	return 2.0 * (delta.X*delta.Y + delta.X*delta.Z + delta.Y*delta.Z)
}

// Hit tests whether a ray intersects this AABB using the slab method.
// The baseline intersection search does not consult bounding boxes;
// this is the hook a spatial index would build on.
func (aabb AABB) Hit(ray Ray) bool {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var min, max, origin, direction float64

		switch axis {
		case 0:
			min, max = aabb.Min.X, aabb.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1:
			min, max = aabb.Min.Y, aabb.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2:
			min, max = aabb.Min.Z, aabb.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		if direction == 0 {
			// Ray is parallel to this slab; it must start inside it.
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	// The box must lie ahead of the ray origin, not behind it.
	return tMax >= 0
}
