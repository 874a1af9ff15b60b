package core

import "fmt"

// Background supplies the miss color and the ambient contribution at
// every hit.
type Background struct {
	Color    Color
	Ambience float64
}

// NewBackground creates a new Background
func NewBackground(color Color, ambience float64) Background {
	return Background{Color: color, Ambience: ambience}
}

// degenerate is implemented by shapes whose construction can collapse
// (e.g. a triangle with collinear vertices). Scene compilation rejects
// shapes that report themselves ill-formed so the intersection code
// never sees them.
type degenerate interface {
	IsWellFormed() bool
}

// Scene is the compiled, immutable scene: shapes and lights indexed by
// sequential ids assigned at compile time, plus precomputed bounding
// boxes. Id 0 is reserved as the "no shape"/"no exclusion" sentinel.
// A Scene is never mutated after NewScene returns, which is what makes
// it safe to share across render workers without locking.
type Scene struct {
	Background Background

	shapes    map[uint32]Shape
	lights    map[uint32]Light
	shapeList []Shape // insertion order, for deterministic scans
	lightList []Light
	bounds    map[uint32]AABB
}

// NewScene compiles raw shape and light lists into an indexed scene.
// Ids are assigned in insertion order starting at 1. Degenerate
// geometry is rejected here rather than filtered silently.
func NewScene(background Background, shapes []Shape, lights []Light) (*Scene, error) {
	s := &Scene{
		Background: background,
		shapes:     make(map[uint32]Shape, len(shapes)),
		lights:     make(map[uint32]Light, len(lights)),
		shapeList:  make([]Shape, 0, len(shapes)),
		lightList:  make([]Light, 0, len(lights)),
		bounds:     make(map[uint32]AABB, len(shapes)),
	}

	id := uint32(1)
	for i, shape := range shapes {
		if d, ok := shape.(degenerate); ok && !d.IsWellFormed() {
			return nil, fmt.Errorf("scene: shape %d is degenerate", i)
		}
		shape.SetID(id)
		s.shapes[id] = shape
		s.shapeList = append(s.shapeList, shape)
		s.bounds[id] = BoundShape(shape)
		id++
	}

	lightID := uint32(1)
	for _, light := range lights {
		s.lights[lightID] = light
		s.lightList = append(s.lightList, light)
		lightID++
	}

	return s, nil
}

// Shape returns the shape with the given id
func (s *Scene) Shape(id uint32) (Shape, bool) {
	shape, ok := s.shapes[id]
	return shape, ok
}

// Light returns the light with the given id
func (s *Scene) Light(id uint32) (Light, bool) {
	light, ok := s.lights[id]
	return light, ok
}

// Shapes returns all shapes in insertion (id) order
func (s *Scene) Shapes() []Shape {
	return s.shapeList
}

// Lights returns all lights in insertion (id) order
func (s *Scene) Lights() []Light {
	return s.lightList
}

// BoundingBox returns the precomputed AABB for a shape id
func (s *Scene) BoundingBox(id uint32) (AABB, bool) {
	box, ok := s.bounds[id]
	return box, ok
}
