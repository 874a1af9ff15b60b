package geometry

import (
	"math"
	"testing"

	"github.com/MarkZuber/rustray/pkg/core"
)

// recordingMaterial captures the uv coordinates of the last ColorAt call
// so tests can observe the barycentric coordinates a hit produced.
type recordingMaterial struct {
	color      core.Color
	lastU      float64
	lastV      float64
	wasSampled bool
}

func (m *recordingMaterial) ColorAt(u, v float64) core.Color {
	m.lastU = u
	m.lastV = v
	m.wasSampled = true
	return m.color
}

func (m *recordingMaterial) HasTexture() bool         { return true }
func (m *recordingMaterial) Gloss() float64           { return 0 }
func (m *recordingMaterial) Reflectivity() float64    { return 0 }
func (m *recordingMaterial) RefractiveIndex() float64 { return 0 }
func (m *recordingMaterial) Transparency() float64    { return 0 }

// unitTriangle is the right triangle (0,0,0)-(1,0,0)-(0,1,0) in the z=0
// plane; its normal points along +z.
func unitTriangle(front, back core.Material) *Triangle {
	return NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), front, back)
}

func TestTriangle_Intersect_CentroidHit(t *testing.T) {
	front := &recordingMaterial{color: core.NewColor(1, 0, 0)}
	tri := unitTriangle(front, nil)
	if !tri.IsWellFormed() {
		t.Fatal("Expected a well-formed triangle")
	}

	ray := core.NewRay(core.NewVec3(1.0/3.0, 1.0/3.0, 5), core.NewVec3(0, 0, -1))
	info := tri.Intersect(ray)
	if !info.Hit {
		t.Fatal("Expected hit through the centroid, got miss")
	}
	if math.Abs(info.Distance-5.0) > 1e-9 {
		t.Errorf("Expected distance 5, got %v", info.Distance)
	}
	if info.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normal (0,0,1), got %v", info.Normal)
	}

	// At the centroid both barycentric coordinates are 1/3.
	if !front.wasSampled {
		t.Fatal("Expected the front material to be sampled")
	}
	if math.Abs(front.lastU-1.0/3.0) > 1e-9 || math.Abs(front.lastV-1.0/3.0) > 1e-9 {
		t.Errorf("Expected barycentric (1/3, 1/3), got (%v, %v)", front.lastU, front.lastV)
	}
}

func TestTriangle_Intersect_OutsideEdges(t *testing.T) {
	tri := unitTriangle(testSolid(core.NewColor(1, 1, 1)), nil)

	tests := []struct {
		name string
		x, y float64
	}{
		{"beyond hypotenuse", 0.9, 0.9},
		{"left of edge ab", -0.1, 0.5},
		{"below edge ca", 0.5, -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(tt.x, tt.y, 5), core.NewVec3(0, 0, -1))
			if info := tri.Intersect(ray); info.Hit {
				t.Errorf("Expected miss outside the triangle, got hit at %v", info.Position)
			}
		})
	}
}

func TestTriangle_Intersect_BackfaceCulledWithoutBackMaterial(t *testing.T) {
	tri := unitTriangle(testSolid(core.NewColor(1, 0, 0)), nil)

	ray := core.NewRay(core.NewVec3(1.0/3.0, 1.0/3.0, -5), core.NewVec3(0, 0, 1))
	if info := tri.Intersect(ray); info.Hit {
		t.Errorf("Expected back face to be culled, got hit at distance %v", info.Distance)
	}
}

func TestTriangle_Intersect_BackMaterialSelected(t *testing.T) {
	frontColor := core.NewColor(1, 0, 0)
	backColor := core.NewColor(0, 0, 1)
	tri := unitTriangle(testSolid(frontColor), testSolid(backColor))

	back := tri.Intersect(core.NewRay(core.NewVec3(1.0/3.0, 1.0/3.0, -5), core.NewVec3(0, 0, 1)))
	if !back.Hit {
		t.Fatal("Expected two-sided triangle to hit from behind")
	}
	if back.Color != backColor {
		t.Errorf("Expected back material color %v, got %v", backColor, back.Color)
	}

	front := tri.Intersect(core.NewRay(core.NewVec3(1.0/3.0, 1.0/3.0, 5), core.NewVec3(0, 0, -1)))
	if !front.Hit || front.Color != frontColor {
		t.Errorf("Expected front material color %v, got %v (hit=%t)", frontColor, front.Color, front.Hit)
	}
}

func TestTriangle_Intersect_ParallelRayMisses(t *testing.T) {
	tri := unitTriangle(testSolid(core.NewColor(1, 1, 1)), nil)

	ray := core.NewRay(core.NewVec3(-5, 0.25, 0), core.NewVec3(1, 0, 0))
	if info := tri.Intersect(ray); info.Hit {
		t.Error("Expected a ray in the triangle's plane to miss")
	}
}

func TestTriangle_CollinearVerticesAreDegenerate(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(2, 0, 0),
		testSolid(core.NewColor(1, 1, 1)), nil)

	if tri.IsWellFormed() {
		t.Error("Expected collinear vertices to be rejected as degenerate")
	}
}

func TestTriangle_BoundingExtent(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, 0, 2),
		core.NewVec3(3, 1, -1),
		core.NewVec3(0, 4, 0),
		testSolid(core.NewColor(1, 1, 1)), nil)

	tests := []struct {
		name     string
		axis     core.Vec3
		expected core.Bound
	}{
		{"x", core.UnitX(), core.Bound{Min: -1, Max: 3}},
		{"y", core.UnitY(), core.Bound{Min: 0, Max: 4}},
		{"z", core.UnitZ(), core.Bound{Min: -1, Max: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.BoundingExtent(tt.axis); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
