package core

import "testing"

func TestNewBound_NormalizesReversedEndpoints(t *testing.T) {
	b := NewBound(5, -5)
	if b.Min != -5 || b.Max != 5 {
		t.Errorf("Expected [-5, 5], got [%v, %v]", b.Min, b.Max)
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewBound(-1, 1), NewBound(-1, 1), NewBound(-1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"through center", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"offset miss", NewRay(NewVec3(5, 5, 5), NewVec3(0, 0, -1)), false},
		{"box behind ray", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"diagonal hit", NewRay(NewVec3(3, 3, 3), NewVec3(-1, -1, -1)), true},
		{"parallel inside slab", NewRay(NewVec3(0.5, 0.5, 5), NewVec3(0, 0, -1)), true},
		{"parallel outside slab", NewRay(NewVec3(2, 0, 5), NewVec3(0, 0, -1)), false},
		{"origin inside box", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray); got != tt.expected {
				t.Errorf("Expected hit=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewBound(-1, 1), NewBound(-2, 0), NewBound(0, 3))
	b := NewAABB(NewBound(0, 4), NewBound(-1, 5), NewBound(-2, 1))

	union := a.Union(b)

	expectedMin := NewVec3(-1, -2, -2)
	expectedMax := NewVec3(4, 5, 3)
	if union.Min != expectedMin || union.Max != expectedMax {
		t.Errorf("Expected [%v, %v], got [%v, %v]", expectedMin, expectedMax, union.Min, union.Max)
	}
	if !union.IsValid() {
		t.Error("Expected union to be valid")
	}
}

func TestAABB_SurfaceArea(t *testing.T) {
	box := NewAABB(NewBound(0, 2), NewBound(0, 3), NewBound(0, 4))
	// 2*(2*3 + 2*4 + 3*4) = 52
	if got := box.SurfaceArea(); got != 52 {
		t.Errorf("Expected surface area 52, got %v", got)
	}
}
