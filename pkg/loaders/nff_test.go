package loaders

import (
	"strings"
	"testing"

	"github.com/MarkZuber/rustray/pkg/core"
	"github.com/MarkZuber/rustray/pkg/geometry"
)

const sampleNFF = `# a small test scene
b 0.1 0.2 0.3
v
from 0 -10 2
at 0 0 1
up 0 0 1
angle 45
hither 1
resolution 640 480
l 4 3 2
l 1 2 3 0.5 0.6 0.7
f 0.9 0.1 0.2 1.0 0.4 3 0.8 1.5
s 0 0 1 1
`

func TestParseNFF_SampleScene(t *testing.T) {
	result, err := ParseNFF(strings.NewReader(sampleNFF))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Background.Color != core.NewColor(0.1, 0.2, 0.3) {
		t.Errorf("Expected background (0.1,0.2,0.3), got %v", result.Background.Color)
	}

	if result.CameraFrom != core.NewVec3(0, -10, 2) {
		t.Errorf("Expected camera from (0,-10,2), got %v", result.CameraFrom)
	}
	if result.CameraAt != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected camera at (0,0,1), got %v", result.CameraAt)
	}
	if result.CameraUp != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected camera up (0,0,1), got %v", result.CameraUp)
	}
	if result.Width != 640 || result.Height != 480 {
		t.Errorf("Expected resolution 640x480, got %dx%d", result.Width, result.Height)
	}

	// The angle is recorded but the projection stays at the fixed FOV.
	if result.Angle != 45 {
		t.Errorf("Expected recorded angle 45, got %v", result.Angle)
	}
	if result.Hither != 1 {
		t.Errorf("Expected recorded hither 1, got %v", result.Hither)
	}
	if result.FOV != 50 {
		t.Errorf("Expected fixed FOV 50, got %v", result.FOV)
	}

	if len(result.Lights) != 2 {
		t.Fatalf("Expected 2 lights, got %d", len(result.Lights))
	}
	if result.Lights[0].Color() != core.NewColor(1, 1, 1) {
		t.Errorf("Expected colorless light to default to white, got %v", result.Lights[0].Color())
	}
	if result.Lights[1].Position() != core.NewVec3(1, 2, 3) || result.Lights[1].Color() != core.NewColor(0.5, 0.6, 0.7) {
		t.Errorf("Expected explicit light (1,2,3)/(0.5,0.6,0.7), got %v/%v",
			result.Lights[1].Position(), result.Lights[1].Color())
	}
}

func TestParseNFF_GroundPlaneAlwaysFirst(t *testing.T) {
	result, err := ParseNFF(strings.NewReader(sampleNFF))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Ground plane plus the one sphere.
	if len(result.Shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(result.Shapes))
	}
	plane, ok := result.Shapes[0].(*geometry.Plane)
	if !ok {
		t.Fatalf("Expected the first shape to be the ground plane, got %T", result.Shapes[0])
	}
	if plane.Normal != core.UnitZ() || plane.Offset != 0 {
		t.Errorf("Expected ground plane z=0, got normal %v offset %v", plane.Normal, plane.Offset)
	}
	if !plane.Material().HasTexture() {
		t.Error("Expected checkerboard ground material")
	}
}

func TestParseNFF_SurfacePropertyMapping(t *testing.T) {
	result, err := ParseNFF(strings.NewReader(sampleNFF))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// f red green blue Kd Ks Shine T ior, declared before the sphere.
	m := result.Shapes[1].Material()
	if m.ColorAt(0, 0) != core.NewColor(0.9, 0.1, 0.2) {
		t.Errorf("Expected surface color (0.9,0.1,0.2), got %v", m.ColorAt(0, 0))
	}
	if m.Gloss() != 3 {
		t.Errorf("Expected gloss from Shine=3, got %v", m.Gloss())
	}
	if m.Reflectivity() != 0.4 {
		t.Errorf("Expected reflectivity from Ks=0.4, got %v", m.Reflectivity())
	}
	if m.Transparency() != 0.8 {
		t.Errorf("Expected transparency from T=0.8, got %v", m.Transparency())
	}
	if m.RefractiveIndex() != 1.5 {
		t.Errorf("Expected refractive index 1.5, got %v", m.RefractiveIndex())
	}
}

func TestParseNFF_PolygonLinesAreSkipped(t *testing.T) {
	input := `p 3
0 0 0
1 0 0
0 1 0
s 2 2 2 0.5
`
	result, err := ParseNFF(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Ground plane plus the sphere after the polygon block; the
	// polygon itself produces no shape.
	if len(result.Shapes) != 2 {
		t.Errorf("Expected 2 shapes, got %d", len(result.Shapes))
	}
	if _, ok := result.Shapes[1].(*geometry.Sphere); !ok {
		t.Errorf("Expected the directive after the polygon block to parse, got %T", result.Shapes[1])
	}
}

func TestParseNFF_UnknownDirectivesAreSkipped(t *testing.T) {
	input := "zz 1 2 3\nb 0.5 0.5 0.5\n"
	result, err := ParseNFF(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Background.Color != core.NewColor(0.5, 0.5, 0.5) {
		t.Errorf("Expected directives after an unknown line to parse, got %v", result.Background.Color)
	}
}

func TestParseNFF_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed sphere radius", "s 0 0 0 abc\n"},
		{"missing sphere fields", "s 0 0\n"},
		{"malformed background", "b 0.1 oops 0.3\n"},
		{"malformed surface line", "f 1 0 0 1.0 0.2\n"},
		{"truncated viewpoint block", "v\nfrom 0 0 0\nat 1 1 1\n"},
		{"fractional resolution", "v\nfrom 0 0 0\nat 1 1 1\nup 0 0 1\nangle 45\nhither 1\nresolution 500.5 400\n"},
		{"truncated polygon block", "p 3\n0 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseNFF(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected a parse error, got nil")
			}
		})
	}
}

func TestParseNFF_ErrorIncludesLineNumber(t *testing.T) {
	_, err := ParseNFF(strings.NewReader("b 0 0 0\ns 0 0 0 abc\n"))
	if err == nil {
		t.Fatal("Expected a parse error, got nil")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected the error to name line 2, got %q", err)
	}
}

func TestParseNFF_DefaultsWithoutViewpoint(t *testing.T) {
	result, err := ParseNFF(strings.NewReader("s 0 0 0 1\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Width != 1000 || result.Height != 1000 {
		t.Errorf("Expected default 1000x1000, got %dx%d", result.Width, result.Height)
	}
	if result.CameraUp != core.UnitZ() {
		t.Errorf("Expected default up (0,0,1), got %v", result.CameraUp)
	}
}
