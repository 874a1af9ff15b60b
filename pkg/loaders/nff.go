// Package loaders reads scene-description files into the data model.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MarkZuber/rustray/pkg/core"
	"github.com/MarkZuber/rustray/pkg/geometry"
	"github.com/MarkZuber/rustray/pkg/lights"
	"github.com/MarkZuber/rustray/pkg/material"
)

// defaultFOV is the field of view applied to NFF cameras. The
// viewpoint block's angle line is parsed and recorded but does not
// drive the projection; rendered output depends on the fixed value.
const defaultFOV = 50.0

// NFFResult holds everything parsed from an NFF scene description:
// raw shape and light lists ready for scene compilation, plus camera
// parameters and output resolution.
type NFFResult struct {
	Background core.Background
	Shapes     []core.Shape
	Lights     []core.Light

	CameraFrom core.Vec3
	CameraAt   core.Vec3
	CameraUp   core.Vec3
	Angle      float64 // accepted, not applied to the projection
	Hither     float64 // accepted, not applied
	FOV        float64

	Width  int
	Height int
}

// nffState tracks which line the parser expects next. Most lines are
// instructions; a `v` directive switches into the five-line viewpoint
// block, and a `p` directive consumes its vertex lines.
type nffState int

const (
	stateInstruction nffState = iota
	stateViewpointFrom
	stateViewpointAt
	stateViewpointUp
	stateViewpointAngle
	stateViewpointHither
	stateViewpointResolution
	statePolygon
)

// nffParser holds the parse state: the accumulating result, the
// "current material" applied to subsequently declared surfaces, and
// the state machine position.
type nffParser struct {
	result          *NFFResult
	state           nffState
	currentMaterial core.Material
	polygonLines    int
	lineNum         int
}

// ParseNFF parses NFF content from an io.Reader
func ParseNFF(reader io.Reader) (*NFFResult, error) {
	parser := newNFFParser()

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		parser.lineNum++
		if err := parser.processLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %v", err)
	}
	if parser.state != stateInstruction {
		return nil, fmt.Errorf("nff: input ended inside a multi-line block")
	}

	return parser.result, nil
}

// LoadNFF loads and parses an NFF scene file
func LoadNFF(filename string) (*NFFResult, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open NFF file: %v", err)
	}
	defer file.Close()

	return ParseNFF(file)
}

func newNFFParser() *nffParser {
	result := &NFFResult{
		Background: core.NewBackground(core.NewColor(0, 0, 0), 0),
		CameraUp:   core.UnitZ(),
		FOV:        defaultFOV,
		Width:      1000,
		Height:     1000,
	}

	// NFF files rendered by this system were authored against a
	// checkerboard ground plane the loader always installs.
	ground := material.NewCheckerboard(1.0, 0.2, 0.0, 0.0,
		core.NewColor(0.8, 0.8, 0.8), core.NewColor(0, 0, 0), 15.0)
	result.Shapes = append(result.Shapes, geometry.NewPlane(core.UnitZ(), 0, ground))

	return &nffParser{
		result:          result,
		state:           stateInstruction,
		currentMaterial: material.NewSolid(0, 0, 0, 0, core.NewColor(0, 0, 0)),
	}
}

func (p *nffParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("nff: line %d: %s", p.lineNum, fmt.Sprintf(format, args...))
}

// float parses fields[i] as a number, reporting the missing or
// malformed field as a fatal parse error.
func (p *nffParser) float(fields []string, i int) (float64, error) {
	if i >= len(fields) {
		return 0, p.errorf("missing numeric field %d", i)
	}
	val, err := strconv.ParseFloat(fields[i], 64)
	if err != nil {
		return 0, p.errorf("bad numeric field %q", fields[i])
	}
	return val, nil
}

// integer parses fields[i] as an integer; a fractional value is as
// fatal as a non-numeric one.
func (p *nffParser) integer(fields []string, i int) (int, error) {
	if i >= len(fields) {
		return 0, p.errorf("missing numeric field %d", i)
	}
	val, err := strconv.Atoi(fields[i])
	if err != nil {
		return 0, p.errorf("bad integer field %q", fields[i])
	}
	return val, nil
}

func (p *nffParser) vec3(fields []string, i int) (core.Vec3, error) {
	x, err := p.float(fields, i)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := p.float(fields, i+1)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := p.float(fields, i+2)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}

func (p *nffParser) processLine(line string) error {
	fields := strings.Fields(line)

	switch p.state {
	case stateInstruction:
		return p.processInstruction(fields)

	case statePolygon:
		// Polygon directives are declared but not implemented; the
		// vertex lines are consumed and dropped.
		p.polygonLines--
		if p.polygonLines <= 0 {
			p.state = stateInstruction
		}
		return nil

	case stateViewpointFrom:
		from, err := p.vec3(fields, 1)
		if err != nil {
			return err
		}
		p.result.CameraFrom = from
		p.state = stateViewpointAt
		return nil

	case stateViewpointAt:
		at, err := p.vec3(fields, 1)
		if err != nil {
			return err
		}
		p.result.CameraAt = at
		p.state = stateViewpointUp
		return nil

	case stateViewpointUp:
		up, err := p.vec3(fields, 1)
		if err != nil {
			return err
		}
		p.result.CameraUp = up
		p.state = stateViewpointAngle
		return nil

	case stateViewpointAngle:
		angle, err := p.float(fields, 1)
		if err != nil {
			return err
		}
		p.result.Angle = angle
		p.state = stateViewpointHither
		return nil

	case stateViewpointHither:
		hither, err := p.float(fields, 1)
		if err != nil {
			return err
		}
		p.result.Hither = hither
		p.state = stateViewpointResolution
		return nil

	case stateViewpointResolution:
		w, err := p.integer(fields, 1)
		if err != nil {
			return err
		}
		h, err := p.integer(fields, 2)
		if err != nil {
			return err
		}
		p.result.Width = w
		p.result.Height = h
		p.state = stateInstruction
		return nil
	}

	return nil
}

func (p *nffParser) processInstruction(fields []string) error {
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "#":
		return nil

	case "b":
		// background color
		color, err := p.vec3(fields, 1)
		if err != nil {
			return err
		}
		p.result.Background = core.NewBackground(core.NewColor(color.X, color.Y, color.Z), 0)
		return nil

	case "v":
		// viewpoint block: from/at/up/angle/hither/resolution follow
		p.state = stateViewpointFrom
		return nil

	case "l":
		// positional light; color is optional and defaults to white
		position, err := p.vec3(fields, 1)
		if err != nil {
			return err
		}
		color := core.NewColor(1, 1, 1)
		if len(fields) == 7 {
			rgb, err := p.vec3(fields, 4)
			if err != nil {
				return err
			}
			color = core.NewColor(rgb.X, rgb.Y, rgb.Z)
		}
		p.result.Lights = append(p.result.Lights, lights.NewPointLight(position, color))
		return nil

	case "f":
		// "f" red green blue Kd Ks Shine T index_of_refraction.
		// Mapping: gloss<-Shine, reflectivity<-Ks, refractive
		// index<-index_of_refraction, transparency<-T. Kd is dropped:
		// the diffuse term uses the material color directly.
		rgb, err := p.vec3(fields, 1)
		if err != nil {
			return err
		}
		ks, err := p.float(fields, 5)
		if err != nil {
			return err
		}
		shine, err := p.float(fields, 6)
		if err != nil {
			return err
		}
		transmittance, err := p.float(fields, 7)
		if err != nil {
			return err
		}
		ior, err := p.float(fields, 8)
		if err != nil {
			return err
		}
		p.currentMaterial = material.NewSolid(shine, ks, ior, transmittance,
			core.NewColor(rgb.X, rgb.Y, rgb.Z))
		return nil

	case "s":
		// sphere using the current material
		center, err := p.vec3(fields, 1)
		if err != nil {
			return err
		}
		radius, err := p.float(fields, 4)
		if err != nil {
			return err
		}
		p.result.Shapes = append(p.result.Shapes, geometry.NewSphere(center, radius, p.currentMaterial))
		return nil

	case "p":
		// polygon: the vertex count line is followed by that many
		// vertex lines, which are consumed and skipped
		count, err := p.float(fields, 1)
		if err != nil {
			return err
		}
		if count > 0 {
			p.polygonLines = int(count)
			p.state = statePolygon
		}
		return nil

	case "pp", "c":
		// polygon patch and cone/cylinder: declared by the format,
		// not implemented here
		return nil
	}

	// Unknown directives are skipped so a file with extensions still
	// loads; malformed fields inside known directives stay fatal.
	return nil
}
