package geometry

import "github.com/MarkZuber/rustray/pkg/core"

// Triangle is a triangle with vertices in counter-clockwise order and
// separate front and back materials. A nil back material makes the
// triangle single-sided: back faces are culled.
//
// Edge vectors, the plane equation and the barycentric projection
// vectors are precomputed at construction so Intersect stays cheap.
type Triangle struct {
	VA, VB, VC core.Vec3

	frontMaterial core.Material
	backMaterial  core.Material
	id            uint32

	edgeAB, edgeBC, edgeCA core.Vec3
	normal                 core.Vec3
	planeCoefficient       float64
	uBeta, uGamma          core.Vec3
	wellFormed             bool
}

// NewTriangle creates a new triangle. backMaterial may be nil.
func NewTriangle(va, vb, vc core.Vec3, frontMaterial, backMaterial core.Material) *Triangle {
	t := &Triangle{
		VA:            va,
		VB:            vb,
		VC:            vc,
		frontMaterial: frontMaterial,
		backMaterial:  backMaterial,
		edgeAB:        vb.Subtract(va),
		edgeBC:        vc.Subtract(vb),
		edgeCA:        va.Subtract(vc),
	}

	// Take the cross product of the edge pair with the larger mutual
	// angle; for thin triangles this is the numerically stabler normal.
	var normal core.Vec3
	if t.edgeAB.Dot(t.edgeBC) < t.edgeBC.Dot(t.edgeCA) {
		normal = t.edgeAB.Cross(t.edgeBC)
	} else {
		normal = t.edgeBC.Cross(t.edgeCA)
	}
	magnitude := normal.Length()
	if magnitude > 0 {
		t.normal = normal.Divide(magnitude)
	}
	t.planeCoefficient = t.normal.Dot(va) // same for all three vertices

	a := t.edgeAB.LengthSquared()
	b := t.edgeAB.Dot(t.edgeCA)
	c := t.edgeCA.LengthSquared()
	denom := a*c - b*b
	t.wellFormed = magnitude > 0 && denom != 0
	if !t.wellFormed {
		return t
	}

	dinv := 1.0 / denom
	a *= dinv
	b *= dinv
	c *= dinv

	t.uBeta = t.edgeAB.Multiply(c).AddScaled(t.edgeCA, -b)
	t.uGamma = t.edgeCA.Multiply(-a).AddScaled(t.edgeAB, b)

	return t
}

// IsWellFormed reports whether the triangle has a usable normal and
// barycentric basis. Collinear vertices fail this; scene compilation
// rejects such triangles before they can reach Intersect.
func (t *Triangle) IsWellFormed() bool { return t.wellFormed }

// ID returns the scene-assigned shape id
func (t *Triangle) ID() uint32 { return t.id }

// SetID assigns the shape id; called once during scene compilation
func (t *Triangle) SetID(id uint32) { t.id = id }

// Position returns the first vertex
func (t *Triangle) Position() core.Vec3 { return t.VA }

// Material returns the front material
func (t *Triangle) Material() core.Material { return t.frontMaterial }

// Intersect tests the ray against the triangle: plane intersection
// first, then barycentric containment, with the material chosen by
// which face the ray approaches.
func (t *Triangle) Intersect(ray core.Ray) core.Intersection {
	mdotn := ray.Direction.Dot(t.normal)
	if mdotn == 0 {
		// Ray parallel to the triangle's plane.
		return core.NoIntersection()
	}

	planarDist := ray.Origin.Dot(t.normal) - t.planeCoefficient

	frontFace := mdotn <= 0
	if frontFace {
		if planarDist <= 0 || planarDist >= -core.MissDistance*mdotn {
			return core.NoIntersection()
		}
	} else {
		if t.backMaterial == nil || planarDist >= 0 || -planarDist >= core.MissDistance*mdotn {
			return core.NoIntersection()
		}
	}

	distance := -planarDist / mdotn
	q := ray.At(distance)

	// Barycentric coordinates via the precomputed projection vectors.
	v := q.Subtract(t.VA)
	vCoord := v.Dot(t.uBeta)
	if vCoord < 0 {
		return core.NoIntersection()
	}
	wCoord := v.Dot(t.uGamma)
	if wCoord < 0 || vCoord+wCoord > 1 {
		return core.NoIntersection()
	}

	material := t.frontMaterial
	if !frontFace {
		material = t.backMaterial
	}
	color := material.ColorAt(vCoord, wCoord)

	return core.NewIntersection(t.id, distance, q, t.normal, color)
}

// BoundingExtent returns the triangle's extent along a cardinal axis
func (t *Triangle) BoundingExtent(axis core.Vec3) core.Bound {
	da := axis.Dot(t.VA)
	db := axis.Dot(t.VB)
	dc := axis.Dot(t.VC)

	minD, maxD := da, da
	for _, d := range []float64{db, dc} {
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}
	return core.NewBound(minD, maxD)
}
