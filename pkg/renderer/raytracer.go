package renderer

import (
	"math"

	"github.com/MarkZuber/rustray/pkg/core"
)

// RayTracer computes the color seen through each pixel: nearest-hit
// intersection search plus the recursive shading of diffuse, shadow,
// reflection, refraction and highlight terms. It is a pure function of
// the immutable scene, camera and config, so any number of workers can
// call GetPixelColor concurrently.
type RayTracer struct {
	camera *Camera
	config RenderConfig
	scene  *core.Scene
}

// NewRayTracer creates a new ray tracer
func NewRayTracer(camera *Camera, config RenderConfig, scene *core.Scene) *RayTracer {
	return &RayTracer{
		camera: camera,
		config: config,
		scene:  scene,
	}
}

// GetPixelColor returns the color for raster pixel (x, y). Raster rows
// grow downward while the camera's screen-up axis grows upward, so the
// y coordinate is flipped on its way to NDC.
func (rt *RayTracer) GetPixelColor(x, y int) core.Color {
	xp := float64(x)/float64(rt.config.Width)*2.0 - 1.0
	yp := -(float64(y)/float64(rt.config.Height)*2.0 - 1.0)

	ray := rt.camera.GetRay(xp, yp)
	return rt.calculateColor(ray)
}

// calculateColor traces a camera ray: background on a miss, recursive
// shading from depth 0 on a hit.
func (rt *RayTracer) calculateColor(ray core.Ray) core.Color {
	info := rt.testIntersection(ray, 0)
	if !info.Hit {
		return rt.scene.Background.Color
	}
	return rt.rayTrace(info, ray, 0)
}

// testIntersection finds the nearest forward hit over all shapes,
// skipping excludeID (0 excludes nothing). Linear scan: O(shapes) per
// ray, the dominant cost of the renderer and the natural place for a
// spatial index to slot in.
func (rt *RayTracer) testIntersection(ray core.Ray, excludeID uint32) core.Intersection {
	best := core.NoIntersection()
	for _, shape := range rt.scene.Shapes() {
		if shape.ID() == excludeID {
			continue
		}
		info := shape.Intersect(ray)
		if info.Hit && info.Distance < best.Distance && info.Distance >= 0 {
			best = info
		}
	}
	return best
}

// reflectionRay builds the mirror ray at hit point p with surface
// normal n for incoming direction v.
func reflectionRay(p, n, v core.Vec3) core.Ray {
	c1 := -n.Dot(v)
	rl := v.Add(n.Multiply(2.0).Multiply(c1))
	return core.NewRay(p, rl)
}

// refractionRay builds the transmitted ray at hit point p using a
// Snell-style vector construction. The radicand is floored at zero so
// grazing hits cannot leak a NaN into the direction.
func refractionRay(p, n, v core.Vec3, index float64) core.Ray {
	c1 := n.Dot(v)
	c2 := 1.0 - index*index*math.Sqrt(math.Max(0, 1.0-c1*c1))
	t := n.Multiply(index*c1 - c2).
		Subtract(v.Multiply(index)).
		Multiply(-1.0).
		Normalize()
	return core.NewRay(p, t)
}

// rayTrace is the recursive shader. It starts from the ambient term
// and accumulates per-light contributions; recursion is bounded only
// by the configured depth, never by contribution magnitude.
func (rt *RayTracer) rayTrace(info core.Intersection, ray core.Ray, depth int) core.Color {
	color := info.Color.Scale(rt.scene.Background.Ambience)

	for _, light := range rt.scene.Lights() {
		color = rt.renderDiffuse(color, info, light)

		if depth < rt.config.MaxDepth {
			color = rt.renderReflection(color, info, ray, depth)
			color = rt.renderRefraction(color, info, ray, depth)
			color = rt.renderShadowAndHighlights(color, info, light)
		}
	}

	return color
}

// renderDiffuse adds the Lambertian term: hit color times light color,
// weighted by the cosine between the normal and the light direction.
func (rt *RayTracer) renderDiffuse(color core.Color, info core.Intersection, light core.Light) core.Color {
	if !rt.config.RenderDiffuse {
		return color
	}

	v := light.Position().Subtract(info.Position).Normalize()
	l := v.Dot(info.Normal)
	if l > 0 {
		color = color.Add(info.Color.Multiply(light.Color()).Scale(l))
	}
	return color
}

// renderReflection traces the mirror ray, excluding the shape it
// leaves, and blends the result in by the material's reflectivity.
func (rt *RayTracer) renderReflection(color core.Color, info core.Intersection, ray core.Ray, depth int) core.Color {
	if !rt.config.RenderReflection {
		return color
	}
	elem, ok := rt.scene.Shape(info.ShapeID)
	if !ok {
		return color
	}
	reflectivity := elem.Material().Reflectivity()
	if reflectivity <= 0 {
		return color
	}

	reflRay := reflectionRay(info.Position, info.Normal, ray.Direction)
	reflColor := rt.scene.Background.Color
	if refl := rt.testIntersection(reflRay, elem.ID()); refl.Hit && refl.Distance > 0 {
		reflColor = rt.rayTrace(refl, reflRay, depth+1)
	}

	return color.Blend(reflColor, reflectivity)
}

// renderRefraction refracts into the shape, finds the exit point by
// intersecting the same shape again, refracts out, and continues into
// the scene with the entry shape excluded. Misses fall back to the
// background color; the result blends in by the transparency.
func (rt *RayTracer) renderRefraction(color core.Color, info core.Intersection, ray core.Ray, depth int) core.Color {
	if !rt.config.RenderRefraction {
		return color
	}
	elem, ok := rt.scene.Shape(info.ShapeID)
	if !ok {
		return color
	}
	transparency := elem.Material().Transparency()
	if transparency <= 0 {
		return color
	}

	index := elem.Material().RefractiveIndex()
	entryRay := refractionRay(info.Position, info.Normal, ray.Direction, index)

	refrColor := rt.scene.Background.Color
	if exit := elem.Intersect(entryRay); exit.Hit {
		exitRay := refractionRay(exit.Position, exit.Normal, entryRay.Direction, index)
		if refr := rt.testIntersection(exitRay, elem.ID()); refr.Hit && refr.Distance > 0 {
			refrColor = rt.rayTrace(refr, exitRay, depth+1)
		}
	}

	return color.Blend(refrColor, transparency)
}

// renderShadowAndHighlights casts the shadow ray toward the light. An
// occluded point is attenuated by 0.5 + 0.5*sqrt(occluder
// transparency), which is not a physical transmittance law but is what
// the output format requires. Highlights apply only when the shadow
// ray hit nothing.
func (rt *RayTracer) renderShadowAndHighlights(color core.Color, info core.Intersection, light core.Light) core.Color {
	elem, ok := rt.scene.Shape(info.ShapeID)
	if !ok {
		return color
	}

	v := light.Position().Subtract(info.Position).Normalize()
	shadowRay := core.NewRay(info.Position, v)
	shadow := rt.testIntersection(shadowRay, elem.ID())

	if rt.config.RenderShadow && shadow.Hit {
		if occluder, found := rt.scene.Shape(shadow.ShapeID); found && occluder.ID() != elem.ID() {
			transPower := math.Sqrt(occluder.Material().Transparency())
			color = color.Scale(0.5 + 0.5*transPower)
		}
	}

	return rt.renderHighlights(color, info, elem, shadow, light)
}

// renderHighlights adds a Phong specular term using the half-vector
// between the eye and light directions:
// weight = max(0, dot(normal, h))^shininess with shininess = 10^(gloss+1).
func (rt *RayTracer) renderHighlights(color core.Color, info core.Intersection, elem core.Shape, shadow core.Intersection, light core.Light) core.Color {
	if !rt.config.RenderHighlights || shadow.Hit {
		return color
	}
	gloss := elem.Material().Gloss()
	if gloss <= 0 {
		return color
	}

	lv := elem.Position().Subtract(light.Position()).Normalize()
	e := rt.camera.Position().Subtract(elem.Position()).Normalize()
	h := e.Subtract(lv).Normalize()

	shininess := math.Pow(10, gloss+1)
	glossWeight := math.Pow(math.Max(0, info.Normal.Dot(h)), shininess)

	return color.Add(light.Color().Scale(glossWeight))
}
