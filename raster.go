package softgl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/softgl/softgl/math32"
)

// degenerateArea is the smallest absolute screen-space area (in square pixels, doubled) a triangle can have and
// still be rasterized.
const degenerateArea = 1e-2

// Barycentric returns the barycentric weights of p with respect to the 2D triangle abc, such that
// p = w.X()*a + w.Y()*b + w.Z()*c and the weights sum to 1. Weights are negative for points outside of the
// triangle. If the triangle is degenerate (its area is close to zero), ok is false.
func Barycentric(a, b, c, p mgl32.Vec2) (w mgl32.Vec3, ok bool) {
	area := cross2(b.Sub(a), c.Sub(a))
	if math32.Abs(area) < degenerateArea {
		return mgl32.Vec3{-1, 1, 1}, false
	}
	return barycentric(a, b, c, p, 1/area), true
}

func barycentric(a, b, c, p mgl32.Vec2, invArea float32) mgl32.Vec3 {
	ap := p.Sub(a)
	wb := cross2(ap, c.Sub(a)) * invArea
	wc := cross2(b.Sub(a), ap) * invArea
	return mgl32.Vec3{1 - wb - wc, wb, wc}
}

func cross2(u, v mgl32.Vec2) float32 {
	return u.X()*v.Y() - u.Y()*v.X()
}

// Triangle rasterizes a single triangle into fb. clip holds the three homogeneous positions returned by
// Shader.Vertex; they're divided by w here and nowhere else. For every pixel inside the triangle that passes the
// depth test, Fragment is called with the pixel's barycentric weights, and unless the fragment is discarded, the
// color and depth are written together.
//
// Triangles with a vertex at or behind the camera (w <= 0), non-finite coordinates, or a near-zero screen area
// are skipped without writing anything. Triangle returns the number of pixels written.
func Triangle(ctx *Context, clip [3]mgl32.Vec4, shader Shader, fb *FrameBuffer) int {
	written, _ := rasterize(ctx, clip, shader, fb)
	return written
}

// rasterize does the work for Triangle; accepted is false if the triangle was rejected before any pixel was
// considered.
func rasterize(ctx *Context, clip [3]mgl32.Vec4, shader Shader, fb *FrameBuffer) (written int, accepted bool) {

	var screen [3]mgl32.Vec3

	for i, v := range clip {
		w := v.W()
		if !(w > 0) || !math32.IsFinite(w) {
			return 0, false
		}
		p := proj(v)
		if !math32.IsFinite(p.X()) || !math32.IsFinite(p.Y()) || !math32.IsFinite(p.Z()) {
			return 0, false
		}
		screen[i] = p
	}

	a := mgl32.Vec2{screen[0].X(), screen[0].Y()}
	b := mgl32.Vec2{screen[1].X(), screen[1].Y()}
	c := mgl32.Vec2{screen[2].X(), screen[2].Y()}

	area := cross2(b.Sub(a), c.Sub(a))
	if math32.Abs(area) < degenerateArea {
		return 0, false
	}
	invArea := 1 / area

	width, height := fb.Size()
	if width <= 0 || height <= 0 {
		return 0, true
	}

	maxW, maxH := float32(width-1), float32(height-1)

	minX := int(math32.Clamp(math32.Floor(math32.Min3(a.X(), b.X(), c.X())), 0, maxW))
	maxX := int(math32.Clamp(math32.Ceil(math32.Max3(a.X(), b.X(), c.X())), 0, maxW))
	minY := int(math32.Clamp(math32.Floor(math32.Min3(a.Y(), b.Y(), c.Y())), 0, maxH))
	maxY := int(math32.Clamp(math32.Ceil(math32.Max3(a.Y(), b.Y(), c.Y())), 0, maxH))

	depths := mgl32.Vec3{screen[0].Z(), screen[1].Z(), screen[2].Z()}

	for y := minY; y <= maxY; y++ {

		for x := minX; x <= maxX; x++ {

			bar := barycentric(a, b, c, mgl32.Vec2{float32(x), float32(y)}, invArea)

			if bar.X() < 0 || bar.Y() < 0 || bar.Z() < 0 {
				continue
			}

			depth := bar.Dot(depths)

			if !ctx.DepthFunc.passes(fb.Depth.At(x, y), depth) {
				continue
			}

			if ctx.PerspectiveCorrect {
				bar = perspectiveCorrect(bar, clip)
			}

			color, discard := shader.Fragment(bar)
			if discard {
				continue
			}

			fb.Color.SetPixel(x, y, color)
			fb.Depth.Set(x, y, depth)
			written++

		}

	}

	return written, true

}

// perspectiveCorrect turns screen-space barycentric weights into weights that interpolate linearly in eye space,
// by dividing each weight by its vertex's w and renormalizing.
func perspectiveCorrect(bar mgl32.Vec3, clip [3]mgl32.Vec4) mgl32.Vec3 {
	corrected := mgl32.Vec3{
		bar.X() / clip[0].W(),
		bar.Y() / clip[1].W(),
		bar.Z() / clip[2].W(),
	}
	sum := corrected.X() + corrected.Y() + corrected.Z()
	if sum == 0 {
		return bar
	}
	return corrected.Mul(1 / sum)
}
