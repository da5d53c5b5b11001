package softgl

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/softgl/softgl/math32"
)

func BenchmarkTriangle(b *testing.B) {

	b.ReportAllocs()

	ctx := NewContext(newTestModel())
	fb := NewFrameBuffer(NewCanvas(256, 256))
	shader := &solidShader{color: NewColor(255, 0, 0)}
	clip := screenTri(0, 0, 255, 0, 0, 255, 10)

	for i := 0; i < b.N; i++ {
		fb.Depth.Clear()
		Triangle(ctx, clip, shader, fb)
	}

}

func TestBarycentricRoundTrip(t *testing.T) {

	a, b, c := mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, mgl32.Vec2{3, 7}

	weights := []mgl32.Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
		{0.2, 0.3, 0.5},
		{0.7, 0.1, 0.2},
		{-0.5, 1, 0.5}, // outside
	}

	for _, w := range weights {

		p := a.Mul(w.X()).Add(b.Mul(w.Y())).Add(c.Mul(w.Z()))

		got, ok := Barycentric(a, b, c, p)
		if !ok {
			t.Fatalf("Barycentric reported a degenerate triangle for %v", w)
		}

		if !approxVec3(got, w, 1e-5) {
			t.Errorf("Barycentric(%v) = %v, want %v", p, got, w)
		}

		if sum := got.X() + got.Y() + got.Z(); !approxEqual(sum, 1, 1e-5) {
			t.Errorf("weights %v sum to %f", got, sum)
		}

	}

}

func TestBarycentricDegenerate(t *testing.T) {

	if _, ok := Barycentric(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{2, 2}, mgl32.Vec2{1, 1}); ok {
		t.Error("collinear triangle should be reported as degenerate")
	}

}

func TestTriangleDegenerateWritesNothing(t *testing.T) {

	tris := map[string][3]mgl32.Vec4{
		"collinear":  screenTri(1, 1, 5, 5, 10, 10, 0),
		"point":      screenTri(4, 4, 4, 4, 4, 4, 0),
		"sliver":     screenTri(0, 0, 10, 0, 10, 0.0001, 0),
		"horizontal": screenTri(0, 3, 15, 3, 7, 3, 0),
	}

	for name, clip := range tris {

		t.Run(name, func(t *testing.T) {
			fb := NewFrameBuffer(NewCanvas(16, 16))
			n := Triangle(NewContext(newTestModel()), clip, &solidShader{color: NewColor(255, 0, 0)}, fb)
			if n != 0 {
				t.Fatalf("wrote %d pixels, want 0", n)
			}
			assertUntouched(t, fb)
		})

	}

}

func TestTriangleRejectsInvalidW(t *testing.T) {

	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tris := map[string][3]mgl32.Vec4{
		"zero w":     {{0, 0, 0, 0}, {15, 0, 0, 1}, {0, 15, 0, 1}},
		"negative w": {{0, 0, 0, 1}, {15, 0, 0, -1}, {0, 15, 0, 1}},
		"nan w":      {{0, 0, 0, 1}, {15, 0, 0, 1}, {0, 15, 0, nan}},
		"inf w":      {{0, 0, 0, inf}, {15, 0, 0, 1}, {0, 15, 0, 1}},
		"nan x":      {{nan, 0, 0, 1}, {15, 0, 0, 1}, {0, 15, 0, 1}},
		"inf z":      {{0, 0, inf, 1}, {15, 0, 0, 1}, {0, 15, 0, 1}},
	}

	for name, clip := range tris {

		t.Run(name, func(t *testing.T) {
			fb := NewFrameBuffer(NewCanvas(16, 16))
			if n := Triangle(NewContext(newTestModel()), clip, &solidShader{color: NewColor(255, 0, 0)}, fb); n != 0 {
				t.Fatalf("wrote %d pixels, want 0", n)
			}
			assertUntouched(t, fb)
		})

	}

}

func TestTriangleClipsToBuffer(t *testing.T) {

	fb := NewFrameBuffer(NewCanvas(16, 16))
	clip := screenTri(-100, -100, 300, -100, -100, 300, 0)

	if n := Triangle(NewContext(newTestModel()), clip, &solidShader{color: NewColor(0, 255, 0)}, fb); n != 16*16 {
		t.Fatalf("wrote %d pixels, want %d", n, 16*16)
	}

}

func TestTriangleWindingIndependent(t *testing.T) {

	ccw := NewFrameBuffer(NewCanvas(16, 16))
	cw := NewFrameBuffer(NewCanvas(16, 16))
	shader := &solidShader{color: NewColor(0, 0, 255)}
	ctx := NewContext(newTestModel())

	a := Triangle(ctx, screenTri(0, 0, 8, 0, 0, 8, 0), shader, ccw)
	b := Triangle(ctx, screenTri(0, 0, 0, 8, 8, 0, 0), shader, cw)

	// 9 + 8 + ... + 1 pixels, edges included.
	if a != 45 || b != 45 {
		t.Fatalf("counter-clockwise wrote %d pixels, clockwise wrote %d, want 45", a, b)
	}

}

func TestDepthOrderIndependent(t *testing.T) {

	near := &solidShader{color: NewColor(255, 0, 0)}
	far := &solidShader{color: NewColor(0, 0, 255)}

	nearTri := screenTri(0, 0, 15, 0, 0, 15, 200)
	farTri := screenTri(0, 0, 15, 0, 15, 15, 100)

	render := func(first, second func(*Context, *FrameBuffer)) *FrameBuffer {
		fb := NewFrameBuffer(NewCanvas(16, 16))
		ctx := NewContext(newTestModel())
		first(ctx, fb)
		second(ctx, fb)
		return fb
	}

	drawNear := func(ctx *Context, fb *FrameBuffer) { Triangle(ctx, nearTri, near, fb) }
	drawFar := func(ctx *Context, fb *FrameBuffer) { Triangle(ctx, farTri, far, fb) }

	a := render(drawNear, drawFar)
	b := render(drawFar, drawNear)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a.Color.Pixel(x, y) != b.Color.Pixel(x, y) || a.Depth.At(x, y) != b.Depth.At(x, y) {
				t.Fatalf("pixel (%d, %d) depends on draw order: %v / %v", x, y, a.Color.Pixel(x, y), b.Color.Pixel(x, y))
			}
		}
	}

	if got := a.Color.Pixel(10, 2); got != near.color {
		t.Errorf("overlapping pixel = %v, want the nearer triangle's %v", got, near.color)
	}

}

func TestDepthTies(t *testing.T) {

	clip := screenTri(0, 0, 15, 0, 0, 15, 50)
	first := &solidShader{color: NewColor(255, 0, 0)}
	second := &solidShader{color: NewColor(0, 255, 0)}

	cases := []struct {
		name string
		fn   DepthFunc
		want Color
	}{
		{"greater-equal keeps last", DepthGreaterEqual, second.color},
		{"greater keeps first", DepthGreater, first.color},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := NewContext(newTestModel())
			ctx.DepthFunc = c.fn
			fb := NewFrameBuffer(NewCanvas(16, 16))
			Triangle(ctx, clip, first, fb)
			Triangle(ctx, clip, second, fb)
			if got := fb.Color.Pixel(2, 2); got != c.want {
				t.Errorf("pixel = %v, want %v", got, c.want)
			}
		})
	}

}

func TestDiscardWritesNothing(t *testing.T) {

	fb := NewFrameBuffer(NewCanvas(16, 16))
	shader := &solidShader{color: NewColor(255, 255, 255), discard: true}

	if n := Triangle(NewContext(newTestModel()), screenTri(0, 0, 15, 0, 0, 15, 10), shader, fb); n != 0 {
		t.Fatalf("wrote %d pixels, want 0", n)
	}
	assertUntouched(t, fb)

}

func TestPerspectiveCorrectWeights(t *testing.T) {

	clip := [3]mgl32.Vec4{{0, 0, 0, 1}, {4, 0, 0, 2}, {0, 8, 0, 4}}

	bars := []mgl32.Vec3{
		{1, 0, 0},
		{0.25, 0.25, 0.5},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
		{0, 0.5, 0.5},
	}

	for _, bar := range bars {
		got := perspectiveCorrect(bar, clip)
		if sum := got.X() + got.Y() + got.Z(); !approxEqual(sum, 1, 1e-6) {
			t.Errorf("perspectiveCorrect(%v) = %v, sums to %f", bar, got, sum)
		}
	}

	// Equal w leaves the weights unchanged.
	flat := screenTri(0, 0, 4, 0, 0, 8, 0)
	bar := mgl32.Vec3{0.2, 0.3, 0.5}
	if got := perspectiveCorrect(bar, flat); !approxVec3(got, bar, 1e-6) {
		t.Errorf("perspectiveCorrect with w = 1 gave %v, want %v", got, bar)
	}

}

func TestPerspectiveCorrectFragments(t *testing.T) {

	ctx := NewContext(newTestModel())
	ctx.PerspectiveCorrect = true

	var seen []mgl32.Vec3
	shader := &recordingShader{record: func(bar mgl32.Vec3) { seen = append(seen, bar) }}

	fb := NewFrameBuffer(NewCanvas(16, 16))
	clip := [3]mgl32.Vec4{{0, 0, 0, 1}, {30, 0, 0, 2}, {0, 30, 0, 2}}
	Triangle(ctx, clip, shader, fb)

	if len(seen) == 0 {
		t.Fatal("no fragments shaded")
	}

	for _, bar := range seen {
		if sum := bar.X() + bar.Y() + bar.Z(); !approxEqual(sum, 1, 1e-5) {
			t.Fatalf("fragment weights %v sum to %f", bar, sum)
		}
	}

}

type recordingShader struct {
	record func(mgl32.Vec3)
}

func (s *recordingShader) Vertex(face, slot int) mgl32.Vec4 { return mgl32.Vec4{} }
func (s *recordingShader) Fragment(bar mgl32.Vec3) (Color, bool) {
	s.record(bar)
	return NewColor(255, 255, 255), false
}

func assertUntouched(t *testing.T, fb *FrameBuffer) {
	t.Helper()
	w, h := fb.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := fb.Color.Pixel(x, y); c != (Color{}) {
				t.Fatalf("color at (%d, %d) = %v, want untouched", x, y, c)
			}
			if d := fb.Depth.At(x, y); d != -math32.MaxFloat32 {
				t.Fatalf("depth at (%d, %d) = %f, want untouched", x, y, d)
			}
		}
	}
}
