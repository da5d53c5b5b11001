package softgl

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/softgl/softgl/math32"
)

func TestGouraudVertexIntensity(t *testing.T) {

	model := newTestModel()
	model.addFace(
		[3]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[3]mgl32.Vec3{{0, 0.6, 0.8}, {0, 0, -1}, {0, 0, 1}},
		[3]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}},
	)

	ctx := NewContext(model)
	ctx.SetLight(mgl32.Vec3{0, 0, 1})
	shader := NewGouraudShader(ctx)

	for slot := 0; slot < 3; slot++ {
		shader.Vertex(0, slot)
		want := math32.Clamp(max(0, model.Normal(0, slot).Dot(ctx.Light())), 0, 1)
		if got := shader.varyingIntensity[slot]; !approxEqual(got, want, 1e-6) {
			t.Errorf("slot %d intensity = %f, want %f", slot, got, want)
		}
	}

	// At a vertex, the fragment is the diffuse color scaled by that vertex's intensity.
	c, discard := shader.Fragment(mgl32.Vec3{1, 0, 0})
	if discard {
		t.Fatal("Gouraud shouldn't discard")
	}
	if c.R != 204 || c.G != 204 || c.B != 204 {
		t.Errorf("fragment = %v, want 204 gray", c)
	}

	if c, _ := shader.Fragment(mgl32.Vec3{0, 1, 0}); c.R != 0 {
		t.Errorf("back-facing vertex should be black, got %v", c)
	}

}

func TestPhongFragment(t *testing.T) {

	model := newTestQuad(-1, -1, 1, 1, 0)
	model.diffuse = NewColor(100, 100, 100)
	model.specular = 1

	ctx := NewContext(model)
	ctx.SetLight(mgl32.Vec3{0, 0, 1})

	check := func(name string) {
		shader := NewPhongShader(ctx)
		for slot := 0; slot < 3; slot++ {
			shader.Vertex(0, slot)
		}
		// n = l = +Z: diffuse 1, specular 1, so 5 + 100 * 1.6.
		c, _ := shader.Fragment(mgl32.Vec3{1, 0, 0})
		if c.R != 165 || c.G != 165 || c.B != 165 || c.A != 255 {
			t.Errorf("%s: fragment = %v, want 165 gray", name, c)
		}
	}

	check("vertex normals")

	model.normalMap = mgl32.Vec3{0, 0, 1}
	model.hasNormalMap = true
	check("normal map")

	// Facing away from the light, the diffuse term drops out.
	model.normalMap = mgl32.Vec3{0, 0, -1}
	shader := NewPhongShader(ctx)
	for slot := 0; slot < 3; slot++ {
		shader.Vertex(0, slot)
	}
	if c, _ := shader.Fragment(mgl32.Vec3{1, 0, 0}); c.R != 65 {
		t.Errorf("back-facing fragment = %v, want 5 + 100 * 0.6", c)
	}

}

func TestFlatFragment(t *testing.T) {

	ctx := NewContext(newTestQuad(-0.5, -0.5, 0.5, 0.5, 0))
	ctx.SetLight(mgl32.Vec3{0, 0, 1})

	shader := NewFlatShader(ctx)
	for slot := 0; slot < 3; slot++ {
		shader.Vertex(0, slot)
	}

	if c, _ := shader.Fragment(mgl32.Vec3{0.2, 0.2, 0.6}); c != NewColor(255, 255, 255) {
		t.Errorf("lit face = %v, want white", c)
	}

	ctx.SetLight(mgl32.Vec3{0, 0, -1})
	if c, _ := shader.Fragment(mgl32.Vec3{0.2, 0.2, 0.6}); c != NewColor(0, 0, 0) {
		t.Errorf("face lit from behind = %v, want black", c)
	}

}

func TestToonBands(t *testing.T) {

	bands := []struct {
		intensity float32
		want      float32
	}{
		{0.90, 1.00},
		{0.86, 1.00},
		{0.70, 0.80},
		{0.50, 0.60},
		{0.40, 0.45},
		{0.20, 0.30},
		{0.15, 0.15},
		{0.10, 0.10},
		{0, 0},
	}

	for _, b := range bands {
		if got := ToonBand(b.intensity); got != b.want {
			t.Errorf("ToonBand(%.2f) = %.2f, want %.2f", b.intensity, got, b.want)
		}
	}

}

func TestToonFragment(t *testing.T) {

	ctx := NewContext(newTestQuad(-1, -1, 1, 1, 0))
	shader := NewToonShader(ctx)

	shader.varyingIntensity = mgl32.Vec3{0.9, 0.9, 0.9}
	if c, _ := shader.Fragment(mgl32.Vec3{1, 0, 0}); c != NewColor(255, 155, 0) {
		t.Errorf("bright fragment = %v, want the base color", c)
	}

	shader.varyingIntensity = mgl32.Vec3{0.5, 0.5, 0.5}
	if c, _ := shader.Fragment(mgl32.Vec3{1, 0, 0}); c != NewColor(153, 93, 0) {
		t.Errorf("mid fragment = %v, want base * 0.6", c)
	}

}

func TestNewShader(t *testing.T) {

	ctx := NewContext(newTestModel())

	for _, kind := range ShaderKinds {
		s, err := NewShader(kind, ctx)
		if err != nil {
			t.Fatalf("NewShader(%q) returned %v", kind, err)
		}
		var ok bool
		switch kind {
		case ShaderGouraud:
			_, ok = s.(*GouraudShader)
		case ShaderPhong:
			_, ok = s.(*PhongShader)
		case ShaderFlat:
			_, ok = s.(*FlatShader)
		case ShaderToon:
			_, ok = s.(*ToonShader)
		}
		if !ok {
			t.Errorf("NewShader(%q) returned a %T", kind, s)
		}
	}

	if _, err := NewShader(" Phong ", ctx); err != nil {
		t.Errorf("shader names should be case-insensitive, got %v", err)
	}

	if _, err := NewShader("wireframe", ctx); !errors.Is(err, ErrUnknownShader) {
		t.Errorf("NewShader(wireframe) = %v, want ErrUnknownShader", err)
	}

}

func TestCutout(t *testing.T) {

	inner := &solidShader{color: NewColorRGBA(255, 0, 0, 100)}

	if _, discard := NewCutout(inner, 128).Fragment(mgl32.Vec3{1, 0, 0}); !discard {
		t.Error("alpha below the threshold should be discarded")
	}

	if c, discard := NewCutout(inner, 50).Fragment(mgl32.Vec3{1, 0, 0}); discard || c != inner.color {
		t.Errorf("alpha above the threshold should pass through, got %v (discard %v)", c, discard)
	}

	inner.discard = true
	if _, discard := NewCutout(inner, 0).Fragment(mgl32.Vec3{1, 0, 0}); !discard {
		t.Error("the wrapped shader's discard should be kept")
	}

}

func TestToonKeepsSignedIntensity(t *testing.T) {

	model := newTestModel()
	model.addFace(
		[3]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[3]mgl32.Vec3{{0, 0, 1}, {0, 0, -1}, {0, 0, -1}},
		[3]mgl32.Vec2{},
	)

	ctx := NewContext(model)
	ctx.SetLight(mgl32.Vec3{0, 0, 1})

	shader := NewToonShader(ctx)
	for slot := 0; slot < 3; slot++ {
		shader.Vertex(0, slot)
	}

	if got := shader.varyingIntensity; got != (mgl32.Vec3{1, -1, -1}) {
		t.Errorf("vertex intensities = %v, want 1, -1, -1", got)
	}

	// 0.5 - 0.25 - 0.25: the unlit corners cancel the lit one.
	if c, _ := shader.Fragment(mgl32.Vec3{0.5, 0.25, 0.25}); c != NewColor(0, 0, 0) {
		t.Errorf("fragment between lit and unlit corners = %v, want black", c)
	}

	if c, _ := shader.Fragment(mgl32.Vec3{0.1, 0.45, 0.45}); c != NewColor(0, 0, 0) {
		t.Errorf("fragment near the unlit corners = %v, want black", c)
	}

}

func TestPhongNormalsInEyeSpace(t *testing.T) {

	model := newTestQuad(-1, -1, 1, 1, 0)
	model.diffuse = NewColor(100, 100, 100)
	model.specular = 1
	model.normalMap = mgl32.Vec3{0, 1, 1}
	model.hasNormalMap = true

	eye := mgl32.Vec3{1, 0.5, 1.5}

	ctx := NewContext(model)
	ctx.LookAt(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	ctx.SetProjection(-1 / eye.Len())
	ctx.SetLight(mgl32.Vec3{0, 1, 1})

	shader := NewPhongShader(ctx)
	for slot := 0; slot < 3; slot++ {
		shader.Vertex(0, slot)
	}

	// The normal matches the light: diffuse 1, and the eye-space reflection has z = 0.756,
	// so 5 + 100 * (1 + 0.6 * 0.756).
	if c, _ := shader.Fragment(mgl32.Vec3{1, 0, 0}); c.R != 150 || c.G != 150 || c.B != 150 {
		t.Errorf("fragment = %v, want 150 gray", c)
	}

}
