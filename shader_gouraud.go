package softgl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/softgl/softgl/math32"
)

// GouraudShader lights each vertex and interpolates the resulting intensity across the face, modulating the
// diffuse texture.
type GouraudShader struct {
	ctx *Context

	varyingIntensity mgl32.Vec3   // written by Vertex, read by Fragment
	varyingUV        mgl32.Mat2x3 // one uv per column
}

// NewGouraudShader creates a new GouraudShader reading from ctx.
func NewGouraudShader(ctx *Context) *GouraudShader {
	return &GouraudShader{ctx: ctx}
}

func (s *GouraudShader) Vertex(face, slot int) mgl32.Vec4 {
	model := s.ctx.Model
	s.varyingUV.SetCol(slot, model.UV(face, slot))
	s.varyingIntensity[slot] = math32.Clamp01(model.Normal(face, slot).Dot(s.ctx.Light()))
	return s.ctx.Transform(model.Vert(face, slot))
}

func (s *GouraudShader) Fragment(bar mgl32.Vec3) (Color, bool) {
	intensity := s.varyingIntensity.Dot(bar)
	uv := s.varyingUV.Mul3x1(bar)
	return s.ctx.Model.Diffuse(uv).Scale(intensity), false
}
