package softgl

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FlatShader lights each face uniformly, using the face normal computed from the triangle's normalized device
// positions. It ignores the Model's textures.
type FlatShader struct {
	ctx *Context

	// BaseColor is scaled by the face's light intensity. Defaults to white.
	BaseColor Color

	varyingTri mgl32.Mat3 // normalized device position per column
}

// NewFlatShader creates a new FlatShader reading from ctx.
func NewFlatShader(ctx *Context) *FlatShader {
	return &FlatShader{ctx: ctx, BaseColor: NewColor(255, 255, 255)}
}

func (s *FlatShader) Vertex(face, slot int) mgl32.Vec4 {
	clip, ndc := ndcVertex(s.ctx, s.ctx.Model.Vert(face, slot))
	s.varyingTri.SetCol(slot, ndc)
	return s.ctx.ToScreen(clip)
}

func (s *FlatShader) Fragment(bar mgl32.Vec3) (Color, bool) {
	p0 := s.varyingTri.Col(0)
	n := s.varyingTri.Col(1).Sub(p0).Cross(s.varyingTri.Col(2).Sub(p0)).Normalize()
	return s.BaseColor.Scale(n.Dot(s.ctx.Light())), false
}
