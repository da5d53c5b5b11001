package softgl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/softgl/softgl/math32"
)

// PhongShader lights every pixel, using the Model's normal map (or interpolated vertex normals if it has none),
// with a specular highlight driven by the Model's specular map.
type PhongShader struct {
	ctx *Context

	// Ambient is added to every channel. Defaults to 5.
	Ambient float32
	// SpecularWeight scales the specular term relative to the diffuse term. Defaults to 0.6.
	SpecularWeight float32

	varyingUV     mgl32.Mat2x3
	varyingNormal mgl32.Mat3

	uniformM   mgl32.Mat4 // Projection * ModelView, captured at construction
	uniformMIT mgl32.Mat4 // ModelView^-T, captured at construction
}

// NewPhongShader creates a new PhongShader reading from ctx. The Context's matrices are captured here, so create
// the shader after configuring the camera.
func NewPhongShader(ctx *Context) *PhongShader {
	return &PhongShader{
		ctx:            ctx,
		Ambient:        5,
		SpecularWeight: 0.6,
		uniformM:       ctx.MVP(),
		uniformMIT:     ctx.NormalMatrix(),
	}
}

func (s *PhongShader) Vertex(face, slot int) mgl32.Vec4 {
	model := s.ctx.Model
	s.varyingUV.SetCol(slot, model.UV(face, slot))
	s.varyingNormal.SetCol(slot, model.Normal(face, slot))
	return s.ctx.Transform(model.Vert(face, slot))
}

func (s *PhongShader) Fragment(bar mgl32.Vec3) (Color, bool) {

	model := s.ctx.Model
	uv := s.varyingUV.Mul3x1(bar)

	normal, ok := model.NormalAt(uv)
	if !ok {
		normal = s.varyingNormal.Mul3x1(bar)
	}

	n := s.uniformMIT.Mul4x1(embed(normal, 0)).Vec3().Normalize()
	l := s.uniformM.Mul4x1(embed(s.ctx.Light(), 0)).Vec3().Normalize()
	nl := n.Dot(l)
	r := n.Mul(2 * nl).Sub(l).Normalize()

	spec := math32.Pow(max(r.Z(), 0), model.Specular(uv))
	diff := max(0, nl)

	c := model.Diffuse(uv)
	light := diff + s.SpecularWeight*spec

	return Color{
		R: clampChannel(s.Ambient + float32(c.R)*light),
		G: clampChannel(s.Ambient + float32(c.G)*light),
		B: clampChannel(s.Ambient + float32(c.B)*light),
		A: c.A,
	}, false

}
