package softgl

import (
	"github.com/go-gl/mathgl/mgl32"
)

// toonBands maps interpolated light intensity onto a handful of flat levels. An intensity above a band's
// threshold is replaced by the band's level; intensities at or below the last threshold are kept as-is.
var toonBands = []struct {
	threshold, level float32
}{
	{0.85, 1.00},
	{0.60, 0.80},
	{0.45, 0.60},
	{0.30, 0.45},
	{0.15, 0.30},
}

// ToonBand quantizes a light intensity the way ToonShader does.
func ToonBand(intensity float32) float32 {
	for _, band := range toonBands {
		if intensity > band.threshold {
			return band.level
		}
	}
	return intensity
}

// ToonShader is a cel shader: per-vertex light intensity is interpolated, then quantized into bands. Intensities
// stay signed until banding; Fragment clamps the banded result.
type ToonShader struct {
	ctx *Context

	// BaseColor is scaled by the banded intensity. Defaults to orange (255, 155, 0).
	BaseColor Color

	varyingIntensity mgl32.Vec3
	varyingTri       mgl32.Mat3
}

// NewToonShader creates a new ToonShader reading from ctx.
func NewToonShader(ctx *Context) *ToonShader {
	return &ToonShader{ctx: ctx, BaseColor: NewColor(255, 155, 0)}
}

func (s *ToonShader) Vertex(face, slot int) mgl32.Vec4 {
	model := s.ctx.Model
	clip, ndc := ndcVertex(s.ctx, model.Vert(face, slot))
	s.varyingTri.SetCol(slot, ndc)
	s.varyingIntensity[slot] = model.Normal(face, slot).Dot(s.ctx.Light())
	return s.ctx.ToScreen(clip)
}

func (s *ToonShader) Fragment(bar mgl32.Vec3) (Color, bool) {
	return s.BaseColor.Scale(ToonBand(s.varyingIntensity.Dot(bar))), false
}
