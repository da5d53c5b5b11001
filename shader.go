package softgl

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Shader is the programmable part of the pipeline. Render calls Vertex for the three corners of a face (slots 0,
// 1, and 2, in that order), then Triangle calls Fragment for every covered pixel of that face that passes the
// depth test. A Shader keeps whatever it needs between the two stages (its varyings) in its own fields, indexed by
// slot and overwritten for every face, so a single Shader must not be shared between concurrent renders.
type Shader interface {
	// Vertex reads the given corner of the given face from the Context's Model, records the corner's varyings,
	// and returns its homogeneous screen position (Viewport * Projection * ModelView * vertex).
	Vertex(face, slot int) mgl32.Vec4
	// Fragment interpolates the varyings with the barycentric weights bar and returns the pixel's color. If
	// discard is true, the pixel is left untouched in both the color and depth buffers.
	Fragment(bar mgl32.Vec3) (color Color, discard bool)
}

// Shader kinds accepted by NewShader.
const (
	ShaderGouraud = "gouraud"
	ShaderPhong   = "phong"
	ShaderFlat    = "flat"
	ShaderToon    = "toon"
)

// ShaderKinds lists the names NewShader accepts, in a stable order.
var ShaderKinds = []string{ShaderGouraud, ShaderPhong, ShaderFlat, ShaderToon}

// NewShader creates one of the built-in Shaders by name (case-insensitive). It returns an error wrapping
// ErrUnknownShader if the name isn't one of ShaderKinds.
func NewShader(kind string, ctx *Context) (Shader, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case ShaderGouraud:
		return NewGouraudShader(ctx), nil
	case ShaderPhong:
		return NewPhongShader(ctx), nil
	case ShaderFlat:
		return NewFlatShader(ctx), nil
	case ShaderToon:
		return NewToonShader(ctx), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownShader, kind, strings.Join(ShaderKinds, ", "))
}

// Cutout wraps another Shader, discarding every fragment whose alpha is below Threshold. It can be used to
// render alpha-tested materials like foliage or fences.
type Cutout struct {
	Shader
	Threshold uint8
}

// NewCutout returns a Cutout around the provided Shader.
func NewCutout(shader Shader, threshold uint8) *Cutout {
	return &Cutout{Shader: shader, Threshold: threshold}
}

func (c *Cutout) Fragment(bar mgl32.Vec3) (Color, bool) {
	color, discard := c.Shader.Fragment(bar)
	if discard || color.A < c.Threshold {
		return color, true
	}
	return color, false
}

// ndcVertex transforms a model-space vertex by Projection * ModelView, returning both the homogeneous result and
// its perspective-divided (normalized device) position.
func ndcVertex(ctx *Context, v mgl32.Vec3) (mgl32.Vec4, mgl32.Vec3) {
	clip := ctx.MVP().Mul4x1(embed(v, 1))
	return clip, proj(clip)
}
