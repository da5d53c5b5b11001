package softgl

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DepthFunc selects how the rasterizer resolves a fragment against the depth already stored for its pixel.
// Depth values grow towards the camera, so the larger value is the closer one.
type DepthFunc int

const (
	DepthGreaterEqual DepthFunc = iota // Fragments at least as close as the stored depth pass; on ties the last triangle drawn wins. This is the default.
	DepthGreater                       // Only strictly closer fragments pass; on ties the first triangle drawn wins.
)

// passes returns true if a fragment at depth passes against the stored depth.
func (f DepthFunc) passes(stored, depth float32) bool {
	if f == DepthGreater {
		return depth > stored
	}
	return depth >= stored
}

// Context holds everything a render needs besides the Shader and the FrameBuffer: the three pipeline matrices,
// the Model being drawn, the light direction, and the rasterizer settings. Shaders are constructed from a Context
// and read it while shading, so a Context can be configured once per camera setup and reused across renders.
//
// The ModelView, Projection, and Viewport matrices are each fully determined by the last call to their setter
// and don't change between setter calls.
type Context struct {
	Model Model // Model is the mesh provider read by Shader.Vertex and Shader.Fragment.

	// DepthFunc decides how depth ties are resolved. Defaults to DepthGreaterEqual (last writer wins).
	DepthFunc DepthFunc

	// If PerspectiveCorrect is true, the barycentric weights passed to Shader.Fragment are corrected for
	// perspective using each vertex's w. Depth is always interpolated with the screen-space weights.
	// Defaults to false.
	PerspectiveCorrect bool

	modelView  mgl32.Mat4
	projection mgl32.Mat4
	viewport   mgl32.Mat4
	light      mgl32.Vec3

	// Cached products, recomputed by the setters.
	transform  mgl32.Mat4 // Viewport * Projection * ModelView
	uniformM   mgl32.Mat4 // Projection * ModelView
	uniformMIT mgl32.Mat4 // ModelView^-T
}

// NewContext creates a new Context for drawing the provided Model. All matrices start out as identity matrices
// and the light points down +Z.
func NewContext(model Model) *Context {
	ctx := &Context{
		Model:      model,
		modelView:  mgl32.Ident4(),
		projection: mgl32.Ident4(),
		viewport:   mgl32.Ident4(),
		light:      mgl32.Vec3{0, 0, 1},
	}
	ctx.update()
	return ctx
}

// LookAt sets the ModelView matrix so that the camera sits at eye, looking at center, with up as the rough
// upward direction. See NewLookAtMatrix for the preconditions on the arguments.
func (ctx *Context) LookAt(eye, center, up mgl32.Vec3) {
	ctx.modelView = NewLookAtMatrix(eye, center, up)
	ctx.update()
}

// SetProjection sets the Projection matrix; coeff is usually -1 / distance(eye, center), and 0 is orthographic.
func (ctx *Context) SetProjection(coeff float32) {
	ctx.projection = NewProjectionMatrix(coeff)
	ctx.update()
}

// SetViewport sets the Viewport matrix so that NDC maps onto the screen rectangle at (x, y) sized (w, h).
func (ctx *Context) SetViewport(x, y, w, h int) {
	ctx.viewport = NewViewportMatrix(x, y, w, h)
	ctx.update()
}

// SetLight sets the direction towards the light. The direction is normalized.
func (ctx *Context) SetLight(dir mgl32.Vec3) {
	ctx.light = dir.Normalize()
}

// Light returns the normalized direction towards the light.
func (ctx *Context) Light() mgl32.Vec3 {
	return ctx.light
}

// ModelView returns the Context's ModelView (camera) matrix.
func (ctx *Context) ModelView() mgl32.Mat4 {
	return ctx.modelView
}

// Projection returns the Context's Projection matrix.
func (ctx *Context) Projection() mgl32.Mat4 {
	return ctx.projection
}

// Viewport returns the Context's Viewport matrix.
func (ctx *Context) Viewport() mgl32.Mat4 {
	return ctx.viewport
}

// MVP returns Projection * ModelView.
func (ctx *Context) MVP() mgl32.Mat4 {
	return ctx.uniformM
}

// NormalMatrix returns the inverse transpose of ModelView, used to move normals into eye space.
func (ctx *Context) NormalMatrix() mgl32.Mat4 {
	return ctx.uniformMIT
}

// Transform maps a model-space vertex through Viewport * Projection * ModelView. The result is still
// homogeneous; it is divided by w only when rasterized.
func (ctx *Context) Transform(v mgl32.Vec3) mgl32.Vec4 {
	return ctx.transform.Mul4x1(embed(v, 1))
}

// ToScreen maps a homogeneous position already multiplied by Projection * ModelView through the Viewport matrix.
func (ctx *Context) ToScreen(v mgl32.Vec4) mgl32.Vec4 {
	return ctx.viewport.Mul4x1(v)
}

func (ctx *Context) update() {
	ctx.uniformM = ctx.projection.Mul4(ctx.modelView)
	ctx.uniformMIT = ctx.modelView.Inv().Transpose()
	ctx.transform = ctx.viewport.Mul4(ctx.uniformM)
}
