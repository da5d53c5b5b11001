// Package softgl is a software 3D renderer: it transforms triangle meshes through ModelView, Projection,
// and Viewport matrices and rasterizes them into a color buffer with a depth test, using a programmable
// Shader to compute each vertex position and each pixel's color.
//
// A typical render:
//
//	ctx := softgl.NewContext(model)
//	ctx.LookAt(eye, center, up)
//	ctx.SetProjection(-1 / eye.Sub(center).Len())
//	ctx.SetViewport(w/8, h/8, w*3/4, h*3/4)
//
//	fb := softgl.NewFrameBuffer(softgl.NewCanvas(w, h))
//	softgl.Render(ctx, softgl.NewGouraudShader(ctx), fb)
//	fb.Finalize()
//
// The renderer is single-threaded and keeps no package-level render state; everything a render needs
// lives in the Context, the Shader, and the FrameBuffer.
package softgl

// DepthRange is the depth the Viewport matrix maps the NDC z range [-1, 1] onto.
const DepthRange = 255
