package softgl

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Stats holds information about a single call to Render.
type Stats struct {
	Faces        int           // Total number of faces in the Model
	DrawnTris    int           // Triangles that made it to the pixel loop
	RejectedTris int           // Triangles skipped for being degenerate, behind the camera, or non-finite
	Pixels       int           // Pixels written to the FrameBuffer
	Duration     time.Duration // Time taken by the whole render
}

// Render draws every face of ctx.Model into fb using the provided Shader. For each face, Shader.Vertex is called
// for slots 0, 1, and 2 in order, and the resulting positions are passed to Triangle. Render doesn't clear or
// finalize fb; see FrameBuffer.Clear and FrameBuffer.Finalize.
func Render(ctx *Context, shader Shader, fb *FrameBuffer) Stats {

	start := time.Now()

	stats := Stats{Faces: ctx.Model.NumFaces()}

	var clip [3]mgl32.Vec4

	for face := 0; face < stats.Faces; face++ {

		for slot := range clip {
			clip[slot] = shader.Vertex(face, slot)
		}

		written, accepted := rasterize(ctx, clip, shader, fb)
		if !accepted {
			stats.RejectedTris++
			continue
		}
		stats.DrawnTris++
		stats.Pixels += written

	}

	stats.Duration = time.Since(start)

	Logger().Debug("render",
		"faces", stats.Faces,
		"drawn", stats.DrawnTris,
		"rejected", stats.RejectedTris,
		"pixels", stats.Pixels,
		"duration", stats.Duration,
	)

	return stats

}
