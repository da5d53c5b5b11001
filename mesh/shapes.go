package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/softgl/softgl/math32"
)

// addQuad adds a flat quad centered on center, spanning ±u and ±v, facing along u × v.
func (mesh *Mesh) addQuad(center, u, v mgl32.Vec3) {

	n := u.Cross(v).Normalize()

	start := mesh.AddVertices(
		Vertex{Position: center.Sub(u).Sub(v), Normal: n, UV: mgl32.Vec2{0, 0}},
		Vertex{Position: center.Add(u).Sub(v), Normal: n, UV: mgl32.Vec2{1, 0}},
		Vertex{Position: center.Add(u).Add(v), Normal: n, UV: mgl32.Vec2{1, 1}},
		Vertex{Position: center.Sub(u).Add(v), Normal: n, UV: mgl32.Vec2{0, 1}},
	)

	mesh.AddFace(start, start+1, start+2)
	mesh.AddFace(start, start+2, start+3)

}

// NewQuad creates a square Mesh on the XY plane, size units wide and facing +Z.
func NewQuad(size float32) *Mesh {
	mesh := NewMesh("Quad")
	h := size / 2
	mesh.addQuad(mgl32.Vec3{}, mgl32.Vec3{h, 0, 0}, mgl32.Vec3{0, h, 0})
	mesh.UpdateBounds()
	return mesh
}

// NewCube creates a cube Mesh centered on the origin, size units wide. Each side has its own vertices, so normals
// are flat.
func NewCube(size float32) *Mesh {

	mesh := NewMesh("Cube")
	h := size / 2

	sides := []struct{ u, v mgl32.Vec3 }{
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}}, // +X
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},  // -X
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}}, // +Y
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},  // -Y
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},  // +Z
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}}, // -Z
	}

	for _, side := range sides {
		normal := side.u.Cross(side.v)
		mesh.addQuad(normal.Mul(h), side.u.Mul(h), side.v.Mul(h))
	}

	mesh.UpdateBounds()
	return mesh

}

// NewUVSphere creates a sphere Mesh centered on the origin out of rings of latitude and segments of longitude.
// rings is at least 2 and segments at least 3.
func NewUVSphere(radius float32, segments, rings int) *Mesh {

	segments = max(segments, 3)
	rings = max(rings, 2)

	mesh := NewMesh("Sphere")

	for i := 0; i <= rings; i++ {

		theta := math32.Pi * float32(i) / float32(rings)

		for j := 0; j <= segments; j++ {

			phi := 2 * math32.Pi * float32(j) / float32(segments)

			n := mgl32.Vec3{
				math32.Sin(theta) * math32.Sin(phi),
				math32.Cos(theta),
				math32.Sin(theta) * math32.Cos(phi),
			}

			mesh.AddVertices(Vertex{
				Position: n.Mul(radius),
				Normal:   n,
				UV:       mgl32.Vec2{float32(j) / float32(segments), 1 - float32(i)/float32(rings)},
			})

		}

	}

	stride := segments + 1

	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			a := i*stride + j
			b := a + stride
			c := b + 1
			d := a + 1
			// The first and last rings are triangle fans around the poles.
			if i != rings-1 {
				mesh.AddFace(a, b, c)
			}
			if i != 0 {
				mesh.AddFace(a, c, d)
			}
		}
	}

	mesh.UpdateBounds()
	return mesh

}

// NewTorus creates a torus Mesh around the Y axis. majorRadius is the distance from the center to the middle of
// the tube, minorRadius the radius of the tube itself.
func NewTorus(majorRadius, minorRadius float32, segments, sides int) *Mesh {

	segments = max(segments, 3)
	sides = max(sides, 3)

	mesh := NewMesh("Torus")

	for i := 0; i <= segments; i++ {

		u := 2 * math32.Pi * float32(i) / float32(segments)

		for j := 0; j <= sides; j++ {

			v := 2 * math32.Pi * float32(j) / float32(sides)

			n := mgl32.Vec3{
				math32.Cos(v) * math32.Cos(u),
				math32.Sin(v),
				math32.Cos(v) * math32.Sin(u),
			}

			ring := mgl32.Vec3{math32.Cos(u), 0, math32.Sin(u)}.Mul(majorRadius)

			mesh.AddVertices(Vertex{
				Position: ring.Add(n.Mul(minorRadius)),
				Normal:   n,
				UV:       mgl32.Vec2{float32(i) / float32(segments), float32(j) / float32(sides)},
			})

		}

	}

	stride := sides + 1

	for i := 0; i < segments; i++ {
		for j := 0; j < sides; j++ {
			a := i*stride + j
			b := a + stride
			c := b + 1
			d := a + 1
			mesh.AddFace(a, c, b)
			mesh.AddFace(a, d, c)
		}
	}

	mesh.UpdateBounds()
	return mesh

}
