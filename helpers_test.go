package softgl

import (
	"github.com/go-gl/mathgl/mgl32"
)

// testModel is a minimal in-memory Model for tests; the mesh package can't be imported here.
type testModel struct {
	verts    [][3]mgl32.Vec3
	normals  [][3]mgl32.Vec3
	uvs      [][3]mgl32.Vec2
	diffuse  Color
	specular float32

	normalMap    mgl32.Vec3
	hasNormalMap bool
}

func newTestModel() *testModel {
	return &testModel{diffuse: NewColor(255, 255, 255), specular: 1}
}

// newTestQuad returns an axis-aligned quad on the plane z, facing +Z, wound counter-clockwise.
func newTestQuad(x0, y0, x1, y1, z float32) *testModel {
	m := newTestModel()
	up := mgl32.Vec3{0, 0, 1}
	m.addFace(
		[3]mgl32.Vec3{{x0, y0, z}, {x1, y0, z}, {x1, y1, z}},
		[3]mgl32.Vec3{up, up, up},
		[3]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}},
	)
	m.addFace(
		[3]mgl32.Vec3{{x0, y0, z}, {x1, y1, z}, {x0, y1, z}},
		[3]mgl32.Vec3{up, up, up},
		[3]mgl32.Vec2{{0, 0}, {1, 1}, {0, 1}},
	)
	return m
}

func (m *testModel) addFace(verts, normals [3]mgl32.Vec3, uvs [3]mgl32.Vec2) {
	m.verts = append(m.verts, verts)
	m.normals = append(m.normals, normals)
	m.uvs = append(m.uvs, uvs)
}

func (m *testModel) NumFaces() int                    { return len(m.verts) }
func (m *testModel) Vert(face, slot int) mgl32.Vec3   { return m.verts[face][slot] }
func (m *testModel) Normal(face, slot int) mgl32.Vec3 { return m.normals[face][slot] }
func (m *testModel) UV(face, slot int) mgl32.Vec2     { return m.uvs[face][slot] }
func (m *testModel) Diffuse(uv mgl32.Vec2) Color      { return m.diffuse }
func (m *testModel) Specular(uv mgl32.Vec2) float32   { return m.specular }
func (m *testModel) NormalAt(uv mgl32.Vec2) (mgl32.Vec3, bool) {
	return m.normalMap, m.hasNormalMap
}

// solidShader is a Shader that fills every fragment with one color.
type solidShader struct {
	clip    [3]mgl32.Vec4
	color   Color
	discard bool
}

func (s *solidShader) Vertex(face, slot int) mgl32.Vec4 { return s.clip[slot] }
func (s *solidShader) Fragment(bar mgl32.Vec3) (Color, bool) {
	return s.color, s.discard
}

// screenTri builds homogeneous screen positions with w = 1.
func screenTri(ax, ay, bx, by, cx, cy, z float32) [3]mgl32.Vec4 {
	return [3]mgl32.Vec4{{ax, ay, z, 1}, {bx, by, z, 1}, {cx, cy, z, 1}}
}

func approxEqual(a, b, epsilon float32) bool {
	d := a - b
	return d <= epsilon && d >= -epsilon
}

// approxVec3, approxVec4, and approxMat4 compare element-wise with an absolute tolerance, so components that
// should be zero can carry rounding error.
func approxVec3(a, b mgl32.Vec3, epsilon float32) bool {
	for i := range a {
		if !approxEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func approxVec4(a, b mgl32.Vec4, epsilon float32) bool {
	for i := range a {
		if !approxEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func approxMat4(a, b mgl32.Mat4, epsilon float32) bool {
	for i := range a {
		if !approxEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}
