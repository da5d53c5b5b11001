package softgl

import (
	"github.com/go-gl/mathgl/mgl32"
)

// NewLookAtMatrix generates a view Matrix that moves eye to the origin and rotates the world so that the camera
// looks down -Z, with up pointing towards +Y. forward is (eye - center), right is (up x forward), and the true up
// vector is (forward x right), so the three form an orthonormal basis.
//
// eye must differ from center and up must not be parallel to (eye - center); otherwise the basis is degenerate
// and the returned Matrix contains NaNs. This is a precondition, not a recoverable error.
func NewLookAtMatrix(eye, center, up mgl32.Vec3) mgl32.Mat4 {

	forward := eye.Sub(center).Normalize()
	right := up.Cross(forward).Normalize()
	trueUp := forward.Cross(right)

	rotation := mgl32.Ident4()
	rotation.SetRow(0, right.Vec4(0))
	rotation.SetRow(1, trueUp.Vec4(0))
	rotation.SetRow(2, forward.Vec4(0))

	return rotation.Mul4(mgl32.Translate3D(-eye.X(), -eye.Y(), -eye.Z()))

}

// NewProjectionMatrix generates a perspective Matrix with a single free parameter, coeff, which is usually
// -1 / distance(eye, center). The transformed w becomes 1 + coeff*z, so dividing by w later produces the
// perspective foreshortening. A coeff of 0 produces an orthographic (identity) projection.
func NewProjectionMatrix(coeff float32) mgl32.Mat4 {
	mat := mgl32.Ident4()
	mat.Set(3, 2, coeff)
	return mat
}

// NewViewportMatrix generates a Matrix mapping normalized device coordinates ([-1, 1] on each axis) onto the
// screen-space box at (x, y) of size (w, h), with depth mapped onto [0, DepthRange].
func NewViewportMatrix(x, y, w, h int) mgl32.Mat4 {

	halfW := float32(w) / 2
	halfH := float32(h) / 2
	halfD := float32(DepthRange) / 2

	mat := mgl32.Ident4()
	mat.Set(0, 3, float32(x)+halfW)
	mat.Set(1, 3, float32(y)+halfH)
	mat.Set(2, 3, halfD)

	mat.Set(0, 0, halfW)
	mat.Set(1, 1, halfH)
	mat.Set(2, 2, halfD)

	return mat

}

// embed lifts a 3D vector into homogeneous coordinates with the w given (1 for points, 0 for directions).
func embed(v mgl32.Vec3, w float32) mgl32.Vec4 {
	return v.Vec4(w)
}

// proj drops the w component of a homogeneous vector after dividing the other components by it.
func proj(v mgl32.Vec4) mgl32.Vec3 {
	return v.Vec3().Mul(1 / v.W())
}
