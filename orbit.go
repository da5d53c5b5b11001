package softgl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/softgl/softgl/math32"
)

// maxPitch keeps an Orbit just shy of looking straight up or down, where the up vector would be parallel to the
// view direction.
const maxPitch = 89 * math32.Pi / 180

// Orbit places a camera on a sphere around Target. Yaw rotates around the Y axis and Pitch lifts the camera
// above the XZ plane, both in radians.
type Orbit struct {
	Target mgl32.Vec3
	Yaw    float32
	Pitch  float32
	Radius float32
}

// NewOrbitFromEye returns the Orbit whose Eye is eye.
func NewOrbitFromEye(eye, target mgl32.Vec3) Orbit {
	offset := eye.Sub(target)
	radius := offset.Len()
	o := Orbit{Target: target, Radius: radius}
	if radius == 0 {
		return o
	}
	o.Yaw = math32.Atan2(offset.X(), offset.Z())
	o.Pitch = math32.Asin(math32.Clamp(offset.Y()/radius, -1, 1))
	return o
}

// Rotate adds to the Orbit's yaw and pitch, clamping the pitch.
func (o *Orbit) Rotate(deltaYaw, deltaPitch float32) {
	o.Yaw += deltaYaw
	o.Pitch = math32.Clamp(o.Pitch+deltaPitch, -maxPitch, maxPitch)
}

// Zoom moves the camera towards (negative delta) or away from the target, never closer than minRadius.
func (o *Orbit) Zoom(delta, minRadius float32) {
	o.Radius = max(o.Radius+delta, minRadius)
}

// Eye returns the camera position.
func (o Orbit) Eye() mgl32.Vec3 {
	cosPitch := math32.Cos(o.Pitch)
	offset := mgl32.Vec3{
		math32.Sin(o.Yaw) * cosPitch,
		math32.Sin(o.Pitch),
		math32.Cos(o.Yaw) * cosPitch,
	}
	return o.Target.Add(offset.Mul(o.Radius))
}

// Apply points ctx at the Target from the Orbit's Eye, with +Y up, and sets the projection coefficient to
// -1 / Radius.
func (o Orbit) Apply(ctx *Context) {
	ctx.LookAt(o.Eye(), o.Target, mgl32.Vec3{0, 1, 0})
	if o.Radius != 0 {
		ctx.SetProjection(-1 / o.Radius)
	}
}
