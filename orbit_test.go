package softgl

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/softgl/softgl/math32"
)

func TestOrbitRoundTrip(t *testing.T) {

	eyes := []mgl32.Vec3{
		{1, 0.5, 1.5},
		{0, 0, 3},
		{-2, 1, -1},
		{0.5, -1, 0},
	}

	target := mgl32.Vec3{0.1, 0.2, 0.3}

	for _, eye := range eyes {
		o := NewOrbitFromEye(eye, target)
		if got := o.Eye(); !approxVec3(got, eye, 1e-5) {
			t.Errorf("NewOrbitFromEye(%v).Eye() = %v", eye, got)
		}
	}

}

func TestOrbitClampsPitch(t *testing.T) {

	o := Orbit{Radius: 2}
	o.Rotate(0.5, 10)

	if o.Pitch != maxPitch {
		t.Errorf("pitch = %f, want %f", o.Pitch, maxPitch)
	}
	if o.Yaw != 0.5 {
		t.Errorf("yaw = %f, want 0.5", o.Yaw)
	}

	o.Zoom(-5, 0.5)
	if o.Radius != 0.5 {
		t.Errorf("radius = %f, want the 0.5 minimum", o.Radius)
	}

}

func TestOrbitApply(t *testing.T) {

	ctx := NewContext(newTestModel())
	o := Orbit{Radius: 4, Yaw: math32.ToRadians(90)}
	o.Apply(ctx)

	if got := ctx.Projection().At(3, 2); got != -0.25 {
		t.Errorf("projection coefficient = %f, want -0.25", got)
	}

	// The target ends up straight ahead of the camera, Radius units away.
	if got := ctx.Transform(o.Target); !approxVec4(got, mgl32.Vec4{0, 0, -4, 2}, 1e-5) {
		t.Errorf("target maps to %v", got)
	}

}
