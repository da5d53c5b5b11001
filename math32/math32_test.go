package math32

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name            string
		v, lo, hi, want float32
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 3, 0, 1, 1},
		{"edge", 1, 0, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
			}
		})
	}
}

func TestMinMax3(t *testing.T) {
	if got := Min3(3, -1, 2); got != -1 {
		t.Errorf("Min3 = %v, want -1", got)
	}
	if got := Max3(float32(3), 7.5, 2); got != 7.5 {
		t.Errorf("Max3 = %v, want 7.5", got)
	}
}

func TestIsFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	if IsFinite(nan) || IsFinite(inf) || IsFinite(-inf) {
		t.Fatal("non-finite value reported as finite")
	}
	if !IsFinite(0) || !IsFinite(-MaxFloat32) {
		t.Fatal("finite value reported as non-finite")
	}
}

func TestRadians(t *testing.T) {
	if got := ToDegrees(ToRadians(90)); Abs(got-90) > 1e-4 {
		t.Errorf("round trip = %v, want 90", got)
	}
}
