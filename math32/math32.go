// math32 is a stand-in for the built-in math package for the float32 values softgl works with.
// mgl32 covers vectors and matrices; this package covers the scalar functions it leaves out.
package math32

import "math"

const MaxFloat32 = float32(math.MaxFloat32)

// Pi as a float32.
const Pi = float32(math.Pi)

// ToRadians is a helper function to easily convert degrees to radians.
func ToRadians(degrees float32) float32 {
	return Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / Pi * 180
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int | int32 | int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Clamp01 clamps a value to the 0..1 range.
func Clamp01(value float32) float32 {
	return Clamp(value, 0, 1)
}

// Min3 returns the smallest of three values.
func Min3[number float32 | float64 | int](a, b, c number) number {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Max3 returns the largest of three values.
func Max3[number float32 | float64 | int](a, b, c number) number {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

// IsNaN returns if the provided float32 is a NaN.
func IsNaN(x float32) bool {
	return x != x
}

// IsInf returns if the provided float32 (x) is Inf in the direction of the sign provided.
func IsInf(x float32, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// IsFinite returns true if x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	return !IsNaN(x) && !IsInf(x, 0)
}

// Pow returns x**y, the base-x exponential of y. Special cases follow math.Pow.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return float32(math.Ceil(float64(x)))
}

// Asin returns the arcsine, in radians, of x.
func Asin(x float32) float32 {
	return float32(math.Asin(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
