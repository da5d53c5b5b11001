package softgl

import (
	"image/color"

	"github.com/softgl/softgl/math32"
)

// A Color represents a color, containing R, G, B, and A components, each ranging from 0 to 255.
// Color is used both for material samples and for the final pixel output.
type Color struct {
	R, G, B, A uint8
}

// NewColor returns a new opaque Color with the provided R, G, and B components.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// NewColorRGBA returns a new Color with all four components set.
func NewColorRGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFrom converts any image/color.Color to a Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Scale returns the Color with its R, G, and B channels multiplied by intensity, which is clamped to 0..1 first.
// Alpha is left untouched.
func (c Color) Scale(intensity float32) Color {
	return c.ScaleUnclamped(math32.Clamp01(intensity))
}

// ScaleUnclamped multiplies the R, G, and B channels by factor, clamping each resulting channel to 0..255.
func (c Color) ScaleUnclamped(factor float32) Color {
	c.R = clampChannel(float32(c.R) * factor)
	c.G = clampChannel(float32(c.G) * factor)
	c.B = clampChannel(float32(c.B) * factor)
	return c
}

// Add returns the channel-wise sum of two Colors' R, G, and B channels, clamped to 255.
func (c Color) Add(other Color) Color {
	c.R = clampChannel(float32(c.R) + float32(other.R))
	c.G = clampChannel(float32(c.G) + float32(other.G))
	c.B = clampChannel(float32(c.B) + float32(other.B))
	return c
}

// WithAlpha returns the Color with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

// NRGBA converts the Color to a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// clampChannel clamps v to 0..255 and truncates it, the way 8-bit image channels are stored.
func clampChannel(v float32) uint8 {
	if math32.IsNaN(v) {
		return 0
	}
	return uint8(math32.Clamp(v, 0, 255))
}
