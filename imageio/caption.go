package imageio

import (
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// CaptionFont is the font Caption draws with.
var CaptionFont tinyfont.Fonter = &freemono.Regular9pt7b

// imageDisplay lets tinyfont draw straight into a draw.Image.
type imageDisplay struct {
	img draw.Image
}

var _ drivers.Displayer = (*imageDisplay)(nil)

func (d *imageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	b := d.img.Bounds()
	p := image.Pt(b.Min.X+int(x), b.Min.Y+int(y))
	if !p.In(b) {
		return
	}
	d.img.Set(p.X, p.Y, c)
}

func (d *imageDisplay) Display() error { return nil }

// Caption writes a single line of text onto dst. (x, y) is the left end of the text's baseline, relative to dst's
// top-left corner; glyphs that fall outside of dst are clipped.
func Caption(dst draw.Image, text string, x, y int, c color.RGBA) {
	tinyfont.WriteLine(&imageDisplay{img: dst}, CaptionFont, int16(x), int16(y), text, c)
}

// CaptionWidth returns the width in pixels Caption would use to draw text.
func CaptionWidth(text string) int {
	_, outbox := tinyfont.LineWidth(CaptionFont, text)
	return int(outbox)
}
