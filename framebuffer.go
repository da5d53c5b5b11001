package softgl

import (
	"image"
	"image/color"

	"github.com/softgl/softgl/math32"
)

// Target is a color buffer the rasterizer writes into. Coordinates are in pixels with (0, 0) at the bottom-left
// while rendering; FlipVertically is called once rendering is done to move the origin to the top-left, the way
// images are stored.
//
// Writes and reads outside of the Target's bounds are ignored (reads return the zero Color).
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Pixel(x, y int) Color
	Clear(c Color)
	FlipVertically()
}

// Canvas is a Target backed by an *image.NRGBA.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas creates a new, transparent Canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// NewCanvasFromImage wraps an existing *image.NRGBA. The image's bounds are rebased so that the Canvas always
// addresses its pixels from (0, 0).
func NewCanvasFromImage(img *image.NRGBA) *Canvas {
	b := img.Bounds()
	if b.Min != (image.Point{}) {
		img = img.SubImage(b).(*image.NRGBA)
		img.Rect = image.Rect(0, 0, b.Dx(), b.Dy())
	}
	return &Canvas{img: img}
}

func (c *Canvas) Size() (w, h int) {
	return c.img.Rect.Dx(), c.img.Rect.Dy()
}

func (c *Canvas) inBounds(x, y int) bool {
	w, h := c.Size()
	return x >= 0 && y >= 0 && x < w && y < h
}

func (c *Canvas) SetPixel(x, y int, col Color) {
	if !c.inBounds(x, y) {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = col.R, col.G, col.B, col.A
}

func (c *Canvas) Pixel(x, y int) Color {
	if !c.inBounds(x, y) {
		return Color{}
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (c *Canvas) Clear(col Color) {
	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetPixel(x, y, col)
		}
	}
}

func (c *Canvas) FlipVertically() {
	w, h := c.Size()
	rowLen := w * 4
	tmp := make([]uint8, rowLen)
	for y := 0; y < h/2; y++ {
		top := c.img.Pix[y*c.img.Stride : y*c.img.Stride+rowLen]
		bottom := c.img.Pix[(h-1-y)*c.img.Stride : (h-1-y)*c.img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Image returns the image backing the Canvas.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// DepthBuffer stores one depth value per pixel. Larger values are closer to the camera; a cleared buffer holds
// -math32.MaxFloat32 everywhere, so the first fragment drawn to any pixel always passes.
type DepthBuffer struct {
	width, height int
	data          []float32
}

// NewDepthBuffer creates a cleared DepthBuffer of the given size.
func NewDepthBuffer(w, h int) *DepthBuffer {
	db := &DepthBuffer{width: w, height: h, data: make([]float32, w*h)}
	db.Clear()
	return db
}

func (db *DepthBuffer) Size() (w, h int) {
	return db.width, db.height
}

// At returns the depth stored at (x, y), or -math32.MaxFloat32 if the coordinates are out of bounds.
func (db *DepthBuffer) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= db.width || y >= db.height {
		return -math32.MaxFloat32
	}
	return db.data[y*db.width+x]
}

// Set stores depth at (x, y). Out of bounds writes are ignored.
func (db *DepthBuffer) Set(x, y int, depth float32) {
	if x < 0 || y < 0 || x >= db.width || y >= db.height {
		return
	}
	db.data[y*db.width+x] = depth
}

// Clear resets every pixel to -math32.MaxFloat32.
func (db *DepthBuffer) Clear() {
	for i := range db.data {
		db.data[i] = -math32.MaxFloat32
	}
}

func (db *DepthBuffer) FlipVertically() {
	tmp := make([]float32, db.width)
	for y := 0; y < db.height/2; y++ {
		top := db.data[y*db.width : (y+1)*db.width]
		bottom := db.data[(db.height-1-y)*db.width : (db.height-y)*db.width]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// ToImage renders the DepthBuffer as a grayscale image, mapping 0..DepthRange onto black..white. Pixels that were
// never written are black.
func (db *DepthBuffer) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, db.width, db.height))
	for y := 0; y < db.height; y++ {
		for x := 0; x < db.width; x++ {
			d := db.data[y*db.width+x]
			v := math32.Clamp(d/DepthRange*255, 0, 255)
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return img
}

// FrameBuffer pairs a color Target with a DepthBuffer of the same size. The rasterizer always writes both
// together.
type FrameBuffer struct {
	Color Target
	Depth *DepthBuffer
}

// NewFrameBuffer creates a FrameBuffer around the given Target, allocating a matching, cleared DepthBuffer.
func NewFrameBuffer(target Target) *FrameBuffer {
	w, h := target.Size()
	return &FrameBuffer{
		Color: target,
		Depth: NewDepthBuffer(w, h),
	}
}

// Size returns the size of the FrameBuffer in pixels.
func (fb *FrameBuffer) Size() (w, h int) {
	return fb.Color.Size()
}

// Clear fills the color Target with bg and resets the DepthBuffer.
func (fb *FrameBuffer) Clear(bg Color) {
	fb.Color.Clear(bg)
	fb.Depth.Clear()
}

// Finalize flips both buffers vertically, moving the origin from the bottom-left used while rendering to the
// top-left used by images. Call it once per frame, after the last Render.
func (fb *FrameBuffer) Finalize() {
	fb.Color.FlipVertically()
	fb.Depth.FlipVertically()
}
