// Package rgb565 provides the 16-bit RGB565 color and image format used by the ILI9340.
//
// A pixel is stored as two bytes, most significant byte first, in the order the
// controller expects on the wire: 5 bits red, 6 bits green, 5 bits blue.
package rgb565

import (
	"image"
	"image/color"
)

// Color is a packed RGB565 value.
type Color uint16

// Pack converts a 24-bit 0xRRGGBB truecolor value into RGB565.
// The low 3 bits of red and blue and the low 2 bits of green are discarded.
func Pack(rgb uint32) Color {
	r := (rgb >> 16) & 0xFF
	g := (rgb >> 8) & 0xFF
	b := rgb & 0xFF
	return Color(((r & 0xF8) << 8) | ((g & 0xFC) << 3) | (b >> 3))
}

// Bytes returns the high and low byte of c in wire order.
func (c Color) Bytes() (hi, lo byte) {
	return byte(c >> 8), byte(c)
}

// RGBA implements color.Color.
// Each channel is widened by replicating its high bits into the low ones.
func (c Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

func toColor(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return Pack((r>>8)<<16 | (g>>8)<<8 | b>>8)
}

// Model converts colors to Color.
var Model = color.ModelFunc(toColor)

// Image is an RGB565 image stored as big-endian pixel pairs.
type Image struct {
	Pix    []byte          // 2 bytes per pixel, high byte first
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new Image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, 2*w*h),
		Stride: 2 * w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
func (p *Image) At(x, y int) color.Color {
	return p.ColorAt(x, y)
}

// ColorAt returns the packed color of the pixel at (x, y).
func (p *Image) ColorAt(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	i := p.PixOffset(x, y)
	return Color(p.Pix[i])<<8 | Color(p.Pix[i+1])
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	p.SetColor(x, y, Model.Convert(c).(Color))
}

// SetColor sets the packed color of the pixel at (x, y).
func (p *Image) SetColor(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i], p.Pix[i+1] = c.Bytes()
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
