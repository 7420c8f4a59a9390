package ili9340

import (
	"image/color"

	"github.com/flavioheleno/ili9340/rgb565"
	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = &Displayer{}

// Displayer exposes the display through the tinygo drivers.Displayer
// interface, so tinyfont and other tinygo graphics helpers can draw on it.
//
// Every SetPixel is written to the controller immediately. SetPixel cannot
// report errors; the first bus error is kept and returned by Display.
// Pixels off the display are dropped.
type Displayer struct {
	d   *Dev
	err error
}

// Displayer returns a drivers.Displayer view of d.
func (d *Dev) Displayer() *Displayer {
	return &Displayer{d: d}
}

// Size returns the display dimensions in pixels.
func (p *Displayer) Size() (x, y int16) {
	return int16(p.d.rect.Dx()), int16(p.d.rect.Dy())
}

// SetPixel draws a single pixel, converting c to RGB565.
func (p *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if p.err != nil {
		return
	}
	v := rgb565.Pack(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
	if err := p.d.DrawPixel(int(x), int(y), v); err != nil && !IsFailure(err) {
		p.err = err
	}
}

// Display returns and clears the first error hit since the previous call.
func (p *Displayer) Display() error {
	err := p.err
	p.err = nil
	return err
}
