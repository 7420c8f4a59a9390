package ili9340

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/ili9340/rgb565"
	"periph.io/x/conn/v3/display"
)

var _ display.Drawer = &Dev{}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Draw converts src to RGB565 and writes it to the dst region of the display.
// The src image is positioned at src point sp within the destination.
//
// dst is clipped to the display. Every call sends the whole clipped region.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	r := dst.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))

	img := rgb565.NewImage(r)
	draw.Draw(img, r, src, sp, draw.Src)

	if err := d.setWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1); err != nil {
		return err
	}
	if err := d.writeCommand(RAMWR); err != nil {
		return err
	}
	if err := d.writeData(img.Pix); err != nil {
		return err
	}
	return d.writeCommand(NOP)
}
