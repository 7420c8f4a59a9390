package ili9340

import (
	"fmt"
	"image"
	"io"

	"github.com/flavioheleno/ili9340/rgb565"
)

// DrawBitmap decodes the w x h bitmap asset name and writes it with its top-left
// corner at (x, y).
//
// The asset holds 24-bit blue-green-red pixels in bottom-up rows without
// padding. The whole image is decoded before anything is sent. The address
// window is set to (x, y)-(x+w, y+h) and is not clipped.
func (d *Dev) DrawBitmap(name string, x, y, w, h int) error {
	f, err := d.assets.Open(name)
	if err != nil {
		return fmt.Errorf("ili9340: failed to open bitmap: %w", err)
	}
	defer f.Close()
	return d.DrawBitmapFrom(f, x, y, w, h)
}

// DrawBitmapFrom is DrawBitmap reading the asset from r.
func (d *Dev) DrawBitmapFrom(r io.Reader, x, y, w, h int) error {
	img, err := decodeBitmap(r, w, h)
	if err != nil {
		return err
	}
	if err := d.setWindow(x, y, x+w, y+h); err != nil {
		return err
	}
	if err := d.writeCommand(RAMWR); err != nil {
		return err
	}
	if err := d.writeData(img.Pix); err != nil {
		return err
	}
	d.log.Debug("ili9340: bitmap drawn", "x", x, "y", y, "w", w, "h", h)
	return d.writeCommand(NOP)
}

// decodeBitmap reads a bitmap asset into a top-down RGB565 image.
func decodeBitmap(r io.Reader, w, h int) (*rgb565.Image, error) {
	pix, err := readPixels(r, w, h)
	if err != nil {
		return nil, err
	}
	img := rgb565.NewImage(image.Rect(0, 0, w, h))
	for sy := 0; sy < h; sy++ {
		row := pix[3*w*sy:]
		for x := 0; x < w; x++ {
			blue, green, red := row[3*x], row[3*x+1], row[3*x+2]
			img.SetColor(x, h-1-sy, rgb565.Pack(uint32(red)<<16|uint32(green)<<8|uint32(blue)))
		}
	}
	return img, nil
}
