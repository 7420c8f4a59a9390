// Package fontsheet renders glyph sheet assets for the ili9340 font loader.
//
// A sheet holds the 96 printable ASCII characters (32 to 127) in a grid of 16
// columns by 6 rows of fixed-size cells, black ink on a white background. It
// is stored as a 24-bit BMP, which the driver reads as a 54-byte preamble
// followed by bottom-up blue-green-red rows.
package fontsheet

import (
	"errors"
	"image"
	"image/draw"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// Columns and Rows is the sheet layout in glyph cells.
	Columns = 16
	Rows    = 6

	first = 32
	last  = 127
)

// Size returns the sheet dimensions for a cell size.
func Size(cw, ch int) (w, h int) {
	return Columns * cw, Rows * ch
}

// Render draws every printable character of face into its cell of a new
// sheet. Glyphs are placed on the face's baseline, offset by its ascent from
// the top of the cell.
func Render(face font.Face, cw, ch int) (*image.RGBA, error) {
	if cw <= 0 || ch <= 0 {
		return nil, errors.New("fontsheet: cell size must be positive")
	}
	w, h := Size(cw, ch)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	ascent := face.Metrics().Ascent.Ceil()
	for c := first; c <= last; c++ {
		i := c - first
		col, row := i%Columns, i/Columns
		cell := image.Rect(col*cw, row*ch, (col+1)*cw, (row+1)*ch)
		d := &font.Drawer{
			Dst:  clip{img, cell},
			Src:  image.Black,
			Face: face,
			Dot:  fixed.P(cell.Min.X, cell.Min.Y+ascent),
		}
		d.DrawString(string(rune(c)))
	}
	threshold(img)
	return img, nil
}

// Encode renders a sheet and writes it to w as a 24-bit BMP.
func Encode(w io.Writer, face font.Face, cw, ch int) error {
	img, err := Render(face, cw, ch)
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}

// threshold snaps antialiased pixels to black or white; the loader only
// treats pure black as ink.
func threshold(img *image.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		v := byte(0xFF)
		if img.Pix[i] < 0x80 {
			v = 0
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = v, v, v, 0xFF
	}
}

// clip restricts drawing to a single cell so wide glyphs cannot bleed into
// their neighbours.
type clip struct {
	*image.RGBA
	r image.Rectangle
}

func (c clip) Bounds() image.Rectangle {
	return c.r
}
