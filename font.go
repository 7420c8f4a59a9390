package ili9340

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/flavioheleno/ili9340/rgb565"
)

// Glyph sheet layout: printable ASCII in rows of 16 cells.
const (
	firstGlyph   = 32
	glyphCount   = 96
	glyphsPerRow = 16
)

// Font is a bitmap font decoded from a glyph sheet asset.
type Font struct {
	CharW, CharH int // Glyph cell size
	SrcW, SrcH   int // Sheet size

	// ink holds SrcW*SrcH coverage flags, row-major, rows in the sheet's
	// on-disk (bottom-up) order.
	ink []bool
}

// inked reports whether the sheet pixel at grid row and column is glyph ink.
func (f *Font) inked(row, col int) bool {
	if row < 0 || row >= f.SrcH || col < 0 || col >= f.SrcW {
		return false
	}
	return f.ink[row*f.SrcW+col]
}

// LoadFont decodes the glyph sheet name from the asset filesystem and returns
// its font id.
//
// The sheet is w x h pixels with glyph cells of cw x ch; code c is found in
// cell column (c-32)%16, cell row (c-32)/16 counted from the top of the image.
// Pure black pixels are ink.
func (d *Dev) LoadFont(name string, w, h, cw, ch int) (int, error) {
	f, err := d.assets.Open(name)
	if err != nil {
		return -1, fmt.Errorf("ili9340: failed to open font: %w", err)
	}
	defer f.Close()
	return d.LoadFontFrom(f, w, h, cw, ch)
}

// LoadFontFrom is LoadFont reading the glyph sheet from r.
func (d *Dev) LoadFontFrom(r io.Reader, w, h, cw, ch int) (int, error) {
	if cw <= 0 || ch <= 0 {
		return -1, fmt.Errorf("ili9340: invalid glyph cell %dx%d", cw, ch)
	}
	pix, err := readPixels(r, w, h)
	if err != nil {
		return -1, err
	}
	f := &Font{CharW: cw, CharH: ch, SrcW: w, SrcH: h, ink: make([]bool, w*h)}
	for i := range f.ink {
		p := pix[3*i : 3*i+3]
		f.ink[i] = p[0]|p[1]|p[2] == 0
	}
	d.fonts = append(d.fonts, f)
	id := len(d.fonts) - 1
	d.log.Debug("ili9340: font loaded", "id", id, "sheet", fmt.Sprintf("%dx%d", w, h), "cell", fmt.Sprintf("%dx%d", cw, ch))
	return id, nil
}

// Font returns the loaded font with the given id, or nil.
func (d *Dev) Font(id int) *Font {
	if id < 0 || id >= len(d.fonts) {
		return nil
	}
	return d.fonts[id]
}

// WriteChar draws the ink of glyph r with its cell's top-left corner at (x, y).
//
// Only ink pixels are drawn, one pixel per transfer; the background is left
// untouched. Pixels already drawn stay on the display if a bus error aborts
// the glyph.
func (d *Dev) WriteChar(r rune, x, y int, c rgb565.Color, font int) error {
	f := d.Font(font)
	if f == nil {
		return ErrFontNotLoaded
	}
	i := int(r) - firstGlyph
	if i < 0 || i >= glyphCount {
		return ErrGlyphOutOfRange
	}
	if x < 0 || x+f.CharW > d.rect.Dx() || y < 0 || y+f.CharH > d.rect.Dy() {
		return ErrWouldExceedBounds
	}
	col, row := i%glyphsPerRow, i/glyphsPerRow

	// The sheet is stored bottom-up, so glyph line h of cell row `row` sits
	// at grid row SrcH-(row*CharH+h).
	for h := 1; h <= f.CharH; h++ {
		for w := 0; w < f.CharW; w++ {
			if !f.inked(f.SrcH-(row*f.CharH+h), col*f.CharW+w) {
				continue
			}
			if err := d.DrawPixel(x+w, y+h, c); err != nil && !IsFailure(err) {
				return err
			}
		}
	}
	return nil
}

// TextOpts controls WriteText.
type TextOpts struct {
	LineWrap  bool         // Continue on the next line instead of stopping at the right edge
	Overwrite bool         // Paint Clear behind the text first
	Clear     rgb565.Color // Background color used by Overwrite
	Font      int          // Font id
}

// WriteText draws text starting at (x, y) and returns the number of glyphs drawn.
//
// When the next glyph would cross the right edge, drawing either wraps to x on
// the following line or stops, depending on o.LineWrap. Drawing stops at the
// first glyph WriteChar refuses, and that failure is returned.
func (d *Dev) WriteText(text string, x, y int, c rgb565.Color, o TextOpts) (int, error) {
	f := d.Font(o.Font)
	if f == nil {
		return 0, ErrFontNotLoaded
	}
	if o.Overwrite {
		n := utf8.RuneCountInString(text)
		if err := d.FillRect(x, y, x+n*f.CharW, y+f.CharH, o.Clear); err != nil && !IsFailure(err) {
			return 0, err
		}
	}

	n, dx, dy := 0, 0, 0
	for _, r := range text {
		if x+dx+f.CharW > d.rect.Dx() {
			if !o.LineWrap {
				break
			}
			dx = 0
			dy += f.CharH
		}
		if err := d.WriteChar(r, x+dx, y+dy, c, o.Font); err != nil {
			return n, err
		}
		dx += f.CharW
		n++
	}
	return n, nil
}
