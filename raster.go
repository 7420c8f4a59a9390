package ili9340

import "github.com/flavioheleno/ili9340/rgb565"

// FillRect fills the inclusive rectangle (x1,y1)-(x2,y2) with c.
//
// Edges outside the display are clamped. A rectangle that is inverted or lies
// fully outside the display is refused with ErrInvertedRectangle or
// ErrOutOfBounds and nothing is sent.
func (d *Dev) FillRect(x1, y1, x2, y2 int, c rgb565.Color) error {
	if x1 > x2 || y1 > y2 {
		return ErrInvertedRectangle
	}
	w, h := d.rect.Dx(), d.rect.Dy()
	if x1 >= w || x2 < 0 || y1 >= h || y2 < 0 {
		return ErrOutOfBounds
	}
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, w-1), min(y2, h-1)

	if err := d.setWindow(x1, y1, x2, y2); err != nil {
		return err
	}
	if err := d.writeCommand(RAMWR); err != nil {
		return err
	}
	if err := d.writeColor(c, (x2-x1+1)*(y2-y1+1)); err != nil {
		return err
	}
	return d.writeCommand(NOP)
}

// FillScreen fills the whole display with c.
func (d *Dev) FillScreen(c rgb565.Color) error {
	return d.FillRect(0, 0, d.rect.Dx(), d.rect.Dy(), c)
}

// DrawPixel sets the pixel at (x, y) to c.
func (d *Dev) DrawPixel(x, y int, c rgb565.Color) error {
	return d.FillRect(x, y, x, y, c)
}

// DrawVLine draws a vertical line from (x, y1) to (x, y2) inclusive.
func (d *Dev) DrawVLine(x, y1, y2 int, c rgb565.Color) error {
	return d.FillRect(x, y1, x, y2, c)
}

// DrawHLine draws a horizontal line from (x1, y) to (x2, y) inclusive.
func (d *Dev) DrawHLine(y, x1, x2 int, c rgb565.Color) error {
	return d.FillRect(x1, y, x2, y, c)
}
