package ili9340

import (
	"fmt"
	"io"
	"math"
)

// headerSize is the length of the preamble in front of the pixel data of
// every font and bitmap asset: a BMP file header plus a BITMAPINFOHEADER. Its
// fields are not interpreted.
const headerSize = 54

// readPixels skips the asset preamble and returns the following w*h 3-byte
// pixels, unpadded, rows in on-disk order.
func readPixels(r io.Reader, w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 || h > math.MaxInt/3 || w > math.MaxInt/(3*h) {
		return nil, fmt.Errorf("ili9340: invalid asset size %dx%d", w, h)
	}
	if _, err := io.CopyN(io.Discard, r, headerSize); err != nil {
		return nil, fmt.Errorf("ili9340: failed to read asset header: %w", err)
	}
	pix := make([]byte, 3*w*h)
	if _, err := io.ReadFull(r, pix); err != nil {
		return nil, fmt.Errorf("ili9340: failed to read %dx%d asset pixels: %w", w, h, err)
	}
	return pix, nil
}
