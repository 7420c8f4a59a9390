package ili9340

import "errors"

// Failure is a drawing request the driver refused. It is returned before any
// bytes for the refused operation reach the bus, so it never indicates a
// hardware problem.
type Failure uint8

const (
	ErrOutOfBounds       Failure = iota + 1 // rectangle lies fully outside the display
	ErrInvertedRectangle                    // x1 > x2 or y1 > y2
	ErrFontNotLoaded                        // font id was never returned by LoadFont
	ErrGlyphOutOfRange                      // character code outside [32, 128)
	ErrWouldExceedBounds                    // glyph cell does not fit on the display
)

func (f Failure) Error() string {
	switch f {
	case ErrOutOfBounds:
		return "ili9340: rectangle outside display area"
	case ErrInvertedRectangle:
		return "ili9340: inverted rectangle"
	case ErrFontNotLoaded:
		return "ili9340: font not loaded"
	case ErrGlyphOutOfRange:
		return "ili9340: glyph out of range"
	case ErrWouldExceedBounds:
		return "ili9340: glyph would exceed display bounds"
	}
	return "ili9340: unknown failure"
}

// IsFailure reports whether err is a refused drawing request rather than a
// bus, pin or asset error.
func IsFailure(err error) bool {
	var f Failure
	return errors.As(err, &f)
}
