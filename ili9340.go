// Package ili9340 controls an ILI9340 TFT display via SPI.
//
// The ILI9340 is a 240x320 RGB565 TFT controller. Drawing is done by setting
// an address window on the controller and streaming pixel data into it.
//
// See the examples for how to use this package.
package ili9340

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/flavioheleno/ili9340/rgb565"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Opts is the configuration for the ILI9340 display.
type Opts struct {
	// Display dimensions in pixels
	// The panel must fit the 240x320 frame memory in either orientation.
	W int // Width (default: 240)
	H int // Height (default: 320)

	// Optional hardware reset pin. Most ILI9340 breakouts need it; when nil the
	// reset pulse is skipped and the panel relies on its power-on reset.
	RST gpio.PinOut

	// SPI clock (default: 10MHz)
	Hz physic.Frequency

	// Filesystem font and bitmap assets are opened from (default: os.DirFS(".")).
	Assets fs.FS

	// Logger receives debug events (default: discards everything).
	Logger *slog.Logger
}

// Palette holds precomputed colors.
type Palette struct {
	Red, Green, Blue, Yellow, Cyan, Purple, White, Black rgb565.Color
}

func newPalette() Palette {
	return Palette{
		Red:    rgb565.Pack(0xFF0000),
		Green:  rgb565.Pack(0x00FF00),
		Blue:   rgb565.Pack(0x0000FF),
		Yellow: rgb565.Pack(0xFFFF00),
		Cyan:   rgb565.Pack(0x00FFFF),
		// Same value as Blue.
		Purple: rgb565.Pack(0x0000FF),
		White:  rgb565.Pack(0xFFFFFF),
		Black:  rgb565.Pack(0x000000),
	}
}

// Dev is the device handle for the ILI9340 display.
//
// Dev is not safe for concurrent use. The D/C line level and the controller's
// address window are shared state, so calls must be serialized by the caller.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinOut // Reset pin (optional)

	// Display geometry
	rect image.Rectangle

	// Palette of common colors, computed once.
	Palette Palette

	fonts  []*Font
	assets fs.FS
	log    *slog.Logger
	sleep  func(time.Duration)
}

// NewSPI creates a new ILI9340 device connected via SPI and runs Begin.
//
// The SPI port is configured for opts.Hz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided and configured as an output.
//
// opts can be nil to use defaults (240x320 display).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 240, H: 320}
	}
	if err := validate(opts); err != nil {
		return nil, err
	}
	hz := opts.Hz
	if hz == 0 {
		hz = 10 * physic.MegaHertz
	}
	c, err := p.Connect(hz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ili9340: failed to connect to SPI port: %w", err)
	}
	return New(c, dc, opts)
}

// New creates a device on an already established connection and runs Begin.
func New(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	d, err := newDev(c, dc, opts)
	if err != nil {
		return nil, err
	}
	if err := d.Begin(); err != nil {
		return nil, err
	}
	return d, nil
}

func validate(opts *Opts) error {
	if opts.W <= 0 || opts.H <= 0 {
		return errors.New("ili9340: width and height must be positive")
	}
	portrait := opts.W <= 240 && opts.H <= 320
	landscape := opts.W <= 320 && opts.H <= 240
	if !portrait && !landscape {
		return fmt.Errorf("ili9340: %dx%d does not fit 240x320 frame memory", opts.W, opts.H)
	}
	return nil
}

func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 240, H: 320}
	}
	if err := validate(opts); err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errors.New("ili9340: dc pin is required")
	}
	d := &Dev{
		c:       c,
		dc:      dc,
		rst:     opts.RST,
		rect:    image.Rect(0, 0, opts.W, opts.H),
		Palette: newPalette(),
		assets:  opts.Assets,
		log:     opts.Logger,
		sleep:   time.Sleep,
	}
	if d.assets == nil {
		d.assets = os.DirFS(".")
	}
	if d.log == nil {
		d.log = slog.New(slog.DiscardHandler)
	}
	return d, nil
}

// Begin resets the controller and sends the power-on sequence.
func (d *Dev) Begin() error {
	if d.rst != nil {
		if err := d.reset(); err != nil {
			return err
		}
	}

	for _, s := range initSequence {
		if err := d.writeCommandData(s.cmd, s.params...); err != nil {
			return err
		}
	}

	if err := d.writeCommand(SLPOUT); err != nil {
		return err
	}
	d.sleep(120 * time.Millisecond)
	if err := d.writeCommand(DISPON); err != nil {
		return err
	}
	d.log.Debug("ili9340: display initialized", "width", d.rect.Dx(), "height", d.rect.Dy())
	return nil
}

// reset pulses the reset line: high 5ms, low 20ms, then high 150ms.
func (d *Dev) reset() error {
	pulse := []struct {
		l    gpio.Level
		wait time.Duration
	}{
		{gpio.High, 5 * time.Millisecond},
		{gpio.Low, 20 * time.Millisecond},
		{gpio.High, 150 * time.Millisecond},
	}
	for _, p := range pulse {
		if err := d.rst.Out(p.l); err != nil {
			return fmt.Errorf("ili9340: failed to drive RST %s: %w", p.l, err)
		}
		d.sleep(p.wait)
	}
	d.log.Debug("ili9340: hardware reset done")
	return nil
}

// setWindow sets the inclusive address window that following RAMWR data
// fills, row by row. Coordinates are not clipped.
func (d *Dev) setWindow(x1, y1, x2, y2 int) error {
	if err := d.writeCommandData(CASET, be16(x1), be16(x2)); err != nil {
		return err
	}
	return d.writeCommandData(PASET, be16(y1), be16(y2))
}

func be16(v int) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Sleep turns the display output off. The frame memory is retained.
func (d *Dev) Sleep() error {
	return d.writeCommand(DISPOFF)
}

// Wake turns the display output back on.
func (d *Dev) Wake() error {
	return d.writeCommand(DISPON)
}

// Halt turns the display output off.
func (d *Dev) Halt() error {
	return d.Sleep()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9340.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
