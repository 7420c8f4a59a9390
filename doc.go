// Package ili9340 controls an ILI9340 TFT display via SPI.
//
// The ILI9340 is a 240×320 TFT controller with 16-bit RGB565 color. This
// driver implements rectangle fills, lines and pixels, text from glyph sheet
// fonts, bitmap blits, and the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 16-bit color, 5 bits red, 6 bits green, 5 bits blue
// - 240×320 native resolution, any smaller size in portrait or landscape
// - Pixel data is streamed into an address window set on the controller
// - Sleep and wake without losing frame memory
//
// # Hardware Connection
//
// Connect the ILI9340 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	CLK         → SPI Clock (SCLK)
//	MOSI        → SPI Data (MOSI)
//	CS          → SPI Chip Select
//	D/C         → GPIO (any available pin)
//	RST         → GPIO for hardware reset (optional)
//
// The bus is driven in SPI mode 0 with 8-bit words at 10MHz unless Opts.Hz says
// otherwise.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/ili9340"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		spiBus, _ := spireg.Open("")
//		defer spiBus.Close()
//
//		dev, _ := ili9340.NewSPI(spiBus, gpioreg.ByName("GPIO25"), &ili9340.Opts{
//			W:   240,
//			H:   320,
//			RST: gpioreg.ByName("GPIO24"),
//		})
//		defer dev.Halt()
//
//		dev.FillScreen(dev.Palette.Black)
//		dev.FillRect(10, 10, 100, 60, dev.Palette.Red)
//		dev.DrawHLine(80, 0, 239, dev.Palette.White)
//	}
//
// When RST is set, the driver pulses it high 5ms, low 20ms, then high 150ms
// before sending the power-on sequence. When it is nil the pulse is skipped.
//
// # Colors
//
// Colors are rgb565.Color values. Pack converts a 24-bit 0xRRGGBB value by
// truncating each channel:
//
//	orange := rgb565.Pack(0xFF8000)
//
// Dev.Palette holds red, green, blue, yellow, cyan, purple, white and black.
//
// # Coordinates
//
// Rectangles are given by inclusive corners. FillRect clamps a rectangle that
// overlaps the screen and refuses one that lies completely outside it or has
// inverted corners. Refusals are reported as Failure values, which IsFailure
// tells apart from bus errors.
//
// # Fonts
//
// A font is a 24-bit BMP glyph sheet holding the printable ASCII characters
// 32 to 127 in 16 columns and 6 rows of fixed-size cells. Pure black pixels
// are ink. The fontsheet package and the ili9340_fontsheet example render
// such sheets from any font.Face.
//
//	id, _ := dev.LoadFont("font7x13.bmp", 112, 78, 7, 13)
//	dev.WriteText("Hello", 0, 0, dev.Palette.Black, ili9340.TextOpts{
//		LineWrap:  true,
//		Overwrite: true,
//		Clear:     dev.Palette.White,
//		Font:      id,
//	})
//
// Assets are opened from Opts.Assets, the current directory by default.
//
// # Bitmaps
//
// DrawBitmap blits an uncompressed 24-bit BMP of known size in a single
// transaction:
//
//	dev.DrawBitmap("logo.bmp", 20, 20, 64, 64)
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// Any image.Image can be drawn; colors are converted with rgb565.Model.
package ili9340
