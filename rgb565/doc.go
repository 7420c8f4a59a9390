// Package rgb565 provides the RGB565 color type and image format for the ILI9340 display controller.
//
// The controller is initialized with a 16 bits per pixel interface format. Every
// pixel is sent as two bytes, high byte first:
//
//	Bits:  15..11  10..5  4..0
//	       red     green  blue
//
// Converting from 24-bit truecolor drops the low bits of each channel:
//
//	rgb565.Pack(0xFF0000) // 0xF800
//	rgb565.Pack(0x00FF00) // 0x07E0
//	rgb565.Pack(0x0000FF) // 0x001F
//
// This package provides:
//
// - Color: a packed RGB565 value implementing color.Color
// - Model: a color model converting standard Go colors to Color
// - Image: a draw.Image whose Pix slice is already in wire order
//
// Example usage:
//
//	img := rgb565.NewImage(image.Rect(0, 0, 240, 320))
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
//	c := img.ColorAt(10, 20) // 0xFFFF
package rgb565
