package rgb565

import (
	"image"
	"image/color"
	"testing"
)

func TestPack(t *testing.T) {
	tests := []struct {
		name string
		rgb  uint32
		want Color
	}{
		{"red", 0xFF0000, 0xF800},
		{"green", 0x00FF00, 0x07E0},
		{"blue", 0x0000FF, 0x001F},
		{"white", 0xFFFFFF, 0xFFFF},
		{"black", 0x000000, 0x0000},
		{"yellow", 0xFFFF00, 0xFFE0},
		{"cyan", 0x00FFFF, 0x07FF},
		{"low bits dropped", 0x070301, 0x0000},
		{"mixed", 0x123456, 0x11AA},
		{"upper byte ignored", 0xAB000000, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.rgb); got != tt.want {
				t.Errorf("Pack(0x%06X) = 0x%04X, want 0x%04X", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestColorBytes(t *testing.T) {
	hi, lo := Color(0xF81F).Bytes()
	if hi != 0xF8 || lo != 0x1F {
		t.Errorf("Bytes() = (0x%02X, 0x%02X), want (0xF8, 0x1F)", hi, lo)
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		r, g, b uint32
	}{
		{"black", 0x0000, 0, 0, 0},
		{"white", 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", 0xF800, 0xFFFF, 0, 0},
		{"green", 0x07E0, 0, 0xFFFF, 0},
		{"blue", 0x001F, 0, 0, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)", r, g, b, a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Color
	}{
		{"passthrough", Color(0x1234), 0x1234},
		{"black", color.Black, 0x0000},
		{"white", color.White, 0xFFFF},
		{"rgba", color.RGBA{0x12, 0x34, 0x56, 0xFF}, 0x11AA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Model.Convert(tt.input).(Color); got != tt.want {
				t.Errorf("Model.Convert(%v) = 0x%04X, want 0x%04X", tt.input, got, tt.want)
			}
		})
	}
}

func TestPackRoundTrip(t *testing.T) {
	// Every RGB565 value survives widening and repacking.
	for v := 0; v <= 0xFFFF; v += 7 {
		c := Color(v)
		if got := Model.Convert(color.RGBAModel.Convert(c)).(Color); got != c {
			t.Fatalf("round trip of 0x%04X = 0x%04X", v, got)
		}
	}
}

func TestNewImage(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"240x320", image.Rect(0, 0, 240, 320), 480, 153600},
		{"1x1", image.Rect(0, 0, 1, 1), 2, 2},
		{"offset rect", image.Rect(10, 20, 13, 22), 6, 12},
		{"empty", image.Rect(0, 0, 0, 5), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestImageWireOrder(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 2))
	img.SetColor(0, 0, 0xF800)
	img.SetColor(1, 0, 0x07E0)
	img.SetColor(0, 1, 0x001F)
	img.SetColor(1, 1, 0xABCD)

	want := []byte{0xF8, 0x00, 0x07, 0xE0, 0x00, 0x1F, 0xAB, 0xCD}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
		}
	}
}

func TestImageSetAt(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.White)

	c, ok := img.At(1, 1).(Color)
	if !ok {
		t.Fatalf("At(1, 1) returned %T, want Color", img.At(1, 1))
	}
	if c != 0xFFFF {
		t.Errorf("At(1, 1) = 0x%04X, want 0xFFFF", c)
	}
	if img.ColorModel() == nil {
		t.Error("ColorModel() returned nil")
	}
}

func TestImageOutOfBounds(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 4))

	img.SetColor(-1, 0, 0xFFFF)
	img.SetColor(0, -1, 0xFFFF)
	img.SetColor(4, 0, 0xFFFF)
	img.SetColor(0, 4, 0xFFFF)

	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("Pix[%d] = 0x%02X after out-of-bounds writes, want 0", i, b)
		}
	}
	if got := img.ColorAt(-1, 0); got != 0 {
		t.Errorf("ColorAt(-1, 0) = 0x%04X, want 0", got)
	}
}

func TestImageOffsetRect(t *testing.T) {
	img := NewImage(image.Rect(100, 50, 104, 52))
	img.SetColor(101, 51, 0x1234)

	if got := img.PixOffset(101, 51); got != 10 {
		t.Errorf("PixOffset(101, 51) = %d, want 10", got)
	}
	if img.Pix[10] != 0x12 || img.Pix[11] != 0x34 {
		t.Errorf("Pix[10:12] = %X, want 1234", img.Pix[10:12])
	}
	if got := img.ColorAt(101, 51); got != 0x1234 {
		t.Errorf("ColorAt(101, 51) = 0x%04X, want 0x1234", got)
	}
}
