package ili9340

import "fmt"

// Command is an ILI9340 opcode. Only the opcodes this driver sends are defined.
type Command byte

const (
	NOP       Command = 0x00 // No operation, used to terminate a memory write
	SLPOUT    Command = 0x11 // Sleep out
	GAMSET    Command = 0x26 // Gamma set
	DISPOFF   Command = 0x28 // Display off
	DISPON    Command = 0x29 // Display on
	CASET     Command = 0x2A // Column address set
	PASET     Command = 0x2B // Page (row) address set
	RAMWR     Command = 0x2C // Memory write
	MADCTL    Command = 0x36 // Memory access control
	PIXFMT    Command = 0x3A // Pixel format set
	FRMCTR1   Command = 0xB1 // Frame rate control, normal mode
	DFUNCTR   Command = 0xB6 // Display function control
	PWCTR1    Command = 0xC0 // Power control 1
	PWCTR2    Command = 0xC1 // Power control 2
	VMCTR1    Command = 0xC5 // VCOM control 1
	VMCTR2    Command = 0xC7 // VCOM control 2
	PWCTRA    Command = 0xCB // Power control A
	PWCTRB    Command = 0xCF // Power control B
	GMCTRP1   Command = 0xE0 // Positive gamma correction
	GMCTRN1   Command = 0xE1 // Negative gamma correction
	DTCTRA    Command = 0xEA // Driver timing control
	PWONSEQ   Command = 0xED // Power on sequence control
	UNDOCEF   Command = 0xEF // Undocumented, required by the vendor sequence
	GAM3CTRL  Command = 0xF2 // Enable 3 gamma control
	PUMPRATIO Command = 0xF7 // Pump ratio control
)

var commandNames = map[Command]string{
	NOP:       "NOP",
	SLPOUT:    "SLPOUT",
	GAMSET:    "GAMSET",
	DISPOFF:   "DISPOFF",
	DISPON:    "DISPON",
	CASET:     "CASET",
	PASET:     "PASET",
	RAMWR:     "RAMWR",
	MADCTL:    "MADCTL",
	PIXFMT:    "PIXFMT",
	FRMCTR1:   "FRMCTR1",
	DFUNCTR:   "DFUNCTR",
	PWCTR1:    "PWCTR1",
	PWCTR2:    "PWCTR2",
	VMCTR1:    "VMCTR1",
	VMCTR2:    "VMCTR2",
	PWCTRA:    "PWCTRA",
	PWCTRB:    "PWCTRB",
	GMCTRP1:   "GMCTRP1",
	GMCTRN1:   "GMCTRN1",
	DTCTRA:    "DTCTRA",
	PWONSEQ:   "PWONSEQ",
	UNDOCEF:   "UNDOCEF",
	GAM3CTRL:  "GAM3CTRL",
	PUMPRATIO: "PUMPRATIO",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(0x%02X)", byte(c))
}

// initStep is one command of the power-on sequence. Each entry of params is
// sent as a separate data write.
type initStep struct {
	cmd    Command
	params [][]byte
}

// initSequence is the vendor power-on sequence, sent after the hardware reset
// and before SLPOUT. Bytes and order must not change.
var initSequence = []initStep{
	{UNDOCEF, [][]byte{{0x03, 0x80, 0x02}}},
	{PWCTRB, [][]byte{{0x00, 0xC1, 0x30}}},
	{PWONSEQ, [][]byte{{0x85, 0x00, 0x78}}},
	{PWCTRA, [][]byte{{0x39, 0x2C, 0x00, 0x34, 0x02}}},
	{PUMPRATIO, [][]byte{{0x20}}},
	{DTCTRA, [][]byte{{0x00, 0x00}}},
	{PWCTR1, [][]byte{{0x23}}},
	{PWCTR2, [][]byte{{0x10}}},
	{VMCTR1, [][]byte{{0x3E, 0x28}}},
	{VMCTR2, [][]byte{{0x86}}},
	{MADCTL, [][]byte{{0x48}}},
	{PIXFMT, [][]byte{{0x55}}}, // 16 bits per pixel
	{FRMCTR1, [][]byte{{0x00, 0x18}}},
	{DFUNCTR, [][]byte{{0x08, 0x82, 0x27}}},
	{GAM3CTRL, [][]byte{{0x00}}},
	{GAMSET, [][]byte{{0x01}}},
	{GMCTRP1, [][]byte{
		{0x0F, 0x31, 0x2B, 0x0C, 0x0E},
		{0x08, 0x4E, 0xF1, 0x37, 0x07},
		{0x10, 0x03, 0x0E, 0x09, 0x00},
	}},
	{GMCTRN1, [][]byte{
		{0x00, 0x0E, 0x14, 0x03, 0x11},
		{0x07, 0x31, 0xC1, 0x48, 0x08},
		{0x0F, 0x0C, 0x31, 0x36, 0x0F},
	}},
}
