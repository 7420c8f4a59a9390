package ili9340

import (
	"fmt"

	"github.com/flavioheleno/ili9340/rgb565"
	"periph.io/x/conn/v3/gpio"
)

// MaxTxSize is the largest number of bytes sent in a single bus transfer.
const MaxTxSize = 1024

// writeCommand pulls D/C low and sends a single opcode.
func (d *Dev) writeCommand(cmd Command) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("ili9340: failed to pull DC low: %w", err)
	}
	if err := d.c.Tx([]byte{byte(cmd)}, nil); err != nil {
		return fmt.Errorf("ili9340: command %s: %w", cmd, err)
	}
	return nil
}

// writeData pulls D/C high and sends p, split into transfers of at most
// MaxTxSize bytes.
func (d *Dev) writeData(p []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("ili9340: failed to pull DC high: %w", err)
	}
	for len(p) > 0 {
		n := min(len(p), MaxTxSize)
		if err := d.c.Tx(p[:n], nil); err != nil {
			return fmt.Errorf("ili9340: data write: %w", err)
		}
		p = p[n:]
	}
	return nil
}

// writeColor pulls D/C high and sends n copies of c, MaxTxSize bytes at a time.
func (d *Dev) writeColor(c rgb565.Color, n int) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("ili9340: failed to pull DC high: %w", err)
	}
	hi, lo := c.Bytes()
	buf := make([]byte, min(2*n, MaxTxSize))
	for i := 0; i < len(buf); i += 2 {
		buf[i], buf[i+1] = hi, lo
	}
	for left := 2 * n; left > 0; {
		k := min(left, len(buf))
		if err := d.c.Tx(buf[:k], nil); err != nil {
			return fmt.Errorf("ili9340: data write: %w", err)
		}
		left -= k
	}
	return nil
}

// writeCommandData sends cmd followed by each params entry as its own data write.
func (d *Dev) writeCommandData(cmd Command, params ...[]byte) error {
	if err := d.writeCommand(cmd); err != nil {
		return err
	}
	for _, p := range params {
		if err := d.writeData(p); err != nil {
			return err
		}
	}
	return nil
}
