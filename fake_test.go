package ili9340

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

type opKind int

const (
	opCmd opKind = iota
	opData
	opRST
	opSleep
)

// op is one observable effect on the hardware, in order.
type op struct {
	kind  opKind
	b     []byte
	level gpio.Level
	wait  time.Duration
}

// recorder collects bus transfers, reset pin changes and delays. Transfers are
// classified by the D/C level at the time they are sent.
type recorder struct {
	ops   []op
	dc    gpio.Level
	txErr error // returned by Tx once fail more transfers have succeeded
	fail  int
}

func (r *recorder) clear() {
	r.ops = nil
}

func (r *recorder) commands() []Command {
	var out []Command
	for _, o := range r.ops {
		if o.kind == opCmd {
			out = append(out, Command(o.b[0]))
		}
	}
	return out
}

func (r *recorder) transfers() int {
	n := 0
	for _, o := range r.ops {
		if o.kind == opCmd || o.kind == opData {
			n++
		}
	}
	return n
}

// frame is a command and the data transfers that followed it.
type frame struct {
	cmd  Command
	data [][]byte
}

func (r *recorder) frames() []frame {
	var out []frame
	for _, o := range r.ops {
		switch o.kind {
		case opCmd:
			out = append(out, frame{cmd: Command(o.b[0])})
		case opData:
			if len(out) > 0 {
				out[len(out)-1].data = append(out[len(out)-1].data, o.b)
			}
		}
	}
	return out
}

// write is one RAMWR transaction: the inclusive window set before it and all
// pixel bytes sent after it.
type write struct {
	x1, y1, x2, y2 int
	pix            []byte
}

func (w write) pixels() int {
	return len(w.pix) / 2
}

func (w write) point() image.Point {
	return image.Pt(w.x1, w.y1)
}

func (r *recorder) writes() []write {
	var out []write
	var cur write
	for _, f := range r.frames() {
		switch f.cmd {
		case CASET:
			cur.x1, cur.x2 = word(f.data[0]), word(f.data[1])
		case PASET:
			cur.y1, cur.y2 = word(f.data[0]), word(f.data[1])
		case RAMWR:
			w := cur
			w.pix = nil
			for _, d := range f.data {
				w.pix = append(w.pix, d...)
			}
			out = append(out, w)
		}
	}
	return out
}

func word(b []byte) int {
	return int(b[0])<<8 | int(b[1])
}

type fakeConn struct {
	r *recorder
}

func (c *fakeConn) String() string      { return "fakeConn" }
func (c *fakeConn) Duplex() conn.Duplex { return conn.Half }

func (c *fakeConn) Tx(w, r []byte) error {
	if c.r.txErr != nil {
		if c.r.fail == 0 {
			return c.r.txErr
		}
		c.r.fail--
	}
	kind := opData
	if c.r.dc == gpio.Low {
		kind = opCmd
	}
	c.r.ops = append(c.r.ops, op{kind: kind, b: append([]byte(nil), w...)})
	return nil
}

func (c *fakeConn) TxPackets(p []spi.Packet) error {
	return errors.New("fakeConn: packets not supported")
}

type fakePort struct {
	c    *fakeConn
	hz   physic.Frequency
	mode spi.Mode
	bits int
}

func (p *fakePort) String() string {
	return "fakePort"
}

func (p *fakePort) LimitSpeed(f physic.Frequency) error {
	return nil
}

func (p *fakePort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	p.hz, p.mode, p.bits = f, mode, bits
	return p.c, nil
}

// dcPin tracks the D/C level on the recorder.
type dcPin struct {
	*gpiotest.Pin
	r   *recorder
	err error
}

func (p *dcPin) Out(l gpio.Level) error {
	if p.err != nil {
		return p.err
	}
	p.r.dc = l
	return p.Pin.Out(l)
}

// rstPin records level changes on the recorder.
type rstPin struct {
	*gpiotest.Pin
	r *recorder
}

func (p *rstPin) Out(l gpio.Level) error {
	p.r.ops = append(p.r.ops, op{kind: opRST, level: l})
	return p.Pin.Out(l)
}

// newTestDev returns an uninitialized device wired to a recorder.
func newTestDev(t *testing.T, opts *Opts) (*Dev, *recorder) {
	t.Helper()
	return newTestDevWith(t, &recorder{}, opts)
}

// newTestDevWith is newTestDev sharing an existing recorder, for pins built
// before the device.
func newTestDevWith(t *testing.T, r *recorder, opts *Opts) (*Dev, *recorder) {
	t.Helper()
	dc := &dcPin{Pin: &gpiotest.Pin{N: "DC", Num: 25}, r: r}
	d, err := newDev(&fakeConn{r: r}, dc, opts)
	require.NoError(t, err)
	d.sleep = func(wait time.Duration) {
		r.ops = append(r.ops, op{kind: opSleep, wait: wait})
	}
	return d, r
}
