package fht7901

import (
	"time"

	"github.com/pkg/errors"
)

// fakeChip records SPI transactions and keeps a simulated register file.
type fakeChip struct {
	regs [0x80]byte
	fifo []byte
	txns [][]byte
	cur  []byte
	open bool

	writes int
	failAt int // fail the failAt'th Write; 0 never fails

	irqFlags2 func() byte
}

var errBusFault = errors.New("bus fault")

func (c *fakeChip) Begin() error {
	if c.open {
		return errors.New("nested transaction")
	}
	c.open = true
	c.cur = nil
	return nil
}

func (c *fakeChip) Write(p []byte) error {
	c.writes++
	if c.failAt != 0 && c.writes == c.failAt {
		return errBusFault
	}
	c.cur = append(c.cur, p...)
	return nil
}

func (c *fakeChip) Read(p []byte) error {
	addr := c.cur[0] &^ spiWriteMask
	for i := range p {
		if addr == RegIrqFlags2 {
			p[i] = c.flags()
		} else {
			p[i] = c.regs[addr]
		}
	}
	return nil
}

func (c *fakeChip) End() error {
	if !c.open {
		return errors.New("no transaction")
	}
	c.open = false
	t := c.cur
	c.txns = append(c.txns, t)
	if len(t) < 2 || t[0]&spiWriteMask == 0 {
		return nil
	}
	addr := t[0] &^ spiWriteMask
	if addr == RegFifo {
		c.fifo = append(c.fifo, t[1:]...)
		return nil
	}
	for i, b := range t[1:] {
		c.regs[int(addr)+i] = b
	}
	return nil
}

func (c *fakeChip) flags() byte {
	if c.irqFlags2 == nil {
		return IrqFifoEmpty
	}
	return c.irqFlags2()
}

type regWrite struct {
	addr  byte
	value byte
}

// registerWrites returns the single-byte register writes in order,
// skipping reads and FIFO bursts.
func (c *fakeChip) registerWrites() []regWrite {
	var w []regWrite
	for _, t := range c.txns {
		if len(t) != 2 || t[0]&spiWriteMask == 0 || t[0]&^spiWriteMask == RegFifo {
			continue
		}
		w = append(w, regWrite{t[0] &^ spiWriteMask, t[1]})
	}
	return w
}

// fifoBursts returns the payload size of each FIFO write transaction.
func (c *fakeChip) fifoBursts() []int {
	var n []int
	for _, t := range c.txns {
		if len(t) != 0 && t[0] == RegFifo|spiWriteMask {
			n = append(n, len(t)-1)
		}
	}
	return n
}

func (c *fakeChip) reset() {
	c.txns = nil
	c.fifo = nil
}

type fakeReset struct {
	levels []bool
}

func (p *fakeReset) Write(v bool) error {
	p.levels = append(p.levels, v)
	return nil
}

type fakeClock struct {
	sleeps []time.Duration
}

func (c *fakeClock) sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
}

func (c *fakeClock) total() time.Duration {
	var t time.Duration
	for _, d := range c.sleeps {
		t += d
	}
	return t
}

func newTestRadio() (*Radio, *fakeChip, *fakeReset, *fakeClock) {
	chip := &fakeChip{}
	chip.regs[RegVersion] = ChipVersion
	pin := &fakeReset{}
	clock := &fakeClock{}
	r := New(chip, pin)
	r.sleep = clock.sleep
	return r, chip, pin, clock
}
