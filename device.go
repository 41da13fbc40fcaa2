package fht7901

import (
	"log"
	"time"

	"github.com/ecc1/gpio"
	"github.com/ecc1/spi"
	"github.com/pkg/errors"
)

const (
	verbose    = false
	verboseSPI = false
)

func init() {
	if verbose || verboseSPI {
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.LUTC)
	}
}

// Conn is a half-duplex link to the chip.
// Begin asserts chip select and End releases it;
// every Write and Read in between belongs to one transaction.
type Conn interface {
	Begin() error
	Write(p []byte) error
	Read(p []byte) error
	End() error
}

// ResetLine drives the chip's reset input.
// Writing true asserts reset.
type ResetLine interface {
	Write(bool) error
}

// Radio represents an open SX1276 radio device.
type Radio struct {
	conn     Conn
	resetPin ResetLine
	sleep    func(time.Duration)
	path     string

	mode          Mode
	payloadLength int
	configured    bool
	encoding      Encoding

	stats Statistics
	err   error
}

// Statistics contains the radio's transmit counts.
type Statistics struct {
	Packets struct {
		Sent int
	}
	Bytes struct {
		Sent int
	}
}

// Open opens the radio device on the board's SPI bus and reset pin.
func Open() *Radio {
	return OpenDevice(spiDevice, resetPin)
}

// OpenDevice opens the radio on the given spidev path and reset GPIO.
func OpenDevice(path string, reset int) *Radio {
	const spiSpeed = 1000000 // Hz
	r := New(nil, nil)
	r.path = path
	dev, err := spi.Open(path, spiSpeed, customCS)
	if err != nil {
		r.err = errors.Wrap(err, "open SPI device")
		return r
	}
	r.conn = &spiConn{transfer: dev.Transfer, close: dev.Close}
	r.resetPin, r.err = gpio.Output(reset, true, false)
	if r.err != nil {
		r.Close()
	}
	return r
}

// New returns a Radio that talks to the chip over conn.
// The reset line may be nil if the chip's reset is not wired.
func New(conn Conn, reset ResetLine) *Radio {
	return &Radio{
		conn:          conn,
		resetPin:      reset,
		sleep:         time.Sleep,
		mode:          modeUnknown,
		payloadLength: -1,
		encoding:      DefaultEncoding,
	}
}

// Close closes the radio device.
func (r *Radio) Close() {
	c, ok := r.conn.(*spiConn)
	if !ok || c.close == nil {
		return
	}
	err := c.close()
	if r.err == nil {
		r.err = err
	}
}

// Name returns the radio's name.
func (r *Radio) Name() string {
	return "SX1276"
}

// Device returns the pathname of the radio's device.
func (r *Radio) Device() string {
	return r.path
}

// Reset pulses the reset line and waits for the chip to settle.
func (r *Radio) Reset() {
	if r.Error() != nil || r.resetPin == nil {
		return
	}
	if err := r.resetPin.Write(true); err != nil {
		r.SetError(errors.Wrap(err, "assert reset"))
		return
	}
	r.sleep(100 * time.Millisecond)
	if err := r.resetPin.Write(false); err != nil {
		r.SetError(errors.Wrap(err, "release reset"))
		return
	}
	r.sleep(1 * time.Second)
	r.mode = modeUnknown
}

// Statistics returns the byte and packet counts for the radio device.
func (r *Radio) Statistics() Statistics {
	return r.stats
}

// Error returns the error state of the radio device.
func (r *Radio) Error() error {
	return r.err
}

// SetError sets the error state of the radio device.
func (r *Radio) SetError(err error) {
	r.err = err
}

// spiConn adapts a spidev device to Conn.
// Bytes written inside a transaction are sent in a single transfer,
// so chip select stays asserted across them.
type spiConn struct {
	transfer func(snd, rcv []byte) error
	close    func() error
	buf      []byte
	open     bool
}

var (
	errNoTransaction     = errors.New("no SPI transaction in progress")
	errNestedTransaction = errors.New("SPI transaction already in progress")
)

func (c *spiConn) Begin() error {
	if c.open {
		return errNestedTransaction
	}
	c.open = true
	c.buf = c.buf[:0]
	return nil
}

func (c *spiConn) Write(p []byte) error {
	if !c.open {
		return errNoTransaction
	}
	c.buf = append(c.buf, p...)
	return nil
}

// Read clocks out the pending bytes followed by len(p) dummy bytes
// and returns what the chip sent during the dummy bytes.
func (c *spiConn) Read(p []byte) error {
	if !c.open {
		return errNoTransaction
	}
	n := len(c.buf)
	c.buf = append(c.buf, make([]byte, len(p))...)
	err := c.xfer()
	copy(p, c.buf[n:])
	c.buf = c.buf[:0]
	return err
}

func (c *spiConn) End() error {
	if !c.open {
		return errNoTransaction
	}
	c.open = false
	if len(c.buf) == 0 {
		return nil
	}
	err := c.xfer()
	c.buf = c.buf[:0]
	return err
}

// xfer sends the buffer and replaces it in place with the bytes received.
func (c *spiConn) xfer() error {
	if verboseSPI {
		log.Printf("[DEBUG] xfer % X", c.buf)
	}
	return c.transfer(c.buf, c.buf)
}
