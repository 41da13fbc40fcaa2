package fht7901

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
)

// ReadRegister returns the value of an SX1276 register.
func (r *Radio) ReadRegister(addr byte) byte {
	buf := []byte{0}
	r.transaction(fmt.Sprintf("read register %02X", addr), func() error {
		if err := r.conn.Write([]byte{addr &^ spiWriteMask}); err != nil {
			return err
		}
		return r.conn.Read(buf)
	})
	if verbose {
		log.Printf("[DEBUG] read %02X -> %02X", addr, buf[0])
	}
	return buf[0]
}

// WriteRegister writes one or more values starting at register addr.
// The chip advances the address after each byte, except for RegFifo.
func (r *Radio) WriteRegister(addr byte, data ...byte) {
	if verbose {
		log.Printf("[DEBUG] write %02X <- % X", addr, data)
	}
	r.transaction(fmt.Sprintf("write register %02X", addr), func() error {
		return r.conn.Write(append([]byte{addr | spiWriteMask}, data...))
	})
}

// BeginBurst starts a write transaction on register addr and keeps
// chip select asserted until EndBurst is called.
func (r *Radio) BeginBurst(addr byte) {
	if r.Error() != nil {
		return
	}
	if r.conn == nil {
		r.SetError(transportError(errors.New("no connection"), "begin burst"))
		return
	}
	if err := r.conn.Begin(); err != nil {
		r.SetError(transportError(err, "begin burst"))
		return
	}
	if err := r.conn.Write([]byte{addr | spiWriteMask}); err != nil {
		r.abort(transportError(err, "begin burst"))
	}
}

// BurstWrite sends data within the burst started by BeginBurst.
func (r *Radio) BurstWrite(data []byte) {
	if r.Error() != nil {
		return
	}
	if err := r.conn.Write(data); err != nil {
		r.abort(transportError(err, "burst write"))
	}
}

// EndBurst releases chip select, completing the burst.
func (r *Radio) EndBurst() {
	if r.Error() != nil {
		return
	}
	if err := r.conn.End(); err != nil {
		r.abort(transportError(err, "end burst"))
	}
}

func (r *Radio) transaction(op string, f func() error) {
	if r.Error() != nil {
		return
	}
	if r.conn == nil {
		r.SetError(transportError(errors.New("no connection"), op))
		return
	}
	if err := r.conn.Begin(); err != nil {
		r.SetError(transportError(err, op))
		return
	}
	if err := f(); err != nil {
		r.abort(transportError(err, op))
		return
	}
	if err := r.conn.End(); err != nil {
		r.abort(transportError(err, op))
	}
}

// abort records a transport failure. The chip state is unknown afterwards,
// so the configuration must be redone from Init.
func (r *Radio) abort(err error) {
	_ = r.conn.End()
	r.SetError(err)
	r.configured = false
	r.mode = modeUnknown
	r.payloadLength = -1
}
