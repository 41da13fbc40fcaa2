package fht7901

import (
	"log"
	"time"

	"github.com/pkg/errors"
)

const (
	fifoSize      = 64
	fifoThreshold = 31

	defaultTimeout = 50 * time.Millisecond
	pollInterval   = 1 * time.Millisecond
)

// SetEncoding selects the packet layout used by SendCommand.
// An invalid layout is rejected and the current one kept.
func (r *Radio) SetEncoding(e Encoding) error {
	if err := e.Validate(); err != nil {
		return err
	}
	r.encoding = e
	return nil
}

// Encoding returns the packet layout used by SendCommand.
func (r *Radio) Encoding() Encoding {
	return r.encoding
}

// SendCommand encodes c and transmits it.
// Invalid commands are rejected before anything is written to the chip.
func (r *Radio) SendCommand(c Command) error {
	frame, err := r.encoding.Frame(c)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("[DEBUG] sending %v", c)
	}
	return r.Send(frame)
}

// Send transmits the given frame as one packet-mode payload.
// The first call after Init enters transmit mode; the chip then stays
// there and sends whatever reaches the FIFO.
// A frame with a length the chip cannot describe is rejected without
// touching the chip or the radio's error state.
// A frame interrupted by an error is abandoned and Init must be called again.
func (r *Radio) Send(frame Frame) error {
	if len(frame) < 1 || len(frame) > MaxFrameLen {
		return invalidParameter("%d-byte frame", len(frame))
	}
	if r.Error() != nil {
		return r.Error()
	}
	if !r.configured {
		r.SetError(ErrNotConfigured)
		return r.Error()
	}
	r.setPayloadLength(len(frame))
	r.setMode(ModeTx | ModulationOOK)
	queued := r.writeFIFO(frame)
	r.waitIRQ(IrqFifoEmpty, true, airTime(queued)+defaultTimeout)
	if r.Error() != nil {
		r.configured = false
		return r.Error()
	}
	r.stats.Bytes.Sent += len(frame)
	r.stats.Packets.Sent++
	return nil
}

// writeFIFO fills the FIFO, then tops it up each time it drains
// below the threshold. It returns the number of bytes that may still
// be queued after the last burst.
func (r *Radio) writeFIFO(data []byte) int {
	queued := 0
	n := fifoSize
	for len(data) != 0 && r.Error() == nil {
		if n > len(data) {
			n = len(data)
		}
		r.BeginBurst(RegFifo)
		r.BurstWrite(data[:n])
		r.EndBurst()
		queued += n
		data = data[n:]
		if len(data) == 0 {
			break
		}
		// FifoLevel clears once no more than fifoThreshold bytes remain.
		r.waitIRQ(IrqFifoLevel, false, airTime(queued-fifoThreshold)+defaultTimeout)
		queued = fifoThreshold
		n = fifoSize - fifoThreshold - 1
	}
	return queued
}

// waitIRQ polls RegIrqFlags2 until flag is in the wanted state
// or timeout has passed.
func (r *Radio) waitIRQ(flag byte, want bool, timeout time.Duration) {
	for r.Error() == nil {
		v := r.ReadRegister(RegIrqFlags2)
		if r.Error() != nil {
			return
		}
		if (v&flag != 0) == want {
			return
		}
		if timeout <= 0 {
			r.SetError(errors.Wrapf(ErrFIFOTimeout, "IRQ flags %02X", v))
			return
		}
		r.sleep(pollInterval)
		timeout -= pollInterval
	}
}
