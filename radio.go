package fht7901

import (
	"log"
	"math"
	"time"

	"github.com/pkg/errors"
)

// SX1276 hardware-related constants.
const (
	FXOSC = 32000000 // Crystal frequency in Hz

	frfShift = 19 // FSTEP = FXOSC / 2^19, about 61.035 Hz

	minFrequency = 137000000
	maxFrequency = 1020000000

	MinPower = 5  // dBm
	MaxPower = 23 // dBm, with the PA DAC enabled

	paDacThreshold = 20
)

// FHT-7901 over-the-air parameters.
const (
	// DefaultFrequency is the carrier used by the FHT-7901 remote control, in Hertz.
	DefaultFrequency = 433790000

	// Bitrate is the OOK chip rate, in chips per second.
	Bitrate = 6666.7

	DefaultPower = MinPower
)

// Init resets the radio and programs it for fixed-length OOK packet
// transmission at the given frequency (Hz) and power (dBm).
// Any previous error is cleared; on failure the radio stays unconfigured.
func (r *Radio) Init(frequency uint32, power int) {
	r.err = nil
	r.configured = false
	r.payloadLength = -1
	r.mode = modeUnknown
	r.Reset()
	r.setMode(ModeSleep)
	r.SetBitrate(Bitrate)
	r.SetFrequency(frequency)
	r.SetTxPower(power)
	r.setMode(ModeStandby)
	// This protocol uses no preamble and no sync word;
	// packets are delimited only by the payload length.
	r.WriteRegister(RegPreambleMsb, 0)
	r.WriteRegister(RegPreambleLsb, 0)
	r.WriteRegister(RegSyncConfig, 0x00)
	r.WriteRegister(RegPacketConfig1, 0x00)
	r.setPayloadLength(r.encoding.FrameLen())
	r.WriteRegister(RegFifoThresh, TxStartFifoNotEmpty|fifoThreshold)
	r.WriteRegister(RegPaRamp, OokFilterBR)
	if r.Error() != nil {
		return
	}
	r.configured = true
	if verbose {
		log.Printf("[DEBUG] configured for %d Hz, %d dBm", frequency, power)
	}
}

// Configured reports whether Init has completed successfully.
func (r *Radio) Configured() bool {
	return r.configured && r.Error() == nil
}

// Mode returns the last operating mode written to the chip.
func (r *Radio) Mode() Mode {
	return r.mode
}

// Sleep puts the chip in sleep mode, where the bitrate and frequency
// may be changed. The next Send returns to transmit mode.
func (r *Radio) Sleep() {
	r.setMode(ModeSleep)
}

// Standby puts the chip in standby mode.
func (r *Radio) Standby() {
	r.setMode(ModeStandby)
}

func (r *Radio) setMode(mode Mode) {
	if r.Error() != nil || r.mode == mode {
		return
	}
	r.WriteRegister(RegOpMode, byte(mode))
	if r.Error() == nil {
		r.mode = mode
	}
}

func (r *Radio) requireSleep(op string) bool {
	if r.Error() != nil {
		return false
	}
	if r.mode != ModeSleep {
		r.SetError(errors.Wrapf(ErrWrongMode, "%s in %v mode", op, r.mode))
		return false
	}
	return true
}

// Version returns the chip's silicon revision.
func (r *Radio) Version() byte {
	return r.ReadRegister(RegVersion)
}

// SetBitrate programs the bit-rate divisor for the given rate in bits per second.
// The chip must be in sleep mode.
func (r *Radio) SetBitrate(rate float64) {
	if !r.requireSleep("set bitrate") {
		return
	}
	d := math.Round(FXOSC / rate)
	if rate <= 0 || d < 1 || d > math.MaxUint16 {
		r.SetError(invalidParameter("bitrate %g", rate))
		return
	}
	v := marshalUint16(uint16(d))
	r.WriteRegister(RegBitrateMsb, v[0])
	r.WriteRegister(RegBitrateLsb, v[1])
}

func frequencyWord(freq uint32) uint32 {
	return uint32((uint64(freq)<<frfShift + FXOSC/2) / FXOSC)
}

// Frequency returns the radio's current frequency, in Hertz.
func (r *Radio) Frequency() uint32 {
	f := []byte{
		r.ReadRegister(RegFrfMsb),
		r.ReadRegister(RegFrfMid),
		r.ReadRegister(RegFrfLsb),
	}
	return uint32((uint64(unmarshalUint24(f))*FXOSC + 1<<(frfShift-1)) >> frfShift)
}

// SetFrequency sets the radio to the given frequency, in Hertz.
// The chip must be in sleep mode.
func (r *Radio) SetFrequency(freq uint32) {
	if !r.requireSleep("set frequency") {
		return
	}
	if freq < minFrequency || freq > maxFrequency {
		r.SetError(invalidParameter("frequency %d Hz", freq))
		return
	}
	v := marshalUint24(frequencyWord(freq))
	r.WriteRegister(RegFrfMsb, v[0])
	r.WriteRegister(RegFrfMid, v[1])
	r.WriteRegister(RegFrfLsb, v[2])
}

// SetTxPower sets the output power on the PA_BOOST pin, in dBm.
// Values outside [MinPower, MaxPower] are clamped.
// Above 20 dBm the high-power DAC is enabled.
func (r *Radio) SetTxPower(power int) {
	if power > MaxPower {
		power = MaxPower
	}
	if power < MinPower {
		power = MinPower
	}
	if power > paDacThreshold {
		r.WriteRegister(RegPaDac, PaDacEnable)
		power -= 3
	} else {
		r.WriteRegister(RegPaDac, PaDacDisable)
	}
	r.WriteRegister(RegPaConfig, PaSelect|byte(power-MinPower))
}

// setPayloadLength programs the 11-bit payload length: bits 10-8 share
// RegPacketConfig2 with the packet-mode bit, bits 7-0 are RegPayloadLength.
// Callers check n against MaxFrameLen.
func (r *Radio) setPayloadLength(n int) {
	if r.Error() != nil || r.payloadLength == n {
		return
	}
	if r.payloadLength < 0 || r.payloadLength>>8 != n>>8 {
		r.WriteRegister(RegPacketConfig2, PacketModeOn|byte(n>>8))
	}
	r.WriteRegister(RegPayloadLength, byte(n))
	if r.Error() == nil {
		r.payloadLength = n
	}
}

// airTime returns how long the chip takes to send n bytes.
func airTime(n int) time.Duration {
	return time.Duration(float64(n*8) / Bitrate * float64(time.Second))
}
