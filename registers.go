package fht7901

import (
	"fmt"
)

// SX1276 FSK/OOK register map.
const (
	RegFifo          = 0x00
	RegOpMode        = 0x01
	RegBitrateMsb    = 0x02
	RegBitrateLsb    = 0x03
	RegFrfMsb        = 0x06
	RegFrfMid        = 0x07
	RegFrfLsb        = 0x08
	RegPaConfig      = 0x09
	RegPaRamp        = 0x0A
	RegPreambleMsb   = 0x25
	RegPreambleLsb   = 0x26
	RegSyncConfig    = 0x27
	RegPacketConfig1 = 0x30
	RegPacketConfig2 = 0x31
	RegPayloadLength = 0x32
	RegFifoThresh    = 0x35
	RegIrqFlags2     = 0x3F
	RegVersion       = 0x42
	RegPaDac         = 0x4D

	spiWriteMask = 0x80
)

// Register values.
const (
	PaSelect     = 0x80 // PA_BOOST output pin
	PaDacDisable = 0x04
	PaDacEnable  = 0x07 // +20 dBm on PA_BOOST

	OokFilterBR = 0x20 // cutoff = bitrate

	// RegPacketConfig2: packet mode, no io-homecontrol compatibility.
	// Bits 2-0 hold bits 10-8 of the payload length.
	PacketModeOn = 0x40

	TxStartFifoNotEmpty = 0x80 // RegFifoThresh

	IrqFifoEmpty = 0x40
	IrqFifoLevel = 0x20

	ChipVersion = 0x12
)

// Mode is the value of the RegOpMode register.
type Mode byte

const (
	ModeSleep   Mode = 0x00
	ModeStandby Mode = 0x01
	ModeTx      Mode = 0x03

	ModulationOOK Mode = 0x20

	modeMask    Mode = 0x07
	modeUnknown Mode = 0xFF
)

func (m Mode) String() string {
	if m == modeUnknown {
		return "unknown"
	}
	var s string
	switch m & modeMask {
	case ModeSleep:
		s = "sleep"
	case ModeStandby:
		s = "standby"
	case ModeTx:
		s = "tx"
	default:
		s = fmt.Sprintf("mode %d", byte(m&modeMask))
	}
	if m&ModulationOOK != 0 {
		s += "+ook"
	}
	return s
}
