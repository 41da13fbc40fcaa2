package fht7901

// FHT-7901 packet layout, one symbol per protocol bit:
//
//	N4 1 N3 1 N2 1 N1 1 N0 1   network address, each bit followed by a 1
//	0                          separator
//	D0 0 D1 0 D2 0 D3 0 D4 0   device selector, 0 at the selected position
//	B0 0 B1 0                  on/off button
//
// The end-marker packet keeps the address and separator and replaces the
// remaining fields with a fixed tail.

const (
	addressSymbols = 10
	deviceSymbols  = 2 * numDevices
	actionSymbols  = 4

	// PacketSymbols is the number of data symbols in every packet.
	PacketSymbols = addressSymbols + 1 + deviceSymbols + actionSymbols

	// DefaultGap is the silence sent before each packet:
	// 28 chips, 4.2 ms at the FHT-7901 symbol rate.
	DefaultGap = 7

	// CommandRepeat and EndRepeat are the packet counts of one frame.
	// The remote control sends up to 30 packets per key press.
	CommandRepeat = 12
	EndRepeat     = 3

	// PacketLen and FrameLen are the sizes produced by DefaultEncoding.
	PacketLen = (DefaultGap + PacketSymbols + 1) / 2
	FrameLen  = PacketLen * (CommandRepeat + EndRepeat)

	// CompactPacketLen and CompactFrameLen are the sizes produced by
	// CompactEncoding: 100 chips padded with 4 silence chips.
	CompactPacketLen = (PacketSymbols + 1) / 2
	CompactFrameLen  = CompactPacketLen * (CommandRepeat + EndRepeat)

	// MaxFrameLen is the largest frame the 11-bit payload length can describe.
	MaxFrameLen = 0x7FF
)

var endMarkerTail = Symbols{
	One, Zero, One, Zero, One, Zero, One, Zero, One, One,
	One, One, One, Zero,
}

// Encoding describes how packets are laid out in a transmit frame.
type Encoding struct {
	Gap       int // silence symbols before each packet
	Repeat    int // command packets per frame
	EndRepeat int // end-marker packets per frame
}

var (
	// DefaultEncoding reproduces the remote control's packet spacing.
	DefaultEncoding = Encoding{Gap: DefaultGap, Repeat: CommandRepeat, EndRepeat: EndRepeat}

	// CompactEncoding sends packets back to back with no gap.
	CompactEncoding = Encoding{Gap: 0, Repeat: CommandRepeat, EndRepeat: EndRepeat}
)

// Validate checks that e describes a non-empty frame.
func (e Encoding) Validate() error {
	if e.Gap < 0 || e.Repeat < 1 || e.EndRepeat < 0 {
		return invalidParameter("encoding %+v", e)
	}
	if n := e.FrameLen(); n > MaxFrameLen {
		return invalidParameter("encoding %+v: %d-byte frame exceeds %d", e, n, MaxFrameLen)
	}
	return nil
}

// PacketLen returns the number of bytes in one packet.
func (e Encoding) PacketLen() int {
	return (e.Gap + PacketSymbols + 1) / 2
}

// FrameLen returns the number of bytes in one frame.
func (e Encoding) FrameLen() int {
	return e.PacketLen() * (e.Repeat + e.EndRepeat)
}

// Packets returns the number of packets in one frame.
func (e Encoding) Packets() int {
	return e.Repeat + e.EndRepeat
}

// AddressSymbols returns the address field, most significant bit first.
func AddressSymbols(a Address) Symbols {
	s := make(Symbols, 0, addressSymbols)
	for i := 4; i >= 0; i-- {
		s = append(s, bitSymbol(a>>uint(i)&1 != 0), One)
	}
	return s
}

// DeviceSymbols returns the device-selector field.
// Every position is "10" except the selected one, which is "00".
func DeviceSymbols(d Device) Symbols {
	s := make(Symbols, 0, deviceSymbols)
	for i := Device(0); i < numDevices; i++ {
		s = append(s, bitSymbol(i != d), Zero)
	}
	return s
}

// ActionSymbols returns the button field: "10 00" for On, "00 10" for Off.
func ActionSymbols(a Action) Symbols {
	return Symbols{bitSymbol(a == On), Zero, bitSymbol(a == Off), Zero}
}

func (e Encoding) header(a Address) Symbols {
	s := make(Symbols, e.Gap, e.Gap+PacketSymbols+1)
	for i := range s {
		s[i] = Silence
	}
	s = append(s, AddressSymbols(a)...)
	return append(s, Zero)
}

// CommandSymbols returns the symbols of one command packet, gap included.
func (e Encoding) CommandSymbols(c Command) (Symbols, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := e.header(c.Address)
	s = append(s, DeviceSymbols(c.Device)...)
	return append(s, ActionSymbols(c.Action)...), nil
}

// EndMarkerSymbols returns the symbols of the end-marker packet for a.
func (e Encoding) EndMarkerSymbols(a Address) (Symbols, error) {
	if !a.Valid() {
		return nil, invalidParameter("address %d out of range [0,%d]", a, MaxAddress)
	}
	return append(e.header(a), endMarkerTail...), nil
}

// CommandPacket returns the packed command packet for c.
func (e Encoding) CommandPacket(c Command) ([]byte, error) {
	s, err := e.CommandSymbols(c)
	if err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// EndMarkerPacket returns the packed end-marker packet for a.
func (e Encoding) EndMarkerPacket(a Address) ([]byte, error) {
	s, err := e.EndMarkerSymbols(a)
	if err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// Frame is the complete transmit buffer for one key press.
type Frame []byte

// Frame returns the command packet repeated e.Repeat times
// followed by the end-marker packet repeated e.EndRepeat times.
func (e Encoding) Frame(c Command) (Frame, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	cmd, err := e.CommandPacket(c)
	if err != nil {
		return nil, err
	}
	end, err := e.EndMarkerPacket(c.Address)
	if err != nil {
		return nil, err
	}
	f := make(Frame, 0, e.FrameLen())
	for i := 0; i < e.Repeat; i++ {
		f = append(f, cmd...)
	}
	for i := 0; i < e.EndRepeat; i++ {
		f = append(f, end...)
	}
	return f, nil
}

// BuildFrame returns the DefaultEncoding frame that switches
// device d at network address a on or off.
func BuildFrame(a Address, d Device, act Action) (Frame, error) {
	return DefaultEncoding.Frame(Command{Address: a, Device: d, Action: act})
}
