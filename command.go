package fht7901

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is the 5-bit network address set with the DIP switches
// on both the remote control and the power sockets.
type Address uint8

// MaxAddress is the largest valid network address.
const MaxAddress Address = 31

// Valid reports whether a fits in 5 bits.
func (a Address) Valid() bool {
	return a <= MaxAddress
}

// Device selects one of the sockets A through E on a network address.
type Device byte

const (
	DeviceA Device = iota
	DeviceB
	DeviceC
	DeviceD
	DeviceE

	numDevices = 5
)

// Valid reports whether d is one of A through E.
func (d Device) Valid() bool {
	return d < numDevices
}

func (d Device) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Device(%d)", byte(d))
	}
	return string(rune('A' + d))
}

// ParseDevice converts a letter A-E (either case) to a Device.
func ParseDevice(s string) (Device, error) {
	if len(s) == 1 {
		d := Device(strings.ToUpper(s)[0] - 'A')
		if d.Valid() {
			return d, nil
		}
	}
	return 0, invalidParameter("device %q", s)
}

// Action is the button pressed on the remote control.
type Action byte

const (
	Off Action = iota
	On
)

// Valid reports whether a is On or Off.
func (a Action) Valid() bool {
	return a == On || a == Off
}

func (a Action) String() string {
	switch a {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return fmt.Sprintf("Action(%d)", byte(a))
	}
}

// ParseAction converts "on" or "off" (either case) to an Action.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "on":
		return On, nil
	case "off":
		return Off, nil
	}
	return 0, invalidParameter("action %q", s)
}

// Command is one button press addressed to a single socket.
type Command struct {
	Address Address
	Device  Device
	Action  Action
}

// Validate returns an ErrInvalidParameter error if any field is out of range.
func (c Command) Validate() error {
	switch {
	case !c.Address.Valid():
		return invalidParameter("address %d out of range [0,%d]", c.Address, MaxAddress)
	case !c.Device.Valid():
		return invalidParameter("%v", c.Device)
	case !c.Action.Valid():
		return invalidParameter("%v", c.Action)
	}
	return nil
}

func (c Command) String() string {
	return fmt.Sprintf("%d%v %v", c.Address, c.Device, c.Action)
}

// ParseTarget parses a socket written as an address followed by a device
// letter, such as "31A" or "31/A".
func ParseTarget(s string) (Address, Device, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, 0, invalidParameter("target %q", s)
	}
	d, err := ParseDevice(s[len(s)-1:])
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.ParseUint(strings.TrimSuffix(s[:len(s)-1], "/"), 10, 8)
	if err != nil || !Address(n).Valid() {
		return 0, 0, invalidParameter("target %q", s)
	}
	return Address(n), d, nil
}
