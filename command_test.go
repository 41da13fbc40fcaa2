package fht7901

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseDevice(t *testing.T) {
	cases := []struct {
		s   string
		dev Device
		ok  bool
	}{
		{"A", DeviceA, true},
		{"c", DeviceC, true},
		{"E", DeviceE, true},
		{"F", 0, false},
		{"", 0, false},
		{"AB", 0, false},
		{"0", 0, false},
	}
	for _, c := range cases {
		d, err := ParseDevice(c.s)
		if !c.ok {
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("ParseDevice(%q) error %v, want %v", c.s, err, ErrInvalidParameter)
			}
			continue
		}
		if err != nil || d != c.dev {
			t.Errorf("ParseDevice(%q) == %v, %v, want %v", c.s, d, err, c.dev)
		}
	}
}

func TestParseAction(t *testing.T) {
	cases := []struct {
		s   string
		act Action
		ok  bool
	}{
		{"on", On, true},
		{"OFF", Off, true},
		{"toggle", 0, false},
	}
	for _, c := range cases {
		a, err := ParseAction(c.s)
		if c.ok != (err == nil) || (c.ok && a != c.act) {
			t.Errorf("ParseAction(%q) == %v, %v", c.s, a, err)
		}
	}
}

func TestParseTarget(t *testing.T) {
	cases := []struct {
		s    string
		addr Address
		dev  Device
		ok   bool
	}{
		{"31A", 31, DeviceA, true},
		{"31/A", 31, DeviceA, true},
		{"0e", 0, DeviceE, true},
		{" 7/C ", 7, DeviceC, true},
		{"32A", 0, 0, false},
		{"A", 0, 0, false},
		{"/A", 0, 0, false},
		{"31", 0, 0, false},
		{"x1B", 0, 0, false},
	}
	for _, c := range cases {
		a, d, err := ParseTarget(c.s)
		if !c.ok {
			if err == nil {
				t.Errorf("ParseTarget(%q) == %d, %v, want error", c.s, a, d)
			}
			continue
		}
		if err != nil || a != c.addr || d != c.dev {
			t.Errorf("ParseTarget(%q) == %d, %v, %v, want %d, %v", c.s, a, d, err, c.addr, c.dev)
		}
	}
}

func TestCommandString(t *testing.T) {
	c := Command{Address: 31, Device: DeviceB, Action: Off}
	if s := c.String(); s != "31B off" {
		t.Errorf("String() == %q, want %q", s, "31B off")
	}
}
