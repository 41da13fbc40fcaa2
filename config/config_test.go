package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/ecc1/fht7901"
)

func writeConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "fht7901.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
power: 17
compact: true
spi_device: /dev/spidev0.0
reset_pin: 22
sockets:
  Lamp:
    address: 31
    device: A
  heater:
    address: 4
    device: e
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Frequency != fht7901.DefaultFrequency {
		t.Errorf("Frequency == %d, want default %d", cfg.Frequency, fht7901.DefaultFrequency)
	}
	if cfg.Power != 17 || cfg.SPIDevice != "/dev/spidev0.0" || cfg.ResetPin != 22 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Encoding() != fht7901.CompactEncoding {
		t.Errorf("Encoding() == %+v, want compact", cfg.Encoding())
	}
	cases := []struct {
		name string
		addr fht7901.Address
		dev  fht7901.Device
	}{
		{"lamp", 31, fht7901.DeviceA},
		{"HEATER", 4, fht7901.DeviceE},
		{"12/C", 12, fht7901.DeviceC},
	}
	for _, c := range cases {
		a, d, err := cfg.Lookup(c.name)
		if err != nil || a != c.addr || d != c.dev {
			t.Errorf("Lookup(%q) == %d, %v, %v, want %d, %v", c.name, a, d, err, c.addr, c.dev)
		}
	}
	if _, _, err := cfg.Lookup("garage"); err == nil {
		t.Errorf("Lookup(%q) succeeded", "garage")
	}
}

func TestLoadInvalidSocket(t *testing.T) {
	cases := []string{
		"sockets:\n  lamp:\n    address: 40\n    device: A\n",
		"sockets:\n  lamp:\n    address: 3\n    device: G\n",
	}
	for _, text := range cases {
		_, err := Load(writeConfig(t, text))
		if !errors.Is(err, fht7901.ErrInvalidParameter) {
			t.Errorf("Load(%q) error %v, want %v", text, err, fht7901.ErrInvalidParameter)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("Load of missing file returned %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Frequency != 433790000 || cfg.Power != 5 {
		t.Errorf("DefaultConfig() == %+v", cfg)
	}
	if cfg.Encoding() != fht7901.DefaultEncoding {
		t.Errorf("default Encoding() == %+v", cfg.Encoding())
	}
}
