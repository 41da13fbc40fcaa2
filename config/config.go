package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ecc1/fht7901"
)

// Config holds the radio settings and the named power sockets.
type Config struct {
	Frequency uint32            `yaml:"frequency"` // Hz
	Power     int               `yaml:"power"`     // dBm
	Compact   bool              `yaml:"compact"`   // send packets without the inter-packet gap
	SPIDevice string            `yaml:"spi_device"`
	ResetPin  int               `yaml:"reset_pin"`
	Sockets   map[string]Socket `yaml:"sockets"` // friendly name -> socket
}

// Socket identifies one power socket by its DIP switch settings.
type Socket struct {
	Address fht7901.Address `yaml:"address"`
	Device  string          `yaml:"device"`
}

// DefaultConfig returns the FHT-7901 defaults with no named sockets.
func DefaultConfig() *Config {
	return &Config{
		Frequency: fht7901.DefaultFrequency,
		Power:     fht7901.DefaultPower,
		Sockets:   make(map[string]Socket),
	}
}

// Load reads config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, path)
	}
	for name, s := range cfg.Sockets {
		if _, _, err := s.resolve(); err != nil {
			return nil, errors.Wrapf(err, "%s: socket %q", path, name)
		}
	}
	return cfg, nil
}

// Encoding returns the packet layout selected by the config.
func (c *Config) Encoding() fht7901.Encoding {
	if c.Compact {
		return fht7901.CompactEncoding
	}
	return fht7901.DefaultEncoding
}

// Lookup finds a socket by its friendly name (case-insensitive),
// or parses the name as a literal target such as "31A" or "31/A".
func (c *Config) Lookup(name string) (fht7901.Address, fht7901.Device, error) {
	nameLower := strings.ToLower(name)
	for n, s := range c.Sockets {
		if strings.ToLower(n) == nameLower {
			return s.resolve()
		}
	}
	return fht7901.ParseTarget(name)
}

func (s Socket) resolve() (fht7901.Address, fht7901.Device, error) {
	if !s.Address.Valid() {
		return 0, 0, errors.Wrapf(fht7901.ErrInvalidParameter, "address %d", s.Address)
	}
	d, err := fht7901.ParseDevice(s.Device)
	if err != nil {
		return 0, 0, err
	}
	return s.Address, d, nil
}
