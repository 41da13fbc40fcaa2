// The fht7901 command switches an FHT-7901 power socket on or off
// by replaying the remote control's packets through an SX1276 radio.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/hashicorp/logutils"
	"github.com/pkg/errors"

	"github.com/ecc1/fht7901"
	"github.com/ecc1/fht7901/config"
)

var (
	configFile = flag.String("c", "", "YAML config `file` with radio settings and named sockets")
	frequency  = flag.Uint64("f", 0, "transmit frequency in Hz (default from config, 433790000)")
	power      = flag.Int("p", 0, "output power in dBm, clamped to [5, 23] (default from config, 5)")
	compact    = flag.Bool("compact", false, "send packets without the inter-packet gap")
	dryRun     = flag.Bool("n", false, "print the frame instead of transmitting it")
	isDebug    = flag.Bool("d", false, "emit debug log messages")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] socket on|off\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "socket is a name from the config file or an address and device such as 31A\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	minLogLevel := "INFO"
	if *isDebug {
		minLogLevel = "DEBUG"
	}
	log.SetOutput(&logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "ERROR"},
		MinLevel: logutils.LogLevel(minLogLevel),
		Writer:   os.Stderr,
	})
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	cfg := loadConfig()
	addr, dev, err := cfg.Lookup(flag.Arg(0))
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	act, err := fht7901.ParseAction(flag.Arg(1))
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	cmd := fht7901.Command{Address: addr, Device: dev, Action: act}
	enc := cfg.Encoding()
	if *dryRun {
		printFrame(enc, cmd)
		return
	}
	r := openRadio(cfg)
	defer r.Close()
	log.Printf("[DEBUG] initializing %s at %d Hz, %d dBm", r.Name(), cfg.Frequency, cfg.Power)
	r.Init(cfg.Frequency, cfg.Power)
	if r.Error() != nil {
		log.Fatalf("[ERROR] %v", r.Error())
	}
	if err := r.SetEncoding(enc); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	if err := r.SendCommand(cmd); err != nil {
		log.Fatalf("[ERROR] %v: %v", cmd, err)
	}
	stats := r.Statistics()
	log.Printf("[INFO] sent %v (%d bytes)", cmd, stats.Bytes.Sent)
}

func loadConfig() *config.Config {
	cfg := config.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
	}
	if *frequency != 0 {
		f, err := parseFrequency(*frequency)
		if err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
		cfg.Frequency = f
	}
	if *power != 0 {
		cfg.Power = *power
	}
	if *compact {
		cfg.Compact = true
	}
	return cfg
}

// parseFrequency narrows a command-line frequency to the width
// the radio uses; the radio checks the band itself.
func parseFrequency(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, errors.Errorf("frequency %d Hz out of range", v)
	}
	return uint32(v), nil
}

func openRadio(cfg *config.Config) *fht7901.Radio {
	var r *fht7901.Radio
	if cfg.SPIDevice != "" {
		r = fht7901.OpenDevice(cfg.SPIDevice, cfg.ResetPin)
	} else {
		r = fht7901.Open()
	}
	if r.Error() != nil {
		log.Fatalf("[ERROR] %v", r.Error())
	}
	return r
}

func printFrame(enc fht7901.Encoding, cmd fht7901.Command) {
	s, err := enc.CommandSymbols(cmd)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	end, _ := enc.EndMarkerSymbols(cmd.Address)
	frame, _ := enc.Frame(cmd)
	fmt.Printf("command:    %v x %d\n", s, enc.Repeat)
	fmt.Printf("end marker: %v x %d\n", end, enc.EndRepeat)
	for i := 0; i < len(frame); i += enc.PacketLen() {
		fmt.Printf("% X\n", frame[i:i+enc.PacketLen()])
	}
}
