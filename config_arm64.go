package fht7901

// Configuration for Raspberry Pi 3/4 in 64-bit mode with a Dragino LoRa hat on CE0.

const (
	spiDevice = "/dev/spidev0.0"
	customCS  = 0
	resetPin  = 17
)
