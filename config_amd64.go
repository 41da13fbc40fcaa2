package fht7901

// Configuration for a PC with an RFM95 module on a CH341 USB-SPI adapter.
// The adapter's spidev driver handles chip select itself.

const (
	spiDevice = "/dev/spidev1.0"
	customCS  = 0
	resetPin  = 5
)
