package fht7901

// Configuration for Raspberry Pi Zero W with an RFM95 (SX1276) bonnet on CE1.

const (
	spiDevice = "/dev/spidev0.1"
	customCS  = 0
	resetPin  = 25
)
