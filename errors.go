package fht7901

import (
	"github.com/pkg/errors"
)

var (
	// ErrTransport is returned when an SPI transaction could not complete.
	// The chip's timing state is unknown afterwards, so Init must be repeated.
	ErrTransport = errors.New("transport failure")

	// ErrInvalidParameter is returned for out-of-range command or radio parameters.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotConfigured is returned when a frame is sent before Init has completed.
	ErrNotConfigured = errors.New("radio not configured")

	// ErrWrongMode is returned when a register group is written
	// while the chip is in the wrong operating mode.
	ErrWrongMode = errors.New("wrong operating mode")

	// ErrFIFOTimeout is returned when the FIFO does not drain in time.
	ErrFIFOTimeout = errors.New("FIFO timeout")
)

func transportError(err error, op string) error {
	return errors.Wrapf(ErrTransport, "%s: %v", op, err)
}

func invalidParameter(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
