// Package link is the host side of the snapshot stream: a serial port
// wrapper and a frame reader that recovers wire frames from the byte
// stream.
package link

import (
	"io"
)

// Port represents a serial port. The abstraction keeps the frame
// reader testable against in-memory streams.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (ignored for USB CDC)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration a scanning firmware typically
// runs its UART at.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
