// Package wire frames matrix scan snapshots for a byte link, so a
// keyboard half or a bare scanning MCU can stream its switch state to a
// peer or to a host monitor over UART.
package wire

// Frame layout: sync byte, row count, column count, the grid packed
// row-major one bit per cell (LSB first, spare bits zero), and a CRC16
// of everything after the sync byte.
const (
	Sync = 0x7E

	HeaderSize  = 3 // sync + rows + cols
	TrailerSize = 2 // CRC16, big-endian

	// MaxDimension bounds each axis; a dimension is carried in one byte.
	MaxDimension = 255
)

// PayloadSize returns the number of packed grid bytes for a rows x cols
// snapshot.
func PayloadSize(rows, cols int) int {
	return (rows*cols + 7) / 8
}

// FrameSize returns the full frame length for a rows x cols snapshot.
func FrameSize(rows, cols int) int {
	return HeaderSize + PayloadSize(rows, cols) + TrailerSize
}
