package wire

import "errors"

var (
	ErrGridRagged   = errors.New("wire: grid rows have unequal lengths")
	ErrGridTooLarge = errors.New("wire: grid dimension exceeds 255")
	ErrFrameShort   = errors.New("wire: frame shorter than declared size")
	ErrBadSync      = errors.New("wire: frame does not start with sync byte")
	ErrBadCRC       = errors.New("wire: frame CRC mismatch")
)

// Encode packs a scan snapshot into a frame. The grid must be
// rectangular and no axis may exceed MaxDimension; empty grids (zero
// rows or zero columns) encode to a payloadless frame.
func Encode(grid [][]bool) ([]byte, error) {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}
	for _, row := range grid {
		if len(row) != cols {
			return nil, ErrGridRagged
		}
	}
	if rows > MaxDimension || cols > MaxDimension {
		return nil, ErrGridTooLarge
	}

	frame := make([]byte, FrameSize(rows, cols))
	frame[0] = Sync
	frame[1] = byte(rows)
	frame[2] = byte(cols)

	payload := frame[HeaderSize : len(frame)-TrailerSize]
	for ri, row := range grid {
		for ci, pressed := range row {
			if pressed {
				bit := ri*cols + ci
				payload[bit/8] |= 1 << (bit % 8)
			}
		}
	}

	crc := CRC16(frame[1 : len(frame)-TrailerSize])
	frame[len(frame)-2] = byte(crc >> 8)
	frame[len(frame)-1] = byte(crc)
	return frame, nil
}

// Decode unpacks a frame back into a scan grid. The frame must carry
// exactly the bytes its header declares and a valid CRC.
func Decode(frame []byte) ([][]bool, error) {
	if len(frame) < HeaderSize+TrailerSize {
		return nil, ErrFrameShort
	}
	if frame[0] != Sync {
		return nil, ErrBadSync
	}
	rows := int(frame[1])
	cols := int(frame[2])
	if len(frame) != FrameSize(rows, cols) {
		return nil, ErrFrameShort
	}

	crc := uint16(frame[len(frame)-2])<<8 | uint16(frame[len(frame)-1])
	if CRC16(frame[1:len(frame)-TrailerSize]) != crc {
		return nil, ErrBadCRC
	}

	payload := frame[HeaderSize : len(frame)-TrailerSize]
	grid := make([][]bool, rows)
	for ri := range grid {
		grid[ri] = make([]bool, cols)
		for ci := range grid[ri] {
			bit := ri*cols + ci
			grid[ri][ci] = payload[bit/8]&(1<<(bit%8)) != 0
		}
	}
	return grid, nil
}
