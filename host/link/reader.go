package link

import (
	"bytes"
	"io"

	"github.com/ChrisChrisLoLo/keyberon/wire"
)

// FrameReader recovers scan snapshots from a byte stream. Garbage
// between frames is skipped by scanning forward to the next sync byte;
// a frame whose CRC fails is treated as a false sync and the search
// resumes one byte later.
type FrameReader struct {
	r   io.Reader
	buf []byte
}

// NewFrameReader wraps r, typically an open Port.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: r}
}

// Next blocks until a complete, valid frame arrives and returns its
// grid. Read errors from the underlying stream are returned as-is once
// the buffered data holds no further frame.
func (fr *FrameReader) Next() ([][]bool, error) {
	for {
		if i := bytes.IndexByte(fr.buf, wire.Sync); i < 0 {
			fr.buf = fr.buf[:0]
		} else {
			fr.buf = fr.buf[i:]
		}

		if len(fr.buf) >= wire.HeaderSize {
			size := wire.FrameSize(int(fr.buf[1]), int(fr.buf[2]))
			if len(fr.buf) >= size {
				grid, err := wire.Decode(fr.buf[:size])
				if err != nil {
					// False sync byte; resume one byte later.
					fr.buf = fr.buf[1:]
					continue
				}
				fr.buf = fr.buf[size:]
				return grid, nil
			}
		}

		if err := fr.fill(); err != nil {
			return nil, err
		}
	}
}

func (fr *FrameReader) fill() error {
	chunk := make([]byte, 256)
	n, err := fr.r.Read(chunk)
	if n > 0 {
		fr.buf = append(fr.buf, chunk[:n]...)
		return nil
	}
	if err != nil {
		return err
	}
	return nil
}
