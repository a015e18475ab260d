package matrix

// DirectMatrix scans switches wired one per pin, arranged logically as
// a rows x cols grid with no shared lines. A nil cell marks a grid
// position with no physical switch; it always reads released. All pins
// are pull-up inputs, so a pressed key reads low.
type DirectMatrix struct {
	pins [][]InputPin
}

// NewDirectMatrix takes ownership of the pin grid. There are no lines
// to drive, so no hardware touch happens here; the error return only
// reports a ragged grid.
func NewDirectMatrix(pins [][]InputPin) (*DirectMatrix, error) {
	if len(pins) > 0 {
		want := len(pins[0])
		for _, row := range pins {
			if len(row) != want {
				return nil, ErrRagged
			}
		}
	}
	return &DirectMatrix{pins: pins}, nil
}

// Rows returns the number of rows in the grid.
func (m *DirectMatrix) Rows() int { return len(m.pins) }

// Cols returns the number of columns in the grid.
func (m *DirectMatrix) Cols() int {
	if len(m.pins) == 0 {
		return 0
	}
	return len(m.pins[0])
}

// Get samples every present pin in row-major order and returns a fresh
// grid of press states; absent cells stay false. The pins are
// electrically independent so no settle delay is needed. The first
// failing read aborts the scan and its error is returned as-is; no
// later cell is sampled in that call.
func (m *DirectMatrix) Get() ([][]bool, error) {
	keys := newGrid(m.Rows(), m.Cols())
	for ri, row := range m.pins {
		for ci, pin := range row {
			if pin == nil {
				continue
			}
			high, err := pin.Get()
			if err != nil {
				return nil, err
			}
			if !high {
				keys[ri][ci] = true
			}
		}
	}
	return keys, nil
}
