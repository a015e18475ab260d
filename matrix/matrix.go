// Package matrix scans keyboard switch matrices over abstract GPIO
// capabilities. It supports the classic diode matrix (rows driven,
// columns sensed) and direct per-pin wiring, and is portable across
// hardware platforms: anything that can implement InputPin, OutputPin
// and Delayer can back a matrix. Platform adapters live in the pins
// package.
package matrix

import "errors"

var (
	// ErrNoDelayer is returned by NewMatrix when no delay primitive is
	// supplied; the scan cannot honor its settle window without one.
	ErrNoDelayer = errors.New("matrix: delayer must not be nil")

	// ErrNilPin is returned when a column or row slot holds no pin.
	ErrNilPin = errors.New("matrix: pin must not be nil")

	// ErrRagged is returned when the rows of a pin grid have unequal
	// lengths.
	ErrRagged = errors.New("matrix: pin grid rows have unequal lengths")
)

// Matrix scans switches wired at row/column intersections through
// isolation diodes. Rows are outputs held high when idle; columns are
// pull-up inputs that read low only while their key is pressed and its
// row is driven low.
//
// The matrix owns its pins: nothing else may read or drive them while
// the matrix lives, and no two matrices may share a pin. Dimensions are
// fixed at construction.
type Matrix struct {
	cols   []InputPin
	rows   []OutputPin
	delay  Delayer
	settle uint32 // settle window in microseconds
}

// NewMatrix takes ownership of the column and row pins and immediately
// drives every row to its idle (high) level. If any row fails to
// assert, the pin error is returned and no matrix is; a partially
// initialized matrix is never handed out.
func NewMatrix(cols []InputPin, rows []OutputPin, d Delayer) (*Matrix, error) {
	if d == nil {
		return nil, ErrNoDelayer
	}
	for _, c := range cols {
		if c == nil {
			return nil, ErrNilPin
		}
	}
	for _, r := range rows {
		if r == nil {
			return nil, ErrNilPin
		}
	}
	m := &Matrix{cols: cols, rows: rows, delay: d, settle: DefaultSettleMicros}
	for _, r := range m.rows {
		if err := r.Set(true); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// SetSettleTime overrides the settle window, in microseconds.
func (m *Matrix) SetSettleTime(us uint32) {
	m.settle = us
}

// Rows returns the number of rows in the matrix.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns in the matrix.
func (m *Matrix) Cols() int { return len(m.cols) }

// Get scans the matrix once and returns a fresh rows x cols grid of
// press states. Each row in order is driven low, the settle window is
// waited out so the level change propagates through diode and wiring
// capacitance, every column is sampled (low means pressed), and the row
// is driven high again. Only one row is ever active at a time; columns
// are shared, so overlapping rows would be indistinguishable.
//
// The first failing pin operation aborts the scan and its error is
// returned as-is with no partial grid. On such a failure the row that
// was being scanned may be left driven low; callers that care must
// recover by rescanning or re-creating the matrix.
func (m *Matrix) Get() ([][]bool, error) {
	keys := newGrid(len(m.rows), len(m.cols))
	if len(m.rows) == 0 || len(m.cols) == 0 {
		// Nothing to drive or nothing to sample.
		return keys, nil
	}
	for ri, row := range m.rows {
		if err := row.Set(false); err != nil {
			return nil, err
		}
		DelayMicroseconds(m.delay, m.settle)
		for ci, col := range m.cols {
			high, err := col.Get()
			if err != nil {
				return nil, err
			}
			if !high {
				keys[ri][ci] = true
			}
		}
		if err := row.Set(true); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func newGrid(rows, cols int) [][]bool {
	g := make([][]bool, rows)
	for i := range g {
		g[i] = make([]bool, cols)
	}
	return g
}
