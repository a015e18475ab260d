package matrix

import "fmt"

// FakePin is a scripted pin for tests. It implements both InputPin and
// OutputPin, reports Level from Get, records every Set, and returns Err
// from either operation when set.
type FakePin struct {
	// Level is the electrical level reported to Get. Set updates it.
	Level bool

	// Err, if non-nil, is returned by Get and Set.
	Err error

	// Sets records the values passed to Set, in order.
	Sets []bool

	// Gets counts Get calls.
	Gets int
}

// ReleasedPin returns a fake input reading high, i.e. a pull-up line
// with its switch open.
func ReleasedPin() *FakePin {
	return &FakePin{Level: true}
}

func (p *FakePin) Get() (bool, error) {
	if p.Err != nil {
		return false, p.Err
	}
	p.Gets++
	return p.Level, nil
}

func (p *FakePin) Set(high bool) error {
	if p.Err != nil {
		return p.Err
	}
	p.Sets = append(p.Sets, high)
	p.Level = high
	return nil
}

// FakeDelayer records the tick count of every Delay call.
type FakeDelayer struct {
	Ticks []uint32
}

func (d *FakeDelayer) Delay(ticks uint32) {
	d.Ticks = append(d.Ticks, ticks)
}

// Crosspoint emulates the electrical behavior of a diode matrix for
// tests. Row outputs and column inputs are wired through a settable
// pressed-key set: a column reads low only while some pressed key in
// that column has its row driven low. Every pin operation and delay is
// appended to Log so tests can assert scan ordering.
type Crosspoint struct {
	rows    []*crossRow
	cols    []*crossCol
	pressed map[[2]int]bool

	// Log records pin and delay activity as "row 1 low", "row 1 high",
	// "read col 0", "delay".
	Log []string

	// RowErr / ColErr, when non-nil, are injected into the named row
	// output or column input.
	RowErr map[int]error
	ColErr map[int]error
}

// NewCrosspoint builds a harness with the given dimensions. All rows
// start high (idle) and no keys are pressed.
func NewCrosspoint(rows, cols int) *Crosspoint {
	x := &Crosspoint{
		pressed: make(map[[2]int]bool),
		RowErr:  make(map[int]error),
		ColErr:  make(map[int]error),
	}
	for i := 0; i < rows; i++ {
		x.rows = append(x.rows, &crossRow{x: x, index: i, level: true})
	}
	for i := 0; i < cols; i++ {
		x.cols = append(x.cols, &crossCol{x: x, index: i})
	}
	return x
}

// Press closes the switch at (row, col).
func (x *Crosspoint) Press(row, col int) {
	x.pressed[[2]int{row, col}] = true
}

// Release opens the switch at (row, col).
func (x *Crosspoint) Release(row, col int) {
	delete(x.pressed, [2]int{row, col})
}

// RowPins returns the row outputs for NewMatrix.
func (x *Crosspoint) RowPins() []OutputPin {
	pins := make([]OutputPin, len(x.rows))
	for i, r := range x.rows {
		pins[i] = r
	}
	return pins
}

// ColPins returns the column inputs for NewMatrix.
func (x *Crosspoint) ColPins() []InputPin {
	pins := make([]InputPin, len(x.cols))
	for i, c := range x.cols {
		pins[i] = c
	}
	return pins
}

// Delayer returns a Delayer that logs into the harness.
func (x *Crosspoint) Delayer() Delayer {
	return &crossDelay{x: x}
}

// RowLevel reports the current driven level of a row output.
func (x *Crosspoint) RowLevel(row int) bool {
	return x.rows[row].level
}

type crossRow struct {
	x     *Crosspoint
	index int
	level bool
}

func (r *crossRow) Set(high bool) error {
	if err := r.x.RowErr[r.index]; err != nil {
		return err
	}
	r.level = high
	if high {
		r.x.Log = append(r.x.Log, fmt.Sprintf("row %d high", r.index))
	} else {
		r.x.Log = append(r.x.Log, fmt.Sprintf("row %d low", r.index))
	}
	return nil
}

type crossCol struct {
	x     *Crosspoint
	index int
}

func (c *crossCol) Get() (bool, error) {
	if err := c.x.ColErr[c.index]; err != nil {
		return false, err
	}
	c.x.Log = append(c.x.Log, fmt.Sprintf("read col %d", c.index))
	for key := range c.x.pressed {
		if key[1] == c.index && !c.x.rows[key[0]].level {
			return false, nil // pulled low through the diode
		}
	}
	return true, nil
}

type crossDelay struct {
	x *Crosspoint
}

func (d *crossDelay) Delay(uint32) {
	d.x.Log = append(d.x.Log, "delay")
}
