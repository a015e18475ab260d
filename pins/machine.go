//go:build tinygo

package pins

import (
	"machine"

	"github.com/ChrisChrisLoLo/keyberon/matrix"
)

// MachineInput wraps a TinyGo machine pin as a matrix input.
type MachineInput struct {
	Pin machine.Pin
}

// Column configures p as a pull-up input and returns it as a matrix
// column pin.
func Column(p machine.Pin) MachineInput {
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return MachineInput{Pin: p}
}

// Get reports the pin level. On-chip GPIO reads cannot fail, so the
// error is always nil.
func (p MachineInput) Get() (bool, error) {
	return p.Pin.Get(), nil
}

// MachineOutput wraps a TinyGo machine pin as a matrix output.
type MachineOutput struct {
	Pin machine.Pin
}

// Row configures p as a push-pull output driven high (idle) and returns
// it as a matrix row pin.
func Row(p machine.Pin) MachineOutput {
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.High()
	return MachineOutput{Pin: p}
}

// Set drives the pin level. On-chip GPIO writes cannot fail, so the
// error is always nil.
func (p MachineOutput) Set(high bool) error {
	p.Pin.Set(high)
	return nil
}

// Columns configures every pin as a pull-up input column.
func Columns(ps ...machine.Pin) []matrix.InputPin {
	cols := make([]matrix.InputPin, len(ps))
	for i, p := range ps {
		cols[i] = Column(p)
	}
	return cols
}

// Rows configures every pin as an idle-high output row.
func Rows(ps ...machine.Pin) []matrix.OutputPin {
	rows := make([]matrix.OutputPin, len(ps))
	for i, p := range ps {
		rows[i] = Row(p)
	}
	return rows
}
