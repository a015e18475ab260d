//go:build linux && !tinygo

package pins

import (
	"github.com/stianeikeland/go-rpio/v4"
)

// RPIOInput wraps a memory-mapped Raspberry Pi pin as a matrix input.
// rpio.Open must have been called first.
type RPIOInput struct {
	Pin rpio.Pin
}

// RPIOColumn configures p as a pull-up input column.
func RPIOColumn(p rpio.Pin) RPIOInput {
	p.Input()
	p.PullUp()
	return RPIOInput{Pin: p}
}

// Get reports the pin level. Memory-mapped reads cannot fail, so the
// error is always nil.
func (p RPIOInput) Get() (bool, error) {
	return p.Pin.Read() == rpio.High, nil
}

// RPIOOutput wraps a memory-mapped Raspberry Pi pin as a matrix output.
type RPIOOutput struct {
	Pin rpio.Pin
}

// RPIORow configures p as an output driven high (idle).
func RPIORow(p rpio.Pin) RPIOOutput {
	p.Output()
	p.High()
	return RPIOOutput{Pin: p}
}

func (p RPIOOutput) Set(high bool) error {
	if high {
		p.Pin.High()
	} else {
		p.Pin.Low()
	}
	return nil
}
