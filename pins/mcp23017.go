package pins

import (
	"tinygo.org/x/drivers/mcp23017"
)

// ExpanderInput wraps an MCP23017 port-expander pin as a matrix input.
// Expander pins go over I2C, so reads are fallible and their errors
// surface through the scan unchanged.
type ExpanderInput struct {
	Pin mcp23017.Pin
}

// ExpanderColumn configures p as a pull-up input and returns it as a
// matrix column pin.
func ExpanderColumn(p mcp23017.Pin) (ExpanderInput, error) {
	if err := p.SetMode(mcp23017.Input | mcp23017.Pullup); err != nil {
		return ExpanderInput{}, err
	}
	return ExpanderInput{Pin: p}, nil
}

func (p ExpanderInput) Get() (bool, error) {
	return p.Pin.Get()
}

// ExpanderOutput wraps an MCP23017 port-expander pin as a matrix
// output.
type ExpanderOutput struct {
	Pin mcp23017.Pin
}

// ExpanderRow configures p as an output driven high (idle) and returns
// it as a matrix row pin.
func ExpanderRow(p mcp23017.Pin) (ExpanderOutput, error) {
	if err := p.SetMode(mcp23017.Output); err != nil {
		return ExpanderOutput{}, err
	}
	if err := p.Set(true); err != nil {
		return ExpanderOutput{}, err
	}
	return ExpanderOutput{Pin: p}, nil
}

func (p ExpanderOutput) Set(high bool) error {
	return p.Pin.Set(high)
}
