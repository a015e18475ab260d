//go:build linux && !tinygo

package pins

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// CdevInput wraps a Linux GPIO character-device line as a matrix input.
type CdevInput struct {
	Line *gpiocdev.Line
}

// RequestColumn requests the line at offset as a pull-up input.
// The caller owns the returned line and closes it when done.
func RequestColumn(chip *gpiocdev.Chip, offset int) (CdevInput, error) {
	line, err := chip.RequestLine(offset, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		return CdevInput{}, fmt.Errorf("request column line %d: %w", offset, err)
	}
	return CdevInput{Line: line}, nil
}

func (p CdevInput) Get() (bool, error) {
	v, err := p.Line.Value()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// CdevOutput wraps a Linux GPIO character-device line as a matrix
// output.
type CdevOutput struct {
	Line *gpiocdev.Line
}

// RequestRow requests the line at offset as an output driven high
// (idle). The caller owns the returned line and closes it when done.
func RequestRow(chip *gpiocdev.Chip, offset int) (CdevOutput, error) {
	line, err := chip.RequestLine(offset, gpiocdev.AsOutput(1))
	if err != nil {
		return CdevOutput{}, fmt.Errorf("request row line %d: %w", offset, err)
	}
	return CdevOutput{Line: line}, nil
}

func (p CdevOutput) Set(high bool) error {
	v := 0
	if high {
		v = 1
	}
	return p.Line.SetValue(v)
}
