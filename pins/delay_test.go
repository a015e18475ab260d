package pins

import "testing"

func TestFuncDelayerForwards(t *testing.T) {
	var got []uint32
	d := FuncDelayer(func(ticks uint32) {
		got = append(got, ticks)
	})

	d.Delay(12)
	d.Delay(7)

	if len(got) != 2 || got[0] != 12 || got[1] != 7 {
		t.Errorf("forwarded ticks %v, want [12 7]", got)
	}
}

func TestSpinDelayerReturns(t *testing.T) {
	// Not a timing test; just proves the loop terminates and runs for
	// the requested tick count, including the zero default.
	SpinDelayer{}.Delay(100)
	SpinDelayer{LoopsPerTick: 3}.Delay(100)
}
