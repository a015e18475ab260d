package matrix

import "testing"

func TestDelayMicroseconds(t *testing.T) {
	testCases := []struct {
		us    uint32
		calls int
	}{
		{0, 0},
		{1, 1},
		{10, 10},
		{250, 250},
	}

	for _, tc := range testCases {
		d := &FakeDelayer{}
		DelayMicroseconds(d, tc.us)
		if len(d.Ticks) != tc.calls {
			t.Errorf("DelayMicroseconds(%d): %d Delay calls, want %d", tc.us, len(d.Ticks), tc.calls)
			continue
		}
		for i, ticks := range d.Ticks {
			if ticks != TicksPerMicrosecond {
				t.Errorf("DelayMicroseconds(%d): call %d waited %d ticks, want %d", tc.us, i, ticks, TicksPerMicrosecond)
			}
		}
	}
}

func TestTickRate(t *testing.T) {
	if TicksPerMicrosecond != 12 {
		t.Errorf("TicksPerMicrosecond = %d, want 12 at a 12MHz reference", TicksPerMicrosecond)
	}
}
