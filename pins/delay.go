package pins

import (
	"time"

	"github.com/ChrisChrisLoLo/keyberon/matrix"
)

// FuncDelayer adapts a platform delay primitive (for example a
// cycle-counted assembly delay) to matrix.Delayer.
type FuncDelayer func(ticks uint32)

func (f FuncDelayer) Delay(ticks uint32) {
	f(ticks)
}

// SleepDelayer backs the settle delay with time.Sleep for hosted
// targets, converting reference ticks to wall time. Sleep granularity
// on a general-purpose OS is far coarser than a tick; that only makes
// the settle window longer, never shorter.
type SleepDelayer struct{}

func (SleepDelayer) Delay(ticks uint32) {
	time.Sleep(time.Duration(ticks) * time.Second / matrix.TicksPerSecond)
}

var spinSink uint32

// SpinDelayer busy-waits on a counted loop for bare-metal targets with
// no usable cycle counter. LoopsPerTick must be calibrated against the
// target clock; zero behaves as one.
type SpinDelayer struct {
	LoopsPerTick uint32
}

func (d SpinDelayer) Delay(ticks uint32) {
	loops := d.LoopsPerTick
	if loops == 0 {
		loops = 1
	}
	for i := uint32(0); i < ticks; i++ {
		for j := uint32(0); j < loops; j++ {
			spinSink++
		}
	}
}
