package matrix

// InputPin is the read capability of a digital input line.
// Implementations report the current electrical level: true for high,
// false for low. Columns and direct-wired switches use pull-ups, so a
// pressed key reads low.
type InputPin interface {
	Get() (bool, error)
}

// OutputPin is the drive capability of a digital output line.
type OutputPin interface {
	Set(high bool) error
}

// Delayer is the platform's cycle-accurate busy-wait primitive.
// Delay blocks the caller for the given number of reference clock ticks
// (see TicksPerSecond).
type Delayer interface {
	Delay(ticks uint32)
}
