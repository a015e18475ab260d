package matrix

// Reference clock for the busy-wait delay
const (
	TicksPerSecond      = 12000000 // 12MHz reference tick rate
	TicksPerMicrosecond = TicksPerSecond / 1000000

	// DefaultSettleMicros is the settle window between driving a row low
	// and sampling its columns. Empirically tuned against cross-key
	// interference; override with SetSettleTime if the wiring needs more
	// or less.
	DefaultSettleMicros = 10
)

// DelayMicroseconds busy-waits for us microseconds on d. The wait is
// issued as one Delay call per microsecond so the tick argument stays at
// TicksPerMicrosecond instead of us*TicksPerMicrosecond, which would
// overflow for large waits.
func DelayMicroseconds(d Delayer, us uint32) {
	for i := uint32(0); i < us; i++ {
		d.Delay(TicksPerMicrosecond)
	}
}
