package wire

// Event is a single key state change between two scan snapshots.
type Event struct {
	Row     uint8
	Col     uint8
	Pressed bool
}

// Diff returns the key events that turn prev into next, in row-major
// order. The snapshots are expected to share a shape; cells outside
// prev count as released.
func Diff(prev, next [][]bool) []Event {
	var events []Event
	for ri, row := range next {
		for ci, pressed := range row {
			was := ri < len(prev) && ci < len(prev[ri]) && prev[ri][ci]
			if pressed != was {
				events = append(events, Event{Row: uint8(ri), Col: uint8(ci), Pressed: pressed})
			}
		}
	}
	return events
}
