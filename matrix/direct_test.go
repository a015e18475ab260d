package matrix

import (
	"errors"
	"testing"
)

func directGrid(rows, cols int) ([][]InputPin, [][]*FakePin) {
	pins := make([][]InputPin, rows)
	fakes := make([][]*FakePin, rows)
	for ri := range pins {
		pins[ri] = make([]InputPin, cols)
		fakes[ri] = make([]*FakePin, cols)
		for ci := range pins[ri] {
			f := ReleasedPin()
			pins[ri][ci] = f
			fakes[ri][ci] = f
		}
	}
	return pins, fakes
}

func TestDirectAllReleased(t *testing.T) {
	pins, _ := directGrid(2, 3)
	m, err := NewDirectMatrix(pins)
	if err != nil {
		t.Fatalf("NewDirectMatrix: %v", err)
	}

	keys, err := m.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	for ri, row := range keys {
		for ci, pressed := range row {
			if pressed {
				t.Errorf("cell (%d,%d) pressed with all switches open", ri, ci)
			}
		}
	}
}

func TestDirectPressed(t *testing.T) {
	pins, fakes := directGrid(2, 2)
	fakes[1][0].Level = false // pulled low through the closed switch
	m, err := NewDirectMatrix(pins)
	if err != nil {
		t.Fatalf("NewDirectMatrix: %v", err)
	}

	keys, err := m.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	for ri, row := range keys {
		for ci, pressed := range row {
			want := ri == 1 && ci == 0
			if pressed != want {
				t.Errorf("cell (%d,%d): pressed=%v, want %v", ri, ci, pressed, want)
			}
		}
	}
}

func TestDirectAbsentCellsNeverPress(t *testing.T) {
	pins, fakes := directGrid(2, 2)
	pins[0][1] = nil
	fakes[0][0].Level = false
	fakes[1][1].Level = false
	m, err := NewDirectMatrix(pins)
	if err != nil {
		t.Fatalf("NewDirectMatrix: %v", err)
	}

	for scan := 0; scan < 3; scan++ {
		keys, err := m.Get()
		if err != nil {
			t.Fatalf("scan %d: %v", scan, err)
		}
		if keys[0][1] {
			t.Fatalf("scan %d: absent cell reported pressed", scan)
		}
		if !keys[0][0] || !keys[1][1] {
			t.Fatalf("scan %d: present pressed cells not reported", scan)
		}
	}
}

func TestDirectErrorStopsRowMajor(t *testing.T) {
	boom := errors.New("line lost")
	pins, fakes := directGrid(2, 3)
	fakes[0][1].Err = boom
	m, err := NewDirectMatrix(pins)
	if err != nil {
		t.Fatalf("NewDirectMatrix: %v", err)
	}

	keys, err := m.Get()
	if !errors.Is(err, boom) {
		t.Fatalf("want %v, got %v", boom, err)
	}
	if keys != nil {
		t.Fatal("failed scan must not return a partial grid")
	}
	if fakes[0][0].Gets != 1 {
		t.Errorf("cell before the failure read %d times, want 1", fakes[0][0].Gets)
	}
	for _, cell := range [][2]int{{0, 2}, {1, 0}, {1, 1}, {1, 2}} {
		if n := fakes[cell[0]][cell[1]].Gets; n != 0 {
			t.Errorf("cell (%d,%d) read %d times after the failure, want 0", cell[0], cell[1], n)
		}
	}
}

func TestDirectIdempotent(t *testing.T) {
	pins, fakes := directGrid(2, 2)
	fakes[0][0].Level = false
	m, err := NewDirectMatrix(pins)
	if err != nil {
		t.Fatalf("NewDirectMatrix: %v", err)
	}

	first, err := m.Get()
	if err != nil {
		t.Fatalf("first Get: %v", err)
	}
	second, err := m.Get()
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	for ri := range first {
		for ci := range first[ri] {
			if first[ri][ci] != second[ri][ci] {
				t.Errorf("cell (%d,%d) changed between scans with static input", ri, ci)
			}
		}
	}
}

func TestDirectRagged(t *testing.T) {
	pins := [][]InputPin{
		{ReleasedPin(), ReleasedPin()},
		{ReleasedPin()},
	}
	if _, err := NewDirectMatrix(pins); !errors.Is(err, ErrRagged) {
		t.Fatalf("want ErrRagged, got %v", err)
	}
}

func TestDirectEmpty(t *testing.T) {
	m, err := NewDirectMatrix(nil)
	if err != nil {
		t.Fatalf("NewDirectMatrix: %v", err)
	}
	keys, err := m.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("want empty grid, got %d rows", len(keys))
	}
}

func TestDirectSingleCell(t *testing.T) {
	pins, fakes := directGrid(1, 1)
	m, err := NewDirectMatrix(pins)
	if err != nil {
		t.Fatalf("NewDirectMatrix: %v", err)
	}

	keys, err := m.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if keys[0][0] {
		t.Error("open 1x1 grid read pressed")
	}

	fakes[0][0].Level = false
	keys, err = m.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !keys[0][0] {
		t.Error("pressed 1x1 grid read released")
	}
}
