package grid

import (
	"errors"
	"testing"

	"github.com/runnerback/stitchery/model"
)

func testGrid() model.Grid {
	return model.Grid{
		Detected:   true,
		Rows:       5,
		Columns:    5,
		CellWidth:  10,
		CellHeight: 10,
		Bounds:     model.GridBounds{Top: 0, Bottom: 50, Left: 0, Right: 50},
		TotalCells: 25,
	}
}

func TestNewCellMapperUndetected(t *testing.T) {
	_, err := NewCellMapper(model.Grid{})
	if !errors.Is(err, ErrNoGrid) {
		t.Errorf("Expected ErrNoGrid, got %v", err)
	}
}

func TestNewCellMapperDegenerate(t *testing.T) {
	g := testGrid()
	g.CellHeight = 0

	_, err := NewCellMapper(g)
	if !errors.Is(err, ErrDegenerateCell) {
		t.Errorf("Expected ErrDegenerateCell, got %v", err)
	}
}

func TestCell(t *testing.T) {
	m, err := NewCellMapper(testGrid())
	if err != nil {
		t.Fatalf("NewCellMapper failed: %v", err)
	}

	tests := []struct {
		name     string
		p        model.Point
		row, col int
		ok       bool
	}{
		{"interior", model.Point{X: 25, Y: 35}, 3, 2, true},
		{"origin", model.Point{X: 0, Y: 0}, 0, 0, true},
		{"cell boundary", model.Point{X: 10, Y: 10}, 1, 1, true},
		{"last cell", model.Point{X: 49.9, Y: 49.9}, 4, 4, true},
		// The right and bottom edges belong to no cell
		{"right edge", model.Point{X: 50, Y: 25}, 0, 0, false},
		{"bottom edge", model.Point{X: 25, Y: 50}, 0, 0, false},
		{"left of grid", model.Point{X: -0.1, Y: 25}, 0, 0, false},
		{"above grid", model.Point{X: 25, Y: -5}, 0, 0, false},
		{"far outside", model.Point{X: 500, Y: 500}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := m.Cell(tt.p)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if row != tt.row || col != tt.col {
				t.Errorf("Expected cell (%d, %d), got (%d, %d)", tt.row, tt.col, row, col)
			}
		})
	}
}

func TestCellOffsetGrid(t *testing.T) {
	// Grid bounds away from the page origin
	g := testGrid()
	g.Bounds = model.GridBounds{Top: 100, Bottom: 150, Left: 60, Right: 110}

	m, err := NewCellMapper(g)
	if err != nil {
		t.Fatalf("NewCellMapper failed: %v", err)
	}

	row, col, ok := m.Cell(model.Point{X: 65, Y: 125})
	if !ok {
		t.Fatal("Expected point inside grid to map")
	}
	if row != 2 || col != 0 {
		t.Errorf("Expected cell (2, 0), got (%d, %d)", row, col)
	}

	if _, _, ok := m.Cell(model.Point{X: 30, Y: 125}); ok {
		t.Error("Expected point left of grid to be rejected")
	}
}

func TestCellBBox(t *testing.T) {
	m, err := NewCellMapper(testGrid())
	if err != nil {
		t.Fatalf("NewCellMapper failed: %v", err)
	}

	b := m.CellBBox(3, 2)
	want := model.NewBBox(20, 30, 30, 40)
	if b != want {
		t.Errorf("Expected %+v, got %+v", want, b)
	}

	// The cell center maps back to the same cell
	row, col, ok := m.Cell(b.Center())
	if !ok || row != 3 || col != 2 {
		t.Errorf("Expected center to map to (3, 2), got (%d, %d) ok=%v", row, col, ok)
	}
}

func TestMapperGrid(t *testing.T) {
	g := testGrid()
	m, err := NewCellMapper(g)
	if err != nil {
		t.Fatalf("NewCellMapper failed: %v", err)
	}
	if m.Grid() != g {
		t.Error("Expected mapper to return its grid")
	}
}
