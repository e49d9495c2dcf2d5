package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/runnerback/stitchery/model"
)

var (
	// ErrNoGrid is returned when building a mapper for an undetected grid.
	ErrNoGrid = errors.New("grid: no grid detected")

	// ErrDegenerateCell is returned when a detected grid has a
	// non-positive cell size.
	ErrDegenerateCell = errors.New("grid: degenerate cell size")
)

// CellMapper converts page coordinates to grid cell addresses.
type CellMapper struct {
	grid model.Grid
}

// NewCellMapper builds a mapper for a detected grid. It fails with
// ErrNoGrid when the grid was not detected and ErrDegenerateCell when the
// cell size would make the division meaningless.
func NewCellMapper(g model.Grid) (*CellMapper, error) {
	if !g.Detected {
		return nil, ErrNoGrid
	}
	if g.Degenerate() {
		return nil, fmt.Errorf("%w: %.2f x %.2f", ErrDegenerateCell, g.CellWidth, g.CellHeight)
	}
	return &CellMapper{grid: g}, nil
}

// Grid returns the grid the mapper was built from.
func (m *CellMapper) Grid() model.Grid {
	return m.grid
}

// Cell maps a page point to its zero-based (row, column) address. Points
// outside the grid bounds report ok=false; they are never clamped to the
// nearest cell.
func (m *CellMapper) Cell(p model.Point) (row, col int, ok bool) {
	row = int(math.Floor((p.Y - m.grid.Bounds.Top) / m.grid.CellHeight))
	col = int(math.Floor((p.X - m.grid.Bounds.Left) / m.grid.CellWidth))
	if row < 0 || row >= m.grid.Rows || col < 0 || col >= m.grid.Columns {
		return 0, 0, false
	}
	return row, col, true
}

// CellBBox returns the page-coordinate bounding box of a cell. It is the
// inverse of [CellMapper.Cell] for points interior to the cell.
func (m *CellMapper) CellBBox(row, col int) model.BBox {
	x0 := m.grid.Bounds.Left + float64(col)*m.grid.CellWidth
	y0 := m.grid.Bounds.Top + float64(row)*m.grid.CellHeight
	return model.NewBBox(x0, y0, x0+m.grid.CellWidth, y0+m.grid.CellHeight)
}
