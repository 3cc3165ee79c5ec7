package domain

import "encoding/json"

// MaxCellValue is the upper bound of the closed cell value domain [0,MaxCellValue].
// ARC puzzles use the same ten-value domain natively.
const MaxCellValue = 9

// CellValues is the size of the cell value domain.
const CellValues = MaxCellValue + 1

// Grid is a rectangular 2D array of cell values in [0,9]. A Grid is owned by
// whichever component currently displays or edits it; every mutating method
// returns a fresh Grid and leaves the receiver untouched, so grids are never
// silently aliased between components.
type Grid struct {
	cells [][]int
}

// NewGrid builds a Grid from raw rows, deep-copying the input.
// Returns ErrDimension for empty input, ErrNonRectangular for ragged rows,
// and ErrCellValue for any value outside [0,9].
func NewGrid(rows [][]int) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, ErrDimension
	}
	w := len(rows[0])
	cells := make([][]int, len(rows))
	for r, row := range rows {
		if len(row) != w {
			return Grid{}, ErrNonRectangular
		}
		cells[r] = make([]int, w)
		for c, v := range row {
			if v < 0 || v > MaxCellValue {
				return Grid{}, ErrCellValue
			}
			cells[r][c] = v
		}
	}
	return Grid{cells: cells}, nil
}

// NewEmptyGrid builds a width×height grid with every cell set to 0.
// Returns ErrDimension if either dimension is not positive; there is no
// zero-size empty-grid sentinel.
func NewEmptyGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, ErrDimension
	}
	cells := make([][]int, height)
	for r := range cells {
		cells[r] = make([]int, width)
	}
	return Grid{cells: cells}, nil
}

// Width reports the number of columns. Zero for the zero Grid.
func (g Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Height reports the number of rows.
func (g Grid) Height() int { return len(g.cells) }

// At returns the value at (row, col), or ErrOutOfBounds.
func (g Grid) At(row, col int) (int, error) {
	if row < 0 || row >= g.Height() || col < 0 || col >= g.Width() {
		return 0, ErrOutOfBounds
	}
	return g.cells[row][col], nil
}

// Copy returns a deep structural copy sharing no mutable storage with g.
func (g Grid) Copy() Grid {
	cells := make([][]int, len(g.cells))
	for r, row := range g.cells {
		cells[r] = make([]int, len(row))
		copy(cells[r], row)
	}
	return Grid{cells: cells}
}

// SetCell returns a copy of g with (row, col) set to value.
func (g Grid) SetCell(row, col, value int) (Grid, error) {
	if row < 0 || row >= g.Height() || col < 0 || col >= g.Width() {
		return Grid{}, ErrOutOfBounds
	}
	if value < 0 || value > MaxCellValue {
		return Grid{}, ErrCellValue
	}
	out := g.Copy()
	out.cells[row][col] = value
	return out, nil
}

// CycleCell returns a copy of g with (row, col) advanced to (value+1) mod 10.
func (g Grid) CycleCell(row, col int) (Grid, error) {
	v, err := g.At(row, col)
	if err != nil {
		return Grid{}, err
	}
	return g.SetCell(row, col, (v+1)%CellValues)
}

// Fill returns a copy of g with every cell set to value.
func (g Grid) Fill(value int) (Grid, error) {
	if value < 0 || value > MaxCellValue {
		return Grid{}, ErrCellValue
	}
	out := g.Copy()
	for r := range out.cells {
		for c := range out.cells[r] {
			out.cells[r][c] = value
		}
	}
	return out, nil
}

// Rows returns a deep copy of the cell rows.
func (g Grid) Rows() [][]int { return g.Copy().cells }

// Equal reports whether two grids have identical dimensions and values.
func (g Grid) Equal(other Grid) bool {
	if g.Height() != other.Height() || g.Width() != other.Width() {
		return false
	}
	for r, row := range g.cells {
		for c, v := range row {
			if other.cells[r][c] != v {
				return false
			}
		}
	}
	return true
}

// MarshalJSON encodes the grid as its raw rows, matching the ARC content
// format ([[0,1],[2,3]]).
func (g Grid) MarshalJSON() ([]byte, error) {
	if g.cells == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(g.cells)
}

// UnmarshalJSON decodes raw rows and validates them, so any Grid obtained
// from a network or file payload already holds the rectangularity and value
// range invariants.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	parsed, err := NewGrid(rows)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
