package maze

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of 0/1
// values. It deep-copies the input so later mutation of values has no effect.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBadCell (wrapped with
// the offending coordinates) for any value other than 0 or 1.
// Complexity: O(R×C) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		for c, v := range values[r] {
			switch Cell(v) {
			case Open, Wall:
				cells[r][c] = Cell(v)
			default:
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrBadCell, v, r, c)
			}
		}
	}

	return &Grid{Rows: rows, Cols: cols, cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// IsOpen reports whether p is in bounds and not a wall.
func (g *Grid) IsOpen(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Open
}

// At returns the cell state at p. p must be in bounds.
func (g *Grid) At(p Position) Cell {
	return g.cells[p.Row][p.Col]
}

// Validate checks that p can hold the ball: in bounds and open.
func (g *Grid) Validate(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, p, g.Rows, g.Cols)
	}
	if g.cells[p.Row][p.Col] != Open {
		return fmt.Errorf("%w: %v", ErrWallCell, p)
	}

	return nil
}

// Size returns the number of cells, Rows×Cols.
func (g *Grid) Size() int {
	return g.Rows * g.Cols
}

// Index maps p to a row-major index: Row*Cols + Col.
func (g *Grid) Index(p Position) int {
	return p.Row*g.Cols + p.Col
}

// Position converts a row-major index back to a Position.
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Values returns a fresh [][]int copy of the grid contents.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.Rows)
	for r := range out {
		out[r] = make([]int, g.Cols)
		for c, v := range g.cells[r] {
			out[r][c] = int(v)
		}
	}

	return out
}
