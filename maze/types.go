// Package maze defines core types, directions, and sentinel errors
// for the rolling-maze grid model.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrBadCell indicates a cell value other than Open (0) or Wall (1).
	ErrBadCell = errors.New("maze: cell value must be 0 (open) or 1 (wall)")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrWallCell indicates a position that lies on a wall.
	ErrWallCell = errors.New("maze: position is a wall")
)

// Cell is the binary state of a grid cell.
type Cell int

const (
	// Open cells can be rolled over and rested on.
	Open Cell = 0
	// Wall cells stop the ball in front of them.
	Wall Cell = 1
)

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction selects one of the four axis-aligned roll directions.
type Direction int

const (
	// Down rolls toward increasing row.
	Down Direction = iota
	// Up rolls toward decreasing row.
	Up
	// Right rolls toward increasing column.
	Right
	// Left rolls toward decreasing column.
	Left
)

// Directions lists every direction in exploration order.
// Searches iterate in this order so tie-breaking is deterministic.
var Directions = [4]Direction{Down, Up, Right, Left}

var directionOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Valid reports whether d is one of Down, Up, Right or Left.
func (d Direction) Valid() bool {
	return d >= Down && d <= Left
}

// Offset returns the (dRow, dCol) unit step of d, or (0, 0) if d is not Valid.
func (d Direction) Offset() (dRow, dCol int) {
	if !d.Valid() {
		return 0, 0
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

// String returns the single-letter name of d: "d", "u", "r" or "l".
func (d Direction) String() string {
	switch d {
	case Down:
		return "d"
	case Up:
		return "u"
	case Right:
		return "r"
	case Left:
		return "l"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Move is one slide: the ball leaves From in direction Dir, crosses Length
// unit cells and rests on To. Length is always ≥ 1 for moves produced by
// Grid.Moves.
type Move struct {
	From   Position
	To     Position
	Dir    Direction
	Length int
}

// Grid is a rolling maze. Its cells cannot be changed after NewGrid.
// Rows and Cols report the dimensions and are read-only by convention:
// writing them desynchronizes bounds checks from cells[r][c].
type Grid struct {
	Rows, Cols int
	cells      [][]Cell
}
