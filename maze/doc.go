// Package maze treats a 2D obstacle grid as a "rolling maze": a ball placed
// on an open cell rolls in one of four axis directions and does not stop
// until the next cell is a wall or lies outside the grid.
//
// What:
//
//   - Grid wraps a rectangular [][]int of 0 (Open) / 1 (Wall) cells.
//   - Slide simulates one roll and reports where the ball rests and how many
//     unit cells it crossed.
//   - Moves and StopGraph expand the implicit graph whose vertices are
//     resting positions and whose edges are non-zero slides.
//   - CanStop answers the reachability question: can the ball come to rest
//     exactly on a destination cell?
//
// Why:
//
//   - Puzzle solving: ice floors, sliding-block levels, ricochet boards.
//   - Feeding package solver, which turns the stop graph into shortest
//     cumulative slide distances.
//
// Complexity:
//
//   - NewGrid:   O(R×C) time and memory (deep copy).
//   - Slide:     O(max(R,C)).
//   - StopGraph: O(R×C×max(R,C)), Memory: O(R×C).
//   - CanStop:   O(R×C×max(R,C)), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a cell holds a value other than Open or Wall.
//   - ErrOutOfBounds: a position lies outside the grid.
//   - ErrWallCell: a position lies on a wall.
package maze
