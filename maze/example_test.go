// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/rollmaze/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Slide
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Moves shows every roll available from the top-right corner
// of a 5×5 maze. Up and Right are blocked by the boundary, so only two
// moves are produced.
func ExampleGrid_Moves() {
	g, _ := maze.NewGrid([][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0},
		{1, 1, 0, 1, 1},
		{0, 0, 0, 0, 0},
	})

	for _, m := range g.Moves(maze.Position{Row: 0, Col: 4}) {
		fmt.Printf("%s: %v -> %v (%d)\n", m.Dir, m.From, m.To, m.Length)
	}
	// Output:
	// d: (0,4) -> (2,4) (2)
	// l: (0,4) -> (0,3) (1)
}

////////////////////////////////////////////////////////////////////////////////
// Example: CanStop
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_CanStop contrasts a reachable resting cell with one the ball
// can only roll across.
func ExampleGrid_CanStop() {
	g, _ := maze.NewGrid([][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0},
		{1, 1, 0, 1, 1},
		{0, 0, 0, 0, 0},
	})

	a, _ := g.CanStop(maze.Position{Row: 0, Col: 4}, maze.Position{Row: 4, Col: 4})
	b, _ := g.CanStop(maze.Position{Row: 0, Col: 4}, maze.Position{Row: 3, Col: 2})
	fmt.Println(a, b)
	// Output: true false
}
