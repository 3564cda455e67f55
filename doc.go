// Package rollmaze computes shortest routes through "rolling mazes": 2D
// obstacle grids where a ball, once pushed, keeps rolling until the next
// cell is a wall or the edge of the grid.
//
// What is in the box:
//
//	maze/   — Grid, Position, Direction, the Slide primitive, stop-graph
//	          expansion and the "can the ball rest here" reachability check
//	solver/ — ShortestDistance and ShortestRoute over cumulative slide
//	          length, with a distance-ordered search (default) and the
//	          classic level-ordered BFS for comparison
//
// Quick ASCII example (0 = open, 1 = wall, S = start, D = destination):
//
//	0 0 1 0 S
//	0 0 0 0 0
//	0 0 0 1 0
//	1 1 0 1 1
//	0 0 0 0 D
//
// The ball needs 12 unit cells of rolling to come to rest on D.
//
//	go get github.com/katalvlaran/rollmaze
package rollmaze
