// Package solver computes the shortest cumulative slide distance a ball
// travels through a rolling maze (see package maze) from a start cell to a
// destination cell.
//
// Movement rule: from a resting position the ball may roll Down, Up, Right
// or Left; it keeps rolling until the next cell is a wall or the grid
// boundary. A move costs the number of unit cells crossed. The destination
// counts as reached only if the ball comes to rest on it.
//
// Strategies:
//
//   - StrategyDijkstra (default): a min-heap keyed by cumulative distance
//     with edge relaxation and lazy decrease-key. Each resting position is
//     settled once, at its optimal distance. Time O(S·log S + S·max(R,C)),
//     where S ≤ R·C is the number of resting positions.
//   - StrategyLevelBFS: level-ordered BFS that marks positions visited on
//     enqueue and keeps the smallest distance seen at the destination.
//     Time O(R·C·max(R,C)). Because slides have different lengths, the
//     first path that reaches a position is not always the cheapest, so this
//     strategy can over-report. Kept for comparison with existing results.
//
// Options:
//
//   - WithStrategy(s):   choose the search strategy.
//   - WithMaxDistance(d): do not explore beyond cumulative distance d
//     (d ≥ 0); a destination farther than d is Unreachable.
//   - WithOnStop(fn):     hook called for each resting position processed.
//
// Errors (sentinel):
//
//   - ErrNilGrid        if the grid pointer is nil.
//   - ErrBadMaxDistance if a negative MaxDistance is supplied (panics in the option).
//   - maze.ErrOutOfBounds / maze.ErrWallCell for invalid start or dest.
//
// Unreachability is not an error: ShortestDistance returns Unreachable (-1).
//
// Example usage:
//
//	g, _ := maze.NewGrid(values)
//	d, err := solver.ShortestDistance(g, maze.Position{Row: 0, Col: 4}, maze.Position{Row: 4, Col: 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d) // 12
package solver
