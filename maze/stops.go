package maze

// StopGraph expands the implicit stop graph reachable from start: every
// position the ball can rest on, mapped to its outgoing moves (Moves order).
// start is always a key, even when it has no moves.
// Returns the validation error of start if it cannot hold the ball.
//
// Time:   O(R×C×max(R,C)).
// Memory: O(R×C) for visited flags and output.
func (g *Grid) StopGraph(start Position) (map[Position][]Move, error) {
	if err := g.Validate(start); err != nil {
		return nil, err
	}
	out := make(map[Position][]Move)
	g.walkStops(start, func(p Position, moves []Move) bool {
		out[p] = moves
		return true
	})

	return out, nil
}

// CanStop reports whether the ball, starting at start, can come to rest
// exactly on dest. Rolling over dest without stopping does not count.
// start == dest is trivially true.
//
// Visited-on-enqueue BFS is exact here: reachability does not depend on the
// order in which resting positions are discovered.
//
// Time:   O(R×C×max(R,C)).
// Memory: O(R×C).
func (g *Grid) CanStop(start, dest Position) (bool, error) {
	if err := g.Validate(start); err != nil {
		return false, err
	}
	if err := g.Validate(dest); err != nil {
		return false, err
	}
	found := false
	g.walkStops(start, func(p Position, _ []Move) bool {
		if p == dest {
			found = true
			return false
		}
		return true
	})

	return found, nil
}

// walkStops runs a BFS over resting positions from start, calling visit for
// each one with its moves. Returning false from visit stops the walk.
func (g *Grid) walkStops(start Position, visit func(p Position, moves []Move) bool) {
	seen := make([]bool, g.Size())
	queue := []Position{start}
	seen[g.Index(start)] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		moves := g.Moves(u)
		if !visit(u, moves) {
			return
		}
		for _, m := range moves {
			vi := g.Index(m.To)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, m.To)
			}
		}
	}
}
