package maze

// Slide rolls the ball from `from` in direction dir until the next cell is a
// wall or outside the grid. It returns the resting position and the number of
// unit cells crossed. A length of 0 means the ball was immediately blocked and
// to == from; an unknown Direction is treated the same way.
// Complexity: O(max(R,C)).
func (g *Grid) Slide(from Position, dir Direction) (to Position, length int) {
	if !dir.Valid() {
		return from, 0
	}
	dr, dc := dir.Offset()
	to = from
	for {
		next := Position{Row: to.Row + dr, Col: to.Col + dc}
		if !g.IsOpen(next) {
			return to, length
		}
		to = next
		length++
	}
}

// Moves returns every non-zero slide available from `from`, in Directions
// order. Blocked directions are omitted.
func (g *Grid) Moves(from Position) []Move {
	moves := make([]Move, 0, len(Directions))
	for _, d := range Directions {
		to, n := g.Slide(from, d)
		if n == 0 {
			continue
		}
		moves = append(moves, Move{From: from, To: to, Dir: d, Length: n})
	}

	return moves
}
