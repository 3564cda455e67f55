package solver

import "github.com/katalvlaran/rollmaze/maze"

// frontierEntry is a queued resting position with the cumulative distance of
// the path that enqueued it.
type frontierEntry struct {
	pos  maze.Position
	dist int
}

// levelBFS explores the stop graph one queue snapshot ("level") at a time.
// A position is marked visited when enqueued and never enqueued again, so
// its distance is whatever the first discovering path accumulated. The
// queue is always drained and the smallest distance dequeued at dest wins.
func (s *search) levelBFS() {
	visited := make([]bool, s.g.Size())
	si := s.g.Index(s.start)
	visited[si] = true
	s.dist[si] = 0
	queue := []frontierEntry{{pos: s.start, dist: 0}}

	for len(queue) > 0 {
		// capture the level before any entry of this round is appended
		size := len(queue)
		for i := 0; i < size; i++ {
			e := queue[i]
			s.opts.OnStop(e.pos, e.dist)
			if e.pos == s.dest && e.dist < s.best {
				s.best = e.dist
			}

			for _, m := range s.g.Moves(e.pos) {
				vi := s.g.Index(m.To)
				if visited[vi] {
					continue
				}
				nd := e.dist + m.Length
				if nd > s.opts.MaxDistance {
					continue
				}
				visited[vi] = true
				s.dist[vi] = nd
				s.prev[vi] = m
				queue = append(queue, frontierEntry{pos: m.To, dist: nd})
			}
		}
		queue = queue[size:]
	}
}
