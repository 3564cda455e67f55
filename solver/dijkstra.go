package solver

import (
	"container/heap"

	"github.com/katalvlaran/rollmaze/maze"
)

// dijkstra settles resting positions in order of increasing cumulative
// distance. Slide lengths are positive, so the first time dest is popped its
// distance is optimal and the search stops.
func (s *search) dijkstra() {
	settled := make([]bool, s.g.Size())
	pq := make(stopPQ, 0, 16)
	heap.Init(&pq)

	si := s.g.Index(s.start)
	s.dist[si] = 0
	heap.Push(&pq, &stopItem{pos: s.start, dist: 0})

	for pq.Len() > 0 {
		// 1) Pop the closest resting position.
		item := heap.Pop(&pq).(*stopItem)
		u, d := item.pos, item.dist
		ui := s.g.Index(u)

		// 2) Skip stale entries left behind by lazy decrease-key.
		if settled[ui] {
			continue
		}

		// 3) Everything remaining is farther than the cap.
		if d > s.opts.MaxDistance {
			break
		}
		settled[ui] = true
		s.opts.OnStop(u, d)

		if u == s.dest {
			s.best = d
			return
		}

		// 4) Relax every slide out of u.
		for _, m := range s.g.Moves(u) {
			vi := s.g.Index(m.To)
			if settled[vi] {
				continue
			}
			nd := d + m.Length
			if nd > s.opts.MaxDistance || nd >= s.dist[vi] {
				continue
			}
			s.dist[vi] = nd
			s.prev[vi] = m
			heap.Push(&pq, &stopItem{pos: m.To, dist: nd})
		}
	}
}

// stopItem is a resting position and its tentative distance from start.
type stopItem struct {
	pos  maze.Position
	dist int
}

// stopPQ is a min-heap of *stopItem ordered by dist.
// Outdated entries stay in the heap and are skipped when popped.
type stopPQ []*stopItem

func (pq stopPQ) Len() int { return len(pq) }
func (pq stopPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq stopPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *stopPQ) Push(x interface{}) { *pq = append(*pq, x.(*stopItem)) }

func (pq *stopPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
