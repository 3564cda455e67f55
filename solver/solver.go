package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rollmaze/maze"
)

// ShortestDistance returns the minimum total number of unit cells the ball
// rolls to go from start to dest, or Unreachable if it can never come to rest
// on dest. start == dest yields 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must be in bounds and open (maze.ErrOutOfBounds, maze.ErrWallCell).
//  3. dest must be in bounds and open (same errors).
//
// Each call owns its scratch state, so concurrent calls on the same Grid are safe.
func ShortestDistance(g *maze.Grid, start, dest maze.Position, opts ...Option) (int, error) {
	s, err := run(g, start, dest, opts)
	if err != nil {
		return Unreachable, err
	}

	return s.distance(), nil
}

// ShortestRoute is ShortestDistance plus path reconstruction.
// Ties between equally short routes are broken by discovery order, which
// follows maze.Directions.
func ShortestRoute(g *maze.Grid, start, dest maze.Position, opts ...Option) (Route, error) {
	s, err := run(g, start, dest, opts)
	if err != nil {
		return Route{Distance: Unreachable}, err
	}

	return s.route(), nil
}

// Solve builds a grid from values and returns ShortestDistance on it.
// values follows maze.NewGrid: rectangular, 0 = open, 1 = wall.
func Solve(values [][]int, start, dest maze.Position, opts ...Option) (int, error) {
	g, err := maze.NewGrid(values)
	if err != nil {
		return Unreachable, err
	}

	return ShortestDistance(g, start, dest, opts...)
}

// run validates the inputs, applies options and dispatches to the chosen strategy.
func run(g *maze.Grid, start, dest maze.Position, opts []Option) (*search, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Validate(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := g.Validate(dest); err != nil {
		return nil, fmt.Errorf("dest: %w", err)
	}

	// 3) Per-call scratch state
	s := newSearch(g, start, dest, cfg)
	switch cfg.Strategy {
	case StrategyDijkstra:
		s.dijkstra()
	case StrategyLevelBFS:
		s.levelBFS()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(cfg.Strategy))
	}

	return s, nil
}

// search holds the mutable state of one query. Slices are indexed by
// maze.Grid.Index.
type search struct {
	g           *maze.Grid
	opts        Options
	start, dest maze.Position
	dist        []int       // best known cumulative distance; math.MaxInt if unseen
	prev        []maze.Move // move that produced dist; Length == 0 for none
	best        int         // smallest distance recorded at dest; math.MaxInt if never
}

func newSearch(g *maze.Grid, start, dest maze.Position, opts Options) *search {
	n := g.Size()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
	}

	return &search{
		g:     g,
		opts:  opts,
		start: start,
		dest:  dest,
		dist:  dist,
		prev:  make([]maze.Move, n),
		best:  math.MaxInt,
	}
}

// distance maps the recorded best to the public contract.
func (s *search) distance() int {
	if s.best == math.MaxInt {
		return Unreachable
	}
	return s.best
}

// route walks prev back from dest to start.
func (s *search) route() Route {
	if s.best == math.MaxInt {
		return Route{Distance: Unreachable}
	}

	var moves []maze.Move
	for at := s.dest; at != s.start; {
		m := s.prev[s.g.Index(at)]
		moves = append(moves, m)
		at = m.From
	}
	// reverse into start → dest order
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	stops := make([]maze.Position, 0, len(moves)+1)
	stops = append(stops, s.start)
	for _, m := range moves {
		stops = append(stops, m.To)
	}

	return Route{Distance: s.best, Stops: stops, Moves: moves}
}
