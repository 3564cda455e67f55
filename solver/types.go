package solver

import (
	"errors"
	"math"
	"strings"

	"github.com/katalvlaran/rollmaze/maze"
)

// Unreachable is returned as the distance when the ball can never come to
// rest on the destination.
const Unreachable = -1

// Sentinel errors returned by the solver.
var (
	// ErrNilGrid indicates that a nil *maze.Grid was passed.
	ErrNilGrid = errors.New("solver: grid is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("solver: MaxDistance must be non-negative")

	// ErrUnknownStrategy indicates a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// StrategyDijkstra orders the frontier by cumulative distance and relaxes
	// every slide. Always optimal.
	StrategyDijkstra Strategy = iota

	// StrategyLevelBFS processes the frontier one queue snapshot at a time and
	// never revisits a position once enqueued. Not optimal on every grid.
	StrategyLevelBFS
)

// String returns a short name for s.
func (s Strategy) String() string {
	switch s {
	case StrategyDijkstra:
		return "dijkstra"
	case StrategyLevelBFS:
		return "level-bfs"
	}
	return "unknown"
}

// Options configures a search.
//   - Strategy:    search algorithm, default StrategyDijkstra.
//   - MaxDistance: cumulative distance cap, default math.MaxInt (no cap).
//   - OnStop:      called with each resting position and its distance when
//     the search processes it (settled for Dijkstra, dequeued for level BFS).
type Options struct {
	Strategy    Strategy
	MaxDistance int
	OnStop      func(p maze.Position, dist int)
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxDistance caps the cumulative distance explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithOnStop registers a hook invoked for every resting position processed.
// A nil fn is ignored.
func WithOnStop(fn func(p maze.Position, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStop = fn
		}
	}
}

// DefaultOptions returns Options with:
//   - Strategy:    StrategyDijkstra.
//   - MaxDistance: math.MaxInt (explore everything reachable).
//   - OnStop:      no-op.
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyDijkstra,
		MaxDistance: math.MaxInt,
		OnStop:      func(maze.Position, int) {},
	}
}

// Route is a concrete shortest path: the resting positions visited from start
// to dest (inclusive) and the moves between them. For an unreachable
// destination Distance is Unreachable and both slices are nil.
type Route struct {
	Distance int
	Stops    []maze.Position
	Moves    []maze.Move
}

// Directions concatenates the direction letters of r.Moves, e.g. "lul".
func (r Route) Directions() string {
	var sb strings.Builder
	for _, m := range r.Moves {
		sb.WriteString(m.Dir.String())
	}

	return sb.String()
}

// Reachable reports whether r describes an actual path.
func (r Route) Reachable() bool {
	return r.Distance != Unreachable
}
