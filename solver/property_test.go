package solver_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rollmaze/maze"
	"github.com/katalvlaran/rollmaze/solver"
)

// randomValues builds a rows×cols grid with roughly density walls.
func randomValues(rng *rand.Rand, rows, cols int, density float64) [][]int {
	v := make([][]int, rows)
	for r := range v {
		v[r] = make([]int, cols)
		for c := range v[r] {
			if rng.Float64() < density {
				v[r][c] = 1
			}
		}
	}

	return v
}

// relaxAll is an independent oracle: Bellman-Ford over the expanded stop
// graph, iterated to a fixpoint.
func relaxAll(t *testing.T, g *maze.Grid, start maze.Position) map[maze.Position]int {
	t.Helper()
	sg, err := g.StopGraph(start)
	require.NoError(t, err)

	dist := make(map[maze.Position]int, len(sg))
	for p := range sg {
		dist[p] = math.MaxInt
	}
	dist[start] = 0
	for changed := true; changed; {
		changed = false
		for p, moves := range sg {
			if dist[p] == math.MaxInt {
				continue
			}
			for _, m := range moves {
				if nd := dist[p] + m.Length; nd < dist[m.To] {
					dist[m.To] = nd
					changed = true
				}
			}
		}
	}

	return dist
}

// TestProperties_RandomGrids cross-checks both strategies against the oracle
// on small random mazes.
func TestProperties_RandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 200; iter++ {
		rows, cols := 1+rng.Intn(6), 1+rng.Intn(6)
		values := randomValues(rng, rows, cols, 0.3)
		g, err := maze.NewGrid(values)
		require.NoError(t, err)

		var open []maze.Position
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if values[r][c] == 0 {
					open = append(open, pos(r, c))
				}
			}
		}
		if len(open) == 0 {
			continue
		}
		start := open[rng.Intn(len(open))]
		oracle := relaxAll(t, g, start)
		bound := rows * cols * max(rows, cols)

		for _, dest := range open {
			best, err := solver.ShortestDistance(g, start, dest)
			require.NoError(t, err)
			level, err := solver.ShortestDistance(g, start, dest, solver.WithStrategy(solver.StrategyLevelBFS))
			require.NoError(t, err)
			canStop, err := g.CanStop(start, dest)
			require.NoError(t, err)

			want, ok := oracle[dest]
			if !ok {
				assert.Equal(t, solver.Unreachable, best, "%v→%v in %v", start, dest, values)
				assert.Equal(t, solver.Unreachable, level)
				assert.False(t, canStop)
				continue
			}
			assert.Equal(t, want, best, "%v→%v in %v", start, dest, values)
			assert.GreaterOrEqual(t, level, best, "level BFS can only over-report")
			assert.LessOrEqual(t, level, bound)
			assert.True(t, canStop)

			route, err := solver.ShortestRoute(g, start, dest)
			require.NoError(t, err)
			assertReplays(t, g, route)
		}
	}
}
