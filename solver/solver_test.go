package solver_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snakesladders/board"
	"github.com/katalvlaran/snakesladders/builder"
	"github.com/katalvlaran/snakesladders/solver"
)

// newBoard builds a board from (bottom, top) and (mouth, tail) pairs.
func newBoard(t testing.TB, ladders, snakes [][2]int) *board.Board {
	t.Helper()
	ls := make([]board.Ladder, 0, len(ladders))
	for _, p := range ladders {
		l, err := board.NewLadder(p[0], p[1])
		require.NoError(t, err)
		ls = append(ls, l)
	}
	ss := make([]board.Snake, 0, len(snakes))
	for _, p := range snakes {
		s, err := board.NewSnake(p[0], p[1])
		require.NoError(t, err)
		ss = append(ss, s)
	}
	b, err := board.NewBoard(ls, ss)
	require.NoError(t, err)
	return b
}

// relaxRolls is an independent reference: Bellman-Ford style relaxation over
// the same move rules. Returns -1 when 100 is unreachable.
func relaxRolls(b *board.Board) int {
	const inf = 1 << 30
	var dist [board.MaxSquare + 1]int
	for i := range dist {
		dist[i] = inf
	}
	dist[board.MinSquare] = 0
	for changed := true; changed; {
		changed = false
		for s := board.MinSquare; s < board.MaxSquare; s++ {
			if dist[s] == inf {
				continue
			}
			for d := board.Square(1); d <= solver.DieFaces && s+d <= board.MaxSquare; d++ {
				to := b.Effect(s + d)
				if dist[s]+1 < dist[to] {
					dist[to] = dist[s] + 1
					changed = true
				}
			}
		}
	}
	if dist[board.MaxSquare] == inf {
		return -1
	}
	return dist[board.MaxSquare]
}

func TestMinimumRolls_NilBoard(t *testing.T) {
	_, err := solver.MinimumRolls(nil)
	assert.ErrorIs(t, err, solver.ErrNilBoard)
	_, err = solver.NewSolver(nil)
	assert.ErrorIs(t, err, solver.ErrNilBoard)
}

// TestMinimumRolls_PlainPath uses specials that never shorten the route, so the
// answer is the plain +1..+6 distance from 1 to 100.
func TestMinimumRolls_PlainPath(t *testing.T) {
	b := newBoard(t, [][2]int{{89, 90}}, [][2]int{{99, 10}})
	got, err := solver.MinimumRolls(b)
	require.NoError(t, err)
	assert.Equal(t, 17, got)
}

func TestMinimumRolls_EarlyLadder(t *testing.T) {
	b := newBoard(t, [][2]int{{2, 38}}, [][2]int{{99, 10}})
	got, err := solver.MinimumRolls(b)
	require.NoError(t, err)
	assert.Less(t, got, 17)
	// 1→2⇒38, then 62 squares in 11 rolls avoiding 99
	assert.Equal(t, 12, got)
}

func TestMinimumRolls_Samples(t *testing.T) {
	cases := []struct {
		name    string
		ladders [][2]int
		snakes  [][2]int
		want    int
	}{
		{
			name:    "three and three",
			ladders: [][2]int{{32, 62}, {42, 68}, {12, 98}},
			snakes:  [][2]int{{95, 13}, {97, 25}, {93, 37}},
			want:    3,
		},
		{
			name:    "many snakes",
			ladders: [][2]int{{8, 52}, {6, 80}, {26, 42}, {2, 72}},
			snakes: [][2]int{
				{51, 19}, {39, 11}, {37, 29}, {81, 3}, {59, 5},
				{79, 23}, {53, 7}, {43, 33}, {77, 21},
			},
			want: 5,
		},
		{
			name:    "ladder to goal",
			ladders: [][2]int{{7, 100}},
			snakes:  [][2]int{{50, 20}},
			want:    1,
		},
		{
			name:    "ladders sharing a top",
			ladders: [][2]int{{2, 50}, {10, 50}},
			snakes:  [][2]int{{99, 80}},
			want:    10,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBoard(t, tc.ladders, tc.snakes)
			got, err := solver.MinimumRolls(b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// reproducible across calls
			again, err := solver.MinimumRolls(b)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestSolve_SearchCounts(t *testing.T) {
	// goal found on the first expansion: 1, then 2..6, then 7 climbs to 100
	b := newBoard(t, [][2]int{{7, 100}}, [][2]int{{50, 20}})
	sol, err := solver.Solve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 7, sol.Discovered)
	assert.Equal(t, 1, sol.Expanded)

	b = newBoard(t, [][2]int{{2, 50}, {10, 50}}, [][2]int{{99, 80}})
	sol, err = solver.Solve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 97, sol.Discovered)
	assert.Equal(t, 92, sol.Expanded)
	assert.Equal(t, []board.Square{1, 50}, sol.Path[:2])
}

// TestMinimumRolls_Unreachable walls off the goal with snakes on 94..99.
func TestMinimumRolls_Unreachable(t *testing.T) {
	b := newBoard(t,
		[][2]int{{2, 38}},
		[][2]int{{94, 10}, {95, 11}, {96, 12}, {97, 13}, {98, 14}, {99, 15}},
	)
	_, err := solver.MinimumRolls(b)
	assert.ErrorIs(t, err, solver.ErrUnreachableGoal)
	assert.Equal(t, -1, relaxRolls(b))
}

func TestSolve_Route(t *testing.T) {
	b := newBoard(t, [][2]int{{32, 62}, {42, 68}, {12, 98}}, [][2]int{{95, 13}, {97, 25}, {93, 37}})
	sol, err := solver.Solve(context.Background(), b)
	require.NoError(t, err)

	require.Len(t, sol.Path, sol.Rolls+1)
	require.Len(t, sol.Moves, sol.Rolls)
	assert.Equal(t, board.MinSquare, sol.Path[0])
	assert.Equal(t, board.MaxSquare, sol.Path[len(sol.Path)-1])

	teleports := 0
	for i, m := range sol.Moves {
		assert.Equal(t, sol.Path[i], m.From)
		assert.Equal(t, sol.Path[i+1], m.To)
		assert.GreaterOrEqual(t, m.Face, 1)
		assert.LessOrEqual(t, m.Face, solver.DieFaces)
		assert.Equal(t, m.From+board.Square(m.Face), m.Landed)
		assert.Equal(t, b.Effect(m.Landed), m.To)
		if m.Teleported() {
			teleports++
		}
	}
	assert.Equal(t, 1, teleports, "the 12→98 ladder")
}

func TestSolve_Cancelled(t *testing.T) {
	b := newBoard(t, [][2]int{{2, 38}}, [][2]int{{99, 10}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := solver.Solve(ctx, b)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRollGraph(t *testing.T) {
	b := newBoard(t, [][2]int{{2, 38}}, [][2]int{{20, 15}})
	g, err := solver.RollGraph(b)
	require.NoError(t, err)

	assert.Equal(t, 100, g.VertexCount())
	nbrs, err := g.NeighborIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []int{38, 3, 4, 5, 6, 7}, nbrs)

	// 15 + 5 lands on the snake back to 15: the self-loop is dropped
	assert.False(t, g.HasEdge(15, 15))
	// 14 + 6 lands on the snake: edge to the tail
	assert.True(t, g.HasEdge(14, 15))

	goal, err := g.NeighborIDs(100)
	require.NoError(t, err)
	assert.Empty(t, goal)
	// overshooting faces are not taken
	nb97, _ := g.NeighborIDs(97)
	assert.Equal(t, []int{98, 99, 100}, nb97)

	_, err = solver.RollGraph(nil)
	assert.ErrorIs(t, err, solver.ErrNilBoard)
}

// TestMinimumRolls_MatchesRelaxation cross-checks the search against an
// independent fixed-point computation on random boards.
func TestMinimumRolls_MatchesRelaxation(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 300; i++ {
		b, err := builder.RandomBoard(builder.WithRand(r))
		require.NoError(t, err)

		want := relaxRolls(b)
		got, err := solver.MinimumRolls(b)
		if want < 0 {
			assert.ErrorIs(t, err, solver.ErrUnreachableGoal, b.Fingerprint())
			continue
		}
		require.NoError(t, err, b.Fingerprint())
		assert.Equal(t, want, got, b.Fingerprint())
	}
}

// TestSolver_Concurrent runs many solves on one shared Solver.
func TestSolver_Concurrent(t *testing.T) {
	b := newBoard(t, [][2]int{{32, 62}, {42, 68}, {12, 98}}, [][2]int{{95, 13}, {97, 25}, {93, 37}})
	s, err := solver.NewSolver(b)
	require.NoError(t, err)
	assert.Same(t, b, s.Board())

	var wg sync.WaitGroup
	results := make([]int, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.MinimumRolls()
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, 3, r)
	}
}
