package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snakesladders/bfs"
	"github.com/katalvlaran/snakesladders/core"
)

// chain builds the directed path 0→1→…→n.
func chain(t testing.TB, n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 1); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 7); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g2 := chain(t, 1)
	if _, err := bfs.BFS(g2, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.BFS(g2, 0, bfs.WithTarget(-3)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative target: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1))
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Order)
	assert.Equal(t, 0, res.Depth[1])
	assert.False(t, res.Found)
}

// TestBFS_DiamondDepths checks layering on a directed diamond with a shortcut.
func TestBFS_DiamondDepths(t *testing.T) {
	//   1 → 2 → 4 → 5
	//   1 → 3 → 4
	//   3 → 5
	g := core.NewGraph()
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {4, 5}, {3, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, res.Order)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 2}, res.Depth)
	// 4 is first discovered from 2; the later discovery from 3 is ignored
	assert.Equal(t, 2, res.Parent[4])
	assert.Equal(t, 3, res.Parent[5])
}

// TestBFS_DirectedOnly ensures edges are not followed backwards.
func TestBFS_DirectedOnly(t *testing.T) {
	g := chain(t, 3)
	res, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, res.Order)
	_, reached := res.Depth[0]
	assert.False(t, reached)
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, 2)
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_Target verifies early exit on discovery of the target vertex.
func TestBFS_Target(t *testing.T) {
	g := chain(t, 10)
	res, err := bfs.BFS(g, 0, bfs.WithTarget(4))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 4, res.Depth[4])
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order, "target is discovered, not visited")
	_, beyond := res.Depth[5]
	assert.False(t, beyond, "search must stop at the target")

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)

	// start is the target
	res, err = bfs.BFS(g, 3, bfs.WithTarget(3))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0, res.Depth[3])

	// unreachable target
	res, err = bfs.BFS(g, 5, bfs.WithTarget(1))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Len(t, res.Order, 6)
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain(t, 2)
	res, _ := bfs.BFS(g, 0,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 1 && nbr == 2)
		}),
	)
	assert.Equal(t, []int{0, 1}, res.Order)
}

// TestBFS_SelfLoopAndParallelDedup ensures that loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, g.AddEdge(1, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 2))
	res, _ := bfs.BFS(g, 1)
	assert.Equal(t, []int{1, 2}, res.Order)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := chain(t, 2)

	var enq, deq, vis []string
	entry := func(prefix string, id, d int) string {
		return fmt.Sprintf("%s:%d@%d", prefix, id, d)
	}

	_, err := bfs.BFS(
		g, 0,
		bfs.WithOnEnqueue(func(id, d int) { enq = append(enq, entry("e", id, d)) }),
		bfs.WithOnDequeue(func(id, d int) { deq = append(deq, entry("d", id, d)) }),
		bfs.WithOnVisit(func(id, d int) error { vis = append(vis, entry("v", id, d)); return nil }),
	)
	require.NoError(t, err)

	for i, suffix := range []string{"0@0", "1@1", "2@2"} {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	g := chain(t, 5)
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1))
	res, _ := bfs.BFS(g, 1)
	path, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, path)

	_, err = res.PathTo(2)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentSafety ensures concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain(t, 50)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, err := bfs.BFS(g, 0, bfs.WithTarget(50))
			if err == nil && res.Depth[50] != 50 {
				err = fmt.Errorf("depth %d", res.Depth[50])
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		assert.NoError(t, <-errs)
	}
}
