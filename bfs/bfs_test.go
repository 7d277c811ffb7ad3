package bfs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsearch/bfs"
	"github.com/katalvlaran/graphsearch/builder"
	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/dfs"
)

// buildScenario inserts vertices 0..3 and edges (0,1),(0,2),(1,3).
func buildScenario(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		_, err := g.InsertVertex()
		require.NoError(t, err)
	}
	require.NoError(t, g.InsertEdge(0, 1))
	require.NoError(t, g.InsertEdge(0, 2))
	require.NoError(t, g.InsertEdge(1, 3))

	return g
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}

	g := buildScenario(t)
	for _, start := range []int{4, -2} {
		res, err := bfs.BFS(g, start)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, core.ErrVertexOutOfBounds)
	}
	assert.Empty(t, g.VisitedVertices())

	empty := core.NewGraph()
	_, err := bfs.BFS(empty, 0)
	assert.ErrorIs(t, err, core.ErrVertexOutOfBounds)
}

func TestBFS_Scenario(t *testing.T) {
	g := buildScenario(t)
	g.ResetVisited()

	var enqueued []int
	res, err := bfs.BFS(g, 0, bfs.WithOnEnqueue(func(v, _ int) {
		enqueued = append(enqueued, v)
	}))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 1, 3}, res.Order)
	assert.Equal(t, []int{0, 2, 1, 3}, enqueued)
	assert.Equal(t, map[int]int{0: 0, 2: 1, 1: 1, 3: 2}, res.Depth)
	assert.Equal(t, []int{0, 1, 2, 3}, g.VisitedVertices())

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

func TestBFS_Fixtures(t *testing.T) {
	cases := []struct {
		name  string
		con   builder.Constructor
		start int
		want  []int
	}{
		{"path", builder.Path(4), 0, []int{0, 1, 2, 3}},
		{"cycle", builder.Cycle(4), 0, []int{0, 3, 1, 2}},
		{"star leaf", builder.Star(4), 2, []int{2, 0, 3, 1}},
		{"complete", builder.Complete(4), 0, []int{0, 3, 2, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.con)
			require.NoError(t, err)
			res, err := bfs.BFS(g, tc.start)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Order)
		})
	}
}

func TestBFS_QueueSizedToCapacity(t *testing.T) {
	// A full, dense graph: every vertex is enqueued once, ring never overflows.
	g, err := builder.BuildGraph([]core.GraphOption{core.WithCapacity(3)}, builder.Complete(3))
	require.NoError(t, err)
	require.NoError(t, g.InsertEdge(1, 2))
	require.NoError(t, g.InsertEdge(2, 2))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
}

func TestBFS_Disconnected(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2), builder.Path(2))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, res.Order)

	_, err = res.PathTo(0)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_VisitedNotReset(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	_, err = bfs.BFS(g, 0)
	require.NoError(t, err)

	again, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, again.Order)
}

func TestBFS_OnVisitError(t *testing.T) {
	g := buildScenario(t)
	halt := errors.New("halt")
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, depth int) error {
		if depth == 1 {
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)
	assert.ErrorContains(t, err, "OnVisit error at 2")
	assert.Equal(t, []int{0, 2}, res.Order)
}

// TestBFS_SameReachableSetAsDFS: both traversals visit every reachable
// vertex exactly once.
func TestBFS_SameReachableSetAsDFS(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 200; round++ {
		g := core.NewGraph()
		n := 1 + rng.Intn(core.DefaultCapacity)
		for i := 0; i < n; i++ {
			g.InsertVertex()
		}
		for m := rng.Intn(20); m > 0; m-- {
			g.InsertEdge(rng.Intn(n), rng.Intn(n))
		}
		start := rng.Intn(n)

		g.ResetVisited()
		b, err := bfs.BFS(g, start)
		require.NoError(t, err)
		bVisited := g.VisitedVertices()

		g.ResetVisited()
		d, err := dfs.DFS(g, start)
		require.NoError(t, err)

		require.Equal(t, bVisited, g.VisitedVertices(), "round %d", round)
		require.ElementsMatch(t, bVisited, b.Order, "round %d", round)
		require.ElementsMatch(t, b.Order, d.Order, "round %d", round)

		// depths are non-decreasing in BFS order
		for i := 1; i < len(b.Order); i++ {
			require.LessOrEqual(t, b.Depth[b.Order[i-1]], b.Depth[b.Order[i]])
		}
	}
}
