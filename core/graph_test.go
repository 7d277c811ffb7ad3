package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsearch/core"
)

// newGraphN returns a default-capacity graph with n vertices already inserted.
func newGraphN(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, err := g.InsertVertex()
		require.NoError(t, err)
	}

	return g
}

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, core.DefaultCapacity, g.Capacity())
	assert.False(t, g.Full())
	assert.Empty(t, g.AdjacencyList())
	assert.Empty(t, g.VisitedVertices())
	assert.Equal(t, "", g.String())
}

func TestWithCapacity(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(3))
	assert.Equal(t, 3, g.Capacity())

	assert.Panics(t, func() { core.WithCapacity(0) })
	assert.Panics(t, func() { core.WithCapacity(-4) })
}

func TestInsertVertex_UpToCapacity(t *testing.T) {
	g := core.NewGraph()
	for want := 0; want < core.DefaultCapacity; want++ {
		v, err := g.InsertVertex()
		require.NoError(t, err)
		assert.Equal(t, want, v, "vertices are labelled densely")
		assert.Equal(t, want+1, g.VertexCount())
	}
	assert.True(t, g.Full())

	v, err := g.InsertVertex()
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
	assert.Equal(t, -1, v)
	assert.Equal(t, core.DefaultCapacity, g.VertexCount(), "failed insert must not change the count")
}

func TestInsertEdge_Symmetric(t *testing.T) {
	g := newGraphN(t, 4)
	pairs := [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}
	for _, p := range pairs {
		require.NoError(t, g.InsertEdge(p[0], p[1]))

		nu, err := g.Neighbors(p[0])
		require.NoError(t, err)
		nv, err := g.Neighbors(p[1])
		require.NoError(t, err)
		assert.Contains(t, nu, p[1])
		assert.Contains(t, nv, p[0])
	}
	assert.Equal(t, len(pairs), g.EdgeCount())
}

func TestInsertEdge_MostRecentFirst(t *testing.T) {
	g := newGraphN(t, 4)
	require.NoError(t, g.InsertEdge(0, 1))
	require.NoError(t, g.InsertEdge(0, 2))
	require.NoError(t, g.InsertEdge(1, 3))

	assert.Equal(t, [][]int{
		{2, 1},
		{3, 0},
		{0},
		{1},
	}, g.AdjacencyList())
}

func TestInsertEdge_OutOfBounds(t *testing.T) {
	g := newGraphN(t, 3)
	require.NoError(t, g.InsertEdge(0, 1))
	before := g.AdjacencyList()

	cases := []struct {
		name      string
		src, dest int
	}{
		{"src too large", 3, 0},
		{"dest too large", 0, 3},
		{"both too large", 7, 9},
		{"negative src", -1, 0},
		{"negative dest", 2, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.InsertEdge(tc.src, tc.dest)
			assert.ErrorIs(t, err, core.ErrVertexOutOfBounds)
			assert.Equal(t, before, g.AdjacencyList(), "lists must be unchanged")
		})
	}
}

func TestInsertEdge_DuplicatesKept(t *testing.T) {
	g := newGraphN(t, 2)
	require.NoError(t, g.InsertEdge(0, 1))
	require.NoError(t, g.InsertEdge(0, 1))

	n0, _ := g.Neighbors(0)
	n1, _ := g.Neighbors(1)
	assert.Equal(t, []int{1, 1}, n0)
	assert.Equal(t, []int{0, 0}, n1)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestInsertEdge_SelfLoop(t *testing.T) {
	g := newGraphN(t, 2)
	require.NoError(t, g.InsertEdge(1, 1))

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, n1)

	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := newGraphN(t, 2)
	require.NoError(t, g.InsertEdge(0, 1))

	n0, _ := g.Neighbors(0)
	n0[0] = 42
	again, _ := g.Neighbors(0)
	assert.Equal(t, []int{1}, again)

	_, err := g.Neighbors(2)
	assert.ErrorIs(t, err, core.ErrVertexOutOfBounds)
	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfBounds)
}

func TestInitialize_Resets(t *testing.T) {
	g := newGraphN(t, 5)
	require.NoError(t, g.InsertEdge(0, 4))
	require.NoError(t, g.MarkVisited(3))

	g.Initialize()
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, g.AdjacencyList())
	assert.Empty(t, g.VisitedVertices())

	v, err := g.InsertVertex()
	require.NoError(t, err)
	assert.Equal(t, 0, v, "first vertex after Initialize is labelled 0")

	n, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Empty(t, n, "stale list from before Initialize must not survive")
}

func TestRelease_KeepsCount(t *testing.T) {
	g := newGraphN(t, 3)
	require.NoError(t, g.InsertEdge(0, 1))
	require.NoError(t, g.InsertEdge(1, 2))
	require.NoError(t, g.MarkVisited(1))

	g.Release()
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, [][]int{{}, {}, {}}, g.AdjacencyList())
	assert.Equal(t, []int{1}, g.VisitedVertices(), "Release leaves visited flags alone")
	assert.Equal(t, "Vertex 0: NULL\nVertex 1: NULL\nVertex 2: NULL\n", g.String())
}

func TestVisitedFlags(t *testing.T) {
	g := newGraphN(t, 3)
	assert.False(t, g.Visited(0))
	require.NoError(t, g.MarkVisited(0))
	require.NoError(t, g.MarkVisited(2))
	assert.True(t, g.Visited(0))
	assert.False(t, g.Visited(1))
	assert.False(t, g.Visited(5), "out-of-range reports false")
	assert.Equal(t, []int{0, 2}, g.VisitedVertices())

	assert.ErrorIs(t, g.MarkVisited(3), core.ErrVertexOutOfBounds)

	g.ResetVisited()
	assert.Empty(t, g.VisitedVertices())
}

func TestPrint_Idempotent(t *testing.T) {
	g := newGraphN(t, 4)
	require.NoError(t, g.InsertEdge(0, 1))
	require.NoError(t, g.InsertEdge(0, 2))
	require.NoError(t, g.InsertEdge(1, 3))

	want := "Vertex 0: 2 -> 1 -> NULL\n" +
		"Vertex 1: 3 -> 0 -> NULL\n" +
		"Vertex 2: 0 -> NULL\n" +
		"Vertex 3: 1 -> NULL\n"
	assert.Equal(t, want, g.String())
	assert.Equal(t, g.String(), g.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestPrint_WriterError(t *testing.T) {
	g := newGraphN(t, 1)
	assert.EqualError(t, g.Print(failWriter{}), "disk on fire")
}
