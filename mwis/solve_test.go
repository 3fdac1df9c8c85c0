package mwis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-graphalg/treewidth/bag"
	"github.com/go-graphalg/treewidth/graph"
	"github.com/go-graphalg/treewidth/mwis"
	"github.com/go-graphalg/treewidth/ntd"
	"github.com/go-graphalg/treewidth/td"
)

func buildNice(t *testing.T, bags [][]int, edges [][2]int, root int) *ntd.Tree {
	t.Helper()
	d := td.NewDecomposition()
	ids := make([]int, len(bags))
	for i, b := range bags {
		ids[i] = d.AddNode(bag.New(b...))
	}
	for _, e := range edges {
		d.AddEdge(ids[e[0]], ids[e[1]])
	}
	d.SetRoot(ids[root])

	nt, err := ntd.Build(d)
	require.NoError(t, err)
	return nt
}

func checkIndependent(t *testing.T, g *graph.Graph, chosen map[int]bool) {
	t.Helper()
	for u := range chosen {
		for v := range chosen {
			if u != v {
				require.False(t, g.HasEdge(u, v), "chosen set %v is not independent: (%d,%d) is an edge", chosen, u, v)
			}
		}
	}
}

func weightOf(chosen map[int]bool, weights map[int]uint64) uint64 {
	var total uint64
	for v := range chosen {
		total += weights[v]
	}
	return total
}

func TestSolveSingleVertex(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex(0)
	nt := buildNice(t, [][]int{{0}}, nil, 0)
	weights := map[int]uint64{0: 5}

	total, chosen, err := mwis.Solve(g, nt, weights)
	require.NoError(t, err)
	require.Equal(t, uint64(5), total)
	require.True(t, chosen[0])
}

func TestSolvePath(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	nt := buildNice(t, [][]int{{0, 1}, {1, 2}}, [][2]int{{0, 1}}, 0)
	weights := map[int]uint64{0: 1, 1: 1, 2: 1}

	total, chosen, err := mwis.Solve(g, nt, weights)
	require.NoError(t, err)
	checkIndependent(t, g, chosen)
	require.Equal(t, uint64(2), total)
	require.Equal(t, uint64(2), weightOf(chosen, weights))
	require.True(t, chosen[0])
	require.True(t, chosen[2])
	require.False(t, chosen[1])
}

// triangleWithPendant builds a triangle on {2,3,4} with a pendant edge
// (2,5), decomposed into a triangle bag and a pendant bag sharing
// vertex 2.
func triangleWithPendant() *graph.Graph {
	g := graph.NewGraph()
	g.AddEdge(2, 3)
	g.AddEdge(2, 4)
	g.AddEdge(3, 4)
	g.AddEdge(2, 5)
	return g
}

func TestSolveTriangleWithPendantUniformWeights(t *testing.T) {
	g := triangleWithPendant()
	nt := buildNice(t, [][]int{{2, 3, 4}, {2, 5}}, [][2]int{{0, 1}}, 0)
	weights := map[int]uint64{2: 1, 3: 1, 4: 1, 5: 1}

	total, chosen, err := mwis.Solve(g, nt, weights)
	require.NoError(t, err)
	checkIndependent(t, g, chosen)
	require.Equal(t, uint64(2), total)
	require.False(t, chosen[2])
	require.True(t, chosen[5])
}

func TestSolveTriangleWithPendantHeavyHub(t *testing.T) {
	g := triangleWithPendant()
	nt := buildNice(t, [][]int{{2, 3, 4}, {2, 5}}, [][2]int{{0, 1}}, 0)
	weights := map[int]uint64{2: 10, 3: 1, 4: 1, 5: 1}

	total, chosen, err := mwis.Solve(g, nt, weights)
	require.NoError(t, err)
	checkIndependent(t, g, chosen)
	require.Equal(t, uint64(10), total)
	require.True(t, chosen[2])
	require.Len(t, chosen, 1)
}

func TestSolveK5(t *testing.T) {
	g := graph.NewGraph()
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			g.AddEdge(i, j)
		}
	}
	nt := buildNice(t, [][]int{{0, 1, 2, 3, 4}}, nil, 0)
	weights := map[int]uint64{0: 1, 1: 2, 2: 3, 3: 4, 4: 5}

	total, chosen, err := mwis.Solve(g, nt, weights)
	require.NoError(t, err)
	checkIndependent(t, g, chosen)
	require.Equal(t, uint64(5), total)
	require.Len(t, chosen, 1)
	require.True(t, chosen[4])
}

// TestSolveInvariantAcrossDecompositions checks that two different nice
// tree decompositions of the same graph (different bag ordering and
// root) give the same optimal weight.
func TestSolveInvariantAcrossDecompositions(t *testing.T) {
	g := triangleWithPendant()
	weights := map[int]uint64{2: 10, 3: 1, 4: 1, 5: 1}

	ntA := buildNice(t, [][]int{{2, 3, 4}, {2, 5}}, [][2]int{{0, 1}}, 0)
	ntB := buildNice(t, [][]int{{2, 5}, {2, 3, 4}}, [][2]int{{0, 1}}, 0)

	totalA, _, err := mwis.Solve(g, ntA, weights)
	require.NoError(t, err)
	totalB, _, err := mwis.Solve(g, ntB, weights)
	require.NoError(t, err)
	require.Equal(t, totalA, totalB)
}

// The following exercise the concrete end-to-end scenarios end to end —
// graph through td.Decompose and ntd.Build into mwis.Solve — rather than
// hand-assembled decompositions, so the whole pipeline is on the hook
// for the literal expected outputs.

func TestSolveLiteralPathScenario(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	weights := map[int]uint64{0: 2, 1: 8, 2: 5}

	d, ok := td.Decompose(g, 1)
	require.True(t, ok, "expected a width-1 decomposition of a path")
	nt, err := ntd.Build(d)
	require.NoError(t, err)

	total, chosen, err := mwis.Solve(g, nt, weights)
	require.NoError(t, err)
	checkIndependent(t, g, chosen)
	require.Equal(t, uint64(8), total)
	require.True(t, chosen[1])
	require.Len(t, chosen, 1)
}

// triangleWithTwoPendantTriangles is the 7-vertex graph from the
// literal scenarios: a triangle on {0,1,2} with two further triangles
// pendant off vertex 2, on {2,3,4} and {2,5,6}.
func triangleWithTwoPendantTriangles() *graph.Graph {
	g := graph.NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)
	g.AddEdge(2, 3)
	g.AddEdge(2, 4)
	g.AddEdge(3, 4)
	g.AddEdge(2, 5)
	g.AddEdge(2, 6)
	g.AddEdge(5, 6)
	return g
}

func TestSolveLiteralTriangleClusterUniformWeights(t *testing.T) {
	g := triangleWithTwoPendantTriangles()
	weights := map[int]uint64{0: 5, 1: 5, 2: 29, 3: 5, 4: 5, 5: 5, 6: 5}

	d, ok := td.Decompose(g, 2)
	require.True(t, ok, "expected a width-2 decomposition")
	nt, err := ntd.Build(d)
	require.NoError(t, err)

	total, chosen, err := mwis.Solve(g, nt, weights)
	require.NoError(t, err)
	checkIndependent(t, g, chosen)
	require.Equal(t, uint64(29), total)
	require.True(t, chosen[2])
	require.Len(t, chosen, 1)
}

func TestSolveLiteralTriangleClusterHeavyWeights(t *testing.T) {
	g := triangleWithTwoPendantTriangles()
	weights := map[int]uint64{0: 10, 1: 5, 2: 29, 3: 10, 4: 5, 5: 10, 6: 5}

	d, ok := td.Decompose(g, 2)
	require.True(t, ok, "expected a width-2 decomposition")
	nt, err := ntd.Build(d)
	require.NoError(t, err)

	total, chosen, err := mwis.Solve(g, nt, weights)
	require.NoError(t, err)
	checkIndependent(t, g, chosen)
	require.Equal(t, uint64(30), total)
	require.True(t, chosen[0])
	require.True(t, chosen[3])
	require.True(t, chosen[5])
	require.Len(t, chosen, 3)
}

func TestSolveLiteralK5Scenario(t *testing.T) {
	g := graph.NewGraph()
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			g.AddEdge(i, j)
		}
	}
	weights := map[int]uint64{0: 0, 1: 1, 2: 2, 3: 3, 4: 4}

	d, ok := td.Decompose(g, 4)
	require.True(t, ok, "expected a width-4 decomposition of K5")
	nt, err := ntd.Build(d)
	require.NoError(t, err)

	total, chosen, err := mwis.Solve(g, nt, weights)
	require.NoError(t, err)
	checkIndependent(t, g, chosen)
	require.Equal(t, uint64(4), total)
	require.True(t, chosen[4])
	require.Len(t, chosen, 1)
}

// A malformed decomposition is caught upstream, at ntd.Build, before
// mwis.Solve ever sees it — mwis.Solve only ever receives a *ntd.Tree
// that Build has already validated. Its own validateTree is a second
// line of defense for a Tree assembled some other way.
func TestBuildRejectsCycleBeforeSolve(t *testing.T) {
	d := td.NewDecomposition()
	n0 := d.AddNode(bag.New(0))
	n1 := d.AddNode(bag.New(1))
	n2 := d.AddNode(bag.New(2))
	d.AddEdge(n0, n1)
	d.AddEdge(n1, n2)
	d.AddEdge(n2, n0)
	d.SetRoot(n0)

	_, err := ntd.Build(d)
	require.ErrorIs(t, err, ntd.ErrNotATree)
}
