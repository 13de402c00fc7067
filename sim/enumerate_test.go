package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joebhakim/street-crossing-sim/sim/internal/testutil"
)

func TestEnumeratePaths_GoldenCounts(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	for _, tc := range dataset.Tests {
		g, start, end := mustBuildGrid(t, tc.Rows, tc.Cols)
		paths := EnumeratePaths(g, start, end)
		assert.Len(t, paths, tc.Paths, "%dx%d", tc.Rows, tc.Cols)
		assert.Equal(t, tc.Paths, CountPaths(g, start, end), "%dx%d", tc.Rows, tc.Cols)

		sigs := make(map[Signature]bool)
		for _, p := range paths {
			sigs[p.Signature()] = true
			assert.Len(t, p.Edges, tc.EdgeCount)
		}
		assert.Len(t, sigs, tc.Signatures, "%dx%d signatures", tc.Rows, tc.Cols)
	}
}

func TestEnumeratePaths_SingleIntersection(t *testing.T) {
	g, start, end := mustBuildGrid(t, 1, 1)
	paths := EnumeratePaths(g, start, end)
	require.Len(t, paths, 2)
	assert.Equal(t, Signature("chcv"), paths[0].Signature())
	assert.Equal(t, Signature("cvch"), paths[1].Signature())
	assert.Equal(t, []Node{{0, 0, 0, 0}, {0, 0, 0, 1}, {0, 0, 1, 1}}, paths[1].Nodes)
}

func TestEnumeratePaths_DepthFirstNeighborOrder(t *testing.T) {
	g, start, end := mustBuildGrid(t, 1, 2)
	paths := EnumeratePaths(g, start, end)
	require.Len(t, paths, 4)
	assert.Equal(t, Signature("chcvbhch"), paths[0].Signature())
}

func TestEnumeratePaths_WellFormed(t *testing.T) {
	g, start, end := mustBuildGrid(t, 2, 3)
	seen := make(map[string]bool)
	for _, p := range EnumeratePaths(g, start, end) {
		require.Len(t, p.Nodes, len(p.Edges)+1)
		assert.Equal(t, start, p.Nodes[0])
		assert.Equal(t, end, p.Nodes[len(p.Nodes)-1])
		for i := 1; i < len(p.Nodes); i++ {
			e, ok := g.Edge(p.Nodes[i-1], p.Nodes[i])
			require.True(t, ok)
			assert.Equal(t, e.Signature(), p.Edges[i-1])
			east, south := moveDirections(p.Nodes[i-1], p.Nodes[i])
			assert.True(t, east || south)
		}
		key := ""
		for _, n := range p.Nodes {
			key += n.String()
		}
		assert.False(t, seen[key], "path %s enumerated twice", key)
		seen[key] = true
	}
}

func TestEnumeratePaths_Repeatable(t *testing.T) {
	g, start, end := mustBuildGrid(t, 3, 3)
	assert.Equal(t, EnumeratePaths(g, start, end), EnumeratePaths(g, start, end))
}

func TestEnumeratePaths_Unreachable(t *testing.T) {
	g, start, end := mustBuildGrid(t, 2, 2)
	assert.Empty(t, EnumeratePaths(g, end, start))
	assert.Zero(t, CountPaths(g, end, start))
	assert.Nil(t, EnumeratePaths(g, Node{Row: 9}, end))
	assert.Zero(t, CountPaths(g, start, Node{Row: 9}))
}

func TestEnumeratePaths_InteriorEndpoints(t *testing.T) {
	// GIVEN endpoints that are not grid corners
	g, _, _ := mustBuildGrid(t, 3, 3)
	start, end := Node{0, 1, 1, 0}, Node{2, 1, 1, 1}

	// THEN enumeration and counting agree
	paths := EnumeratePaths(g, start, end)
	assert.NotEmpty(t, paths)
	assert.Equal(t, len(paths), CountPaths(g, start, end))
}

func TestSignature_RoundTrip(t *testing.T) {
	edges := []EdgeSignature{
		{EdgeCrossing, Horizontal},
		{EdgeBlock, Horizontal},
		{EdgeCrossing, Vertical},
		{EdgeBlock, Vertical},
	}
	sig := PathSignature(edges)
	assert.Equal(t, Signature("chbhcvbv"), sig)
	assert.Equal(t, 4, sig.Len())
	assert.Equal(t, edges, sig.Edges())
}
