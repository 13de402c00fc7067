package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// referenceCrossing and referenceBlock match DefaultScenario's grid lengths.
var (
	referenceCrossing = Lengths{Vertical: 0.5, Horizontal: 1.0}
	referenceBlock    = Lengths{Vertical: 4.0, Horizontal: 3.0}
)

// mustBuildGrid builds an n×m reference grid and returns it with its
// top-left and bottom-right corners.
func mustBuildGrid(t *testing.T, n, m int) (*Graph, Node, Node) {
	t.Helper()
	g, _, err := BuildCityGraph(n, m, referenceCrossing, referenceBlock)
	require.NoError(t, err)
	return g, Node{}, Node{Row: n - 1, Col: m - 1, X: 1, Y: 1}
}

// candidate builds a Candidate for strategy tests.
func candidate(next Node, dir Direction, typ EdgeType, wait float64) Candidate {
	return Candidate{
		Move: Move{
			Next:      next,
			Direction: dir,
			Edge:      Edge{Type: typ, Length: 1},
		},
		Wait:  wait,
		Green: wait == 0,
	}
}

func newTestRNG(seed int64) *PartitionedRNG {
	return NewPartitionedRNG(NewSimulationKey(seed))
}
