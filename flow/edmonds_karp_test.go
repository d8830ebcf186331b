package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tubeplan/flow"
	"github.com/katalvlaran/tubeplan/network"
)

// EdmondsKarpSuite groups tests for the single-source/single-sink solver.
type EdmondsKarpSuite struct {
	suite.Suite
}

func (s *EdmondsKarpSuite) mustNetwork(adj [][]float64) *network.Network {
	g, err := network.New(adj)
	require.NoError(s.T(), err)

	return g
}

// TestSingleEdge: the two-node 3-capacity network carries exactly 3.
func (s *EdmondsKarpSuite) TestSingleEdge() {
	g := s.mustNetwork([][]float64{{0, 3}, {3, 0}})

	f, err := flow.EdmondsKarp(g, 0, 1, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, f.Value())
	require.NoError(s.T(), g.CapacityConstraint(f), "result respects capacities")
}

// TestTwoDisjointPaths: flow sums over parallel routes (1 + 2 = 3).
func (s *EdmondsKarpSuite) TestTwoDisjointPaths() {
	g := s.mustNetwork([][]float64{
		{0, 1, 2, 0},
		{1, 0, 0, 1},
		{2, 0, 0, 2},
		{0, 1, 2, 0},
	})

	f, err := flow.EdmondsKarp(g, 0, 3, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, f.Value())
}

// TestBottleneckPath: a chain is limited by its weakest edge.
func (s *EdmondsKarpSuite) TestBottleneckPath() {
	g := s.mustNetwork([][]float64{
		{0, 5, 0},
		{5, 0, 2},
		{0, 2, 0},
	})

	f, err := flow.EdmondsKarp(g, 0, 2, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, f.Value())
}

// TestDisconnected: no augmenting path at all yields the zero flow.
func (s *EdmondsKarpSuite) TestDisconnected() {
	g := s.mustNetwork([][]float64{{0, 0}, {0, 0}})

	f, err := flow.EdmondsKarp(g, 0, 1, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, f.Value())
}

// TestSourceEqualsSink is rejected up front.
func (s *EdmondsKarpSuite) TestSourceEqualsSink() {
	g := s.mustNetwork([][]float64{{0, 3}, {3, 0}})

	_, err := flow.EdmondsKarp(g, 1, 1, nil)
	require.ErrorIs(s.T(), err, network.ErrInvalidInput)
}

// TestTerminalOutOfBounds covers both terminals.
func (s *EdmondsKarpSuite) TestTerminalOutOfBounds() {
	g := s.mustNetwork([][]float64{{0, 3}, {3, 0}})

	_, err := flow.EdmondsKarp(g, -1, 1, nil)
	require.ErrorIs(s.T(), err, network.ErrOutOfBounds)
	_, err = flow.EdmondsKarp(g, 0, 2, nil)
	require.ErrorIs(s.T(), err, network.ErrOutOfBounds)
}

// TestIterationBudget: two disjoint unit paths need two augmentations, so a
// budget of one must fail hard instead of returning a partial flow.
func (s *EdmondsKarpSuite) TestIterationBudget() {
	g := s.mustNetwork([][]float64{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	})

	_, err := flow.EdmondsKarp(g, 0, 3, &flow.Options{MaxIterations: 1})
	require.ErrorIs(s.T(), err, flow.ErrConvergence)

	f, err := flow.EdmondsKarp(g, 0, 3, &flow.Options{MaxIterations: 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, f.Value())
}

// TestFlowIsConserving: every interior node of the result nets to zero.
func (s *EdmondsKarpSuite) TestFlowIsConserving() {
	g := s.mustNetwork([][]float64{
		{0, 4, 2, 0},
		{4, 0, 1, 3},
		{2, 1, 0, 2},
		{0, 3, 2, 0},
	})

	f, err := flow.EdmondsKarp(g, 0, 3, nil)
	require.NoError(s.T(), err)
	for _, node := range []int{1, 2} {
		require.InDelta(s.T(), 0.0, f.NetFlow(node), network.Eps)
	}
	require.NoError(s.T(), g.CapacityConstraint(f))
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
