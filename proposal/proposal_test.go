package proposal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubeplan/network"
	"github.com/katalvlaran/tubeplan/proposal"
)

func edges() []network.Edge {
	return []network.Edge{{U: 0, V: 1, W: 2}, {U: 1, V: 2, W: 1}}
}

func TestFromEdges(t *testing.T) {
	p, err := proposal.FromEdges("victoria-extension", edges())
	require.NoError(t, err)
	require.Equal(t, "victoria-extension", p.Name)
	require.Equal(t, 3, p.Net.NumNodes())
	require.Equal(t, "Proposal (victoria-extension) of 3 nodes and 2 edges", p.String())
}

func TestFromEdgesRejectsBadInput(t *testing.T) {
	_, err := proposal.FromEdges("", edges())
	require.ErrorIs(t, err, proposal.ErrEmptyName)

	_, err = proposal.FromEdges("empty", nil)
	require.ErrorIs(t, err, network.ErrInvalidInput)
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	r := proposal.NewRegistry()
	first, err := proposal.FromEdges("jubilee", edges())
	require.NoError(t, err)
	require.NoError(t, r.Add(first))

	second, err := proposal.FromEdges("jubilee", edges())
	require.NoError(t, err, "construction is fine; only registration collides")
	require.ErrorIs(t, r.Add(second), proposal.ErrDuplicateName)

	require.Equal(t, 1, r.Len())
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := proposal.NewRegistry()
	b := proposal.NewRegistry()

	p, err := proposal.FromEdges("bakerloo", edges())
	require.NoError(t, err)
	require.NoError(t, a.Add(p))

	// The same name is free in an unrelated registry.
	require.NoError(t, b.Add(p))

	_, ok := a.Get("bakerloo")
	require.True(t, ok)
	require.Equal(t, []string{"bakerloo"}, a.Names())
}

func TestRegistryPreservesInsertionOrder(t *testing.T) {
	r := proposal.NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		p, err := proposal.FromEdges(name, edges())
		require.NoError(t, err)
		require.NoError(t, r.Add(p))
	}

	require.Equal(t, []string{"zeta", "alpha", "mid"}, r.Names())
	all := r.All()
	require.Len(t, all, 3)
	require.Equal(t, "zeta", all[0].Name)
}
