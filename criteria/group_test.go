package criteria_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubeplan/criteria"
)

func writeFile(path, body string) error {
	return os.WriteFile(path, []byte(body), 0o644)
}

func TestLoadGroupTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "criteria.toml")
	require.NoError(t, writeFile(path, `
[[essential]]
description = "corridor feasibility"
sources = [0]
sinks = [1]
supplies = [2.0]
demands = [2.0]

[[desirable]]
description = "stay under budget"
weight = 0.5
costs = ["total"]
budget = 100.0
`))

	g, err := criteria.LoadGroup(path)
	require.NoError(t, err)
	require.Len(t, g.Essential, 1)
	require.Len(t, g.Desirable, 1)

	perf, ok := g.Essential[0].(*criteria.Performance)
	require.True(t, ok)
	require.True(t, perf.IsSufficientProblem())
	require.Equal(t, 1.0, perf.Weight(), "weight defaults to 1 when omitted")

	cost, ok := g.Desirable[0].(*criteria.Cost)
	require.True(t, ok)
	require.Equal(t, 0.5, cost.Weight())
}

func TestLoadGroupMissingFile(t *testing.T) {
	_, err := criteria.LoadGroup(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
