package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubeplan/criteria"
	"github.com/katalvlaran/tubeplan/network"
	"github.com/katalvlaran/tubeplan/proposal"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadNetworkAdjacencyMatrix(t *testing.T) {
	path := writeTemp(t, "net.csv", "0,2,0\n2,0,3\n0,3,0\n")

	g, err := loadNetwork(path)
	require.NoError(t, err)
	require.Equal(t, 3, g.NumNodes())

	w, err := g.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, w)
}

func TestLoadNetworkEdgeRows(t *testing.T) {
	// A header plus three-column rows: not square, so edge form applies.
	path := writeTemp(t, "edges.csv", "u,v,w\n0,1,2\n1,2,3\n0,3\n")

	g, err := loadNetwork(path)
	require.NoError(t, err)
	require.Equal(t, 4, g.NumNodes())

	w, err := g.At(0, 3)
	require.NoError(t, err)
	require.Equal(t, 1.0, w, "missing weight defaults to 1")
}

func TestLoadNetworkEmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.csv", "only,text,here\n")

	_, err := loadNetwork(path)
	require.ErrorIs(t, err, network.ErrInvalidInput)
}

func TestLoadProposalsCSVGroupsByName(t *testing.T) {
	path := writeTemp(t, "proposals.csv",
		"name,u,v,w\nnorth line,0,1,2\nsouth line,1,2,1\nnorth line,1,3,4\n")

	ps, err := loadProposals(path)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	require.Equal(t, "north line", ps[0].Name, "first appearance wins")
	require.Equal(t, "south line", ps[1].Name)
	require.Equal(t, 2, ps[0].Net.NumEdges())
}

func TestLoadProposalsJSONListForm(t *testing.T) {
	path := writeTemp(t, "proposals.json",
		`[{"name":"express","edges":[[0,1,5],[1,2]]}]`)

	ps, err := loadProposals(path)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	require.Equal(t, "express", ps[0].Name)

	w, err := ps[0].Net.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, w)
}

func TestLoadProposalsJSONMappingForm(t *testing.T) {
	path := writeTemp(t, "proposals.json",
		`{"zeta":[[0,1,1]],"alpha":[[1,2,2]]}`)

	ps, err := loadProposals(path)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	require.Equal(t, "alpha", ps[0].Name, "mapping form is sorted by name")
	require.Equal(t, "zeta", ps[1].Name)
}

func TestLoadCosts(t *testing.T) {
	jsonPath := writeTemp(t, "costs.json", `{"new":10,"ext":5,"hire":4,"train":2}`)
	costs, err := loadCosts(jsonPath)
	require.NoError(t, err)
	require.Equal(t, 10.0, costs["new"])

	csvPath := writeTemp(t, "costs.csv", "key,value\nnew,10\next,5\nbad,oops\n")
	costs, err = loadCosts(csvPath)
	require.NoError(t, err)
	require.Equal(t, criteria.Costs{"new": 10, "ext": 5}, costs)
}

func TestWriteCSVRanking(t *testing.T) {
	p, err := proposal.FromEdges("circle line", []network.Edge{{U: 0, V: 1, W: 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = writeCSV(&buf, []criteria.Result{{Proposal: p, Score: 2.5}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"name,score,failed_essentials",
		"circle line,2.500000,0",
	}, lines)
}

func TestWriteTableContainsRanking(t *testing.T) {
	p, err := proposal.FromEdges("victoria", []network.Edge{{U: 0, V: 1, W: 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = writeTable(&buf, []criteria.Result{{Proposal: p, Score: 1.0}})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "victoria")
	require.Contains(t, buf.String(), "1.000")
}
