package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCommand(t *testing.T) {
	netPath := writeTemp(t, "net.csv", "0,2\n2,0\n")
	propPath := writeTemp(t, "proposals.json",
		`[{"name":"express","edges":[[0,1,4]]},{"name":"noop","edges":[[0,1,0]]}]`)
	critPath := writeTemp(t, "criteria.json",
		`{"desirable":[{"description":"throughput","sources":[0],"sinks":[1]}]}`)

	cmd := newEvaluateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{
		"--network", netPath,
		"--proposals", propPath,
		"--criteria", critPath,
	})

	ctx := withLogger(context.Background(), newLogger(io.Discard, log.ErrorLevel))
	require.NoError(t, cmd.ExecuteContext(ctx))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{
		"name,score,failed_essentials",
		"express,4.000000,0",
		"noop,0.000000,0",
	}, lines)
}

func TestEvaluateCommandDuplicateProposal(t *testing.T) {
	netPath := writeTemp(t, "net.csv", "0,2\n2,0\n")
	propPath := writeTemp(t, "proposals.json",
		`[{"name":"twin","edges":[[0,1,1]]},{"name":"twin","edges":[[0,1,2]]}]`)
	critPath := writeTemp(t, "criteria.json",
		`{"desirable":[{"description":"throughput","sources":[0],"sinks":[1]}]}`)

	cmd := newEvaluateCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{
		"--network", netPath,
		"--proposals", propPath,
		"--criteria", critPath,
	})

	ctx := withLogger(context.Background(), newLogger(io.Discard, log.ErrorLevel))
	require.Error(t, cmd.ExecuteContext(ctx))
}
