package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tubeplan/criteria"
	"github.com/katalvlaran/tubeplan/flow"
	"github.com/katalvlaran/tubeplan/proposal"
)

// evaluateOpts holds the command-line flags for the evaluate command.
type evaluateOpts struct {
	networkPath   string // current network (CSV adjacency matrix or edge list)
	proposalsPath string // proposals (CSV name,u,v,w or JSON)
	criteriaPath  string // criteria file (JSON or TOML)
	costsPath     string // optional fixed-cost table (JSON or CSV key,value)
	maxIterations int    // augmenting-path budget per flow computation
	table         bool   // styled table instead of CSV
}

// newEvaluateCmd creates the evaluate command: load everything, rank, print.
func newEvaluateCmd() *cobra.Command {
	opts := evaluateOpts{maxIterations: flow.DefaultMaxIterations}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate and rank proposals against planning criteria",
		Long: `Evaluate proposals against a current network and a criteria file.

Each proposal is scored by the criteria group: cost criteria compare
estimated costs against budgets, performance criteria measure max-flow
improvement (or supply/demand feasibility) on the combined network.
The output is one row per proposal, best score first:

  name,score,failed_essentials`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.networkPath, "network", "n", "", "path to current network file (CSV edge list or adjacency matrix)")
	cmd.Flags().StringVarP(&opts.proposalsPath, "proposals", "p", "", "path to proposals file (CSV with name,u,v,w or JSON)")
	cmd.Flags().StringVarP(&opts.criteriaPath, "criteria", "c", "", "path to criteria file (.json/.cfile/.toml)")
	cmd.Flags().StringVarP(&opts.costsPath, "costs", "f", "", "optional path to fixed-costs file (JSON or CSV key,value)")
	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", flow.DefaultMaxIterations, "augmenting-path budget per flow computation")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print a styled table instead of CSV")
	_ = cmd.MarkFlagRequired("network")
	_ = cmd.MarkFlagRequired("proposals")
	_ = cmd.MarkFlagRequired("criteria")

	return cmd
}

func runEvaluate(cmd *cobra.Command, opts evaluateOpts) error {
	logger := loggerFromContext(cmd.Context())

	current, err := loadNetwork(opts.networkPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded current network", "nodes", current.NumNodes(), "edges", current.NumEdges())

	proposals, err := loadProposals(opts.proposalsPath)
	if err != nil {
		return err
	}
	registry := proposal.NewRegistry()
	for _, p := range proposals {
		if err = registry.Add(p); err != nil {
			return err
		}
	}
	logger.Debug("loaded proposals", "count", registry.Len())

	group, err := criteria.LoadGroup(opts.criteriaPath)
	if err != nil {
		return err
	}
	group.SetFlowOptions(&flow.Options{MaxIterations: opts.maxIterations, Logger: logger})

	costs := criteria.Costs{}
	if opts.costsPath != "" {
		if costs, err = loadCosts(opts.costsPath); err != nil {
			return err
		}
	}

	results := criteria.Rank(registry.All(), current, group, costs)
	logger.Info(fmt.Sprintf("evaluated %d proposals against %d criteria",
		len(results), len(group.Essential)+len(group.Desirable)))

	if opts.table {
		return writeTable(cmd.OutOrStdout(), results)
	}

	return writeCSV(cmd.OutOrStdout(), results)
}
