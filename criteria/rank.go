package criteria

import (
	"sort"

	"github.com/katalvlaran/tubeplan/network"
	"github.com/katalvlaran/tubeplan/proposal"
)

// Result is one ranked proposal: its total weighted score and the essential
// criteria it failed.
type Result struct {
	Proposal *proposal.Proposal
	Score    float64
	Failed   []Criterion
}

// Rank evaluates every proposal against the current network and returns the
// results ordered by score, highest first; ties break on proposal name so
// the ranking is deterministic. Proposals with failed essential criteria are
// kept; their negative contributions push them down the ranking.
func Rank(proposals []*proposal.Proposal, current *network.Network, g *Group, costs Costs) []Result {
	results := make([]Result, 0, len(proposals))
	for _, p := range proposals {
		score, failed := g.Evaluate(p.Net, current, costs)
		results = append(results, Result{Proposal: p, Score: score, Failed: failed})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}

		return results[i].Proposal.Name < results[j].Proposal.Name
	})

	return results
}
