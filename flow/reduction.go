package flow

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/tubeplan/network"
)

// MaximumFlow computes the maximum flow between two node sets on g by the
// classic super-source/super-sink reduction.
//
// Sources and sinks are deduplicated preserving first-seen order and must be
// non-empty and mutually disjoint (ErrConflictingTerminals otherwise). The
// expanded network has two extra nodes, super-source n and super-sink n+1,
// each wired bidirectionally to every real terminal with capacity equal to
// g.TotalCapacity() (or 1.0 on an all-zero network, to avoid a degenerate
// zero-capacity super-edge). That choice guarantees the synthetic edges never
// constrain the max-flow value relative to the real bottlenecks. The flow
// found on the expansion is restricted back to the original n×n block and
// re-tagged with the original terminals.
//
// Complexity: the Edmonds–Karp cost on an (n+2)-node network.
func MaximumFlow(g *network.Network, sources, sinks []int, opts *Options) (*network.Flow, error) {
	n := g.NumNodes()
	srcs, err := checkTerminals(sources, n, "source")
	if err != nil {
		return nil, err
	}
	snks, err := checkTerminals(sinks, n, "sink")
	if err != nil {
		return nil, err
	}
	inSrc := make(map[int]bool, len(srcs))
	for _, s := range srcs {
		inSrc[s] = true
	}
	for _, t := range snks {
		if inSrc[t] {
			return nil, fmt.Errorf("flow: MaximumFlow: node %d is both source and sink: %w",
				t, ErrConflictingTerminals)
		}
	}

	super := g.TotalCapacity()
	if super <= 0 {
		super = 1.0
	}
	caps := make(map[int]float64, len(srcs))
	for _, s := range srcs {
		caps[s] = super
	}
	demands := make(map[int]float64, len(snks))
	for _, t := range snks {
		demands[t] = super
	}

	expandedFlow, err := solveExpanded(g, srcs, snks, caps, demands, opts)
	if err != nil {
		return nil, err
	}

	return restrict(expandedFlow, n, srcs, snks)
}

// SufficientFlow checks whether g can carry a flow satisfying per-node
// supplies and demands. The reduction mirrors MaximumFlow, except the
// super-edges carry exactly the caller-supplied bounded values.
//
// Fails fast with ErrInfeasibleDemand, without running the search, when
// total supply falls short of total demand beyond Eps, and with the same
// error after the search when the achieved flow value is still short of the
// total demand. Negative supply/demand values yield network.ErrInvalidInput;
// empty maps yield ErrConflictingTerminals; unknown nodes yield
// network.ErrOutOfBounds. Supply and demand nodes are processed in sorted
// order, so results are deterministic despite map iteration.
func SufficientFlow(g *network.Network, supplies, demands map[int]float64, opts *Options) (*network.Flow, error) {
	n := g.NumNodes()
	srcs, totalSupply, err := checkTerminalMap(supplies, n, "supply")
	if err != nil {
		return nil, err
	}
	snks, totalDemand, err := checkTerminalMap(demands, n, "demand")
	if err != nil {
		return nil, err
	}

	if totalSupply+network.Eps < totalDemand {
		return nil, fmt.Errorf("flow: SufficientFlow: total supply %g < total demand %g: %w",
			totalSupply, totalDemand, ErrInfeasibleDemand)
	}

	expandedFlow, err := solveExpanded(g, srcs, snks, supplies, demands, opts)
	if err != nil {
		return nil, err
	}
	if expandedFlow.Value()+network.Eps < totalDemand {
		return nil, fmt.Errorf("flow: SufficientFlow: achieved %g of demanded %g: %w",
			expandedFlow.Value(), totalDemand, ErrInfeasibleDemand)
	}

	return restrict(expandedFlow, n, srcs, snks)
}

// checkTerminals deduplicates a terminal list preserving first-seen order.
// An empty list is ErrConflictingTerminals; out-of-range ids are
// network.ErrOutOfBounds.
func checkTerminals(ids []int, n int, kind string) ([]int, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("flow: at least one %s required: %w", kind, ErrConflictingTerminals)
	}
	out := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if id < 0 || id >= n {
			return nil, fmt.Errorf("flow: %s index %d: %w", kind, id, network.ErrOutOfBounds)
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	return out, nil
}

// checkTerminalMap validates a node→value map and returns its keys in sorted
// order along with the value total.
func checkTerminalMap(m map[int]float64, n int, kind string) ([]int, float64, error) {
	if len(m) == 0 {
		return nil, 0, fmt.Errorf("flow: at least one %s node required: %w", kind, ErrConflictingTerminals)
	}
	nodes := make([]int, 0, len(m))
	var total float64
	for id, v := range m {
		if id < 0 || id >= n {
			return nil, 0, fmt.Errorf("flow: %s node %d: %w", kind, id, network.ErrOutOfBounds)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, 0, fmt.Errorf("flow: %s value %g at node %d: %w",
				kind, v, id, network.ErrInvalidInput)
		}
		nodes = append(nodes, id)
		total += v
	}
	sort.Ints(nodes)

	return nodes, total, nil
}

// solveExpanded embeds g in an (n+2)-node network, wires super-source n to
// each source with sourceCaps[s] and each sink to super-sink n+1 with
// sinkCaps[t] (bidirectionally), and runs Edmonds–Karp across the expansion.
func solveExpanded(
	g *network.Network,
	srcs, snks []int,
	sourceCaps, sinkCaps map[int]float64,
	opts *Options,
) (*network.Flow, error) {
	n := g.NumNodes()
	superSource, superSink := n, n+1

	expanded := make([][]float64, n+2)
	base := g.Matrix()
	for i := 0; i < n+2; i++ {
		expanded[i] = make([]float64, n+2)
		if i < n {
			copy(expanded[i], base[i])
		}
	}
	for _, s := range srcs {
		expanded[superSource][s] = sourceCaps[s]
		expanded[s][superSource] = sourceCaps[s]
	}
	for _, t := range snks {
		expanded[t][superSink] = sinkCaps[t]
		expanded[superSink][t] = sinkCaps[t]
	}

	expandedNet, err := network.New(expanded)
	if err != nil {
		return nil, err
	}

	return EdmondsKarp(expandedNet, superSource, superSink, opts)
}

// restrict projects an expanded flow back onto the original n×n block and
// re-tags it with the real terminals. Construction re-validates conservation,
// which holds at every non-terminal by the reduction's structure.
func restrict(f *network.Flow, n int, sources, sinks []int) (*network.Flow, error) {
	expanded := f.Matrix()
	base := make([][]float64, n)
	for i := 0; i < n; i++ {
		base[i] = expanded[i][:n]
	}

	return network.NewFlow(base, sources, sinks)
}
