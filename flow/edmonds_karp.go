package flow

import (
	"fmt"

	"github.com/katalvlaran/tubeplan/network"
)

// EdmondsKarp computes the maximum flow from source to sink on g.
//
// Each iteration derives the residual network A - F fresh from the current
// flow, finds a shortest augmenting path by BFS across strictly positive
// residual entries, and pushes the path's bottleneck capacity through
// Flow.SendFlowAlong (which updates both (u,v) and (v,u) to preserve
// skew-symmetry). When the sink becomes unreachable the flow is maximal and
// is returned. If the sink is still reachable after opts.MaxIterations
// augmentations, ErrConvergence is returned: the budget is a hard failure,
// not a silent partial result.
//
// Returns network.ErrInvalidInput when source == sink and
// network.ErrOutOfBounds when either terminal is outside the index space.
//
// Complexity: O(MaxIterations · n²) time, O(n²) memory per iteration.
func EdmondsKarp(g *network.Network, source, sink int, opts *Options) (*network.Flow, error) {
	o := normalize(opts)
	n := g.NumNodes()
	if source == sink {
		return nil, fmt.Errorf("flow: EdmondsKarp: source == sink (%d): %w",
			source, network.ErrInvalidInput)
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("flow: EdmondsKarp: source %d: %w", source, network.ErrOutOfBounds)
	}
	if sink < 0 || sink >= n {
		return nil, fmt.Errorf("flow: EdmondsKarp: sink %d: %w", sink, network.ErrOutOfBounds)
	}

	f, err := network.ZeroFlow(n, []int{source}, []int{sink})
	if err != nil {
		return nil, err
	}

	for iter := 0; iter < o.MaxIterations; iter++ {
		residual, err := g.Residual(f)
		if err != nil {
			return nil, err
		}
		trace, err := residual.BFS(source)
		if err != nil {
			return nil, err
		}
		if trace[sink] < 0 {
			return f, nil // no augmenting path left: flow is maximal
		}

		path, err := network.PathFromBFS(trace, sink)
		if err != nil {
			return nil, err
		}
		bottle, err := bottleneck(residual, path)
		if err != nil {
			return nil, err
		}
		if err = f.SendFlowAlong(path, bottle); err != nil {
			return nil, err
		}
		if o.Logger != nil {
			o.Logger.Debug("augmented", "iteration", iter, "path", path, "amount", bottle)
		}
	}

	return nil, fmt.Errorf("flow: EdmondsKarp: sink %d still reachable after %d iterations: %w",
		sink, o.MaxIterations, ErrConvergence)
}

// bottleneck returns the minimum residual capacity among consecutive path
// edges. BFS guarantees each edge on the path is strictly positive.
func bottleneck(residual *network.Network, path []int) (float64, error) {
	var min float64
	for k := 0; k+1 < len(path); k++ {
		c, err := residual.At(path[k], path[k+1])
		if err != nil {
			return 0, err
		}
		if k == 0 || c < min {
			min = c
		}
	}

	return min, nil
}
