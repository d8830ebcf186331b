package criteria

import (
	"fmt"

	"github.com/katalvlaran/tubeplan/flow"
	"github.com/katalvlaran/tubeplan/network"
)

// Performance scores a proposal by the flow it enables on the combined
// (current + proposed) network.
//
// In max-flow form (no supplies/demands) the score is the improvement of the
// maximum flow between the source and sink sets over the current network
// alone. In sufficient-flow form (aligned supplies/demands given) the score
// is +weight when the combined network satisfies the supply/demand problem
// and −weight otherwise. Any flow-engine failure counts as "not satisfied".
type Performance struct {
	meta
	sources []int
	sinks   []int
	// supplies/demands are aligned with sources/sinks; both nil in
	// max-flow form.
	supplies []float64
	demands  []float64
	// opts tunes the underlying flow computations; nil means defaults.
	opts *flow.Options
}

// SetFlowOptions overrides the flow engine options (iteration budget,
// logging) used by this criterion. A nil value restores the defaults.
func (p *Performance) SetFlowOptions(o *flow.Options) { p.opts = o }

// NewPerformance builds a performance criterion. Sources and sinks must be
// non-empty. Supplies and demands must either both be nil (max-flow form) or
// align one-to-one with sources and sinks and be non-negative
// (sufficient-flow form). Violations return ErrBadCriterion.
func NewPerformance(
	sources, sinks []int,
	supplies, demands []float64,
	description string,
	weight float64,
) (*Performance, error) {
	m, err := newMeta(description, weight)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 || len(sinks) == 0 {
		return nil, fmt.Errorf("criteria: at least one source and one sink required: %w",
			ErrBadCriterion)
	}
	if (supplies == nil) != (demands == nil) {
		return nil, fmt.Errorf("criteria: supplies and demands must be given together: %w",
			ErrBadCriterion)
	}
	if supplies != nil {
		if len(supplies) != len(sources) || len(demands) != len(sinks) {
			return nil, fmt.Errorf("criteria: supplies/demands must align with sources/sinks: %w",
				ErrBadCriterion)
		}
		for _, v := range append(append([]float64(nil), supplies...), demands...) {
			if v < 0 {
				return nil, fmt.Errorf("criteria: negative supply/demand %g: %w", v, ErrBadCriterion)
			}
		}
	}

	return &Performance{
		meta:     m,
		sources:  append([]int(nil), sources...),
		sinks:    append([]int(nil), sinks...),
		supplies: append([]float64(nil), supplies...),
		demands:  append([]float64(nil), demands...),
	}, nil
}

// IsSufficientProblem reports whether the criterion checks a supply/demand
// feasibility problem rather than a plain max-flow improvement.
func (p *Performance) IsSufficientProblem() bool {
	return len(p.supplies) > 0 && len(p.demands) > 0
}

// Evaluate never returns an error: flow-engine failures score −weight.
func (p *Performance) Evaluate(proposed, current *network.Network, _ Costs) (float64, error) {
	combined := current.Combine(proposed)

	if p.IsSufficientProblem() {
		supplies := make(map[int]float64, len(p.sources))
		for i, s := range p.sources {
			supplies[s] += p.supplies[i]
		}
		demands := make(map[int]float64, len(p.sinks))
		for i, t := range p.sinks {
			demands[t] += p.demands[i]
		}
		if _, err := flow.SufficientFlow(combined, supplies, demands, p.opts); err != nil {
			return -p.weight, nil
		}

		return p.weight, nil
	}

	combinedFlow, err := flow.MaximumFlow(combined, p.sources, p.sinks, p.opts)
	if err != nil {
		return -p.weight, nil
	}
	currentFlow, err := flow.MaximumFlow(current, p.sources, p.sinks, p.opts)
	if err != nil {
		return -p.weight, nil
	}

	return p.weight * (combinedFlow.Value() - currentFlow.Value()), nil
}

// Spec returns the criteria-file form of the criterion.
func (p *Performance) Spec() map[string]any {
	spec := map[string]any{
		"description": p.description,
		"weight":      p.weight,
		"sources":     append([]int(nil), p.sources...),
		"sinks":       append([]int(nil), p.sinks...),
	}
	if p.IsSufficientProblem() {
		spec["supplies"] = append([]float64(nil), p.supplies...)
		spec["demands"] = append([]float64(nil), p.demands...)
	}

	return spec
}
