package criteria

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tubeplan/network"
)

var (
	// ErrBadCriterion is returned for malformed criterion parameters or an
	// unrecognizable criterion specification in a criteria file.
	ErrBadCriterion = errors.New("criteria: invalid criterion specification")

	// ErrMissingCosts is returned when a cost criterion is evaluated without
	// the fixed-cost entries it needs.
	ErrMissingCosts = errors.New("criteria: missing fixed cost entries")
)

// Costs is a fixed-cost table keyed by cost name. Cost criteria require the
// keys "new" (new edge), "ext" (extended edge), "hire" (staff hire) and
// "train" (one train).
type Costs map[string]float64

// requiredCostKeys are the entries every cost evaluation needs.
var requiredCostKeys = []string{"new", "ext", "hire", "train"}

// validate checks that all required keys are present.
func (c Costs) validate() error {
	for _, k := range requiredCostKeys {
		if _, ok := c[k]; !ok {
			return fmt.Errorf("criteria: fixed cost %q not provided: %w", k, ErrMissingCosts)
		}
	}

	return nil
}

// Criterion is one scored aspect of a proposal.
//
// Evaluate returns the weighted score of the proposal against the current
// network; values ≤ 0 mean the criterion was not met. Evaluate only returns
// an error for misuse of the scoring layer itself (e.g. a missing fixed-cost
// table); flow-engine failures are folded into a negative score.
type Criterion interface {
	Evaluate(proposed, current *network.Network, costs Costs) (float64, error)
	Weight() float64
	Description() string
	// Spec returns the criterion as a serializable key/value form, suitable
	// for a criteria file entry.
	Spec() map[string]any
}

// meta carries the fields shared by all criteria.
type meta struct {
	description string
	weight      float64
}

// newMeta validates shared criterion fields: weight must be positive
// (a default of 1.0 is applied by the file loader, not here).
func newMeta(description string, weight float64) (meta, error) {
	if weight <= 0 {
		return meta{}, fmt.Errorf("criteria: weight must be positive, got %g: %w",
			weight, ErrBadCriterion)
	}

	return meta{description: description, weight: weight}, nil
}

// Weight returns the criterion weight multiplied into every score.
func (m meta) Weight() float64 { return m.weight }

// Description returns the free-form criterion description.
func (m meta) Description() string { return m.description }

// paddedMatrices returns the capacity matrices of a and b, zero-padded to a
// common size. Used by cost formulas that compare edge sets entry-wise.
func paddedMatrices(a, b *network.Network) ([][]float64, [][]float64, int) {
	size := a.NumNodes()
	if b.NumNodes() > size {
		size = b.NumNodes()
	}
	pad := func(g *network.Network) [][]float64 {
		src := g.Matrix()
		out := make([][]float64, size)
		for i := range out {
			out[i] = make([]float64, size)
			if i < len(src) {
				copy(out[i], src[i])
			}
		}

		return out
	}

	return pad(a), pad(b), size
}
