package network

import (
	"fmt"
	"math"
)

// CapacityConstraint verifies that f is a feasible flow for g:
//
//  1. f and g cover the same node index space (ErrShapeMismatch),
//  2. f is skew-symmetric within Eps (ErrNotSkewSymmetric),
//  3. |F[i][j]| <= A[i][j] + Eps for every edge (ErrCapacityExceeded).
//
// The check is network-side on purpose: a Flow is a value over an index
// space and knows nothing about any particular Network's capacities.
// Complexity: O(n²).
func (g *Network) CapacityConstraint(f *Flow) error {
	if f.n != g.n {
		return fmt.Errorf("network: CapacityConstraint: flow has %d nodes, network has %d: %w",
			f.n, g.n, ErrShapeMismatch)
	}
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if math.Abs(f.data[i*g.n+j]+f.data[j*g.n+i]) > Eps {
				return fmt.Errorf("network: CapacityConstraint: F[%d][%d] != -F[%d][%d]: %w",
					i, j, j, i, ErrNotSkewSymmetric)
			}
		}
	}
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if math.Abs(f.data[i*g.n+j]) > g.data[i*g.n+j]+Eps {
				return fmt.Errorf("network: CapacityConstraint: |F[%d][%d]| = %g exceeds capacity %g: %w",
					i, j, math.Abs(f.data[i*g.n+j]), g.data[i*g.n+j], ErrCapacityExceeded)
			}
		}
	}

	return nil
}

// Residual returns the residual network A - F as a new instance. Entries can
// come out non-positive; BFS never traverses those, which is exactly the
// "cannot push more, cannot push against existing flow beyond its magnitude"
// semantics under skew-symmetry. The non-negativity rule of New deliberately
// does not apply here. Returns ErrShapeMismatch when f covers a different
// index space.
// Complexity: O(n²).
func (g *Network) Residual(f *Flow) (*Network, error) {
	if f.n != g.n {
		return nil, fmt.Errorf("network: Residual: flow has %d nodes, network has %d: %w",
			f.n, g.n, ErrShapeMismatch)
	}
	r := &Network{n: g.n, data: make([]float64, len(g.data))}
	for k := range g.data {
		r.data[k] = g.data[k] - f.data[k]
	}

	return r, nil
}
