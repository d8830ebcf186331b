// Package network: sentinel error set.
// All functions return these sentinels (possibly wrapped with call-site
// context via fmt.Errorf("...: %w", ...)); callers match with errors.Is.

package network

import "errors"

var (
	// ErrInvalidInput is returned for malformed construction arguments:
	// a non-square or empty matrix, a negative capacity, a non-finite entry,
	// an empty edge table, or a degenerate path.
	ErrInvalidInput = errors.New("network: invalid input")

	// ErrOutOfBounds is returned when a node index is outside 0..NumNodes-1.
	ErrOutOfBounds = errors.New("network: node index out of bounds")

	// ErrUnreachable is returned by PathFromBFS when the destination was not
	// reached from the BFS root.
	ErrUnreachable = errors.New("network: destination unreachable from root")

	// ErrShapeMismatch is returned when a Flow and a Network disagree on the
	// number of nodes.
	ErrShapeMismatch = errors.New("network: flow and network shapes differ")

	// ErrNotSkewSymmetric is returned when a flow matrix violates
	// F[i][j] == -F[j][i] (or has a non-zero diagonal) beyond Eps.
	ErrNotSkewSymmetric = errors.New("network: flow matrix not skew-symmetric")

	// ErrCapacityExceeded is returned when |F[i][j]| > A[i][j] + Eps for some
	// edge, i.e. a flow pushes more than the network can carry.
	ErrCapacityExceeded = errors.New("network: flow exceeds edge capacity")

	// ErrNotConserving is returned when, at some node that is neither a
	// source nor a sink, net inflow differs from net outflow beyond Eps.
	ErrNotConserving = errors.New("network: flow not conserved at intermediate node")
)

// Eps is the absolute tolerance used by all numeric comparisons in the
// engine: conservation, skew-symmetry, capacity compliance and equality.
const Eps = 1e-9
