// Package network provides the two data abstractions of the flow engine:
//
//   - Network: an immutable, undirected, capacitated graph stored as a dense
//     non-negative adjacency matrix with a zero diagonal (no self-loops).
//   - Flow: a skew-symmetric matrix over the same node index space,
//     representing net directed flow on an undirected network, tagged with
//     source and sink node sets and validated for conservation at every
//     non-terminal node.
//
// Networks are constructed from an explicit square matrix (New) or from an
// edge list (NewFromEdges); parallel edges accumulate by summing weight and
// self-edges are dropped. Once built, a Network is never mutated in place:
// derived networks (residuals and unions via Residual and Combine) are always
// new instances. Combining two networks sums their matrices element-wise
// after zero-padding the smaller one, which models "union of proposed and
// existing infrastructure" with duplicate edges summing their capacities.
//
// BFS computes a predecessor trace across strictly positive capacities, and
// PathFromBFS turns a trace into a root-to-destination path; together they
// are the path search used by the flow package's Edmonds–Karp loop.
//
// A Flow is valid only relative to a Network of the same node count. The
// capacity check is network-side: Network.CapacityConstraint verifies shape,
// skew-symmetry, and per-edge capacity compliance of a Flow. A Flow never
// holds a reference to "its" Network.
//
// All user-triggered failures are reported through the package sentinels
// (ErrInvalidInput, ErrOutOfBounds, ...) and are matchable with errors.Is.
// No function in this package panics on user input.
package network
