// Package flow computes maximum and feasibility flows on undirected
// capacitated networks from package network.
//
// The single algorithm is Edmonds–Karp:
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting
//     paths over the residual network A - F, pushing the bottleneck
//     capacity along each path.
//   - Time:   O(V · E²) worst case; every iteration derives a fresh residual.
//   - Memory: O(V²) for the dense residual matrix.
//
// Multi-terminal problems reduce to single source/sink by expanding the
// network with two synthetic nodes:
//
//   - MaximumFlow connects a super-source/super-sink to each real terminal
//     with capacity equal to the total network capacity, so the synthetic
//     edges never constrain the result relative to the real bottlenecks.
//   - SufficientFlow connects them with caller-supplied per-node supply and
//     demand values instead, and reports ErrInfeasibleDemand when demand
//     cannot be met: before the search if total supply falls short, and
//     after the search if the achieved value does: a converged-but-short
//     flow is a reported failure, never a silent partial result.
//
// The engine is synchronous and CPU-bound; Options.MaxIterations is the only
// budget knob. Exhausting it while the sink is still reachable is a hard
// ErrConvergence failure, not a degraded success.
//
// # Errors
//
//	ErrConflictingTerminals - source/sink sets intersect or are empty
//	ErrConvergence          - iteration budget exhausted
//	ErrInfeasibleDemand     - supply cannot meet demand
//	network.ErrInvalidInput / network.ErrOutOfBounds - malformed arguments
package flow
