// Package tubeplan evaluates proposed extensions to a capacitated transit
// network against a set of scoring criteria.
//
// The heart of the module is a small max-flow engine over undirected networks
// stored as dense adjacency matrices:
//
//	network/  - Network and Flow value objects, BFS with predecessor traces,
//	            capacity-constraint and conservation checks
//	flow/     - Edmonds–Karp, plus multi-terminal reductions (MaximumFlow
//	            between node sets, SufficientFlow against supply/demand maps)
//
// On top of the engine sit the scoring and bookkeeping layers:
//
//	criteria/ - cost and performance criteria, criteria groups loaded from
//	            JSON or TOML files, proposal ranking
//	proposal/ - named proposal networks and an explicit Registry
//
// The tubeplan binary (cmd/tubeplan) loads a current network, a set of
// proposals, a criteria file and an optional fixed-cost table, then prints the
// ranked results as CSV or a styled table.
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a four-station network; a proposal adds edges (and therefore capacity)
//	and is scored by how much it improves flow between chosen terminals.
package tubeplan
