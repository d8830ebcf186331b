package network

import (
	"fmt"
	"math"
	"strings"
)

// Edge is one (U, V, W) row of an edge-list construction input.
// U and V are node indices; W is the edge capacity.
type Edge struct {
	U, V int
	W    float64
}

// Network is an undirected capacitated graph stored as a dense n×n matrix in
// row-major order. The matrix is non-negative with a zero diagonal and is
// never mutated after construction; derived networks are new instances.
//
// Symmetry is not enforced: construction from an explicit matrix accepts
// asymmetric inputs (the sum of two asymmetric halves is a legal network),
// while construction from an edge list always produces a symmetric matrix.
type Network struct {
	n    int
	data []float64 // row-major, length n*n
}

// New builds a Network from an explicit square non-negative matrix.
// The diagonal is forced to zero (self-loops are not representable).
// Returns ErrInvalidInput if the matrix is empty, non-square, contains a
// negative entry, or contains NaN/±Inf.
// Complexity: O(n²) time and memory.
func New(adj [][]float64) (*Network, error) {
	n := len(adj)
	if n == 0 {
		return nil, fmt.Errorf("network: New: empty matrix: %w", ErrInvalidInput)
	}
	g := &Network{n: n, data: make([]float64, n*n)}
	for i, row := range adj {
		if len(row) != n {
			return nil, fmt.Errorf("network: New: row %d has %d columns, want %d: %w",
				i, len(row), n, ErrInvalidInput)
		}
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("network: New: entry (%d,%d) is not finite: %w",
					i, j, ErrInvalidInput)
			}
			if c < 0 {
				return nil, fmt.Errorf("network: New: negative capacity %g at (%d,%d): %w",
					c, i, j, ErrInvalidInput)
			}
			if i == j {
				continue // zero diagonal
			}
			g.data[i*n+j] = c
		}
	}

	return g, nil
}

// NewFromEdges builds a Network from (u, v, weight) triples. Parallel edges
// accumulate by summing their weights, self-edges are dropped, and the node
// count is max(u,v)+1 over all edges. Returns ErrInvalidInput on an empty
// table, a negative index, a negative weight, or a non-finite weight.
// Complexity: O(n² + len(edges)).
func NewFromEdges(edges []Edge) (*Network, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("network: NewFromEdges: empty edge table: %w", ErrInvalidInput)
	}
	maxIdx := -1
	for k, e := range edges {
		if e.U < 0 || e.V < 0 {
			return nil, fmt.Errorf("network: NewFromEdges: edge %d has negative node index: %w",
				k, ErrInvalidInput)
		}
		if math.IsNaN(e.W) || math.IsInf(e.W, 0) {
			return nil, fmt.Errorf("network: NewFromEdges: edge %d has non-finite weight: %w",
				k, ErrInvalidInput)
		}
		if e.W < 0 {
			return nil, fmt.Errorf("network: NewFromEdges: edge %d has negative weight %g: %w",
				k, e.W, ErrInvalidInput)
		}
		if e.U > maxIdx {
			maxIdx = e.U
		}
		if e.V > maxIdx {
			maxIdx = e.V
		}
	}

	n := maxIdx + 1
	g := &Network{n: n, data: make([]float64, n*n)}
	for _, e := range edges {
		if e.U == e.V {
			continue // self-loops are dropped
		}
		g.data[e.U*n+e.V] += e.W
		g.data[e.V*n+e.U] += e.W
	}

	return g, nil
}

// NumNodes returns the number of nodes n.
func (g *Network) NumNodes() int { return g.n }

// At returns the capacity of edge (i, j), or ErrOutOfBounds.
func (g *Network) At(i, j int) (float64, error) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return 0, fmt.Errorf("network: At(%d,%d): %w", i, j, ErrOutOfBounds)
	}

	return g.data[i*g.n+j], nil
}

// Matrix returns a deep copy of the capacity matrix.
// Complexity: O(n²).
func (g *Network) Matrix() [][]float64 {
	out := make([][]float64, g.n)
	for i := 0; i < g.n; i++ {
		out[i] = make([]float64, g.n)
		copy(out[i], g.data[i*g.n:(i+1)*g.n])
	}

	return out
}

// TotalCapacity returns the sum of all matrix entries. For a symmetric
// network every undirected edge contributes twice its capacity, which is
// exactly the "never the bottleneck" bound the multi-terminal reduction needs.
func (g *Network) TotalCapacity() float64 {
	var total float64
	for _, c := range g.data {
		total += c
	}

	return total
}

// NumEdges counts undirected edges: half the number of positive entries in
// the whole matrix, rounded down. On a symmetric matrix each edge appears
// twice and is counted once; a one-sided entry on an asymmetric matrix is
// not a full undirected edge and does not count.
func (g *Network) NumEdges() int {
	var positive int
	for _, c := range g.data {
		if c > 0 {
			positive++
		}
	}

	return positive / 2
}

// Combine returns a new Network whose matrix is the element-wise sum of g and
// other, zero-padding the smaller matrix up to the larger one's size. Edges
// present in both networks sum their capacities; nodes present only in the
// larger network keep their original rows/columns.
// Complexity: O(max(n, m)²).
func (g *Network) Combine(other *Network) *Network {
	big, small := g, other
	if other.n > g.n {
		big, small = other, g
	}
	out := &Network{n: big.n, data: make([]float64, big.n*big.n)}
	copy(out.data, big.data)
	for i := 0; i < small.n; i++ {
		for j := 0; j < small.n; j++ {
			out.data[i*out.n+j] += small.data[i*small.n+j]
		}
	}

	return out
}

// Equal reports whether g and other have the same node count and capacity
// matrices equal element-wise within Eps.
func (g *Network) Equal(other *Network) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for k, c := range g.data {
		if math.Abs(c-other.data[k]) > Eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (g *Network) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Network of %d nodes and %d edges", g.n, g.NumEdges())

	return b.String()
}
