package network

import (
	"fmt"
	"math"
)

// Flow is a feasible flow assignment over an n-node index space: a square
// skew-symmetric matrix F (F[i][j] == -F[j][i], zero diagonal) together with
// the source and sink node sets that are exempt from conservation.
//
// Construction validates every invariant eagerly: squareness, terminal
// bounds, skew-symmetry, and conservation at all non-terminal nodes within
// Eps. An invalid Flow value is never observable. SendFlowAlong is the
// sole in-place mutator; it is intended for the augmenting-path loop, which
// only ever applies bottleneck amounts along whole paths and therefore lands
// back on a conserving state after each full augmentation step.
type Flow struct {
	n       int
	data    []float64 // row-major, length n*n
	sources []int     // deduplicated, first-seen order
	sinks   []int     // deduplicated, first-seen order
}

// NewFlow builds a validated Flow from an explicit matrix and terminal sets.
// Terminal lists are deduplicated preserving first occurrence.
// Returns ErrInvalidInput (empty/non-square/non-finite matrix),
// ErrOutOfBounds (terminal outside the index space), ErrNotSkewSymmetric, or
// ErrNotConserving.
// Complexity: O(n²).
func NewFlow(matrix [][]float64, sources, sinks []int) (*Flow, error) {
	n := len(matrix)
	if n == 0 {
		return nil, fmt.Errorf("network: NewFlow: empty matrix: %w", ErrInvalidInput)
	}
	f := &Flow{n: n, data: make([]float64, n*n)}
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("network: NewFlow: row %d has %d columns, want %d: %w",
				i, len(row), n, ErrInvalidInput)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("network: NewFlow: entry (%d,%d) is not finite: %w",
					i, j, ErrInvalidInput)
			}
			f.data[i*n+j] = v
		}
	}

	var err error
	if f.sources, err = dedupeTerminals(sources, n, "source"); err != nil {
		return nil, err
	}
	if f.sinks, err = dedupeTerminals(sinks, n, "sink"); err != nil {
		return nil, err
	}
	if err = f.validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// ZeroFlow returns the all-zero flow for an n-node network, tagged with the
// given terminal sets. The zero flow trivially conserves, so the only
// possible failures are a non-positive n (ErrInvalidInput) or terminal
// indices out of range (ErrOutOfBounds).
func ZeroFlow(n int, sources, sinks []int) (*Flow, error) {
	if n <= 0 {
		return nil, fmt.Errorf("network: ZeroFlow: n must be positive, got %d: %w", n, ErrInvalidInput)
	}
	f := &Flow{n: n, data: make([]float64, n*n)}
	var err error
	if f.sources, err = dedupeTerminals(sources, n, "source"); err != nil {
		return nil, err
	}
	if f.sinks, err = dedupeTerminals(sinks, n, "sink"); err != nil {
		return nil, err
	}

	return f, nil
}

// dedupeTerminals copies ids, removing duplicates while preserving the order
// of first occurrence, and bounds-checks each against n.
func dedupeTerminals(ids []int, n int, kind string) ([]int, error) {
	out := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if id < 0 || id >= n {
			return nil, fmt.Errorf("network: %s index %d: %w", kind, id, ErrOutOfBounds)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	return out, nil
}

// validate checks skew-symmetry (including the zero diagonal) and
// conservation at every node outside sources ∪ sinks.
func (f *Flow) validate() error {
	for i := 0; i < f.n; i++ {
		if math.Abs(f.data[i*f.n+i]) > Eps {
			return fmt.Errorf("network: non-zero diagonal at %d: %w", i, ErrNotSkewSymmetric)
		}
		for j := i + 1; j < f.n; j++ {
			if math.Abs(f.data[i*f.n+j]+f.data[j*f.n+i]) > Eps {
				return fmt.Errorf("network: F[%d][%d] != -F[%d][%d]: %w",
					i, j, j, i, ErrNotSkewSymmetric)
			}
		}
	}

	terminal := make(map[int]bool, len(f.sources)+len(f.sinks))
	for _, s := range f.sources {
		terminal[s] = true
	}
	for _, t := range f.sinks {
		terminal[t] = true
	}
	for i := 0; i < f.n; i++ {
		if terminal[i] {
			continue
		}
		if math.Abs(f.NetFlow(i)) > Eps {
			return fmt.Errorf("network: node %d net flow %g: %w",
				i, f.NetFlow(i), ErrNotConserving)
		}
	}

	return nil
}

// NumNodes returns the side length of the flow matrix.
func (f *Flow) NumNodes() int { return f.n }

// Sources returns a copy of the deduplicated source set.
func (f *Flow) Sources() []int { return append([]int(nil), f.sources...) }

// Sinks returns a copy of the deduplicated sink set.
func (f *Flow) Sinks() []int { return append([]int(nil), f.sinks...) }

// Matrix returns a deep copy of the flow matrix.
func (f *Flow) Matrix() [][]float64 {
	out := make([][]float64, f.n)
	for i := 0; i < f.n; i++ {
		out[i] = make([]float64, f.n)
		copy(out[i], f.data[i*f.n:(i+1)*f.n])
	}

	return out
}

// FlowIn returns total incoming flow for node i (column sum).
func (f *Flow) FlowIn(i int) float64 {
	var sum float64
	for r := 0; r < f.n; r++ {
		sum += f.data[r*f.n+i]
	}

	return sum
}

// FlowOut returns total outgoing flow for node i (row sum).
func (f *Flow) FlowOut(i int) float64 {
	var sum float64
	for c := 0; c < f.n; c++ {
		sum += f.data[i*f.n+c]
	}

	return sum
}

// NetFlow returns FlowIn(i) - FlowOut(i).
func (f *Flow) NetFlow(i int) float64 { return f.FlowIn(i) - f.FlowOut(i) }

// Value is the total outflow from the sources when any source is declared,
// else the total inflow to the sinks, else 0.
func (f *Flow) Value() float64 {
	var sum float64
	switch {
	case len(f.sources) > 0:
		for _, s := range f.sources {
			sum += f.FlowOut(s)
		}
	case len(f.sinks) > 0:
		for _, t := range f.sinks {
			sum += f.FlowIn(t)
		}
	}

	return sum
}

// SendFlowAlong adds amount along consecutive path entries: for every pair
// (u,v) it increments F[u][v] and decrements F[v][u], preserving
// skew-symmetry. The path must have length ≥ 2 with all indices in bounds
// (ErrInvalidInput otherwise); validation happens before any mutation, so a
// failed call leaves the flow untouched.
//
// This is the one in-place mutator on Flow. The Edmonds–Karp loop calls it
// with shortest augmenting paths and their bottleneck amounts, which restores
// conservation at every interior node after each full call; callers that
// inspect a Flow between arbitrary SendFlowAlong calls get no conservation
// guarantee.
func (f *Flow) SendFlowAlong(path []int, amount float64) error {
	if len(path) < 2 {
		return fmt.Errorf("network: SendFlowAlong: path needs at least two nodes, got %d: %w",
			len(path), ErrInvalidInput)
	}
	for _, id := range path {
		if id < 0 || id >= f.n {
			return fmt.Errorf("network: SendFlowAlong: path node %d: %w", id, ErrInvalidInput)
		}
	}

	for k := 0; k+1 < len(path); k++ {
		u, v := path[k], path[k+1]
		f.data[u*f.n+v] += amount
		f.data[v*f.n+u] -= amount
	}

	return nil
}
