package flow_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tubeplan/flow"
	"github.com/katalvlaran/tubeplan/network"
)

// buildRandomNetwork constructs an undirected network with n nodes and
// roughly p probability of an edge between any unordered pair.
// Edge capacities are uniform in [1, maxCap].
func buildRandomNetwork(n int, p, maxCap float64, seed int64) *network.Network {
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				w := r.Float64()*maxCap + 1.0
				adj[u][v] = w
				adj[v][u] = w
			}
		}
	}
	g, err := network.New(adj)
	if err != nil {
		panic(err)
	}
	return g
}

// BenchmarkEdmondsKarp measures max-flow on networks of increasing size and
// density. Each size/density pair runs as a sub-benchmark.
func BenchmarkEdmondsKarp(b *testing.B) {
	cases := []struct {
		n int
		p float64
	}{
		{n: 16, p: 0.3},
		{n: 64, p: 0.3},
		{n: 64, p: 0.7},
		{n: 128, p: 0.3},
	}
	opts := &flow.Options{MaxIterations: 1 << 16}

	for _, tc := range cases {
		g := buildRandomNetwork(tc.n, tc.p, 10.0, 42)
		b.Run(fmt.Sprintf("n=%d/p=%.1f", tc.n, tc.p), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := flow.EdmondsKarp(g, 0, tc.n-1, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkMaximumFlow measures the super-terminal reduction on top of the
// core solver.
func BenchmarkMaximumFlow(b *testing.B) {
	g := buildRandomNetwork(64, 0.3, 10.0, 42)
	sources := []int{0, 1, 2}
	sinks := []int{61, 62, 63}
	opts := &flow.Options{MaxIterations: 1 << 16}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := flow.MaximumFlow(g, sources, sinks, opts); err != nil {
			b.Fatal(err)
		}
	}
}
