package network

import "fmt"

// BFS runs a breadth-first search from root across edges with strictly
// positive capacity and returns a predecessor trace of length NumNodes:
//
//	trace[root] == root
//	trace[x]    == -1 when x was not reached
//	trace[x]    == predecessor of x on a shortest (fewest-edge) path otherwise
//
// Neighbors are visited in the order they appear in the adjacency row, and
// each node is enqueued at most once. Entries ≤ 0 are never traversed, so a
// residual network with negative-looking entries is simply untraversable
// there. Returns ErrOutOfBounds if root is not a valid node index.
// Complexity: O(n²) time, O(n) memory.
func (g *Network) BFS(root int) ([]int, error) {
	if root < 0 || root >= g.n {
		return nil, fmt.Errorf("network: BFS root %d: %w", root, ErrOutOfBounds)
	}

	trace := make([]int, g.n)
	for i := range trace {
		trace[i] = -1
	}
	trace[root] = root

	visited := make([]bool, g.n)
	visited[root] = true

	queue := make([]int, 0, g.n)
	queue = append(queue, root)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		row := g.data[cur*g.n : (cur+1)*g.n]
		for nb, c := range row {
			if c > 0 && !visited[nb] {
				visited[nb] = true
				trace[nb] = cur
				queue = append(queue, nb)
			}
		}
	}

	return trace, nil
}

// PathFromBFS reconstructs the root-to-dest path from a predecessor trace
// produced by BFS: it walks predecessor pointers from dest back to the node
// that is its own predecessor, then reverses.
//
// Returns ErrOutOfBounds when dest is outside the trace, ErrUnreachable when
// trace[dest] == -1, and ErrInvalidInput when the trace is malformed (the
// walk does not terminate within len(trace) steps).
// Complexity: O(len(path)).
func PathFromBFS(trace []int, dest int) ([]int, error) {
	if dest < 0 || dest >= len(trace) {
		return nil, fmt.Errorf("network: PathFromBFS dest %d: %w", dest, ErrOutOfBounds)
	}
	if trace[dest] < 0 {
		return nil, fmt.Errorf("network: PathFromBFS dest %d: %w", dest, ErrUnreachable)
	}

	path := []int{dest}
	for cur := dest; trace[cur] != cur; {
		cur = trace[cur]
		if cur < 0 || cur >= len(trace) || len(path) > len(trace) {
			return nil, fmt.Errorf("network: PathFromBFS: malformed trace: %w", ErrInvalidInput)
		}
		path = append(path, cur)
	}
	// reverse in place: the walk built dest → root
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
