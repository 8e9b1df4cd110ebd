// File: view.go
// Role: Immutable, index-addressed snapshots of a Graph for algorithms.
// Determinism:
//   - Index i in a Snapshot is the declaration position of the node in the Graph.
// Concurrency:
//   - Snapshot() holds the read lock only while copying; the result is never
//     shared with the Graph, so later AddRoad calls cannot affect it.

package core

import "fmt"

// Snapshot is a read-only copy of a Graph's topology taken at one instant.
// Algorithms run on snapshots so that every query owns its view of the
// matrix and no lock is held while they compute.
type Snapshot struct {
	names   []string
	index   map[string]int
	weights []int64
}

// Snapshot copies the current matrix under the read lock.
// The name list and index are immutable and therefore shared.
// Complexity: O(N²).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	weights := make([]int64, len(g.weights))
	copy(weights, g.weights)
	g.mu.RUnlock()

	return &Snapshot{names: g.names, index: g.index, weights: weights}
}

// Len returns the number of nodes.
func (s *Snapshot) Len() int { return len(s.names) }

// Name returns the name of the node at position i.
// It panics if i is out of range, like a slice index.
func (s *Snapshot) Name(i int) string { return s.names[i] }

// Names returns a copy of all node names in declaration order.
func (s *Snapshot) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Index resolves a node name to its position.
// Returns ErrNodeNotFound (wrapped with the name) if it is absent.
func (s *Snapshot) Index(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return i, nil
}

// Weight returns the matrix entry (i, j): 0 on the diagonal, the road
// length if a direct road exists, Unreachable otherwise.
func (s *Snapshot) Weight(i, j int) int64 {
	return s.weights[i*len(s.names)+j]
}

// Row returns a copy of row i of the matrix: the direct distances from node i.
func (s *Snapshot) Row(i int) []int64 {
	n := len(s.names)
	out := make([]int64, n)
	copy(out, s.weights[i*n:(i+1)*n])

	return out
}
