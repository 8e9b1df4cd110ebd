// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors, Roads).
// Determinism:
//   - Results follow node declaration order; no map iteration is involved.
// Concurrency:
//   - Read lock on the weight matrix for the duration of the scan.

package core

// Neighbors returns every direct road leaving name, ordered by the
// declaration position of the neighbor. Road.From is always name.
// The node itself is never listed.
//
// Returns ErrNodeNotFound if name is unknown.
// Complexity: O(N).
func (g *Graph) Neighbors(name string) ([]Road, error) {
	i, err := g.Index(name)
	if err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.names)
	row := g.weights[i*n : (i+1)*n]
	out := make([]Road, 0, n)
	var j int
	var w int64
	for j, w = range row {
		if j == i || w == Unreachable {
			continue
		}
		out = append(out, Road{From: name, To: g.names[j], Weight: w})
	}

	return out, nil
}

// Roads returns each undirected road exactly once, ordered by
// (index(From), index(To)) with index(From) < index(To).
// Complexity: O(N²).
func (g *Graph) Roads() []Road {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.names)
	out := make([]Road, 0, g.roads)
	var i, j int
	var w int64
	for i = 0; i < n; i++ {
		// upper triangle only; the matrix is symmetric
		for j = i + 1; j < n; j++ {
			w = g.weights[i*n+j]
			if w == Unreachable {
				continue
			}
			out = append(out, Road{From: g.names[i], To: g.names[j], Weight: w})
		}
	}

	return out
}
