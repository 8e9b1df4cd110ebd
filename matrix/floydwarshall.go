// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) over a graph snapshot, in place on a copy.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// ErrNilGraph indicates that AllPairs received a nil graph.
var ErrNilGraph = errors.New("matrix: graph is nil")

// Table holds shortest distances between every ordered pair of nodes.
// Rows and columns follow the graph's node declaration order.
type Table struct {
	names []string
	index map[string]int
	dist  []int64 // row-major n×n
}

// AllPairs snapshots g and runs Floyd–Warshall on a copy of its matrix.
// Returns ErrNilGraph if g is nil.
func AllPairs(g *core.Graph) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Copy the adjacency rows; the snapshot already has 0 on the diagonal
	//    and Unreachable for missing roads, which is exactly the APSP seed.
	snap := g.Snapshot()
	n := snap.Len()
	t := &Table{
		names: snap.Names(),
		index: make(map[string]int, n),
		dist:  make([]int64, 0, n*n),
	}
	for i := 0; i < n; i++ {
		t.index[t.names[i]] = i
		t.dist = append(t.dist, snap.Row(i)...)
	}

	// 2) Close over every intermediate node.
	floydWarshallInPlace(t.dist, n)

	return t, nil
}

// floydWarshallInPlace runs the APSP closure on a row-major n×n buffer.
//
// Policy (assumed by callers):
//   - core.Unreachable denotes "no path" off-diagonal.
//   - The diagonal MUST be 0 before calling.
func floydWarshallInPlace(data []int64, n int) {
	var (
		k, i, j      int   // loop indices
		baseK, baseI int   // row offsets for k and i
		ik, kj, cand int64 // d[i,k], d[k,j], candidate via k
	)

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == core.Unreachable { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == core.Unreachable {
					continue
				}
				// saturating ik + kj
				if kj >= core.Unreachable-ik {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// Len returns the number of nodes (rows) in the table.
func (t *Table) Len() int { return len(t.names) }

// Names returns a copy of the row/column labels in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// At returns the shortest distance from → to, or core.Unreachable when the
// nodes are disconnected. Returns core.ErrNodeNotFound for unknown names.
func (t *Table) At(from, to string) (int64, error) {
	fi, ok := t.index[from]
	if !ok {
		return core.Unreachable, fmt.Errorf("matrix: %w: %q", core.ErrNodeNotFound, from)
	}
	ti, ok := t.index[to]
	if !ok {
		return core.Unreachable, fmt.Errorf("matrix: %w: %q", core.ErrNodeNotFound, to)
	}

	return t.dist[fi*len(t.names)+ti], nil
}

// Reachable reports whether a path joins from and to. Unknown names report false.
func (t *Table) Reachable(from, to string) bool {
	d, err := t.At(from, to)

	return err == nil && d != core.Unreachable
}

// Row returns a copy of the distances from the i-th node.
func (t *Table) Row(i int) []int64 {
	n := len(t.names)
	out := make([]int64, n)
	copy(out, t.dist[i*n:(i+1)*n])

	return out
}
