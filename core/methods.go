// Package core: Graph method implementations
//
// This file provides the thread-safe mutation (AddRoad) and point-query
// operations on the Graph defined in types.go. Name resolution goes through
// the immutable index map, so it needs no lock; matrix access takes mu.

package core

import "fmt"

// AddRoad sets the length of the undirected road between from and to.
// Both symmetric matrix entries are written; an existing road is overwritten
// (last write wins).
//
// Returns ErrNodeNotFound if either name is unknown, ErrSelfRoad if
// from == to, ErrNegativeWeight if weight < 0, and ErrBadWeight if weight
// equals Unreachable.
// Complexity: O(1).
func (g *Graph) AddRoad(from, to string, weight int64) error {
	// 1) Resolve both endpoints before touching the matrix.
	fi, err := g.Index(from)
	if err != nil {
		return err
	}
	ti, err := g.Index(to)
	if err != nil {
		return err
	}

	// 2) Validate the road itself.
	if fi == ti {
		return fmt.Errorf("%w: %q", ErrSelfRoad, from)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s-%s weight=%d", ErrNegativeWeight, from, to, weight)
	}
	if weight == Unreachable {
		return fmt.Errorf("%w: %s-%s", ErrBadWeight, from, to)
	}

	// 3) Write both mirror entries under the write lock.
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.names)
	if g.weights[fi*n+ti] == Unreachable {
		g.roads++
	}
	g.weights[fi*n+ti] = weight
	g.weights[ti*n+fi] = weight

	return nil
}

// Index returns the declaration-order position of the named node.
// Returns ErrNodeNotFound (wrapped with the name) if it is absent.
// Complexity: O(1).
func (g *Graph) Index(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return i, nil
}

// HasNode reports whether name is one of the graph's nodes.
// Complexity: O(1).
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]

	return ok
}

// Nodes returns a copy of the node names in declaration order.
// Complexity: O(N).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.names) }

// RoadCount returns the number of distinct undirected roads.
func (g *Graph) RoadCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.roads
}

// Weight returns the direct road length between from and to, 0 when
// from == to, or Unreachable when no direct road exists.
// Returns ErrNodeNotFound if either name is unknown.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, error) {
	fi, err := g.Index(from)
	if err != nil {
		return Unreachable, err
	}
	ti, err := g.Index(to)
	if err != nil {
		return Unreachable, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weights[fi*len(g.names)+ti], nil
}

// HasRoad reports whether a direct road joins from and to.
// Unknown names and from == to both report false.
func (g *Graph) HasRoad(from, to string) bool {
	if from == to {
		return false
	}
	w, err := g.Weight(from, to)

	return err == nil && w != Unreachable
}
