// Package core defines the Graph, Road and Snapshot types together with
// the sentinel errors shared by the road network packages.
//
// This file declares Graph, Road, the Unreachable sentinel, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Unreachable is the "no road" sentinel stored in the weight matrix and
// reported as the distance between nodes that are not connected.
const Unreachable int64 = math.MaxInt64

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that a node name is the empty string.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrDuplicateNode indicates that NewGraph received the same name twice.
	ErrDuplicateNode = errors.New("core: duplicate node name")

	// ErrNodeNotFound indicates an operation referenced a name absent from the node list.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfRoad indicates a road from a node to itself; the diagonal is fixed at 0.
	ErrSelfRoad = errors.New("core: road endpoints must differ")

	// ErrNegativeWeight indicates a road with a negative length.
	ErrNegativeWeight = errors.New("core: negative road weight")

	// ErrBadWeight indicates a road whose length collides with the Unreachable sentinel.
	ErrBadWeight = errors.New("core: road weight equals the unreachable sentinel")
)

// Road is a direct, undirected connection between two named nodes.
type Road struct {
	// From is the name of the first endpoint.
	From string

	// To is the name of the second endpoint.
	To string

	// Weight is the road length; always in [0, Unreachable).
	Weight int64
}

// String renders the road as "From-To(Weight)".
func (r Road) String() string {
	return fmt.Sprintf("%s-%s(%d)", r.From, r.To, r.Weight)
}

// Graph is a fixed set of named nodes joined by undirected weighted roads.
//
// names and index are immutable after NewGraph; mu guards weights and roads.
type Graph struct {
	mu sync.RWMutex // guards weights and roads

	names []string       // node names in declaration order
	index map[string]int // node name → position in names

	// weights is the row-major N×N matrix: weights[i*n+j].
	weights []int64
	roads   int // number of distinct undirected roads
}

// NewGraph creates a Graph over the given node names, in the given order.
//
// Every off-diagonal entry of the weight matrix starts as Unreachable and
// every diagonal entry as 0. An empty names slice yields an empty graph.
//
// Returns ErrEmptyNodeName or ErrDuplicateNode (wrapped with the offending
// name) if names is not a list of unique, non-empty strings.
// Complexity: O(N²) time and space.
func NewGraph(names []string) (*Graph, error) {
	n := len(names)
	g := &Graph{
		names:   make([]string, n),
		index:   make(map[string]int, n),
		weights: make([]int64, n*n),
	}

	// 1) Copy names and build the lookup map, rejecting empties and duplicates.
	var i int
	var name string
	for i, name = range names {
		if name == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyNodeName, i)
		}
		if _, exists := g.index[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		g.names[i] = name
		g.index[name] = i
	}

	// 2) Fill the matrix: 0 on the diagonal, Unreachable elsewhere.
	for i = range g.weights {
		g.weights[i] = Unreachable
	}
	for i = 0; i < n; i++ {
		g.weights[i*n+i] = 0
	}

	return g, nil
}
