package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/roadnet/core"
)

// Tree is the result of ShortestPaths: the shortest distance from one source
// to every node, plus one predecessor per reached node. It is immutable.
type Tree struct {
	snap     *core.Snapshot
	source   int
	dist     []int64
	prev     []int
	frontier Frontier
}

// Source returns the name of the source node.
func (t *Tree) Source() string { return t.snap.Name(t.source) }

// Frontier returns the strategy the tree was computed with.
func (t *Tree) Frontier() Frontier { return t.frontier }

// DistanceTo returns the shortest distance from the source to name.
// Returns core.ErrNodeNotFound for an unknown name and ErrUnreachable,
// together with core.Unreachable, when no path exists.
func (t *Tree) DistanceTo(name string) (int64, error) {
	i, err := t.snap.Index(name)
	if err != nil {
		return core.Unreachable, fmt.Errorf("dijkstra: target: %w", err)
	}
	if t.dist[i] == core.Unreachable {
		return core.Unreachable, t.unreachable(i)
	}

	return t.dist[i], nil
}

// Reachable reports whether name is a node connected to the source.
func (t *Tree) Reachable(name string) bool {
	_, err := t.DistanceTo(name)

	return err == nil
}

// Predecessor returns the node preceding name on its shortest route.
// It reports false for the source, unreached nodes and unknown names.
func (t *Tree) Predecessor(name string) (string, bool) {
	i, err := t.snap.Index(name)
	if err != nil || t.prev[i] == noPredecessor {
		return "", false
	}

	return t.snap.Name(t.prev[i]), true
}

// Distances returns every reachable node's distance keyed by name.
// Unreachable nodes are omitted.
func (t *Tree) Distances() map[string]int64 {
	out := make(map[string]int64, len(t.dist))
	for i, d := range t.dist {
		if d != core.Unreachable {
			out[t.snap.Name(i)] = d
		}
	}

	return out
}

// RouteTo reconstructs the shortest route from the source to name by
// following predecessors backwards, then reversing.
//
// Returns ErrUnreachable and an empty Route when the chain does not lead
// back to the source.
func (t *Tree) RouteTo(name string) (Route, error) {
	target, err := t.snap.Index(name)
	if err != nil {
		return Route{}, fmt.Errorf("dijkstra: target: %w", err)
	}
	if t.dist[target] == core.Unreachable {
		return Route{}, t.unreachable(target)
	}

	// Walk back at most N nodes; a longer chain would mean a cycle.
	nodes := make([]string, 0, 8)
	at := target
	for at != noPredecessor && len(nodes) < len(t.prev) {
		nodes = append(nodes, t.snap.Name(at))
		if at == t.source {
			break
		}
		at = t.prev[at]
	}
	if at != t.source {
		return Route{}, t.unreachable(target)
	}
	slices.Reverse(nodes)

	return Route{Nodes: nodes, Distance: t.dist[target]}, nil
}

func (t *Tree) unreachable(target int) error {
	return fmt.Errorf("%w: %s -> %s", ErrUnreachable, t.Source(), t.snap.Name(target))
}
