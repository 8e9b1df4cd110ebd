// Package dijkstra defines result types and configuration options
// for shortest-route queries on a core.Graph.
//
// Options:
//
//	– Frontier: strategy used to pick the next closest unvisited node
//	  (FrontierScan by default, or FrontierHeap).
//	– OnVisit:  hook called once per node whose distance becomes final.
//	– OnRelax:  hook called every time a node's tentative distance improves.
//
// Errors (sentinel):
//
//	– ErrNilGraph     if the provided graph pointer is nil.
//	– ErrEmptySource  if the start name is empty.
//	– ErrEmptyTarget  if the end name is empty.
//	– ErrUnreachable  if the end node has no finite-distance path from start.
//	– core.ErrNodeNotFound (wrapped) if a name is absent from the graph.
package dijkstra

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the start node name is empty.
	ErrEmptySource = errors.New("dijkstra: source node name is empty")

	// ErrEmptyTarget indicates that the end node name is empty.
	ErrEmptyTarget = errors.New("dijkstra: target node name is empty")

	// ErrUnreachable indicates that no path joins the source and the target.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrBadFrontier indicates an unknown Frontier value.
	ErrBadFrontier = errors.New("dijkstra: unknown frontier strategy")
)

// Frontier selects how the next closest unvisited node is found.
//
// Both strategies visit nodes in the same order: smallest tentative distance
// first, ties broken by the lowest declaration index. They differ only in cost.
type Frontier int

const (
	// FrontierScan scans every node for the nearest unvisited one: O(N) per step,
	// O(N²) total. Well suited to the dense, small graphs core.Graph targets.
	FrontierScan Frontier = iota

	// FrontierHeap keeps a min-heap keyed by (distance, index) with lazy
	// decrease-key: O((N + E) log N) total.
	FrontierHeap
)

// String returns the lower-case strategy name.
func (f Frontier) String() string {
	switch f {
	case FrontierScan:
		return "scan"
	case FrontierHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// ParseFrontier maps "scan" or "heap" (case-insensitive) to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch strings.ToLower(s) {
	case "scan", "":
		return FrontierScan, nil
	case "heap":
		return FrontierHeap, nil
	default:
		return FrontierScan, ErrBadFrontier
	}
}

// Route is the answer to a single start→end query.
//
// Nodes lists the node names from start to end inclusive; Distance is the
// sum of road weights along Nodes. A Route for start == end is [start], 0.
type Route struct {
	Nodes    []string
	Distance int64
}

// String joins the route nodes with " -> ".
func (r Route) String() string {
	return strings.Join(r.Nodes, " -> ")
}

// Hops returns the number of roads travelled.
func (r Route) Hops() int {
	if len(r.Nodes) == 0 {
		return 0
	}

	return len(r.Nodes) - 1
}

// Options configures a shortest-path search.
type Options struct {
	Frontier Frontier                             // next-node selection strategy
	OnVisit  func(name string, dist int64)        // called when a node is finalized
	OnRelax  func(from, to string, newDist int64) // called on every strict improvement
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithFrontier selects the frontier strategy. Unknown values make the
// search fail with ErrBadFrontier.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithOnVisit registers a callback run each time a node's distance becomes final.
func WithOnVisit(fn func(name string, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRelax registers a callback run each time a tentative distance improves.
func WithOnRelax(fn func(from, to string, newDist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns FrontierScan with no-op hooks.
func DefaultOptions() Options {
	return Options{
		Frontier: FrontierScan,
		OnVisit:  func(string, int64) {},
		OnRelax:  func(string, string, int64) {},
	}
}
