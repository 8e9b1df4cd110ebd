// Package dijkstra implements the relaxation loop and its entry points.
package dijkstra

import (
	"fmt"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/roadnet/core"
)

// noPredecessor marks a node whose predecessor is unknown: the source itself,
// or a node never reached.
const noPredecessor = -1

// ShortestPaths computes shortest distances and predecessors from source to
// every node of g.
//
// Preconditions and validation (in order):
//  1. source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. the frontier strategy must be known (ErrBadFrontier).
//  4. g must contain source (core.ErrNodeNotFound, wrapped).
//
// Complexity:
//
//   - FrontierScan: Time O(N²), Space O(N²) for the snapshot.
//   - FrontierHeap: Time O(N² + E log N) (the matrix row scan dominates).
func ShortestPaths(g *core.Graph, source string, opts ...Option) (*Tree, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Frontier != FrontierScan && cfg.Frontier != FrontierHeap {
		return nil, fmt.Errorf("%w: %d", ErrBadFrontier, int(cfg.Frontier))
	}

	// 3) Isolate this query from concurrent AddRoad calls.
	snap := g.Snapshot()
	src, err := snap.Index(source)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	// 4) Run.
	r := newRunner(snap, src, cfg)
	r.run()

	return &Tree{
		snap:     snap,
		source:   src,
		dist:     r.dist,
		prev:     r.prev,
		frontier: cfg.Frontier,
	}, nil
}

// ShortestRoute returns one shortest route from start to end and its weight.
//
// Returns ErrEmptySource / ErrEmptyTarget for empty names, ErrNilGraph for a
// nil graph, core.ErrNodeNotFound if either name is unknown, and
// ErrUnreachable (with an empty Route) if no path exists.
func ShortestRoute(g *core.Graph, start, end string, opts ...Option) (Route, error) {
	if start == "" {
		return Route{}, ErrEmptySource
	}
	if end == "" {
		return Route{}, ErrEmptyTarget
	}
	if g == nil {
		return Route{}, ErrNilGraph
	}
	// Resolve end before paying for the search.
	if _, err := g.Index(end); err != nil {
		return Route{}, fmt.Errorf("dijkstra: target: %w", err)
	}

	tree, err := ShortestPaths(g, start, opts...)
	if err != nil {
		return Route{}, err
	}

	return tree.RouteTo(end)
}

// runner holds the mutable state of a single search.
type runner struct {
	snap    *core.Snapshot
	opts    Options
	source  int
	dist    []int64  // best known distance from source
	prev    []int    // predecessor on the best known path, or noPredecessor
	visited *bit.Set // nodes whose distance is final
	front   frontier
}

func newRunner(snap *core.Snapshot, source int, cfg Options) *runner {
	n := snap.Len()
	r := &runner{
		snap:    snap,
		opts:    cfg,
		source:  source,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: new(bit.Set),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = core.Unreachable
		r.prev[v] = noPredecessor
	}
	r.dist[source] = 0

	switch cfg.Frontier {
	case FrontierHeap:
		r.front = newHeapFrontier(r.dist, r.visited, n)
	default:
		r.front = &scanFrontier{dist: r.dist, visited: r.visited}
	}
	r.front.push(source, 0)

	return r
}

// run is the main loop. After N−1 finalized nodes the last one has nothing
// left to relax, so the loop stops there.
func (r *runner) run() {
	n := r.snap.Len()
	var u int
	var ok bool
	for step := 0; step < n-1; step++ {
		// 1) Nearest unvisited node with finite distance; none left means the
		//    rest of the graph is unreachable.
		if u, ok = r.front.pop(); !ok {
			break
		}

		// 2) Its distance is final.
		r.visited.Add(u)
		r.opts.OnVisit(r.snap.Name(u), r.dist[u])

		// 3) Relax its roads.
		r.relax(u)
	}
}

// relax tries to improve every unvisited neighbor of u through u.
// Only strict improvements are recorded, so the first-found route wins ties.
func (r *runner) relax(u int) {
	n := r.snap.Len()
	du := r.dist[u]
	var v int
	var w, cand int64
	for v = 0; v < n; v++ {
		if v == u || r.visited.Contains(v) {
			continue
		}
		w = r.snap.Weight(u, v)
		if w == core.Unreachable {
			continue // no direct road
		}
		cand = addSaturated(du, w)
		if cand >= r.dist[v] {
			continue
		}
		r.dist[v] = cand
		r.prev[v] = u
		r.front.push(v, cand)
		r.opts.OnRelax(r.snap.Name(u), r.snap.Name(v), cand)
	}
}

// addSaturated returns a+b for non-negative a and b, clamped to core.Unreachable.
func addSaturated(a, b int64) int64 {
	if b >= core.Unreachable-a {
		return core.Unreachable
	}

	return a + b
}
