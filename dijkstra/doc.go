// Package dijkstra computes shortest routes between named nodes of a
// core.Graph with Dijkstra's minimum-distance-first relaxation.
//
// Overview:
//
//   - ShortestPaths builds a shortest-path Tree from one source node to every
//     node of the graph.
//   - ShortestRoute answers a single start→end query: the ordered node names of
//     one shortest route and its total weight.
//   - Every query works on its own core.Snapshot and owns its distance,
//     predecessor and visited state, so repeated queries are idempotent and
//     concurrent queries never interfere.
//
// Algorithm:
//
//   - dist[v] = Unreachable for all v, dist[source] = 0, prev[v] = none.
//   - Repeat N−1 times, or until no unvisited node has a finite distance:
//     1. pick the unvisited node u with the smallest dist (lowest index on ties);
//     2. mark u visited;
//     3. for every unvisited v with a direct road u—v, if dist[u]+w(u,v) < dist[v],
//     set dist[v] = dist[u]+w(u,v) and prev[v] = u.
//   - A route to t is read by following prev from t back to source. If t was
//     never reached the query fails with ErrUnreachable and an empty Route:
//     a partial chain is never reported as a path.
//
// Frontier strategies:
//
//   - FrontierScan (default): linear scan for the nearest unvisited node,
//     O(N²) overall. The natural fit for a dense matrix.
//   - FrontierHeap: container/heap min-heap keyed by (distance, index) with
//     lazy decrease-key, O((N + E) log N). Visits nodes in exactly the same
//     order as FrontierScan, so both produce identical trees.
//
// Arithmetic:
//
//   - Candidate distances saturate at core.Unreachable; huge road weights can
//     never overflow int64 into a negative "shorter" distance.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptySource, ErrEmptyTarget: invalid arguments.
//   - core.ErrNodeNotFound: start or end is not a node of the graph
//     (wrapped; test with errors.Is).
//   - ErrUnreachable: end lies in a different connected component than start.
//   - ErrBadFrontier: WithFrontier received an unknown strategy.
//
// Hooks:
//
//   - WithOnVisit(fn) runs fn(name, dist) when a node's distance becomes final.
//   - WithOnRelax(fn) runs fn(from, to, newDist) on every strict improvement.
//     Hooks run synchronously on the calling goroutine.
//
// Thread safety:
//
//   - Safe to call concurrently with other queries and with core.Graph.AddRoad;
//     a query sees the graph as it was when its snapshot was taken.
package dijkstra
