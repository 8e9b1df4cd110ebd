// Package core provides the fixed-topology, thread-safe road network Graph
// used by every other roadnet package.
//
// A Graph G = (V,E) is built once from an ordered list of unique node names
// and then grows only by adding undirected, non-negative weighted roads:
//
//   - Nodes are fixed at construction: no insertion or removal afterwards.
//   - Name lookups are O(1) through an internal name→index map.
//   - Weights live in a dense, row-major N×N matrix:
//     weights[i*N+j] = road length between node i and node j.
//   - The matrix is symmetric, its diagonal is always 0, and a missing road
//     is represented by the Unreachable sentinel (math.MaxInt64).
//   - A single sync.RWMutex guards the matrix; readers run in parallel,
//     AddRoad is serialized against them.
//
// Why a dense matrix?
//
//   - Road networks handled here are small (tens of nodes).
//   - Weight(i,j) is a single slice index, with no hashing on the hot path.
//   - Snapshot() copies the whole topology in one allocation, which makes
//     copy-on-query isolation cheap for shortest-path searches.
//
// Core Methods:
//
//	// Construction
//	NewGraph(names []string) (*Graph, error)       // O(N²)
//
//	// Mutation
//	AddRoad(from, to string, weight int64) error   // O(1)
//
//	// Query
//	Nodes() []string                               // O(N), declaration order
//	NodeCount() int                                // O(1)
//	HasNode(name string) bool                      // O(1)
//	Index(name string) (int, error)                // O(1)
//	Weight(from, to string) (int64, error)         // O(1)
//	HasRoad(from, to string) bool                  // O(1)
//	RoadCount() int                                // O(1)
//	Neighbors(name string) ([]Road, error)         // O(N), declaration order
//	Roads() []Road                                 // O(N²)
//
//	// Isolation
//	Snapshot() *Snapshot                           // O(N²) copy under read lock
//
// Errors:
//
//	ErrEmptyNodeName  – zero-length node name
//	ErrDuplicateNode  – the same name given twice to NewGraph
//	ErrNodeNotFound   – a name absent from the node list
//	ErrSelfRoad       – a road whose endpoints are the same node
//	ErrNegativeWeight – a road with weight < 0
//	ErrBadWeight      – a road whose weight equals the Unreachable sentinel
//
// All sentinel errors are wrapped with the offending name or weight; test
// them with errors.Is.
package core
