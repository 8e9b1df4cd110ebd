// SPDX-License-Identifier: MIT

// Package matrix computes all-pairs shortest distances over a core.Graph.
//
// Purpose:
//   - Produce a dense N×N distance Table with Floyd–Warshall, directly from
//     the graph's row-major weight matrix.
//   - Serve the CLI distance table and act as an independent check of the
//     single-source searches in package dijkstra.
//
// Contract:
//   - core.Unreachable means "no path"; the diagonal is 0.
//   - Sums saturate at core.Unreachable, so no overflow can fake a short path.
//   - Loop order is fixed (k → i → j) and only strict improvements are
//     written, so results are deterministic.
//
// Complexity:
//   - AllPairs: Time O(N³), Space O(N²).
//   - Table.At: O(1).
package matrix
