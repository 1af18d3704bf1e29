// SPDX-License-Identifier: MIT

// Package pathfinding searches a grid.Grid from Start to End and reports
// every observable transition as a step.Step.
//
// What
//
//   - Run(g, algo, opts...) validates the grid and the algorithm, then returns
//     a single-use iter.Seq[step.Step]. Ranging it performs the search,
//     mutating g's search metadata (Visited, Distance, Previous, ...).
//   - Every run ends in exactly one terminal step: PathFound, Exhausted, or
//     Fault (step budget, broken predecessor chain).
//   - Neighbors are expanded up, down, left, right.
//
// Algorithms
//
//   - DFS:          explicit stack, Previous overwritten by the latest pusher.
//   - BFS:          explicit FIFO queue, Previous set on first discovery only,
//     so the path has the minimum number of edges.
//   - Dijkstra:     binary heap with lazy decrease-key; equal distances are
//     extracted in insertion order.
//   - AStar:        f = g + Manhattan(·, End); equal f values are extracted
//     in insertion order (FIFO). Manhattan distance is consistent on a
//     4-connected unit grid, so closed nodes are never reopened.
//   - BellmanFord:  relaxes every edge for |V|−1 rounds (V = non-wall cells),
//     stopping after a round without updates. When End stays unreached the
//     run ends in Exhausted, exactly like the other algorithms.
//
// Path reconstruction
//
//	Previous links are followed from End to Start. Every intermediate node is
//	marked OnPath and reported with PathMark in End→Start order; PathFound
//	then carries the whole Start→End path.
//
// Complexity (V = rows·cols)
//
//   - DFS, BFS:     O(V) time and memory.
//   - Dijkstra, A*: O(V log V) time, O(V) memory.
//   - BellmanFord:  O(V²) time worst case, O(1) extra memory.
//
// Errors
//
//   - ErrNilGrid, ErrInvalidGrid (both wrap step.ErrConfiguration).
//   - step.ErrUnsupportedAlgorithm for an unknown Algorithm.
//   - ErrBrokenChain inside a Fault step if Previous links do not lead to Start.
package pathfinding
