// SPDX-License-Identifier: MIT

// Package grid holds the cell model searched by the pathfinding engine.
//
// What:
//
//   - Grid is a rows×cols arena of Node values stored in row-major order.
//   - Every Node carries a fixed coordinate, a Role (Empty, Start, End, Wall)
//     and search metadata (Visited, OnPath, Distance, Heuristic, TotalCost).
//   - Node.Previous is an arena index (or NoPrevious), never a pointer, so a
//     cloned grid is fully independent of the original.
//   - The implicit graph is 4-connected with unit edge weights; Neighbors
//     yields cells in the fixed order up, down, left, right.
//
// Invariants:
//
//   - Exactly one Start and one End, Start ≠ End.
//   - A Wall is never placed on Start or End.
//   - Roles are fixed at construction. A grid is regenerated, never patched;
//     Reset only clears search metadata.
//
// Complexity:
//
//   - New, FromLayout, Clone, Reset: O(rows×cols) time and memory.
//   - Index, Coord, At, Neighbors:    O(1).
//
// Errors:
//
//   - ErrEmptyGrid:       rows or cols is not positive.
//   - ErrNonRectangular:  layout rows differ in length.
//   - ErrOutOfBounds:     a coordinate lies outside the grid.
//   - ErrMissingEndpoint: no Start or no End was supplied.
//   - ErrDuplicateRole:   more than one Start or End in a layout.
//   - ErrSameEndpoints:   Start and End share a cell.
//   - ErrWallOnEndpoint:  a wall was requested on Start or End.
package grid
