// SPDX-License-Identifier: MIT

// Package reach runs breadth-first search over a grid.Grid, returning
// shortest-path distances, reachability answers and passable regions.
//
// Movement uses the four orthogonal neighbours (N, E, S, W). Cells whose
// state is impassable (Wall unless WithImpassable says otherwise) are never
// entered; the source itself is always expanded.
//
// Complexity:
//
//   - Distances, IsReachable: O(n²) time, O(n²) memory on an n×n grid.
//   - Regions:                O(n²) time, O(n²) memory.
//
// Options:
//
//   - WithImpassable(states...) replaces the impassable set.
//   - WithMaxDepth(d)           stops expanding beyond depth d (d > 0).
//
// Errors:
//
//   - ErrSourceOutOfBounds if the source lies outside the grid.
//   - ErrNoPath            from Result.PathTo for unreached targets.
package reach
