// SPDX-License-Identifier: MIT
// Package: labyrinth/maze
//
// Package maze lays out walls and floors on a grid.Grid.
//
// Carve builds a "recursive backtracker" maze: the grid is filled with walls,
// then a randomized depth-first walk over the odd-coordinate lattice knocks
// down the wall between each lattice cell and the neighbour it moves to.
// The result is a spanning tree over the carved lattice: exactly one simple
// path joins any two floor cells, so every floor cell reaches every other.
// The walk keeps its own stack, so large grids do not grow the call stack.
//
// Scatter fills the interior with independent random walls and drops one
// start and one finish for player 1. It gives no connectivity guarantee.
//
// Randomness always comes from the caller's *rand.Rand; seed it to replay a
// layout exactly.
//
// Errors:
//
//   - ErrGridTooSmall   if the grid is smaller than MinCarveSize.
//   - ErrNeedRandSource if rng is nil.
package maze
