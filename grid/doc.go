// SPDX-License-Identifier: MIT

// Package grid defines the square cell grid shared by every labyrinth package.
//
// What:
//
//   - State is the closed set of cell categories: Floor, Wall, Start, Finish,
//     Sheet and the 26 lettered forms FormA..FormZ.
//   - Cell pairs a State with an owning player (0 = unowned, 1..8 = players).
//   - Grid is the narrow Size/Get/Set contract consumed by reach, maze,
//     placement and validate; Board is the in-memory implementation.
//   - Format/Parse convert a grid to and from the slash-delimited row layout
//     (glyph + owner digit per cell) used for fixtures and CLI output.
//
// Invariants:
//
//   - Owner is meaningful only for Start, Finish and Form states; setting any
//     other state resets the owner to 0.
//   - Coordinates are (x, y) with 0 <= x, y < Size().
//
// Errors:
//
//   - ErrEmptyLayout:  text layout has no rows.
//   - ErrNonSquare:    row count and row width differ.
//   - ErrMalformedRow: a row has an odd number of characters.
package grid
