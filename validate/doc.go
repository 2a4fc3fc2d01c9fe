// SPDX-License-Identifier: MIT

// Package validate inspects a grid.Grid against the level rules and reports
// every violation it finds instead of stopping at the first one.
//
// Validate checks, per player (the owners seen on Start, Finish and Form
// cells, in ascending order):
//
//   - exactly one Start and exactly one Finish (errors),
//   - owned form letters form a contiguous prefix A..max (error naming the
//     first missing letter),
//
// and across players that the distinct form counts differ by at most
// BalanceGap (warning only).
//
// Reachability is not part of Validate. CheckPathReachability,
// CheckStartsReachFinishes and CheckPlayerBalance are separate opt-in checks.
// Validate never mutates the grid and is deterministic.
package validate
