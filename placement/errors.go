// SPDX-License-Identifier: MIT

package placement

import "errors"

var (
	// ErrInvalidPlayers indicates a player count outside 1..grid.MaxPlayers.
	ErrInvalidPlayers = errors.New("placement: invalid player count")
	// ErrTooFewFloors indicates the grid has fewer than players+1 Floor cells.
	ErrTooFewFloors = errors.New("placement: not enough floor cells")
	// ErrUnbalanced indicates the retry budget ran out without a balanced layout.
	ErrUnbalanced = errors.New("placement: no balanced placement found")
	// ErrNeedRandSource indicates Place was called without WithRand or WithSeed.
	ErrNeedRandSource = errors.New("placement: rng is required")
)
