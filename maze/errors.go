// SPDX-License-Identifier: MIT

package maze

import "errors"

// ErrGridTooSmall indicates the grid cannot hold a single lattice cell.
var ErrGridTooSmall = errors.New("maze: grid too small")

// ErrNeedRandSource indicates a nil *rand.Rand was supplied.
var ErrNeedRandSource = errors.New("maze: rng is required")
