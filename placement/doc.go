// SPDX-License-Identifier: MIT
// Package: labyrinth/placement
//
// Package placement marks one finish and N player starts on a carved grid so
// that every start lies roughly the same walking distance from the finish.
//
// Each attempt:
//  1. collects all Floor cells (row-major),
//  2. samples the finish uniformly among the CenterPool floors closest to the
//     grid centre,
//  3. runs reach.Distances from the finish,
//  4. keeps floors farther than n/3 as start candidates,
//  5. shuffles the candidates and takes the first N,
//  6. accepts when every distance lies within Tolerance × mean of the mean.
//
// Up to Attempts attempts are made. Only an accepted attempt writes to the
// grid: existing Start/Finish cells become Floor, the finish is set with
// owner 0 and start i with owner i+1.
//
// Errors:
//
//   - ErrInvalidPlayers  players outside 1..grid.MaxPlayers.
//   - ErrTooFewFloors    fewer than players+1 Floor cells.
//   - ErrUnbalanced      no attempt passed the balance test.
//   - ErrNeedRandSource  no RNG configured.
package placement
