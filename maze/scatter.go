// SPDX-License-Identifier: MIT

package maze

import (
	"math/rand"

	"github.com/simplehardware/labyrinth/grid"
)

const (
	// DefaultWallProbability replaces a negative wall probability.
	DefaultWallProbability = 0.35
	// MaxWallProbability replaces a probability above 1.
	MaxWallProbability = 0.9

	scatterDraws = 1000
)

// Scatter overwrites g with a random field: border cells are walls and each
// interior cell becomes a wall with probability p. It then marks one Start
// and one Finish owned by player 1 on distinct floor cells, each found within
// a bounded number of random draws; a marker is skipped if no floor is hit.
// p < 0 is treated as DefaultWallProbability and p > 1 as MaxWallProbability.
// Complexity: O(n²) time.
func Scatter(g grid.Grid, p float64, rng *rand.Rand) error {
	if rng == nil {
		return ErrNeedRandSource
	}
	switch {
	case p < 0:
		p = DefaultWallProbability
	case p > 1:
		p = MaxWallProbability
	}

	n := g.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x == 0 || y == 0 || x == n-1 || y == n-1 || rng.Float64() < p {
				g.Set(x, y, grid.Wall, 0)
				continue
			}
			g.Set(x, y, grid.Floor, 0)
		}
	}

	if n < MinCarveSize {
		return nil
	}
	start, ok := drawFloor(g, rng, nil)
	if !ok {
		return nil
	}
	finish, ok := drawFloor(g, rng, &start)
	g.Set(start.X, start.Y, grid.Start, 1)
	if ok {
		g.Set(finish.X, finish.Y, grid.Finish, 1)
	}
	return nil
}

// drawFloor samples interior cells until it hits a Floor other than skip.
func drawFloor(g grid.Grid, rng *rand.Rand, skip *grid.Point) (grid.Point, bool) {
	span := max(1, g.Size()-2)
	for i := 0; i < scatterDraws; i++ {
		p := grid.Point{X: 1 + rng.Intn(span), Y: 1 + rng.Intn(span)}
		if skip != nil && p == *skip {
			continue
		}
		if g.Get(p.X, p.Y).State == grid.Floor {
			return p, true
		}
	}
	return grid.Point{}, false
}
