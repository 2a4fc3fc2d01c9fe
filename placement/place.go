// SPDX-License-Identifier: MIT

package placement

import (
	"fmt"
	"math"
	"sort"

	"github.com/simplehardware/labyrinth/grid"
	"github.com/simplehardware/labyrinth/reach"
)

// Placement describes an accepted layout.
type Placement struct {
	Finish    grid.Point
	Starts    []grid.Point // Starts[i] is owned by player i+1
	Distances []int        // Distances[i] is the BFS distance of Starts[i] to Finish
	Mean      float64
	Attempts  int // attempts used, including the accepted one
}

// Spread returns the gap between the farthest and nearest start.
func (p *Placement) Spread() int {
	if len(p.Distances) == 0 {
		return 0
	}
	lo, hi := math.MaxInt, 0
	for _, d := range p.Distances {
		lo, hi = min(lo, d), max(hi, d)
	}
	return hi - lo
}

type candidate struct {
	at   grid.Point
	dist int
}

// Place picks a finish and players starts on g's Floor cells with balanced
// start-to-finish distances. g is written only when a placement is accepted.
// Complexity: O(Attempts × n²) time, O(n²) memory.
func Place(g grid.Grid, players int, opts ...Option) (*Placement, error) {
	if players < 1 || players > grid.MaxPlayers {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayers, players)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	n := g.Size()
	floors := grid.Collect(g, func(c grid.Cell) bool { return c.State == grid.Floor })
	if len(floors) < players+1 {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewFloors, len(floors), players+1)
	}
	sortByCenter(floors, n)
	pool := min(len(floors), cfg.centerPool)
	minDist := n / 3

	for attempt := 1; attempt <= cfg.attempts; attempt++ {
		finish := floors[cfg.rng.Intn(pool)]
		res, err := reach.Distances(g, finish)
		if err != nil {
			return nil, err
		}

		var cands []candidate
		for _, f := range floors {
			if d := res.Distance(f); d > minDist {
				cands = append(cands, candidate{at: f, dist: d})
			}
		}
		if len(cands) < players {
			cfg.logger.Debug("placement attempt rejected",
				"attempt", attempt, "finish", finish, "candidates", len(cands))
			continue
		}

		cfg.rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
		chosen := cands[:players]
		mean, ok := cfg.balanced(chosen)
		if !ok {
			cfg.logger.Debug("placement attempt unbalanced",
				"attempt", attempt, "finish", finish, "mean", mean)
			continue
		}

		pl := &Placement{Finish: finish, Mean: mean, Attempts: attempt}
		clearMarkers(g)
		g.Set(finish.X, finish.Y, grid.Finish, 0)
		for i, c := range chosen {
			g.Set(c.at.X, c.at.Y, grid.Start, i+1)
			pl.Starts = append(pl.Starts, c.at)
			pl.Distances = append(pl.Distances, c.dist)
		}
		cfg.logger.Debug("placement accepted",
			"attempt", attempt, "finish", finish, "distances", pl.Distances)
		return pl, nil
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrUnbalanced, cfg.attempts)
}

// balanced returns the mean distance of cs and whether cs passes the balance test.
func (c config) balanced(cs []candidate) (float64, bool) {
	sum, lo, hi := 0, math.MaxInt, 0
	for _, s := range cs {
		sum += s.dist
		lo, hi = min(lo, s.dist), max(hi, s.dist)
	}
	mean := float64(sum) / float64(len(cs))
	tol := mean * c.tolerance

	if c.strictSpread {
		return mean, float64(hi-lo) <= tol
	}
	for _, s := range cs {
		if math.Abs(float64(s.dist)-mean) > tol {
			return mean, false
		}
	}
	return mean, true
}

// sortByCenter orders pts by Euclidean distance to (n/2, n/2), keeping
// row-major order among equals.
func sortByCenter(pts []grid.Point, n int) {
	cx, cy := float64(n/2), float64(n/2)
	sort.SliceStable(pts, func(i, j int) bool {
		di := math.Hypot(float64(pts[i].X)-cx, float64(pts[i].Y)-cy)
		dj := math.Hypot(float64(pts[j].X)-cx, float64(pts[j].Y)-cy)
		return di < dj
	})
}

// clearMarkers turns every Start and Finish cell back into Floor.
func clearMarkers(g grid.Grid) {
	grid.Each(g, func(p grid.Point, c grid.Cell) {
		if c.State == grid.Start || c.State == grid.Finish {
			g.Set(p.X, p.Y, grid.Floor, 0)
		}
	})
}
