// SPDX-License-Identifier: MIT

package reach

import (
	"errors"
	"fmt"

	"github.com/simplehardware/labyrinth/grid"
)

// Unreachable is the distance reported for cells BFS never reached.
const Unreachable = -1

var (
	// ErrSourceOutOfBounds is returned when the BFS source is not on the grid.
	ErrSourceOutOfBounds = errors.New("reach: source out of bounds")
	// ErrNoPath is returned by PathTo when the target was not reached.
	ErrNoPath = errors.New("reach: no path to target")
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Impassable lists the states BFS never enters.
	Impassable map[grid.State]bool
	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int
}

// DefaultOptions treats Wall as the only impassable state, with no depth limit.
func DefaultOptions() Options {
	return Options{
		Impassable: map[grid.State]bool{grid.Wall: true},
	}
}

// WithImpassable replaces the impassable set with states.
// An empty call makes every cell passable.
func WithImpassable(states ...grid.State) Option {
	return func(o *Options) {
		o.Impassable = make(map[grid.State]bool, len(states))
		for _, s := range states {
			o.Impassable[s] = true
		}
	}
}

// WithMaxDepth limits the search to depth d. Panics on negative d;
// d == 0 means no limit.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("reach: WithMaxDepth(%d)", d))
	}
	return func(o *Options) {
		o.MaxDepth = d
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result holds the outcome of a Distances search.
// dist and parent are row-major; parent is -1 for the source and unreached cells.
type Result struct {
	Source grid.Point
	n      int
	dist   []int
	parent []int
}

// Distance returns the BFS distance of p from the source, or Unreachable.
func (r *Result) Distance(p grid.Point) int {
	if !grid.InBounds(r.n, p) {
		return Unreachable
	}
	return r.dist[p.Y*r.n+p.X]
}

// Reached reports whether p was reached from the source.
func (r *Result) Reached(p grid.Point) bool {
	return r.Distance(p) != Unreachable
}

// Farthest returns a reached cell with the greatest distance (first in
// row-major order on ties) and that distance.
func (r *Result) Farthest() (grid.Point, int) {
	best, bestD := r.Source, 0
	for i, d := range r.dist {
		if d > bestD {
			best, bestD = grid.Point{X: i % r.n, Y: i / r.n}, d
		}
	}
	return best, bestD
}

// PathTo reconstructs a shortest path from the source to dest, inclusive.
func (r *Result) PathTo(dest grid.Point) ([]grid.Point, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w (%d,%d)", ErrNoPath, dest.X, dest.Y)
	}
	path := make([]grid.Point, 0, r.Distance(dest)+1)
	for i := dest.Y*r.n + dest.X; i >= 0; i = r.parent[i] {
		path = append(path, grid.Point{X: i % r.n, Y: i / r.n})
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
