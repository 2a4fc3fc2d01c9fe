// SPDX-License-Identifier: MIT

package reach

import "github.com/simplehardware/labyrinth/grid"

// offsets are the orthogonal neighbour steps: N, E, S, W.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// walker encapsulates mutable BFS state over a row-major index space.
type walker struct {
	g      grid.Grid
	n      int
	opts   Options
	queue  []int
	dist   []int
	parent []int
}

func newWalker(g grid.Grid, opts Options) *walker {
	n := g.Size()
	w := &walker{
		g:      g,
		n:      n,
		opts:   opts,
		queue:  make([]int, 0, n*n),
		dist:   make([]int, n*n),
		parent: make([]int, n*n),
	}
	for i := range w.dist {
		w.dist[i] = Unreachable
		w.parent[i] = -1
	}
	return w
}

// run searches from src. If stop is non-negative the search returns true as
// soon as that index is dequeued.
func (w *walker) run(src grid.Point, stop int) bool {
	s := src.Y*w.n + src.X
	w.dist[s] = 0
	w.queue = append(w.queue, s)

	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		if u == stop {
			return true
		}
		if w.opts.MaxDepth > 0 && w.dist[u] >= w.opts.MaxDepth {
			continue
		}
		ux, uy := u%w.n, u/w.n
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if vx < 0 || vy < 0 || vx >= w.n || vy >= w.n {
				continue
			}
			v := vy*w.n + vx
			if w.dist[v] != Unreachable {
				continue
			}
			if w.opts.Impassable[w.g.Get(vx, vy).State] {
				continue
			}
			w.dist[v] = w.dist[u] + 1
			w.parent[v] = u
			w.queue = append(w.queue, v)
		}
	}
	return false
}

// Distances runs BFS from src and returns the distance of every cell.
// Cells never reached report Unreachable.
// Complexity: O(n²) time and memory.
func Distances(g grid.Grid, src grid.Point, opts ...Option) (*Result, error) {
	n := g.Size()
	if !grid.InBounds(n, src) {
		return nil, ErrSourceOutOfBounds
	}
	w := newWalker(g, buildOptions(opts))
	w.run(src, -1)
	return &Result{Source: src, n: n, dist: w.dist, parent: w.parent}, nil
}

// IsReachable reports whether dst can be reached from src without entering an
// impassable cell. The search stops as soon as dst is dequeued.
// src == dst is trivially reachable; points off the grid never are.
// Complexity: O(n²) worst case.
func IsReachable(g grid.Grid, src, dst grid.Point, opts ...Option) bool {
	n := g.Size()
	if !grid.InBounds(n, src) || !grid.InBounds(n, dst) {
		return false
	}
	if src == dst {
		return true
	}
	w := newWalker(g, buildOptions(opts))
	return w.run(src, dst.Y*n+dst.X)
}

// Regions finds every connected group of passable cells.
// Each region lists its points in BFS order; regions are ordered by their
// first cell in row-major order.
// Complexity: O(n²) time and memory.
func Regions(g grid.Grid, opts ...Option) [][]grid.Point {
	o := buildOptions(opts)
	n := g.Size()
	seen := make([]bool, n*n)
	var regions [][]grid.Point

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i0 := y*n + x
			if seen[i0] || o.Impassable[g.Get(x, y).State] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var region []grid.Point

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := u%n, u/n
				region = append(region, grid.Point{X: ux, Y: uy})
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if vx < 0 || vy < 0 || vx >= n || vy >= n {
						continue
					}
					vi := vy*n + vx
					if seen[vi] || o.Impassable[g.Get(vx, vy).State] {
						continue
					}
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}
