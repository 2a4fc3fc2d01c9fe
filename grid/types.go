// SPDX-License-Identifier: MIT

package grid

// Point addresses a cell by column X and row Y.
type Point struct {
	X, Y int
}

// Cell is the content of one grid position.
type Cell struct {
	State State
	Owner int // player id, 0 when State is not owned
}

// Grid is the contract the labyrinth algorithms read and mutate.
// Implementations own storage and any reaction to Set (repaint, persistence);
// the algorithms rely only on these three methods.
type Grid interface {
	// Size returns n for an n×n grid.
	Size() int
	// Get returns the cell at (x,y).
	Get(x, y int) Cell
	// Set stores state and owner at (x,y).
	Set(x, y int, state State, owner int)
}

// InBounds reports whether p lies inside an n×n grid.
// Complexity: O(1).
func InBounds(n int, p Point) bool {
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

// Each calls fn for every cell of g in row-major order.
// Complexity: O(n²).
func Each(g Grid, fn func(p Point, c Cell)) {
	n := g.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fn(Point{X: x, Y: y}, g.Get(x, y))
		}
	}
}

// Collect returns the points whose cell satisfies keep, in row-major order.
func Collect(g Grid, keep func(Cell) bool) []Point {
	var pts []Point
	Each(g, func(p Point, c Cell) {
		if keep(c) {
			pts = append(pts, p)
		}
	})
	return pts
}

// Count returns how many cells of g are in state s.
func Count(g Grid, s State) int {
	k := 0
	Each(g, func(_ Point, c Cell) {
		if c.State == s {
			k++
		}
	})
	return k
}

// Fill sets every cell of g to state s with owner 0.
func Fill(g Grid, s State) {
	n := g.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.Set(x, y, s, 0)
		}
	}
}
