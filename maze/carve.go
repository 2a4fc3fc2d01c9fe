// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"math/rand"

	"github.com/simplehardware/labyrinth/grid"
)

// MinCarveSize is the smallest n for which Carve is defined.
const MinCarveSize = 3

// steps are the lattice moves: two cells east, west, south, north.
var steps = [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// frame is one level of the backtracking walk: a lattice cell and the
// shuffled directions it has not tried yet.
type frame struct {
	x, y int
	dirs [4][2]int
	next int
}

// Carve overwrites g with a spanning-tree maze.
//
// Steps:
//  1. Fill every cell with Wall.
//  2. Start at (2*r1+1, 2*r2+1) with r1, r2 drawn from [0, n/2).
//  3. Depth-first: mark the cell Floor, shuffle its four lattice steps, and
//     for each unvisited target strictly inside the border (0 < c < n-1)
//     carve the midpoint and descend into the target.
//
// Complexity: O(n²) time and memory.
func Carve(g grid.Grid, rng *rand.Rand) error {
	if rng == nil {
		return ErrNeedRandSource
	}
	n := g.Size()
	if n < MinCarveSize {
		return fmt.Errorf("carve %d×%d: %w", n, n, ErrGridTooSmall)
	}

	grid.Fill(g, grid.Wall)

	visited := make([]bool, n*n)
	stack := make([]frame, 0, (n/2)*(n/2))
	visit := func(x, y int) {
		visited[y*n+x] = true
		g.Set(x, y, grid.Floor, 0)
		f := frame{x: x, y: y, dirs: steps}
		rng.Shuffle(len(f.dirs), func(i, j int) {
			f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
		})
		stack = append(stack, f)
	}

	visit(rng.Intn(n/2)*2+1, rng.Intn(n/2)*2+1)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		nx, ny := top.x+d[0], top.y+d[1]
		if nx <= 0 || ny <= 0 || nx >= n-1 || ny >= n-1 || visited[ny*n+nx] {
			continue
		}
		g.Set(top.x+d[0]/2, top.y+d[1]/2, grid.Floor, 0)
		// top is invalid after visit appends to stack.
		visit(nx, ny)
	}
	return nil
}
