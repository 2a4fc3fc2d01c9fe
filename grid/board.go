// SPDX-License-Identifier: MIT

package grid

// Board is an in-memory n×n Grid stored row-major.
// It is not safe for concurrent mutation.
type Board struct {
	n     int
	cells []Cell
}

// NewBoard returns an n×n board with every cell Floor. Negative n yields an empty board.
// Complexity: O(n²) time and memory.
func NewBoard(n int) *Board {
	if n < 0 {
		n = 0
	}
	return &Board{n: n, cells: make([]Cell, n*n)}
}

// Size implements Grid.
func (b *Board) Size() int { return b.n }

// Get implements Grid. Points outside the board read as Wall so that callers
// probing past the border see an impassable cell.
func (b *Board) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{State: Wall}
	}
	return b.cells[b.index(x, y)]
}

// Set implements Grid. The owner is dropped for states that cannot be owned;
// writes outside the board are ignored.
func (b *Board) Set(x, y int, state State, owner int) {
	if !b.InBounds(x, y) {
		return
	}
	if !state.Owned() {
		owner = 0
	}
	b.cells[b.index(x, y)] = Cell{State: state, Owner: owner}
}

// InBounds reports whether (x,y) lies within the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.n && y >= 0 && y < b.n
}

// Clone returns an independent copy of b.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{n: b.n, cells: cells}
}

// String renders b in the row layout (see Format).
func (b *Board) String() string {
	return Format(b)
}

// index maps (x,y) to a row-major index: y*n + x.
func (b *Board) index(x, y int) int {
	return y*b.n + x
}
