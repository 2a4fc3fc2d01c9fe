package maze_test

import (
	"math/rand"
	"testing"

	"github.com/simplehardware/labyrinth/grid"
	"github.com/simplehardware/labyrinth/maze"
)

// BenchmarkCarve measures carving a 201×201 maze.
func BenchmarkCarve(b *testing.B) {
	board := grid.NewBoard(201)
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = maze.Carve(board, rng)
	}
}
