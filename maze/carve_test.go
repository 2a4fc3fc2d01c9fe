package maze_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/simplehardware/labyrinth/grid"
	"github.com/simplehardware/labyrinth/maze"
	"github.com/simplehardware/labyrinth/reach"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isFloor(c grid.Cell) bool { return c.State == grid.Floor }

// TestCarve_FullConnectivity checks, across sizes and seeds, that all carved
// floor cells form one region and that every pair is mutually reachable.
func TestCarve_FullConnectivity(t *testing.T) {
	for _, n := range []int{3, 5, 6, 11, 12, 21} {
		for seed := int64(1); seed <= 5; seed++ {
			b := grid.NewBoard(n)
			require.NoError(t, maze.Carve(b, rand.New(rand.NewSource(seed))))

			floors := grid.Collect(b, isFloor)
			require.NotEmpty(t, floors, "n=%d seed=%d", n, seed)
			assert.Len(t, reach.Regions(b), 1, "n=%d seed=%d", n, seed)

			if n > 11 {
				continue
			}
			for _, p := range floors {
				for _, q := range floors {
					assert.True(t, reach.IsReachable(b, p, q), "n=%d seed=%d %v→%v", n, seed, p, q)
				}
			}
		}
	}
}

// TestCarve_SpanningTree verifies that on odd sizes every lattice cell is
// carved and the carving has no cycles: k² lattice cells joined by k²-1
// passages.
func TestCarve_SpanningTree(t *testing.T) {
	for _, n := range []int{5, 9, 15, 31} {
		b := grid.NewBoard(n)
		require.NoError(t, maze.Carve(b, rand.New(rand.NewSource(int64(n)))))

		k := (n - 1) / 2
		for y := 1; y < n; y += 2 {
			for x := 1; x < n; x += 2 {
				assert.Equal(t, grid.Floor, b.Get(x, y).State, "lattice (%d,%d)", x, y)
			}
		}
		for y := 0; y < n; y += 2 {
			for x := 0; x < n; x += 2 {
				assert.Equal(t, grid.Wall, b.Get(x, y).State, "pillar (%d,%d)", x, y)
			}
		}
		assert.Equal(t, 2*k*k-1, grid.Count(b, grid.Floor), "n=%d", n)

		for i := 0; i < n; i++ {
			assert.Equal(t, grid.Wall, b.Get(i, 0).State)
			assert.Equal(t, grid.Wall, b.Get(0, i).State)
			assert.Equal(t, grid.Wall, b.Get(i, n-1).State)
			assert.Equal(t, grid.Wall, b.Get(n-1, i).State)
		}
	}
}

func TestCarve_Deterministic(t *testing.T) {
	a, b := grid.NewBoard(15), grid.NewBoard(15)
	require.NoError(t, maze.Carve(a, rand.New(rand.NewSource(7))))
	require.NoError(t, maze.Carve(b, rand.New(rand.NewSource(7))))
	assert.Equal(t, grid.Format(a), grid.Format(b))
}

func TestCarve_OverwritesMarkers(t *testing.T) {
	b := grid.NewBoard(7)
	b.Set(1, 1, grid.Start, 3)
	b.Set(2, 2, grid.FormA, 1)
	require.NoError(t, maze.Carve(b, rand.New(rand.NewSource(1))))
	grid.Each(b, func(p grid.Point, c grid.Cell) {
		assert.Contains(t, []grid.State{grid.Wall, grid.Floor}, c.State, "%v", p)
		assert.Zero(t, c.Owner)
	})
}

func TestCarve_Errors(t *testing.T) {
	err := maze.Carve(grid.NewBoard(2), rand.New(rand.NewSource(1)))
	assert.True(t, errors.Is(err, maze.ErrGridTooSmall))

	err = maze.Carve(grid.NewBoard(9), nil)
	assert.True(t, errors.Is(err, maze.ErrNeedRandSource))
}

// TestCarve_Large exercises a grid whose lattice is far deeper than any
// reasonable recursion depth.
func TestCarve_Large(t *testing.T) {
	if testing.Short() {
		t.Skip("large grid")
	}
	b := grid.NewBoard(401)
	require.NoError(t, maze.Carve(b, rand.New(rand.NewSource(3))))
	assert.Equal(t, 2*200*200-1, grid.Count(b, grid.Floor))
	assert.Len(t, reach.Regions(b), 1)
}
