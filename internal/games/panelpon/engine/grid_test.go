package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource always draws the same value, clamped to n.
type constSource int

func (c constSource) IntN(n int) int {
	return min(int(c), n-1)
}

func layoutBoard(t *testing.T, layout ...string) *Board {
	t.Helper()
	b, err := NewBoardFromLayout(DefaultRules(), layout, rand.New(rand.NewPCG(9, 9)))
	require.NoError(t, err)
	return b
}

func TestMoveTileTrade(t *testing.T) {
	b := layoutBoard(t, "01....", "234234")
	g := b.grid
	a, c := g.at(0, 1), g.at(1, 1)

	g.moveTile(a, 1, 1)
	g.moveTile(c, 0, 1)

	assert.Same(t, c, g.at(0, 1))
	assert.Same(t, a, g.at(1, 1))
	assert.Equal(t, 0, c.X)
	assert.Equal(t, 1, a.X)
	require.NoError(t, b.Check())
}

func TestSwapIntoGapFalls(t *testing.T) {
	b := layoutBoard(t,
		"0.....",
		"0.....",
		"123412",
	)
	g := b.grid
	tile := g.at(0, 2)

	require.True(t, g.swap(0, 2))
	assert.Nil(t, g.at(0, 2))
	assert.Same(t, tile, g.at(1, 2))
	assert.Equal(t, Falling, tile.State)
	require.NoError(t, b.Check())
}

func TestSwapOntoSupportStaysFixed(t *testing.T) {
	b := layoutBoard(t,
		"01....",
		"123412",
	)
	g := b.grid
	require.True(t, g.swap(0, 1))
	assert.Equal(t, Fixed, g.at(0, 1).State)
	assert.Equal(t, Fixed, g.at(1, 1).State)
	assert.Equal(t, 1, g.at(0, 1).Color)
}

func TestSwapRejected(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		prep   func(g *Grid)
		x, y   int
	}{
		{
			name:   "both empty",
			layout: []string{"123412"},
			x:      0, y: 1,
		},
		{
			name:   "staging row",
			layout: []string{"123412"},
			x:      0, y: 0,
		},
		{
			name:   "out of bounds",
			layout: []string{"01....", "123412"},
			x:      5, y: 1,
		},
		{
			name:   "vanishing tile",
			layout: []string{"01....", "123412"},
			prep:   func(g *Grid) { g.at(0, 1).decay(3) },
			x:      0, y: 1,
		},
		{
			name:   "falling tile",
			layout: []string{"01....", "123412"},
			prep:   func(g *Grid) { g.at(1, 1).unfix() },
			x:      0, y: 1,
		},
		{
			name:   "falling above",
			layout: []string{".2....", "01....", "123412"},
			prep:   func(g *Grid) { g.at(1, 2).unfix() },
			x:      0, y: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := layoutBoard(t, tt.layout...)
			if tt.prep != nil {
				tt.prep(b.grid)
			}
			before := b.Snapshot()

			assert.False(t, b.grid.swap(tt.x, tt.y))
			assert.Equal(t, before, b.Snapshot())
		})
	}
}

func TestVanishingTileSupportsSwapAbove(t *testing.T) {
	b := layoutBoard(t,
		"01....",
		"22....",
		"123412",
	)
	b.grid.at(0, 1).decay(3)
	assert.True(t, b.grid.swap(0, 2))
	// A vanishing tile still supports the tile swapped onto it
	assert.Equal(t, Fixed, b.grid.at(0, 2).State)
	assert.Equal(t, Fixed, b.grid.at(1, 2).State)
}

func TestGravityStackFallsTogether(t *testing.T) {
	b := layoutBoard(t,
		"1.....",
		"0.....",
		"......",
		"......",
		"123412",
	)
	g := b.grid
	low, high := g.at(0, 3), g.at(0, 4)

	for i := 0; i < 100; i++ {
		g.resolveGravity(3, 40)
		require.NoError(t, b.Check())
		if low.Y > 0 && high.Y > 0 {
			assert.Greater(t, high.Y, low.Y)
			// The upper tile never renders below the lower one
			assert.Greater(t, float64(high.Y)*40-high.Offset, float64(low.Y)*40-low.Offset)
		}
	}

	assert.Equal(t, 1, low.Y)
	assert.Equal(t, 2, high.Y)
	assert.Equal(t, Fixed, low.State)
	assert.Equal(t, Fixed, high.State)
	assert.Zero(t, high.Offset)
}

func TestFillInitialFallback(t *testing.T) {
	// A constant source repeats every row, so retries never succeed.
	g := newGrid(6, 13, 5, constSource(0))
	g.fillInitial(6)

	assert.False(t, g.hasVerticalTriple())
	assert.Equal(t, 36, g.Len())
	for y := 0; y < 6; y++ {
		for x := 0; x+2 < 6; x++ {
			a, b, c := g.at(x, y), g.at(x+1, y), g.at(x+2, y)
			assert.False(t, a.Color == b.Color && b.Color == c.Color, "row %d col %d", y, x)
		}
	}
}

func TestPickColorSkipsBanned(t *testing.T) {
	seen := make(map[int]bool)
	for v := 0; v < 5; v++ {
		g := newGrid(6, 13, 5, constSource(v))
		seen[g.pickColor([]int{3, 1})] = true
	}
	assert.Equal(t, map[int]bool{0: true, 2: true, 4: true}, seen)
}

func TestColumnHeightsEmpty(t *testing.T) {
	g := newGrid(4, 6, 3, constSource(0))
	assert.Equal(t, []int{-1, -1, -1, -1}, g.columnHeights())
	g.spawn(2, 3, 1)
	assert.Equal(t, []int{-1, -1, 3, -1}, g.columnHeights())
}

func TestRiseReportsTopRow(t *testing.T) {
	g := newGrid(3, 5, 3, constSource(1))
	g.spawn(0, 3, 0)
	assert.False(t, g.rise())
	assert.Equal(t, 4, g.at(0, 4).Y)

	g = newGrid(3, 5, 3, constSource(1))
	g.spawn(0, 2, 0)
	assert.True(t, g.rise())
	assert.Equal(t, 4, g.Len())
}

func TestRiseWithFullTopRowMovesNothing(t *testing.T) {
	g := newGrid(3, 5, 3, constSource(1))
	top := g.spawn(0, 4, 0)
	below := g.spawn(0, 3, 1)
	other := g.spawn(2, 1, 2)

	assert.False(t, g.rise())
	assert.Equal(t, 3, g.Len())
	assert.Same(t, top, g.at(0, 4))
	assert.Same(t, below, g.at(0, 3))
	assert.Same(t, other, g.at(2, 1))
	assert.Nil(t, g.at(1, 0), "no staging row is added")
}
