package brain

import (
	"github.com/vovakirdan/tui-panelpon/internal/core"
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon/engine"
)

// Target is a cursor position at which to exchange.
type Target struct {
	X, Y int
}

// plan decides the next batch of inputs.
func (b *Brain) plan(v View) []engine.Input {
	if v.ForceScrolling() {
		return nil
	}
	heights := v.ColumnHeights()
	if maxHeight(heights) < v.Rows()-b.opts.SafetyMargin {
		return []engine.Input{{ForceScroll: true}}
	}

	targets := balance(heights)
	if targets == nil {
		targets = b.seekMatch(v)
	}
	if targets == nil {
		targets = b.explore(v, heights)
	}
	return toInputs(v.Cursor(), targets, v.Columns(), v.Rows())
}

// balance swaps the top tile of a column that towers two or more rows
// over its neighbor into the gap.
func balance(heights []int) []Target {
	for x := 0; x+1 < len(heights); x++ {
		if core.Abs(heights[x]-heights[x+1]) >= 2 {
			return []Target{{X: x, Y: max(heights[x], heights[x+1])}}
		}
	}
	return nil
}

// seekMatch looks for a color present in three consecutive rows and
// carries one tile of that color per row into the top row's column.
// It returns an empty, non-nil slice when the tiles already line up.
func (b *Brain) seekMatch(v View) []Target {
	rows := make([][][]int, v.Rows()) // rows[y][color] = columns holding it
	for y := 1; y < v.Rows()-2; y++ {
		rows[y] = rowColors(v, y)
		if y < 3 {
			continue
		}
		for c := 0; c < v.Colors(); c++ {
			lower, middle, upper := rows[y-2][c], rows[y-1][c], rows[y][c]
			if len(lower) == 0 || len(middle) == 0 || len(upper) == 0 {
				continue
			}
			picks := []int{
				lower[b.rng.IntN(len(lower))],
				middle[b.rng.IntN(len(middle))],
				upper[b.rng.IntN(len(upper))],
			}
			anchor := picks[2]
			targets := []Target{}
			for i, x := range picks {
				targets = append(targets, carry(x, anchor, y-2+i)...)
			}
			return targets
		}
	}
	return nil
}

func rowColors(v View, y int) [][]int {
	out := make([][]int, v.Colors())
	for x := 0; x < v.Columns(); x++ {
		if c, ok := v.ColorAt(x, y); ok && c >= 0 && c < len(out) {
			out[c] = append(out[c], x)
		}
	}
	return out
}

// explore swaps at a random column pair and a random row within its height.
func (b *Brain) explore(v View, heights []int) []Target {
	x := b.rng.IntN(v.Columns() - 1)
	top := max(heights[x], heights[x+1], 0)
	return []Target{{X: x, Y: b.rng.IntN(top + 1)}}
}

// carry returns the swaps that slide a tile in row y from column now to
// column to, one column per exchange.
func carry(now, to, y int) []Target {
	var targets []Target
	if now >= to {
		for x := now - 1; x >= to; x-- {
			targets = append(targets, Target{X: x, Y: y})
		}
	} else {
		for x := now; x < to; x++ {
			targets = append(targets, Target{X: x, Y: y})
		}
	}
	return targets
}

// toInputs walks the cursor to each target in turn and exchanges there.
// Targets are clamped to the cursor's legal range.
func toInputs(from engine.Cursor, targets []Target, columns, rows int) []engine.Input {
	var out []engine.Input
	cur := Target{X: from.X, Y: from.Y}
	for _, t := range targets {
		t.X = core.Clamp(t.X, 0, columns-2)
		t.Y = core.Clamp(t.Y, 1, rows-1)

		for ; cur.X < t.X; cur.X++ {
			out = append(out, engine.Input{Right: true})
		}
		for ; cur.X > t.X; cur.X-- {
			out = append(out, engine.Input{Left: true})
		}
		for ; cur.Y < t.Y; cur.Y++ {
			out = append(out, engine.Input{Up: true})
		}
		for ; cur.Y > t.Y; cur.Y-- {
			out = append(out, engine.Input{Down: true})
		}
		out = append(out, engine.Input{Exchange: true})
	}
	return out
}

func maxHeight(heights []int) int {
	m := -1
	for _, h := range heights {
		m = max(m, h)
	}
	return m
}
