package engine

import (
	"github.com/kamstrup/intmap"
)

// Grid is the column-major slot store. Slots hold tile IDs only; the tiles
// themselves live in an arena keyed by ID.
type Grid struct {
	columns int
	rows    int
	colors  int

	slots  [][]TileID // slots[x][y]
	tiles  *intmap.Map[TileID, *Tile]
	nextID TileID
	rng    Source
}

func newGrid(columns, rows, colors int, rng Source) *Grid {
	g := &Grid{
		columns: columns,
		rows:    rows,
		colors:  colors,
		slots:   make([][]TileID, columns),
		tiles:   intmap.New[TileID, *Tile](columns * rows),
		rng:     rng,
	}
	for x := range g.slots {
		g.slots[x] = make([]TileID, rows)
	}
	return g
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.columns && y >= 0 && y < g.rows
}

// at returns the tile in slot (x, y), or nil.
func (g *Grid) at(x, y int) *Tile {
	if !g.inBounds(x, y) {
		return nil
	}
	id := g.slots[x][y]
	if id == 0 {
		return nil
	}
	t, _ := g.tiles.Get(id)
	return t
}

// spawn creates a fixed tile in an empty slot.
func (g *Grid) spawn(x, y, color int) *Tile {
	g.nextID++
	t := &Tile{
		ID:    g.nextID,
		X:     x,
		Y:     y,
		Color: color,
		Alpha: LitAlpha,
		Combo: 1,
		State: Fixed,
	}
	if y == 0 {
		t.Alpha = DimAlpha
	}
	g.tiles.Put(t.ID, t)
	g.slots[x][y] = t.ID
	return t
}

// moveTile is the only place tile coordinates change. The old slot is
// cleared only if it still refers to t, so two tiles can trade places with
// two consecutive calls.
func (g *Grid) moveTile(t *Tile, x, y int) {
	if g.slots[t.X][t.Y] == t.ID {
		g.slots[t.X][t.Y] = 0
	}
	g.slots[x][y] = t.ID
	t.X, t.Y = x, y
}

func (g *Grid) remove(t *Tile) {
	if g.slots[t.X][t.Y] == t.ID {
		g.slots[t.X][t.Y] = 0
	}
	g.tiles.Del(t.ID)
}

func (g *Grid) clear() {
	for x := range g.slots {
		clear(g.slots[x])
	}
	g.tiles.Clear()
}

// Len returns the number of tiles on the grid.
func (g *Grid) Len() int {
	return g.tiles.Len()
}

// each visits tiles column by column, bottom-up.
func (g *Grid) each(visit func(t *Tile)) {
	for x := 0; x < g.columns; x++ {
		for y := 0; y < g.rows; y++ {
			if t := g.at(x, y); t != nil {
				visit(t)
			}
		}
	}
}

// columnHeights returns the highest occupied row per column, -1 when empty.
func (g *Grid) columnHeights() []int {
	heights := make([]int, g.columns)
	for x := range heights {
		heights[x] = -1
		for y := g.rows - 1; y >= 0; y-- {
			if g.slots[x][y] != 0 {
				heights[x] = y
				break
			}
		}
	}
	return heights
}

// unstable reports whether any tile is falling or vanishing.
func (g *Grid) unstable() bool {
	for x := 0; x < g.columns; x++ {
		for y := 0; y < g.rows; y++ {
			if t := g.at(x, y); t != nil && (t.State == Falling || t.State == Vanishing) {
				return true
			}
		}
	}
	return false
}

// makeRow fills row y left to right with random colors, never repeating
// the color of two equal left neighbors. With avoidVertical it also avoids
// the color of two equal tiles directly below.
func (g *Grid) makeRow(y int, avoidVertical bool) {
	for x := 0; x < g.columns; x++ {
		var banned []int
		if c, ok := g.pairColor(x-1, y, x-2, y); ok {
			banned = append(banned, c)
		}
		if avoidVertical {
			if c, ok := g.pairColor(x, y-1, x, y-2); ok && (len(banned) == 0 || banned[0] != c) {
				banned = append(banned, c)
			}
		}
		g.spawn(x, y, g.pickColor(banned))
	}
}

// pickColor draws uniformly from the colors not in banned. One draw per
// tile, so generation always terminates.
func (g *Grid) pickColor(banned []int) int {
	c := g.rng.IntN(g.colors - len(banned))
	for _, b := range sortedInts(banned) {
		if c >= b {
			c++
		}
	}
	return c
}

// pairColor returns the shared color of two tiles, if both exist and match.
func (g *Grid) pairColor(x1, y1, x2, y2 int) (int, bool) {
	a, b := g.at(x1, y1), g.at(x2, y2)
	if a == nil || b == nil || a.Color != b.Color {
		return 0, false
	}
	return a.Color, true
}

// fillInitial generates the opening stack. Whole boards are regenerated
// while a vertical triple exists among playable rows; after
// maxFillAttempts the board is built with vertical avoidance instead.
func (g *Grid) fillInitial(rows int) {
	for attempt := 0; attempt < maxFillAttempts; attempt++ {
		g.clear()
		for y := 0; y < rows; y++ {
			g.makeRow(y, false)
		}
		if !g.hasVerticalTriple() {
			return
		}
	}
	g.clear()
	for y := 0; y < rows; y++ {
		g.makeRow(y, true)
	}
}

func (g *Grid) hasVerticalTriple() bool {
	for x := 0; x < g.columns; x++ {
		for y := 1; y+2 < g.rows; y++ {
			if g.runAt(x, y, 0, 1) != nil {
				return true
			}
		}
	}
	return false
}

func sortedInts(v []int) []int {
	if len(v) == 2 && v[0] > v[1] {
		return []int{v[1], v[0]}
	}
	return v
}
