package engine

// supported reports whether a tile at (x, y) has something to rest on.
func (g *Grid) supported(x, y int) bool {
	if y == 0 {
		return true
	}
	below := g.at(x, y-1)
	return below != nil && below.resting()
}

// resolveGravity unfixes unsupported tiles and advances falling ones,
// bottom-up per column. A tile unfixed this tick starts moving next tick.
func (g *Grid) resolveGravity(fallSpeed, cellSize float64) {
	for x := 0; x < g.columns; x++ {
		for y := 1; y < g.rows; y++ {
			t := g.at(x, y)
			if t == nil {
				continue
			}
			switch t.State {
			case Fixed:
				if g.supported(x, y) {
					t.Combo = 1
				} else {
					t.unfix()
				}
			case Falling:
				g.fall(t, fallSpeed, cellSize)
			}
		}
	}
}

// fall advances a falling tile. It never enters an occupied slot and never
// overtakes a falling tile directly beneath it.
func (g *Grid) fall(t *Tile, fallSpeed, cellSize float64) {
	t.Offset += fallSpeed
	below := g.at(t.X, t.Y-1)
	if below != nil && below.State == Falling && t.Offset > below.Offset {
		t.Offset = below.Offset
	}
	if t.Offset >= cellSize && below == nil {
		g.moveTile(t, t.X, t.Y-1)
		t.Offset -= cellSize
	}
	if g.supported(t.X, t.Y) {
		t.fix()
	}
}
