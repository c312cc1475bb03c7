package engine

// rise shifts every tile up one row, relights them and generates a new
// staging row. It reports false when a tile reached the top row. A grid
// with the top row already occupied is left untouched.
func (g *Grid) rise() (alive bool) {
	for x := 0; x < g.columns; x++ {
		if g.slots[x][g.rows-1] != 0 {
			return false
		}
	}

	alive = true
	for x := 0; x < g.columns; x++ {
		for y := g.rows - 2; y >= 0; y-- {
			t := g.at(x, y)
			if t == nil {
				continue
			}
			g.moveTile(t, x, y+1)
			t.Alpha = LitAlpha
			if t.Y == g.rows-1 {
				alive = false
			}
		}
	}
	g.makeRow(0, false)
	return alive
}

// resolveScroll advances the board's scroll offset. Scrolling is held while
// any tile is unstable. Crossing a full cell triggers a rise.
func (b *Board) resolveScroll() (scrolled bool) {
	if b.grid.unstable() {
		return false
	}
	speed := b.slideSpeed
	if b.forceScroll {
		speed *= b.rules.ForceMultiplier
	}
	b.scrollOffset += speed
	if b.scrollOffset < b.rules.CellSize {
		return false
	}

	b.scrollOffset -= b.rules.CellSize
	b.forceScroll = false
	if !b.grid.rise() {
		b.alive = false
	}
	b.cursor.rise(b.rules.Rows)
	return true
}
