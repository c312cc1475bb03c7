package engine

// runAt returns the three tiles starting at (x, y) along (dx, dy) when they
// are all vanishable and share one color.
func (g *Grid) runAt(x, y, dx, dy int) []*Tile {
	a, b, c := g.at(x, y), g.at(x+dx, y+dy), g.at(x+2*dx, y+2*dy)
	if a == nil || b == nil || c == nil {
		return nil
	}
	if !a.vanishable() || !b.vanishable() || !c.vanishable() {
		return nil
	}
	if a.Color != b.Color || b.Color != c.Color {
		return nil
	}
	return []*Tile{a, b, c}
}

// resolveMatches flags every run of three, decays vanishing tiles and
// removes the ones that finished. It returns the number of tiles that
// started vanishing this tick and the highest combo rank among the runs.
//
// Flagged tiles stay Fixed until the scan completes, so runs may overlap.
func (g *Grid) resolveMatches(vanishSpeed float64) (vanished, combo int) {
	combo = 1
	flagged := make(map[TileID]bool)

	mark := func(run []*Tile) {
		rank := 1
		for _, t := range run {
			rank = max(rank, t.Combo)
		}
		for _, t := range run {
			t.Combo = rank
			flagged[t.ID] = true
		}
		combo = max(combo, rank)
	}

	for x := 0; x < g.columns; x++ {
		for y := 1; y < g.rows; y++ {
			if x+2 < g.columns {
				if run := g.runAt(x, y, 1, 0); run != nil {
					mark(run)
				}
			}
			if y+2 < g.rows {
				if run := g.runAt(x, y, 0, 1); run != nil {
					mark(run)
				}
			}
		}
	}

	for x := 0; x < g.columns; x++ {
		for y := 1; y < g.rows; y++ {
			t := g.at(x, y)
			if t == nil || (!flagged[t.ID] && t.State != Vanishing) {
				continue
			}
			if t.State != Vanishing {
				vanished++
			}
			t.decay(vanishSpeed)
			if t.State == Vanished {
				g.remove(t)
				g.raiseChain(x, y+1, t.Combo+1, flagged)
			}
		}
	}
	return vanished, combo
}

// raiseChain lifts the combo rank of the resting stack above a removed tile.
func (g *Grid) raiseChain(x, from, rank int, flagged map[TileID]bool) {
	for y := from; y < g.rows; y++ {
		t := g.at(x, y)
		if t == nil || t.State != Fixed || flagged[t.ID] {
			return
		}
		t.Combo = max(t.Combo, rank)
	}
}
