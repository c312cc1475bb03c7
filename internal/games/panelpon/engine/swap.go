package engine

// swap exchanges slots (x, y) and (x+1, y). Both slots must hold a
// vanishable tile or nothing, and the slots above them must be empty or
// resting. A moved tile falls unless its new slot is supported.
func (g *Grid) swap(x, y int) bool {
	if x < 0 || x+1 >= g.columns || y < 1 || y >= g.rows {
		return false
	}
	left, right := g.at(x, y), g.at(x+1, y)
	if left == nil && right == nil {
		return false
	}
	for _, t := range []*Tile{left, right} {
		if t != nil && !t.vanishable() {
			return false
		}
	}
	for _, t := range []*Tile{g.at(x, y+1), g.at(x+1, y+1)} {
		if t != nil && !t.resting() {
			return false
		}
	}

	if left != nil {
		g.moveTile(left, x+1, y)
	}
	if right != nil {
		g.moveTile(right, x, y)
	}
	if left != nil && !g.supported(x+1, y) {
		left.unfix()
	}
	if right != nil && !g.supported(x, y) {
		right.unfix()
	}
	return true
}
