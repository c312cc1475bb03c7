package engine

// Snapshot captures a board's observable state for determinism checks.
type Snapshot struct {
	Tick           uint64
	Score          int
	Alive          bool
	Cursor         Cursor
	ScrollOffset   float64
	ForceScrolling bool
	Tiles          []TileView
	Messages       []string
}

// Snapshot returns the current observable state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Tick:           b.tick,
		Score:          b.score.Score(),
		Alive:          b.alive,
		Cursor:         b.cursor,
		ScrollOffset:   b.scrollOffset,
		ForceScrolling: b.forceScroll,
		Tiles:          b.Tiles(),
		Messages:       b.score.Messages(),
	}
}
