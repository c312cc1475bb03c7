package engine

// TileID identifies a tile in the grid arena. Zero means "no tile".
type TileID uint32

// State is a tile's lifecycle stage.
type State uint8

const (
	// Fixed tiles rest on a support and may be matched or swapped.
	Fixed State = iota
	// Falling tiles accumulate offset until they drop a row.
	Falling
	// Vanishing tiles lose alpha every tick.
	Vanishing
	// Vanished tiles are removed at the end of the match pass.
	Vanished
)

func (s State) String() string {
	switch s {
	case Fixed:
		return "fixed"
	case Falling:
		return "falling"
	case Vanishing:
		return "vanishing"
	case Vanished:
		return "vanished"
	default:
		return "unknown"
	}
}

// Tile is a single colored panel.
// X and Y are written only by Grid.moveTile.
type Tile struct {
	ID     TileID
	X, Y   int
	Color  int
	Offset float64 // fall progress below Y's baseline, in cell units of Rules.CellSize
	Alpha  float64
	Combo  int
	State  State
}

// vanishable reports whether the tile may be matched or swapped.
func (t *Tile) vanishable() bool {
	return t.State == Fixed && t.Y > 0
}

// resting tiles support the tile above them.
func (t *Tile) resting() bool {
	return t.State == Fixed || t.State == Vanishing
}

// Lit reports whether the tile is drawn at full brightness.
func (t *Tile) Lit() bool {
	return t.State != Vanishing && t.Alpha >= LitAlpha
}

func (t *Tile) fix() {
	t.State = Fixed
	t.Offset = 0
}

func (t *Tile) unfix() {
	t.State = Falling
}

// decay starts or continues the vanish animation.
func (t *Tile) decay(speed float64) {
	t.State = Vanishing
	t.Alpha -= speed
	if t.Alpha <= 0 {
		t.Alpha = 0
		t.State = Vanished
	}
}

// TileView is a read-only copy of a tile for renderers and planners.
type TileView struct {
	ID     TileID
	X, Y   int
	Color  int
	Offset float64
	Alpha  float64
	Combo  int
	State  State
}

func (t *Tile) view() TileView {
	return TileView{
		ID:     t.ID,
		X:      t.X,
		Y:      t.Y,
		Color:  t.Color,
		Offset: t.Offset,
		Alpha:  t.Alpha,
		Combo:  t.Combo,
		State:  t.State,
	}
}
