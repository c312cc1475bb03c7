package engine

import (
	"fmt"
)

// Input is one tick's worth of player intent. The zero value does nothing.
type Input struct {
	Up, Down, Left, Right bool
	Exchange              bool
	ForceScroll           bool
}

// IsZero reports whether the input carries no action.
func (in Input) IsZero() bool {
	return in == Input{}
}

// StepReport summarizes one tick.
type StepReport struct {
	Vanished int  // tiles that started vanishing
	Combo    int  // highest combo rank matched, 1 when no chain
	Gained   int  // points scored
	Swapped  bool // an exchange request succeeded
	Scrolled bool // the stack rose one row
	Alive    bool
}

// Board owns one grid, cursor and score tracker and advances them per tick.
type Board struct {
	rules  Rules
	grid   *Grid
	cursor Cursor
	score  *ScoreTracker

	scrollOffset float64
	slideSpeed   float64
	forceScroll  bool
	alive        bool
	tick         uint64
}

// NewBoard creates a board with a freshly generated opening stack.
func NewBoard(rules Rules, src Source) (*Board, error) {
	b, err := newBoard(rules, src)
	if err != nil {
		return nil, err
	}
	b.grid.fillInitial(rules.InitialRows)
	return b, nil
}

func newBoard(rules Rules, src Source) (*Board, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("engine: nil random source")
	}
	return &Board{
		rules:      rules,
		grid:       newGrid(rules.Columns, rules.Rows, rules.Colors, src),
		cursor:     newCursor(rules.Columns, rules.Rows),
		score:      NewScoreTracker(rules.Score),
		slideSpeed: rules.SlideSpeed,
		alive:      true,
	}, nil
}

// Step advances the board one tick: cursor, swap, matches, gravity,
// scroll, then scoring. A dead board ignores input.
func (b *Board) Step(in Input) StepReport {
	if !b.alive {
		return StepReport{Combo: 1}
	}
	b.tick++

	if in.ForceScroll {
		b.forceScroll = true
	}
	b.cursor.Move(in, b.rules.Columns, b.rules.Rows)

	var report StepReport
	if in.Exchange {
		report.Swapped = b.grid.swap(b.cursor.X, b.cursor.Y)
	}

	report.Vanished, report.Combo = b.grid.resolveMatches(b.rules.VanishSpeed)
	b.grid.resolveGravity(b.rules.FallSpeed, b.rules.CellSize)
	report.Scrolled = b.resolveScroll()

	report.Gained = b.score.Record(report.Vanished, report.Combo)
	b.score.Age()

	if !b.alive {
		b.grid.each(func(t *Tile) { t.Alpha = DimAlpha })
	}
	report.Alive = b.alive
	return report
}

// Alive reports whether the board is still in play.
func (b *Board) Alive() bool { return b.alive }

// Tick returns the number of steps simulated.
func (b *Board) Tick() uint64 { return b.tick }

// Columns returns the grid width.
func (b *Board) Columns() int { return b.rules.Columns }

// Rows returns the grid height, staging row included.
func (b *Board) Rows() int { return b.rules.Rows }

// Colors returns the number of tile colors.
func (b *Board) Colors() int { return b.rules.Colors }

// Rules returns the board's rules.
func (b *Board) Rules() Rules { return b.rules }

// ColumnHeights returns the highest occupied row per column, -1 for empty.
func (b *Board) ColumnHeights() []int { return b.grid.columnHeights() }

// ForceScrolling reports whether a force-scroll request is armed.
func (b *Board) ForceScrolling() bool { return b.forceScroll }

// Cursor returns the cursor position.
func (b *Board) Cursor() Cursor { return b.cursor }

// Score returns the running score.
func (b *Board) Score() int { return b.score.Score() }

// Messages returns the active bonus messages, oldest first.
func (b *Board) Messages() []string { return b.score.Messages() }

// ScrollOffset returns the partial rise toward the next row, in [0, CellSize).
func (b *Board) ScrollOffset() float64 { return b.scrollOffset }

// SlideSpeed returns the current base scroll speed.
func (b *Board) SlideSpeed() float64 { return b.slideSpeed }

// SetSlideSpeed changes the base scroll speed. Non-positive values are ignored.
func (b *Board) SetSlideSpeed(speed float64) {
	if speed > 0 {
		b.slideSpeed = speed
	}
}

// ColorAt returns the color of the tile in slot (x, y), if any.
func (b *Board) ColorAt(x, y int) (int, bool) {
	t := b.grid.at(x, y)
	if t == nil {
		return 0, false
	}
	return t.Color, true
}

// TileAt returns a copy of the tile in slot (x, y), if any.
func (b *Board) TileAt(x, y int) (TileView, bool) {
	t := b.grid.at(x, y)
	if t == nil {
		return TileView{}, false
	}
	return t.view(), true
}

// Tiles returns every tile, column by column, bottom-up.
func (b *Board) Tiles() []TileView {
	out := make([]TileView, 0, b.grid.Len())
	b.grid.each(func(t *Tile) { out = append(out, t.view()) })
	return out
}

// Check verifies the arena and slots agree: every slot refers to a live
// tile whose coordinates name that slot, and no tile is unreachable.
func (b *Board) Check() error {
	seen := 0
	for x := 0; x < b.rules.Columns; x++ {
		for y := 0; y < b.rules.Rows; y++ {
			id := b.grid.slots[x][y]
			if id == 0 {
				continue
			}
			t, ok := b.grid.tiles.Get(id)
			if !ok {
				return fmt.Errorf("engine: slot (%d,%d) refers to missing tile %d", x, y, id)
			}
			if t.X != x || t.Y != y {
				return fmt.Errorf("engine: tile %d at (%d,%d) stored in slot (%d,%d)", id, t.X, t.Y, x, y)
			}
			if t.State == Falling && t.Offset >= b.rules.CellSize {
				return fmt.Errorf("engine: tile %d offset %g exceeds a cell", id, t.Offset)
			}
			seen++
		}
	}
	if seen != b.grid.Len() {
		return fmt.Errorf("engine: %d tiles in arena, %d in slots", b.grid.Len(), seen)
	}
	return nil
}
