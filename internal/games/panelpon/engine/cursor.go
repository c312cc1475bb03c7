package engine

// Cursor is the left half of the two-slot swap window.
type Cursor struct {
	X, Y int
}

func newCursor(columns, rows int) Cursor {
	return Cursor{X: (columns - 1) / 2, Y: rows / 2}
}

// Move applies the directional flags of in, clamped to
// 0 <= X <= columns-2 and 1 <= Y <= rows-1. Up increases Y.
func (c *Cursor) Move(in Input, columns, rows int) {
	if in.Up && c.Y < rows-1 {
		c.Y++
	}
	if in.Down && c.Y > 1 {
		c.Y--
	}
	if in.Right && c.X < columns-2 {
		c.X++
	}
	if in.Left && c.X > 0 {
		c.X--
	}
}

func (c *Cursor) rise(rows int) {
	if c.Y < rows-1 {
		c.Y++
	}
}
