package engine

import (
	"fmt"
)

// NewBoardFromLayout builds a board from an ASCII picture instead of a
// random opening stack. The last line is row 0; each line has one
// character per column: '.' for empty or a digit for a color. Missing
// upper rows are empty and the top row must stay empty, since a stack
// touching it has already lost. All tiles start Fixed. src feeds later rows.
func NewBoardFromLayout(rules Rules, layout []string, src Source) (*Board, error) {
	b, err := newBoard(rules, src)
	if err != nil {
		return nil, err
	}
	if len(layout) >= rules.Rows {
		return nil, fmt.Errorf("engine: layout has %d rows, board allows %d below the top row", len(layout), rules.Rows-1)
	}
	for i, line := range layout {
		y := len(layout) - 1 - i
		if len(line) != rules.Columns {
			return nil, fmt.Errorf("engine: layout row %d has %d columns, want %d", y, len(line), rules.Columns)
		}
		for x, ch := range line {
			switch {
			case ch == '.':
			case ch >= '0' && ch <= '9' && int(ch-'0') < rules.Colors:
				b.grid.spawn(x, y, int(ch-'0'))
			default:
				return nil, fmt.Errorf("engine: layout row %d column %d: invalid cell %q", y, x, ch)
			}
		}
	}
	return b, nil
}

// Layout renders the grid in the format NewBoardFromLayout accepts, top
// row first. Empty top rows are omitted.
func (b *Board) Layout() []string {
	top := -1
	for _, h := range b.grid.columnHeights() {
		top = max(top, h)
	}
	lines := make([]string, 0, top+1)
	for y := top; y >= 0; y-- {
		row := make([]byte, b.rules.Columns)
		for x := range row {
			row[x] = '.'
			if t := b.grid.at(x, y); t != nil {
				row[x] = byte('0' + t.Color)
			}
		}
		lines = append(lines, string(row))
	}
	return lines
}
