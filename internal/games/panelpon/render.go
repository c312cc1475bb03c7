package panelpon

import (
	"fmt"

	"github.com/vovakirdan/tui-panelpon/internal/core"
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon/engine"
)

// Visual characters for rendering
const (
	CellWidth    = 2 // terminal columns per tile
	TileLit      = '█'
	TileDim      = '░'
	TileFading   = '▓'
	TileFaded    = '▒'
	CursorLeft   = '['
	CursorRight  = ']'
	sidebarWidth = 18
)

// tileColors maps engine color indexes to terminal colors.
var tileColors = []core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
	core.ColorWhite,
	core.ColorBrightRed,
	core.ColorBrightBlue,
}

// TileColor returns the terminal color for a tile color index.
func TileColor(c int) core.Color {
	if c < 0 {
		return core.ColorDefault
	}
	return tileColors[c%len(tileColors)]
}

// boardSize returns the framed size of a board on screen.
func boardSize(b *engine.Board) (w, h int) {
	return b.Columns()*CellWidth + 2, b.Rows() + 2
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}

	bw, bh := boardSize(g.player)
	need := bw + sidebarWidth
	if g.rival != nil {
		need = 2*bw + sidebarWidth + 2
	}
	if dst.Width() < need || dst.Height() < bh+2 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	top := (dst.Height() - bh) / 2
	left := (dst.Width() - need) / 2

	dst.DrawTextColor(left, top-1, g.Title(), core.ColorBrightWhite)
	drawBoard(dst, g.player, left, top)
	g.drawSidebar(dst, left+bw+1, top)
	if g.rival != nil {
		rx := left + bw + sidebarWidth + 2
		dst.DrawTextColor(rx, top-1, "CPU", core.ColorBrightRed)
		drawBoard(dst, g.rival, rx, top)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		title := "GAME OVER"
		if g.Winner() == core.Player1 {
			title = "YOU WIN"
		}
		summary := fmt.Sprintf("Score: %d", g.Score1())
		if r, ok := g.Result(); ok {
			summary = r.Summary()
		}
		drawCenteredMessage(dst, title, summary+"  |  R restart  B menu")
	}
}

// drawBoard frames a board with its top-left corner at (x, y). Row 0 is
// drawn dim along the bottom edge.
func drawBoard(dst *core.Screen, b *engine.Board, x, y int) {
	bw, bh := boardSize(b)
	dst.DrawBox(core.NewRect(x, y, bw, bh))

	rows := b.Rows()
	cellSize := b.Rules().CellSize
	for _, tv := range b.Tiles() {
		row := tv.Y
		// Show a falling tile in the row it is passing into
		if tv.State == engine.Falling && tv.Offset >= cellSize/2 && row > 0 {
			row--
		}
		sx := x + 1 + tv.X*CellWidth
		sy := y + rows - row
		glyph := tileGlyph(tv)
		color := TileColor(tv.Color)
		if tv.State == engine.Vanishing {
			color = color.Brighten()
		}
		for i := 0; i < CellWidth; i++ {
			dst.SetColor(sx+i, sy, glyph, color)
		}
	}

	if b.Alive() {
		c := b.Cursor()
		sy := y + rows - c.Y
		dst.SetColor(x+1+c.X*CellWidth, sy, CursorLeft, core.ColorBrightWhite)
		dst.SetColor(x+(c.X+2)*CellWidth, sy, CursorRight, core.ColorBrightWhite)
	}
}

func tileGlyph(tv engine.TileView) rune {
	switch {
	case tv.State == engine.Vanishing && tv.Alpha > engine.LitAlpha*2/3:
		return TileFading
	case tv.State == engine.Vanishing:
		return TileFaded
	case tv.Alpha < engine.LitAlpha:
		return TileDim
	default:
		return TileLit
	}
}

// drawSidebar shows score, speed, bonus messages and controls.
func (g *Game) drawSidebar(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, fmt.Sprintf("Score %d", g.Score1()))
	if g.rival != nil {
		dst.DrawTextColor(x, y+1, fmt.Sprintf("CPU   %d", g.Score2()), core.ColorBrightRed)
	}
	dst.DrawText(x, y+2, fmt.Sprintf("Speed %.2f", g.player.SlideSpeed()))
	level := fmt.Sprintf("Level %s", g.difficulty.Preset())
	if g.difficulty.IsEnabled() {
		level += fmt.Sprintf(" %.0f%%", 100*g.difficulty.Level(g.Score1(), int(g.tickCount)))
	}
	dst.DrawText(x, y+3, level)
	if g.player.ForceScrolling() {
		dst.DrawTextColor(x, y+4, "RAISING", core.ColorYellow)
	}

	msgs := g.player.Messages()
	const shown = 5
	if len(msgs) > shown {
		msgs = msgs[len(msgs)-shown:]
	}
	for i, msg := range msgs {
		dst.DrawTextColor(x, y+6+i, msg, core.ColorBrightYellow)
	}

	help := []string{"arrows move", "space swap", "z raise", "p pause"}
	if g.pilot != nil {
		help = []string{"CPU playing", "p pause"}
	}
	for i, line := range help {
		dst.DrawTextColor(x, y+12+i, line, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
