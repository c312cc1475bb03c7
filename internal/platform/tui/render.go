package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-panelpon/internal/core"
)

// palette maps core colors to ANSI 256 codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	// Bright variants render bold so they stand out on 16-color terminals
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code)).Bold(c.Bright())
	}
	return styles
}

// StyleFor returns the style used for a color; unknown colors get the default.
func StyleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of equal color are rendered together, and blank runs skip styling.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			blank := true
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				if cell.Rune != ' ' {
					blank = false
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if blank || color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(StyleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
