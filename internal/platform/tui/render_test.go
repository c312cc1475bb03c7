package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-panelpon/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextColor(0, 1, "red", core.ColorRed)
	s.DrawTextColor(4, 1, "blue", core.ColorBrightBlue)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "plain")
	assert.Contains(t, lines[1], "red")
	assert.Contains(t, lines[1], "blue")
}

func TestStyleFor(t *testing.T) {
	assert.True(t, StyleFor(core.ColorBrightRed).GetBold())
	assert.False(t, StyleFor(core.ColorRed).GetBold())
	assert.False(t, StyleFor(core.Color(200)).GetBold())
}
