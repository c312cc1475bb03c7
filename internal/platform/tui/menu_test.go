package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-panelpon/internal/config"
	"github.com/vovakirdan/tui-panelpon/internal/core"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	require.True(t, ok)
	return nm
}

func TestMenuListsRegistry(t *testing.T) {
	items := MenuItems()
	require.NotEmpty(t, items)

	var found bool
	for _, it := range items {
		if it.GameID == "stub" {
			found = true
			assert.Equal(t, "Stub", it.Title)
		}
	}
	assert.True(t, found)
}

func TestMenuPresetCycling(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal)
	assert.Equal(t, config.DifficultyNormal, m.Result().Preset)

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyHard, m.Result().Preset)
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyFixed, m.Result().Preset)

	for range 5 {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	assert.Equal(t, config.DifficultyEasy, m.Result().Preset)
	assert.Contains(t, m.View(), "easy")
}

func TestMenuSelectAndQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyHard)
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	sel := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	res := sel.Result()
	require.NotNil(t, res.Item)
	assert.False(t, res.Quit)
	assert.Equal(t, config.DifficultyHard, res.Preset)

	q := menuUpdate(t, m, runeKey('q'))
	assert.True(t, q.Result().Quit)
	assert.Nil(t, q.Result().Item)
	assert.Empty(t, q.View())
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal)
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Result().Config.ScreenW)
	assert.Equal(t, 40, m.Result().Config.ScreenH)
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "toolong", centerText("toolong", 3))
}
