package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-panelpon/internal/config"
	"github.com/vovakirdan/tui-panelpon/internal/core"
	"github.com/vovakirdan/tui-panelpon/internal/multiplayer"
	"github.com/vovakirdan/tui-panelpon/internal/registry"
)

// Presets in the order the menu cycles through them.
var Presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Padding(0, 2)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuItem is a selectable game mode.
type MenuItem struct {
	GameID string
	Title  string
	Mode   multiplayer.MatchMode
}

// moder is implemented by games that expose their match mode.
type moder interface {
	Mode() multiplayer.MatchMode
}

// MenuItems lists the registered games in registry order.
func MenuItems() []MenuItem {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		mode := multiplayer.MatchModeSolo
		if inst, err := registry.Create(g.ID); err == nil {
			if m, ok := inst.(moder); ok {
				mode = m.Mode()
			}
		}
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Mode: mode})
	}
	return items
}

// MenuResult is what the player picked.
type MenuResult struct {
	Item   *MenuItem // nil when quitting
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
	Quit   bool
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	preset   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a menu starting on the given preset.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		items:  MenuItems(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		preset: 1,
	}
	for i, p := range Presets {
		if p == preset {
			m.preset = i
		}
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Easier):
		if m.preset > 0 {
			m.preset--
		}
	case key.Matches(msg, m.keys.Harder):
		if m.preset < len(Presets)-1 {
			m.preset++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P A N E L   P O N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Select a mode"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-20s %s", item.Title, dimStyle.Render(item.Mode.String()))
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %-20s", item.Title)) + " " + dimStyle.Render(item.Mode.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", Presets[m.preset]), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Result returns the menu outcome.
func (m MenuModel) Result() MenuResult {
	return MenuResult{
		Item:   m.selected,
		Preset: Presets[m.preset],
		Config: m.config,
		Quit:   m.quitting || m.selected == nil,
	}
}

// RunMenu shows the menu and returns the player's choice.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, preset), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}
	fm, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return fm.Result(), nil
}

// centerText centers text within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
