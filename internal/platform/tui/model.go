package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-panelpon/internal/core"
	"github.com/vovakirdan/tui-panelpon/internal/multiplayer"
	"github.com/vovakirdan/tui-panelpon/internal/registry"
)

// matchGame is implemented by games that track a match outcome.
type matchGame interface {
	Finish(reason multiplayer.MatchEndReason) multiplayer.MatchResult
	Result() (multiplayer.MatchResult, bool)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger

	quitting   bool
	backToMenu bool
	reported   bool // game over has been logged
}

// NewModel creates a model for the given game. A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
	}
}

// Init starts the tick loop. The game is reset by Run before the program starts.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keys to actions. Platform actions are handled here,
// the rest are buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.cancel("quit")
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.cancel("back to menu")
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionRestart:
		m.restart()
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step with the buffered input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !m.reported {
		m.reported = true
		m.logResult()
	}
	return m, tickCmd(m.config.TickRate)
}

// restart abandons the current match and starts a fresh one with a new seed.
func (m *Model) restart() {
	m.cancel("restart")
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.reported = false
	m.logger.Info("match started", "game", m.game.ID(), "seed", m.config.Seed)
}

// cancel ends a running match so its result is recorded.
func (m *Model) cancel(why string) {
	mg, ok := m.game.(matchGame)
	if !ok || m.gameState.GameOver {
		return
	}
	r := mg.Finish(multiplayer.MatchEndReasonCancelled)
	m.logger.Info("match cancelled", "game", m.game.ID(), "why", why, "match", r.MatchID, "score", r.Score1, "ticks", r.Ticks)
}

func (m *Model) logResult() {
	mg, ok := m.game.(matchGame)
	if !ok {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
		return
	}
	r, ok := mg.Result()
	if !ok {
		return
	}
	m.logger.Info("match over",
		"game", m.game.ID(),
		"match", r.MatchID,
		"mode", r.Mode,
		"reason", r.Reason,
		"winner", int(r.Winner),
		"score1", r.Score1,
		"score2", r.Score2,
		"ticks", r.Ticks,
	)
}

// View renders the game above a key help footer.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	footer := m.help.View(m.keys)
	h := m.config.ScreenH - lipgloss.Height(footer)
	if h < 1 {
		h = 1
	}
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run resets the game and plays it until the player quits or goes back.
// It returns true when the player asked for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	model := NewModel(game, cfg, logger)
	model.game.Reset(model.config)
	model.gameState = model.game.State()
	model.logger.Info("match started", "game", game.ID(), "seed", model.config.Seed)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		model.logger.Error("session failed", "game", game.ID(), "err", err)
		return false, err
	}
	fm, ok := final.(Model)
	back := ok && fm.BackToMenu()
	model.logger.Info("session ended", "game", game.ID(), "menu", back)
	return back, nil
}
