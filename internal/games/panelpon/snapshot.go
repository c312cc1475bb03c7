package panelpon

import (
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon/engine"
	"github.com/vovakirdan/tui-panelpon/internal/multiplayer"
)

// Snapshot represents the game state for testing and debugging.
type Snapshot struct {
	Mode     multiplayer.MatchMode
	Tick     uint64
	GameOver bool
	Winner   multiplayer.PlayerID
	Player   engine.Snapshot
	Rival    *engine.Snapshot
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:     g.mode,
		Tick:     g.tickCount,
		GameOver: g.gameOver,
		Winner:   g.Winner(),
		Player:   g.player.Snapshot(),
	}
	if g.rival != nil {
		rs := g.rival.Snapshot()
		s.Rival = &rs
	}
	return s
}
