// Package multiplayer describes how a Panel Pon match is played and how
// it ended. Player1 is always the local human or the first CPU; Player2
// is the CPU opponent in versus matches.
package multiplayer

import "github.com/vovakirdan/tui-panelpon/internal/core"

// PlayerID is an alias to core.PlayerID for convenience.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// MatchID uniquely identifies a game match.
type MatchID string

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single human board.
	MatchModeSolo MatchMode = iota

	// MatchModeVsCPU pits the human board against a CPU board.
	MatchModeVsCPU

	// MatchModeDemo is a single board played by the CPU.
	MatchModeDemo
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeVsCPU:
		return "vs CPU"
	case MatchModeDemo:
		return "Demo"
	default:
		return "Unknown"
	}
}

// Players returns how many boards the mode runs.
func (m MatchMode) Players() int {
	if m == MatchModeVsCPU {
		return 2
	}
	return 1
}

// MatchEndReason describes why a match ended.
type MatchEndReason int

const (
	MatchEndReasonCompleted MatchEndReason = iota // A board topped out
	MatchEndReasonCancelled                       // Player restarted or quit
	MatchEndReasonTickLimit                       // Headless run hit its tick cap
)

func (r MatchEndReason) String() string {
	switch r {
	case MatchEndReasonCompleted:
		return "Match completed"
	case MatchEndReasonCancelled:
		return "Match cancelled"
	case MatchEndReasonTickLimit:
		return "Tick limit reached"
	default:
		return "Unknown"
	}
}

// VersusGame is implemented by games that run two boards against each other.
type VersusGame interface {
	// Reset initializes the game state.
	Reset(cfg core.RuntimeConfig)

	// StepMulti advances the game by one tick using input from both players.
	StepMulti(input core.MultiInputFrame) core.StepResult

	// IsGameOver returns true if the game has ended.
	IsGameOver() bool

	// Winner returns the winning player (Player1/Player2) or 0 if no winner yet.
	Winner() PlayerID

	// Score1 returns Player 1's score.
	Score1() int

	// Score2 returns Player 2's score.
	Score2() int
}
