package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move cursor up
	ActionDown            // S, Down arrow - move cursor down
	ActionLeft            // A, Left arrow - move cursor left
	ActionRight           // D, Right arrow - move cursor right
	ActionExchange        // Space - swap the two panels under the cursor
	ActionRaise           // Z - force the stack to rise faster
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionExchange:
		return "Exchange"
	case ActionRaise:
		return "Raise"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PlayerID identifies a board owner within a match.
// Player1 is always the local human player, Player2 is the CPU in versus mode.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// MultiInputFrame contains input from all players for a single tick.
// The platform fills Player1 from the keyboard; CPU players are driven inside the game.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if m.ByPlayer == nil {
		return NewInputFrame()
	}
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Player1 returns the input frame for Player 1 (convenience method).
func (m MultiInputFrame) Player1() InputFrame {
	return m.Player(Player1)
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}
