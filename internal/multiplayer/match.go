package multiplayer

import "fmt"

// MatchResult contains the outcome of a completed match.
type MatchResult struct {
	MatchID MatchID
	Mode    MatchMode
	Reason  MatchEndReason
	Winner  PlayerID // 0 for single-board modes and cancelled matches
	Score1  int
	Score2  int
	Ticks   uint64
}

// Summary formats the result for logs and the game over box.
func (r MatchResult) Summary() string {
	switch {
	case r.Reason != MatchEndReasonCompleted:
		return r.Reason.String()
	case r.Mode != MatchModeVsCPU:
		return fmt.Sprintf("Score %d", r.Score1)
	case r.Winner == Player1:
		return fmt.Sprintf("You win %d - %d", r.Score1, r.Score2)
	default:
		return fmt.Sprintf("CPU wins %d - %d", r.Score2, r.Score1)
	}
}

// Match tracks one game from start to result.
type Match struct {
	id     MatchID
	mode   MatchMode
	result *MatchResult
}

// NewMatch creates a new match with the given parameters.
func NewMatch(id MatchID, mode MatchMode) *Match {
	return &Match{id: id, mode: mode}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// Finish records the outcome. Only the first call has an effect.
func (m *Match) Finish(reason MatchEndReason, winner PlayerID, score1, score2 int, ticks uint64) MatchResult {
	if m.result == nil {
		m.result = &MatchResult{
			MatchID: m.id,
			Mode:    m.mode,
			Reason:  reason,
			Winner:  winner,
			Score1:  score1,
			Score2:  score2,
			Ticks:   ticks,
		}
	}
	return *m.result
}

// Done reports whether the match has a result.
func (m *Match) Done() bool {
	return m.result != nil
}

// Result returns the recorded outcome, if any.
func (m *Match) Result() (MatchResult, bool) {
	if m.result == nil {
		return MatchResult{}, false
	}
	return *m.result, true
}
