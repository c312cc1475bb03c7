package multiplayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchFinishOnce(t *testing.T) {
	m := NewMatch("m1", MatchModeVsCPU)
	assert.False(t, m.Done())
	_, ok := m.Result()
	assert.False(t, ok)

	r := m.Finish(MatchEndReasonCompleted, Player2, 120, 340, 900)
	assert.True(t, m.Done())
	assert.Equal(t, Player2, r.Winner)
	assert.Equal(t, MatchModeVsCPU, r.Mode)

	// Later calls keep the first result
	r = m.Finish(MatchEndReasonCancelled, Player1, 0, 0, 1)
	assert.Equal(t, MatchEndReasonCompleted, r.Reason)
	assert.Equal(t, uint64(900), r.Ticks)
}

func TestMatchResultSummary(t *testing.T) {
	tests := []struct {
		name string
		r    MatchResult
		want string
	}{
		{"solo", MatchResult{Mode: MatchModeSolo, Score1: 420}, "Score 420"},
		{"demo", MatchResult{Mode: MatchModeDemo, Score1: 10}, "Score 10"},
		{"vs win", MatchResult{Mode: MatchModeVsCPU, Winner: Player1, Score1: 50, Score2: 20}, "You win 50 - 20"},
		{"vs loss", MatchResult{Mode: MatchModeVsCPU, Winner: Player2, Score1: 50, Score2: 20}, "CPU wins 20 - 50"},
		{"cancelled", MatchResult{Mode: MatchModeVsCPU, Reason: MatchEndReasonCancelled}, "Match cancelled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Summary())
		})
	}
}

func TestMatchModePlayers(t *testing.T) {
	assert.Equal(t, 1, MatchModeSolo.Players())
	assert.Equal(t, 2, MatchModeVsCPU.Players())
	assert.Equal(t, "Demo", MatchModeDemo.String())
}
