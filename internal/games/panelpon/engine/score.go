package engine

import "fmt"

// BonusTable maps a count to bonus points. Values[i] is paid for Start+i;
// counts past the end of Values pay Overflow.
type BonusTable struct {
	Start    int
	Values   []int
	Overflow int
}

// Lookup returns the bonus for n. ok is false below Start.
func (t BonusTable) Lookup(n int) (bonus int, ok bool) {
	if t.Start <= 0 || n < t.Start {
		return 0, false
	}
	if i := n - t.Start; i < len(t.Values) {
		return t.Values[i], true
	}
	return t.Overflow, true
}

// ComboTable pays 150c-250 for chains of 2 through 13 and nothing beyond.
func ComboTable() BonusTable {
	t := BonusTable{Start: 2}
	for c := 2; c <= 13; c++ {
		t.Values = append(t.Values, 150*c-250)
	}
	return t
}

// ManyTable pays floor(2n²/10)*10 for 4 through 30 tiles, nothing for
// exactly 31 and 33000 above.
func ManyTable() BonusTable {
	t := BonusTable{Start: 4, Overflow: 33000}
	for n := 4; n <= 30; n++ {
		t.Values = append(t.Values, (2*n*n/10)*10)
	}
	t.Values = append(t.Values, 0)
	return t
}

// ScoreTracker accumulates points and recent bonus messages.
type ScoreTracker struct {
	rules    ScoreRules
	score    int
	messages []string
	age      int
}

// NewScoreTracker creates an empty tracker.
func NewScoreTracker(rules ScoreRules) *ScoreTracker {
	return &ScoreTracker{rules: rules}
}

// Record adds the points for one tick's vanish count and combo level and
// returns them.
func (s *ScoreTracker) Record(vanished, combo int) int {
	gained := vanished * s.rules.VanishPoints
	if bonus, ok := s.rules.Combo.Lookup(combo); ok {
		gained += bonus
		s.push(fmt.Sprintf("%d combo!", combo))
	}
	if bonus, ok := s.rules.Many.Lookup(vanished); ok {
		gained += bonus
		s.push(fmt.Sprintf("%d vanish!", vanished))
	}
	s.score += gained
	return gained
}

// push queues a message and restarts the expiry clock, so every message
// is shown for at least MessageTTL ticks.
func (s *ScoreTracker) push(msg string) {
	s.age = 0
	s.messages = append(s.messages, msg)
	if over := len(s.messages) - s.rules.MessageCapacity; over > 0 {
		s.messages = s.messages[over:]
	}
}

// Age advances the message clock; the oldest message expires after
// MessageTTL ticks without a new message.
func (s *ScoreTracker) Age() {
	s.age = (s.age + 1) % s.rules.MessageTTL
	if s.age == 0 && len(s.messages) > 0 {
		s.messages = s.messages[1:]
	}
}

// Score returns the running total.
func (s *ScoreTracker) Score() int {
	return s.score
}

// Messages returns the active messages, oldest first.
func (s *ScoreTracker) Messages() []string {
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}
