// Package brain implements the CPU player. It reads a board through View
// and produces one engine.Input per tick, acting only every InputCycle
// ticks to model reaction time.
package brain

import (
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon/engine"
)

// Source is the planner's random source. Inject a seeded one for
// reproducible play.
type Source interface {
	IntN(n int) int
}

// View is the read-only board surface the planner needs.
// *engine.Board satisfies it.
type View interface {
	Columns() int
	Rows() int
	Colors() int
	ColumnHeights() []int
	ForceScrolling() bool
	Cursor() engine.Cursor
	ColorAt(x, y int) (int, bool)
}

// Options tune the planner.
type Options struct {
	InputCycle   int // ticks between inputs
	SafetyMargin int // force-scroll while the tallest column is below Rows-SafetyMargin
}

// DefaultOptions returns the standard CPU timing.
func DefaultOptions() Options {
	return Options{InputCycle: 4, SafetyMargin: 4}
}

// Brain queues primitive inputs and replays them one per active tick.
type Brain struct {
	opts  Options
	rng   Source
	queue []engine.Input
	tick  int
}

// New creates a planner.
func New(opts Options, rng Source) *Brain {
	if opts.InputCycle < 1 {
		opts.InputCycle = 1
	}
	return &Brain{opts: opts, rng: rng}
}

// Next returns this tick's input. Off-cycle ticks return the zero input.
func (b *Brain) Next(v View) engine.Input {
	b.tick = (b.tick + 1) % b.opts.InputCycle
	if b.tick != 0 {
		return engine.Input{}
	}
	if len(b.queue) == 0 {
		b.queue = b.plan(v)
	}
	if len(b.queue) == 0 {
		return engine.Input{}
	}
	in := b.queue[0]
	b.queue = b.queue[1:]
	return in
}

// Pending returns the number of queued inputs.
func (b *Brain) Pending() int {
	return len(b.queue)
}

// Reset drops queued inputs and restarts the cadence.
func (b *Brain) Reset() {
	b.queue = nil
	b.tick = 0
}
