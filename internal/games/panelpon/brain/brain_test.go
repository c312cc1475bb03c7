package brain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon/engine"
)

// seqSource replays a fixed sequence of draws.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

type fakeView struct {
	columns, rows, colors int
	heights               []int
	forcing               bool
	cursor                engine.Cursor
	cells                 map[[2]int]int
}

func newFakeView(heights ...int) *fakeView {
	return &fakeView{
		columns: 6,
		rows:    13,
		colors:  5,
		heights: heights,
		cursor:  engine.Cursor{X: 2, Y: 6},
		cells:   make(map[[2]int]int),
	}
}

// row fills row y from a layout string, '.' meaning empty.
func (f *fakeView) row(y int, line string) *fakeView {
	for x, ch := range line {
		if ch != '.' {
			f.cells[[2]int{x, y}] = int(ch - '0')
		}
	}
	return f
}

func (f *fakeView) Columns() int          { return f.columns }
func (f *fakeView) Rows() int             { return f.rows }
func (f *fakeView) Colors() int           { return f.colors }
func (f *fakeView) ColumnHeights() []int  { return f.heights }
func (f *fakeView) ForceScrolling() bool  { return f.forcing }
func (f *fakeView) Cursor() engine.Cursor { return f.cursor }
func (f *fakeView) ColorAt(x, y int) (int, bool) {
	c, ok := f.cells[[2]int{x, y}]
	return c, ok
}

func TestCadence(t *testing.T) {
	b := New(DefaultOptions(), &seqSource{})
	v := newFakeView(3, 3, 3, 3, 3, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, b.Next(v).IsZero(), "tick %d", i)
	}
	assert.Equal(t, engine.Input{ForceScroll: true}, b.Next(v))

	v.forcing = true
	for i := 0; i < 8; i++ {
		assert.True(t, b.Next(v).IsZero())
	}
}

func TestPlanWaitsWhileForcing(t *testing.T) {
	b := New(DefaultOptions(), &seqSource{})
	v := newFakeView(1, 1, 1, 1, 1, 1)
	v.forcing = true
	assert.Nil(t, b.plan(v))
}

func TestPlanBalances(t *testing.T) {
	b := New(DefaultOptions(), &seqSource{})
	v := newFakeView(9, 9, 6, 9, 9, 9)

	assert.Equal(t, []Target{{X: 1, Y: 9}}, balance(v.heights))
	assert.Equal(t, []engine.Input{
		{Left: true},
		{Up: true}, {Up: true}, {Up: true},
		{Exchange: true},
	}, b.plan(v))
}

func TestBalanceLevelColumns(t *testing.T) {
	assert.Nil(t, balance([]int{9, 8, 9, 10, 9, 9}))
	assert.Equal(t, []Target{{X: 4, Y: 11}}, balance([]int{9, 9, 9, 9, 9, 11}))
}

func TestSeekMatchCarriesToAnchor(t *testing.T) {
	v := newFakeView(9, 9, 9, 9, 9, 9).
		row(1, "233...").
		row(2, "44..2.").
		row(3, "..23..")
	b := New(DefaultOptions(), &seqSource{})

	assert.Equal(t, []Target{
		{X: 0, Y: 1}, {X: 1, Y: 1},
		{X: 3, Y: 2}, {X: 2, Y: 2},
	}, b.seekMatch(v))
}

func TestSeekMatchUsesRandomPicks(t *testing.T) {
	v := newFakeView(9, 9, 9, 9, 9, 9).
		row(1, "2.2...").
		row(2, "2...2.").
		row(3, "2....2")
	// picks: row1 x=2, row2 x=0, row3 x=5
	b := New(DefaultOptions(), &seqSource{vals: []int{1, 0, 1}})

	assert.Equal(t, []Target{
		{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2},
	}, b.seekMatch(v))
}

func TestSeekMatchAlignedIsEmpty(t *testing.T) {
	v := newFakeView(9, 9, 9, 9, 9, 9).
		row(1, ".1....").
		row(2, ".1....").
		row(3, ".1....")
	b := New(DefaultOptions(), &seqSource{})

	targets := b.seekMatch(v)
	assert.NotNil(t, targets)
	assert.Empty(t, targets)

	// Nothing to do this cycle; the next cycle plans again
	b.opts.InputCycle = 1
	assert.True(t, b.Next(v).IsZero())
	assert.Zero(t, b.Pending())
}

func TestSeekMatchNone(t *testing.T) {
	v := newFakeView(9, 9, 9, 9, 9, 9).
		row(1, "0123..").
		row(2, "4.....").
		row(3, "0123..")
	b := New(DefaultOptions(), &seqSource{})
	assert.Nil(t, b.seekMatch(v))
}

func TestExplore(t *testing.T) {
	v := newFakeView(9, 9, 4, 7, 9, 9)
	b := New(DefaultOptions(), &seqSource{vals: []int{2, 5}})
	assert.Equal(t, []Target{{X: 2, Y: 5}}, b.explore(v, v.heights))

	empty := newFakeView(-1, -1, -1, -1, -1, -1)
	b = New(DefaultOptions(), &seqSource{vals: []int{0, 3}})
	assert.Equal(t, []Target{{X: 0, Y: 0}}, b.explore(empty, empty.heights))
}

func TestCarry(t *testing.T) {
	tests := []struct {
		name    string
		now, to int
		want    []Target
	}{
		{"already there", 3, 3, nil},
		{"right", 1, 3, []Target{{1, 4}, {2, 4}}},
		{"left", 4, 1, []Target{{3, 4}, {2, 4}, {1, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, carry(tt.now, tt.to, 4))
		})
	}
}

func TestToInputs(t *testing.T) {
	got := toInputs(engine.Cursor{X: 2, Y: 6}, []Target{{X: 0, Y: 1}, {X: 1, Y: 1}}, 6, 13)
	want := []engine.Input{
		{Left: true}, {Left: true},
		{Down: true}, {Down: true}, {Down: true}, {Down: true}, {Down: true},
		{Exchange: true},
		{Right: true},
		{Exchange: true},
	}
	assert.Equal(t, want, got)

	// Out of range targets are clamped to the cursor's bounds
	got = toInputs(engine.Cursor{X: 4, Y: 1}, []Target{{X: 5, Y: 0}}, 6, 13)
	assert.Equal(t, []engine.Input{{Exchange: true}}, got)
}

func TestQueueReplaysOnePerCycle(t *testing.T) {
	b := New(Options{InputCycle: 2, SafetyMargin: 4}, &seqSource{})
	v := newFakeView(9, 9, 6, 9, 9, 9)

	var got []engine.Input
	for i := 0; i < 10; i++ {
		got = append(got, b.Next(v))
	}
	assert.Equal(t, []engine.Input{
		{}, {Left: true},
		{}, {Up: true},
		{}, {Up: true},
		{}, {Up: true},
		{}, {Exchange: true},
	}, got)

	b.Reset()
	assert.Zero(t, b.Pending())
}

func TestBrainPlaysRealBoard(t *testing.T) {
	run := func() engine.Snapshot {
		board, err := engine.NewBoard(engine.DefaultRules(), rand.New(rand.NewPCG(21, 42)))
		require.NoError(t, err)
		cpu := New(DefaultOptions(), rand.New(rand.NewPCG(5, 8)))

		for i := 0; i < 20000 && board.Alive(); i++ {
			board.Step(cpu.Next(board))
			require.NoError(t, board.Check())
		}
		return board.Snapshot()
	}

	first, second := run(), run()
	assert.Equal(t, first, second)
	assert.Greater(t, first.Tick, uint64(100))
}
