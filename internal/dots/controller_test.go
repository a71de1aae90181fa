package dots_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

func newController(t *testing.T, settings dots.Settings, board *dots.Board, rng dots.Source) (*dots.Controller, *dots.Recorder) {
	t.Helper()
	rec := &dots.Recorder{}
	opts := []dots.Option{dots.WithObserver(rec)}
	if board != nil {
		opts = append(opts, dots.WithBoard(board))
	}
	if rng != nil {
		opts = append(opts, dots.WithSource(rng))
	}
	c, err := dots.NewController(settings, opts...)
	require.NoError(t, err)
	return c, rec
}

func drag(c *dots.Controller, cells ...dots.CellCoord) {
	c.PointerDown(cells[0])
	for _, cell := range cells[1:] {
		c.PointerMove(cell)
	}
}

func TestNewControllerDefaults(t *testing.T) {
	c, rec := newController(t, dots.DefaultSettings().WithSeed(1), nil, nil)

	assert.Equal(t, 0, c.Score())
	assert.Equal(t, dots.DefaultMoveBudget, c.MovesLeft())
	assert.Equal(t, dots.PhaseIdle, c.Phase())
	assert.False(t, c.GameOver())
	assert.Equal(t, dots.DefaultGridSize, c.Board().Size())
	assert.Empty(t, rec.Events, "construction emits nothing")
}

func TestNewControllerRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dots.Settings)
	}{
		{"grid too small", func(s *dots.Settings) { s.GridSize = 2 }},
		{"zero moves", func(s *dots.Settings) { s.MoveBudget = 0 }},
		{"palette too small", func(s *dots.Settings) { s.PaletteSize = 1 }},
		{"palette too large", func(s *dots.Settings) { s.PaletteSize = dots.MaxPalette + 1 }},
		{"unknown loop removal", func(s *dots.Settings) { s.LoopRemoval = "everything" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := dots.DefaultSettings()
			tc.mutate(&s)
			_, err := dots.NewController(s)
			assert.ErrorIs(t, err, dots.ErrInvalidSettings)
		})
	}
}

func TestRejectedGestureLeavesSessionUntouched(t *testing.T) {
	board := mustBoard(t,
		"R G R G",
		"G R G R",
		"R G R G",
		"G R G G",
	)
	c, rec := newController(t, dots.DefaultSettings(), board, nil)

	c.PointerDown(dots.At(0, 0))
	c.PointerMove(dots.At(1, 1))
	c.PointerMove(dots.At(0, 1))
	c.PointerUp()

	assert.Equal(t, []dots.EventKind{dots.KindPathUpdated, dots.KindPathUpdated}, rec.Kinds())
	last, ok := rec.Last(dots.KindPathUpdated)
	require.True(t, ok)
	assert.Empty(t, last.(dots.PathUpdated).Path)

	assert.Equal(t, 0, c.Score())
	assert.Equal(t, dots.DefaultMoveBudget, c.MovesLeft())
	assert.Equal(t, dots.PhaseIdle, c.Phase())
	assert.True(t, c.Board().Equal(board))
}

func TestTwoDotCommit(t *testing.T) {
	c, rec := newController(t, dots.DefaultSettings(),
		mustBoard(t,
			"R R G",
			"G B R",
			"R G B",
		),
		dots.NewSequenceSource(dots.ColorGreen),
	)

	drag(c, dots.At(0, 0), dots.At(1, 0))
	c.PointerUp()

	assert.Equal(t, []dots.EventKind{
		dots.KindPathUpdated,
		dots.KindPathUpdated,
		dots.KindDotsRemoved,
		dots.KindDotsMoved,
		dots.KindDotsInserted,
		dots.KindScoreChanged,
		dots.KindMovesChanged,
	}, rec.Kinds())

	removed, _ := rec.Last(dots.KindDotsRemoved)
	assert.Equal(t, []dots.CellCoord{dots.At(0, 0), dots.At(1, 0)}, removed.(dots.DotsRemoved).Coords)

	moved, _ := rec.Last(dots.KindDotsMoved)
	assert.Empty(t, moved.(dots.DotsMoved).Moves)

	inserted, _ := rec.Last(dots.KindDotsInserted)
	assert.Equal(t, []dots.DotInsert{
		{At: dots.At(0, 0), Color: dots.ColorGreen},
		{At: dots.At(1, 0), Color: dots.ColorGreen},
	}, inserted.(dots.DotsInserted).Insertions)

	score, _ := rec.Last(dots.KindScoreChanged)
	assert.Equal(t, dots.ScoreChanged{Score: 2}, score)
	moves, _ := rec.Last(dots.KindMovesChanged)
	assert.Equal(t, dots.MovesChanged{Remaining: dots.DefaultMoveBudget - 1}, moves)

	assert.Equal(t, "G G G\nG B R\nR G B", c.Board().String())
	assert.Equal(t, dots.PhaseIdle, c.Phase())
	path, _ := c.Path()
	assert.Empty(t, path)
}

func TestLoopRemovesEveryDotOfColor(t *testing.T) {
	c, rec := newController(t, dots.DefaultSettings(),
		mustBoard(t,
			"R R R",
			"R G R",
			"R R R",
		),
		dots.NewSequenceSource(dots.ColorBlue),
	)

	drag(c,
		dots.At(0, 0), dots.At(1, 0), dots.At(2, 0),
		dots.At(2, 1), dots.At(2, 2), dots.At(1, 2),
		dots.At(0, 2), dots.At(0, 1),
	)
	require.Equal(t, dots.PhaseDrawing, c.Phase())
	c.PointerMove(dots.At(0, 0))

	// Resolution happens on the loop close, before any release.
	assert.Equal(t, dots.PhaseIdle, c.Phase())
	assert.Equal(t, 8, c.Score())
	assert.Equal(t, dots.DefaultMoveBudget-1, c.MovesLeft())

	removed, _ := rec.Last(dots.KindDotsRemoved)
	assert.Len(t, removed.(dots.DotsRemoved).Coords, 8)

	moved, _ := rec.Last(dots.KindDotsMoved)
	assert.Equal(t, []dots.DotMove{
		{From: dots.At(1, 1), To: dots.At(1, 2), Color: dots.ColorGreen},
	}, moved.(dots.DotsMoved).Moves)

	assert.Equal(t, "B B B\nB B B\nB G B", c.Board().String())

	c.PointerUp()
	assert.Equal(t, 8, c.Score(), "release after a loop is dropped")
}

func TestLoopRemovalModes(t *testing.T) {
	rows := []string{
		"R R G B",
		"R R B G",
		"G B R G",
		"B G B Y",
	}
	loop := []dots.CellCoord{dots.At(0, 0), dots.At(1, 0), dots.At(1, 1), dots.At(0, 1), dots.At(0, 0)}

	tests := []struct {
		mode     dots.LoopRemoval
		expected int
	}{
		{dots.LoopRemovesColor, 5},
		{dots.LoopRemovesPath, 4},
	}

	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			s := dots.DefaultSettings()
			s.LoopRemoval = tc.mode
			c, _ := newController(t, s, mustBoard(t, rows...), dots.NewSequenceSource(dots.ColorYellow))

			drag(c, loop...)
			assert.Equal(t, tc.expected, c.Score())
		})
	}
}

func TestBacktrackAndCancel(t *testing.T) {
	c, rec := newController(t, dots.DefaultSettings(), allRed3(t), nil)

	c.PointerDown(dots.At(0, 0))
	c.PointerMove(dots.At(1, 0))
	c.PointerMove(dots.At(1, 0))
	c.PointerMove(dots.At(0, 0))

	path, color := c.Path()
	assert.Equal(t, []dots.CellCoord{dots.At(0, 0)}, path)
	assert.Equal(t, dots.ColorRed, color)

	c.PointerUp()

	assert.Equal(t, []dots.EventKind{
		dots.KindPathUpdated,
		dots.KindPathUpdated,
		dots.KindPathUpdated,
		dots.KindPathUpdated,
	}, rec.Kinds())
	assert.Equal(t, 0, c.Score())
	assert.Equal(t, dots.DefaultMoveBudget, c.MovesLeft())
}

func TestCancelPath(t *testing.T) {
	c, rec := newController(t, dots.DefaultSettings(), allRed3(t), nil)

	c.CancelPath()
	assert.Empty(t, rec.Events, "cancel while idle is dropped")

	drag(c, dots.At(0, 0), dots.At(0, 1))
	c.CancelPath()

	assert.Equal(t, dots.PhaseIdle, c.Phase())
	last, _ := rec.Last(dots.KindPathUpdated)
	assert.Empty(t, last.(dots.PathUpdated).Path)
	assert.Equal(t, 0, c.Score())
}

func TestGameOverNoMoves(t *testing.T) {
	s := dots.DefaultSettings()
	s.PaletteSize = 2
	c, rec := newController(t, s,
		mustBoard(t,
			"G G R G",
			"G R G R",
			"R G R G",
			"G R G R",
		),
		dots.NewSequenceSource(dots.ColorRed, dots.ColorGreen),
	)

	drag(c, dots.At(0, 0), dots.At(1, 0))
	c.PointerUp()

	require.True(t, c.GameOver())
	assert.Equal(t, dots.ReasonNoMoves, c.Reason())
	assert.Equal(t, dots.PhaseGameOver, c.Phase())

	kinds := rec.Kinds()
	assert.Equal(t, dots.KindGameOver, kinds[len(kinds)-1])
	over, _ := rec.Last(dots.KindGameOver)
	assert.Equal(t, dots.GameOver{FinalScore: 2, Reason: dots.ReasonNoMoves}, over)

	rec.Reset()
	c.PointerMove(dots.At(1, 1))
	c.PointerUp()
	assert.Empty(t, rec.Events, "input after game over is dropped")

	c.PointerDown(dots.At(0, 0))

	assert.Equal(t, []dots.EventKind{
		dots.KindSessionReset,
		dots.KindScoreChanged,
		dots.KindMovesChanged,
	}, rec.Kinds())
	assert.False(t, c.GameOver())
	assert.Equal(t, dots.PhaseIdle, c.Phase(), "the reset press does not start a path")
	assert.Equal(t, 0, c.Score())
	assert.Equal(t, dots.DefaultMoveBudget, c.MovesLeft())
	assert.Equal(t, dots.GameOverReason(""), c.Reason())
}

func TestGameOverMovesExhausted(t *testing.T) {
	s := dots.DefaultSettings()
	s.MoveBudget = 1
	c, rec := newController(t, s,
		mustBoard(t,
			"R R G",
			"G B R",
			"R G B",
		),
		dots.NewSequenceSource(dots.ColorGreen),
	)

	drag(c, dots.At(0, 0), dots.At(1, 0))
	c.PointerUp()

	require.True(t, c.GameOver())
	assert.Equal(t, dots.ReasonMovesExhausted, c.Reason())
	assert.Equal(t, 0, c.MovesLeft())

	over, ok := rec.Last(dots.KindGameOver)
	require.True(t, ok)
	assert.Equal(t, 2, over.(dots.GameOver).FinalScore)

	count := 0
	for _, k := range rec.Kinds() {
		if k == dots.KindGameOver {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestPointerEventsOutOfOrderAreDropped(t *testing.T) {
	c, rec := newController(t, dots.DefaultSettings(), allRed3(t), nil)

	c.PointerMove(dots.At(0, 0))
	c.PointerUp()
	assert.Empty(t, rec.Events)

	c.PointerDown(dots.At(0, 0))
	c.PointerDown(dots.At(1, 1))
	assert.Len(t, rec.Events, 1, "second press while drawing is dropped")
	path, _ := c.Path()
	assert.Equal(t, []dots.CellCoord{dots.At(0, 0)}, path)

	c.PointerUp()
	c.PointerDown(dots.At(5, 5))
	assert.Equal(t, dots.PhaseIdle, c.Phase(), "press off the board is dropped")
}

func TestReset(t *testing.T) {
	c, rec := newController(t, dots.DefaultSettings().WithSeed(3), nil, nil)
	before := c.Board()

	c.Reset()

	assert.Equal(t, []dots.EventKind{
		dots.KindSessionReset,
		dots.KindScoreChanged,
		dots.KindMovesChanged,
	}, rec.Kinds())
	reset, _ := rec.Last(dots.KindSessionReset)
	assert.Equal(t, dots.SessionReset{
		GridSize: dots.DefaultGridSize,
		Score:    0,
		Moves:    dots.DefaultMoveBudget,
	}, reset)
	assert.False(t, c.Board().Equal(before), "reset deals a new board")
}

func TestDeadDealEndsGame(t *testing.T) {
	board := mustBoard(t, "RGB", "BRG", "GBR")
	c, rec := newController(t, dots.DefaultSettings(), board, nil)

	assert.True(t, c.GameOver())
	assert.Equal(t, dots.ReasonNoMoves, c.Reason())
	assert.Equal(t, dots.PhaseGameOver, c.Phase())
	assert.Equal(t, dots.DefaultMoveBudget, c.MovesLeft())
	over, ok := rec.Last(dots.KindGameOver)
	require.True(t, ok)
	assert.Equal(t, dots.GameOver{FinalScore: 0, Reason: dots.ReasonNoMoves}, over)

	c.PointerDown(dots.At(0, 0))
	assert.True(t, c.GameOver(), "the same dead board is dealt again")
	assert.Equal(t, dots.PhaseGameOver, c.Phase())
}

func TestResetIntoDeadBoard(t *testing.T) {
	s := dots.DefaultSettings()
	s.PaletteSize = 4
	// Dealt row-major this cycle gives R G B / Y R G / B Y R.
	rng := dots.NewSequenceSource(dots.ColorRed, dots.ColorGreen, dots.ColorBlue, dots.ColorYellow)
	s.GridSize = 3
	c, rec := newController(t, s, nil, rng)
	require.True(t, c.GameOver())
	rec.Reset()

	c.Reset()

	assert.Equal(t, []dots.EventKind{
		dots.KindSessionReset,
		dots.KindScoreChanged,
		dots.KindMovesChanged,
		dots.KindGameOver,
	}, rec.Kinds())
	assert.Equal(t, dots.ReasonNoMoves, c.Reason())
}

func TestHandlersDispatch(t *testing.T) {
	var scores []int
	var paths int
	h := dots.Handlers{
		OnScoreChanged: func(e dots.ScoreChanged) { scores = append(scores, e.Score) },
		OnPathUpdated:  func(dots.PathUpdated) { paths++ },
	}

	c, err := dots.NewController(dots.DefaultSettings(),
		dots.WithBoard(allRed3(t)),
		dots.WithSource(dots.NewSequenceSource(dots.ColorBlue)),
		dots.WithObserver(h),
	)
	require.NoError(t, err)

	drag(c, dots.At(0, 0), dots.At(0, 1), dots.At(0, 2))
	c.PointerUp()

	assert.Equal(t, []int{3}, scores)
	assert.Equal(t, 3, paths)
}

func TestObserversNotifiedInOrder(t *testing.T) {
	var order []string
	first := dots.ObserverFunc(func(dots.Event) { order = append(order, "first") })
	second := dots.ObserverFunc(func(dots.Event) { order = append(order, "second") })

	c, err := dots.NewController(dots.DefaultSettings(), dots.WithBoard(allRed3(t)), dots.WithObserver(first))
	require.NoError(t, err)
	c.AddObserver(second)

	c.PointerDown(dots.At(0, 0))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSnapshot(t *testing.T) {
	c, _ := newController(t, dots.DefaultSettings(), allRed3(t), nil)
	drag(c, dots.At(0, 0), dots.At(1, 0))

	snap := c.Snapshot()
	assert.Equal(t, 3, snap.GridSize)
	assert.Len(t, snap.Board, 9)
	assert.Equal(t, []dots.CellCoord{dots.At(0, 0), dots.At(1, 0)}, snap.Path)
	assert.Equal(t, dots.ColorRed, snap.PathColor)
	assert.Equal(t, dots.PhaseDrawing, snap.Phase)
}

// randomGestures drives c with presses, drags to neighbors of the path head
// and releases chosen by pick.
func randomGestures(c *dots.Controller, pick *rand.Rand, steps int, after func()) {
	n := c.Settings().GridSize
	for i := 0; i < steps; i++ {
		switch c.Phase() {
		case dots.PhaseDrawing:
			if pick.Intn(5) == 0 {
				c.PointerUp()
				break
			}
			path, _ := c.Path()
			next := path[len(path)-1].Neighbors(n)
			c.PointerMove(next[pick.Intn(len(next))])
		default:
			c.PointerDown(dots.At(pick.Intn(n), pick.Intn(n)))
		}
		if after != nil {
			after()
		}
	}
}

func TestSameSeedSameSession(t *testing.T) {
	s := dots.DefaultSettings().WithSeed(2024)
	a, recA := newController(t, s, nil, nil)
	b, recB := newController(t, s, nil, nil)

	randomGestures(a, rand.New(rand.NewSource(5)), 400, nil)
	randomGestures(b, rand.New(rand.NewSource(5)), 400, nil)

	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Equal(t, recA.Events, recB.Events)
}

func TestRandomSessionInvariants(t *testing.T) {
	sparse := dots.DefaultSettings()
	sparse.GridSize = 3
	sparse.PaletteSize = dots.MaxPalette

	for _, base := range []dots.Settings{dots.DefaultSettings(), sparse} {
		for seed := int64(0); seed < 10; seed++ {
			randomSession(t, base.WithSeed(seed), seed)
		}
	}
}

func randomSession(t *testing.T, s dots.Settings, seed int64) {
	t.Helper()
	s.MoveBudget = 15
	c, rec := newController(t, s, nil, nil)
	n := s.GridSize

	lastScore := 0
	gameOvers := 0
	seen := 0
	check := func() {
		snap := c.Snapshot()

		require.Len(t, snap.Board, n*n)
		for _, color := range snap.Board {
			require.Less(t, int(color), s.PaletteSize)
		}

		visited := make(map[dots.CellCoord]bool)
		for i, p := range snap.Path {
			require.False(t, visited[p], "path repeats %v", p)
			visited[p] = true
			require.Equal(t, snap.PathColor, snap.Board[p.Row*n+p.Col])
			if i > 0 {
				require.True(t, snap.Path[i-1].Adjacent(p))
			}
		}

		require.Equal(t, s.MoveBudget-snap.Resolved, snap.MovesLeft)
		require.GreaterOrEqual(t, snap.MovesLeft, 0)

		for _, e := range rec.Events[seen:] {
			switch ev := e.(type) {
			case dots.DotsRemoved:
				lastScore += len(ev.Coords)
			case dots.ScoreChanged:
				require.Equal(t, lastScore, ev.Score)
			case dots.GameOver:
				gameOvers++
			case dots.SessionReset:
				lastScore = 0
				gameOvers = 0
			}
		}
		seen = len(rec.Events)
		require.Equal(t, lastScore, snap.Score)
		require.LessOrEqual(t, gameOvers, 1)
		require.Equal(t, snap.GameOver, gameOvers == 1)

		stuck := !c.Board().AnyLegalMove()
		if snap.GameOver {
			require.True(t, snap.MovesLeft == 0 || stuck, "game over with moves and a legal move left")
		}
		if stuck || snap.MovesLeft == 0 {
			require.True(t, snap.GameOver, "no way to play on but the game is not over")
		}
	}

	randomGestures(c, rand.New(rand.NewSource(seed)), 2000, check)
}
