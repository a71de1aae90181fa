package dots_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

func mustBoard(t *testing.T, rows ...string) *dots.Board {
	t.Helper()
	b, err := dots.ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func cell(t *testing.T, b *dots.Board, col, row int) dots.Color {
	t.Helper()
	c, err := b.Cell(dots.At(col, row))
	require.NoError(t, err)
	return c
}

func TestNewBoardFillsEveryCell(t *testing.T) {
	b, err := dots.NewBoard(6, dots.NewRandSource(42, 5))
	require.NoError(t, err)

	colors := b.Colors()
	require.Len(t, colors, 36)
	for i, c := range colors {
		assert.Less(t, int(c), 5, "cell %d outside palette", i)
	}
}

func TestNewBoardDeterministic(t *testing.T) {
	a, err := dots.NewBoard(6, dots.NewRandSource(7, 5))
	require.NoError(t, err)
	b, err := dots.NewBoard(6, dots.NewRandSource(7, 5))
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same seed should deal the same board")
}

func TestBoardStorageIsRowMajor(t *testing.T) {
	b := mustBoard(t,
		"R G B",
		"Y P O",
		"C W R",
	)

	colors := b.Colors()
	assert.Equal(t, dots.ColorYellow, colors[1*3+0])
	assert.Equal(t, dots.ColorOrange, colors[1*3+2])
	assert.Equal(t, dots.ColorWhite, cell(t, b, 1, 2))
}

func TestBoardCellOutOfRange(t *testing.T) {
	b := mustBoard(t, "R G B", "G B R", "B R G")

	for _, c := range []dots.CellCoord{dots.At(-1, 0), dots.At(0, -1), dots.At(3, 0), dots.At(0, 3)} {
		_, err := b.Cell(c)
		assert.ErrorIs(t, err, dots.ErrInvalidCoord, "coord %v", c)
	}
}

func TestParseBoardErrors(t *testing.T) {
	_, err := dots.ParseBoard("R G", "G")
	assert.ErrorIs(t, err, dots.ErrBoardSize)

	_, err = dots.ParseBoard("R X", "G R")
	assert.Error(t, err)
}

func TestBoardString(t *testing.T) {
	b := mustBoard(t, "RG", "BY")
	assert.Equal(t, "R G\nB Y", b.String())
}

func TestRemoveAndSettleEmptyIsNoOp(t *testing.T) {
	b := mustBoard(t, "R G B", "G B R", "B R G")
	before := b.Clone()
	rng := dots.NewSequenceSource(dots.ColorYellow)

	report, err := b.RemoveAndSettle(nil, rng)
	require.NoError(t, err)

	assert.True(t, b.Equal(before))
	assert.Empty(t, report.Removed)
	assert.Empty(t, report.Columns)
	assert.Equal(t, 0, rng.Draws())
}

func TestRemoveAndSettleTopRowRefills(t *testing.T) {
	b := mustBoard(t,
		"R R G",
		"G B R",
		"R G B",
	)
	rng := dots.NewSequenceSource(dots.ColorYellow, dots.ColorPurple)

	report, err := b.RemoveAndSettle([]dots.CellCoord{dots.At(1, 0), dots.At(0, 0)}, rng)
	require.NoError(t, err)

	assert.Equal(t, []dots.CellCoord{dots.At(0, 0), dots.At(1, 0)}, report.Removed)
	assert.Empty(t, report.Moves())
	assert.Equal(t, []dots.DotInsert{
		{At: dots.At(0, 0), Color: dots.ColorYellow},
		{At: dots.At(1, 0), Color: dots.ColorPurple},
	}, report.Insertions())
	assert.Equal(t, "Y P G\nG B R\nR G B", b.String())
}

func TestRemoveAndSettleGravity(t *testing.T) {
	b := mustBoard(t,
		"R G B",
		"G B R",
		"B R G",
	)
	rng := dots.NewSequenceSource(dots.ColorYellow, dots.ColorPurple)

	report, err := b.RemoveAndSettle([]dots.CellCoord{dots.At(0, 2), dots.At(0, 1)}, rng)
	require.NoError(t, err)

	col, ok := report.Column(0)
	require.True(t, ok)
	assert.Equal(t, []dots.RowMove{{From: 0, To: 2}}, col.Moves)
	assert.Equal(t, []dots.RowInsert{
		{Row: 1, Color: dots.ColorYellow},
		{Row: 0, Color: dots.ColorPurple},
	}, col.Inserted)

	assert.Equal(t, []dots.DotMove{
		{From: dots.At(0, 0), To: dots.At(0, 2), Color: dots.ColorRed},
	}, report.Moves())

	assert.Equal(t, "P G B\nY B R\nR R G", b.String())

	_, ok = report.Column(1)
	assert.False(t, ok, "untouched column should not be reported")
}

func TestRemoveAndSettleMovesBottomFirst(t *testing.T) {
	b := mustBoard(t,
		"R P P P",
		"G P P P",
		"B P P P",
		"Y P P P",
	)
	rng := dots.NewSequenceSource(dots.ColorCyan, dots.ColorWhite)

	report, err := b.RemoveAndSettle([]dots.CellCoord{dots.At(0, 1), dots.At(0, 3)}, rng)
	require.NoError(t, err)

	col, ok := report.Column(0)
	require.True(t, ok)
	assert.Equal(t, []dots.RowMove{{From: 2, To: 3}, {From: 0, To: 2}}, col.Moves)
	assert.Equal(t, dots.ColorWhite, cell(t, b, 0, 0))
	assert.Equal(t, dots.ColorCyan, cell(t, b, 0, 1))
	assert.Equal(t, dots.ColorRed, cell(t, b, 0, 2))
	assert.Equal(t, dots.ColorBlue, cell(t, b, 0, 3))
}

func TestRemoveAndSettleDeduplicatesVictims(t *testing.T) {
	b := mustBoard(t, "R G B", "G B R", "B R G")
	rng := dots.NewSequenceSource(dots.ColorYellow)

	report, err := b.RemoveAndSettle([]dots.CellCoord{dots.At(2, 2), dots.At(2, 2)}, rng)
	require.NoError(t, err)

	assert.Len(t, report.Removed, 1)
	assert.Equal(t, 1, rng.Draws())
}

func TestRemoveAndSettleInvalidVictimLeavesBoard(t *testing.T) {
	b := mustBoard(t, "R G B", "G B R", "B R G")
	before := b.Clone()
	rng := dots.NewSequenceSource(dots.ColorYellow)

	_, err := b.RemoveAndSettle([]dots.CellCoord{dots.At(0, 0), dots.At(5, 0)}, rng)
	require.ErrorIs(t, err, dots.ErrInvalidCoord)

	assert.True(t, b.Equal(before))
	assert.Equal(t, 0, rng.Draws())
}

// Survivors keep their colors and column, in the same top-to-bottom order,
// and the report replayed onto the old board reproduces the new one.
func TestRemoveAndSettleConservation(t *testing.T) {
	const n = 6
	pick := rand.New(rand.NewSource(99))

	for trial := 0; trial < 50; trial++ {
		b, err := dots.NewBoard(n, dots.NewRandSource(int64(trial), 5))
		require.NoError(t, err)
		before := b.Clone()

		var victims []dots.CellCoord
		isVictim := make(map[dots.CellCoord]bool)
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if pick.Intn(3) == 0 {
					c := dots.At(col, row)
					victims = append(victims, c)
					isVictim[c] = true
				}
			}
		}

		rng := dots.NewSequenceSource(dots.ColorCyan)
		report, err := b.RemoveAndSettle(victims, rng)
		require.NoError(t, err)
		require.Equal(t, len(victims), rng.Draws())
		require.Len(t, b.Colors(), n*n)

		for col := 0; col < n; col++ {
			var survivors []dots.Color
			for row := 0; row < n; row++ {
				if !isVictim[dots.At(col, row)] {
					survivors = append(survivors, cell(t, before, col, row))
				}
			}
			offset := n - len(survivors)
			for i, want := range survivors {
				assert.Equal(t, want, cell(t, b, col, offset+i), "trial %d col %d", trial, col)
			}
		}

		// Replay moves then insertions on a copy of the pre-settle board.
		replay := before.Colors()
		for _, m := range report.Moves() {
			require.Equal(t, m.From.Col, m.To.Col, "moves never cross columns")
			require.Greater(t, m.To.Row, m.From.Row, "moves only fall down")
			replay[m.To.Row*n+m.To.Col] = replay[m.From.Row*n+m.From.Col]
		}
		for _, ins := range report.Insertions() {
			replay[ins.At.Row*n+ins.At.Col] = ins.Color
		}
		assert.Equal(t, b.Colors(), replay, "trial %d", trial)
	}
}

func TestAnyLegalMove(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected bool
	}{
		{
			name:     "checkerboard",
			rows:     []string{"RGRG", "GRGR", "RGRG", "GRGR"},
			expected: false,
		},
		{
			name:     "horizontal pair",
			rows:     []string{"RRRG", "GRGR", "RGRG", "GRGR"},
			expected: true,
		},
		{
			name:     "pair in second row",
			rows:     []string{"RGRG", "GRGG", "RGRG", "GRGR"},
			expected: true,
		},
		{
			name:     "diagonal only",
			rows:     []string{"RGB", "BRG", "GBR"},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, tc.rows...)
			assert.Equal(t, tc.expected, b.AnyLegalMove())
		})
	}
}

func TestCoordsOfColor(t *testing.T) {
	b := mustBoard(t, "R G R", "G R G", "R G R")

	assert.Equal(t, 5, b.CountColor(dots.ColorRed))
	assert.Equal(t, []dots.CellCoord{
		dots.At(1, 0), dots.At(0, 1), dots.At(2, 1), dots.At(1, 2),
	}, b.CoordsOfColor(dots.ColorGreen))
}

func TestCoordAdjacency(t *testing.T) {
	c := dots.At(1, 1)
	assert.True(t, c.Adjacent(dots.At(1, 0)))
	assert.True(t, c.Adjacent(dots.At(2, 1)))
	assert.False(t, c.Adjacent(dots.At(2, 2)), "diagonal is not adjacent")
	assert.False(t, c.Adjacent(c))
	assert.Len(t, dots.At(0, 0).Neighbors(3), 2)
	assert.Len(t, c.Neighbors(3), 4)
}
