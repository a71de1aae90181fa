package dots_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

func TestLayoutCellAt(t *testing.T) {
	l := dots.Layout{OriginX: 2, OriginY: 1, CellW: 4, CellH: 2, N: 6}

	tests := []struct {
		name     string
		x, y     int
		expected dots.CellCoord
	}{
		{"top left corner", 2, 1, dots.At(0, 0)},
		{"inside second cell", 9, 4, dots.At(1, 1)},
		{"last pixel of first cell", 5, 2, dots.At(0, 0)},
		{"bottom right", 25, 12, dots.At(5, 5)},
		{"left of board clamps", -5, 4, dots.At(0, 1)},
		{"above board clamps", 9, -3, dots.At(1, 0)},
		{"far right clamps", 100, 100, dots.At(5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, l.CellAt(tc.x, tc.y))
		})
	}
}

func TestLayoutGeometry(t *testing.T) {
	l := dots.Layout{OriginX: 2, OriginY: 1, CellW: 4, CellH: 2, N: 6}

	assert.Equal(t, 24, l.Width())
	assert.Equal(t, 12, l.Height())
	assert.True(t, l.Contains(2, 1))
	assert.True(t, l.Contains(25, 12))
	assert.False(t, l.Contains(26, 1))
	assert.False(t, l.Contains(2, 13))

	x, y := l.CellOrigin(dots.At(1, 1))
	assert.Equal(t, 6, x)
	assert.Equal(t, 3, y)
}

func TestLayoutZeroCellSize(t *testing.T) {
	l := dots.Layout{N: 4}
	assert.Equal(t, dots.At(0, 0), l.CellAt(10, 10))
}

func TestInputDrivesController(t *testing.T) {
	c, err := dots.NewController(dots.DefaultSettings(),
		dots.WithBoard(mustBoard(t,
			"R R G",
			"G B R",
			"R G B",
		)),
		dots.WithSource(dots.NewSequenceSource(dots.ColorGreen)),
	)
	require.NoError(t, err)

	in := dots.NewInput(c, dots.Layout{CellW: 4, CellH: 2})
	assert.Equal(t, 3, in.Layout().N, "grid side defaults to the session size")

	in.PointerDown(1, 1)
	in.PointerMove(5, 0)
	in.PointerUp()

	assert.Equal(t, 2, c.Score())
}

func TestInputDragOffBoardClampsToEdge(t *testing.T) {
	c, err := dots.NewController(dots.DefaultSettings(), dots.WithBoard(allRed3(t)))
	require.NoError(t, err)
	in := dots.NewInput(c, dots.Layout{CellW: 4, CellH: 2})

	in.PointerDown(0, 0)
	in.PointerMove(-10, 0)
	path, _ := c.Path()
	assert.Equal(t, []dots.CellCoord{dots.At(0, 0)}, path)

	in.PointerMove(-10, 3)
	path, _ = c.Path()
	assert.Equal(t, []dots.CellCoord{dots.At(0, 0), dots.At(0, 1)}, path)
}

func TestInputReset(t *testing.T) {
	c, err := dots.NewController(dots.DefaultSettings().WithSeed(9))
	require.NoError(t, err)
	rec := &dots.Recorder{}
	c.AddObserver(rec)

	in := dots.NewInput(c, dots.Layout{CellW: 1, CellH: 1})
	in.SetLayout(dots.Layout{CellW: 2, CellH: 1, N: 6})
	in.Reset()

	assert.Equal(t, 2, in.Layout().CellW)
	assert.Equal(t, dots.KindSessionReset, rec.Kinds()[0])
}
