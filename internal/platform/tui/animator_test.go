package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

func TestAnimatorMovedDotsStartAtTheirOldRow(t *testing.T) {
	a := NewAnimator(200 * time.Millisecond)

	a.Notify(dots.DotsMoved{Moves: []dots.DotMove{
		{From: dots.At(1, 0), To: dots.At(1, 2)},
	}})

	assert.True(t, a.Active())
	assert.InDelta(t, 2.0, a.Offset(dots.At(1, 2)), 1e-6)
	assert.Zero(t, a.Offset(dots.At(1, 0)))
}

func TestAnimatorInsertedDotsEnterFromAbove(t *testing.T) {
	a := NewAnimator(200 * time.Millisecond)

	a.Notify(dots.DotsInserted{Insertions: []dots.DotInsert{
		{At: dots.At(0, 1), Color: dots.ColorRed},
		{At: dots.At(0, 0), Color: dots.ColorBlue},
		{At: dots.At(2, 0), Color: dots.ColorGreen},
	}})

	assert.InDelta(t, 2.0, a.Offset(dots.At(0, 0)), 1e-6)
	assert.InDelta(t, 2.0, a.Offset(dots.At(0, 1)), 1e-6)
	assert.InDelta(t, 1.0, a.Offset(dots.At(2, 0)), 1e-6)
}

func TestAnimatorUpdateEasesToRest(t *testing.T) {
	a := NewAnimator(100 * time.Millisecond)
	a.Notify(dots.DotsMoved{Moves: []dots.DotMove{
		{From: dots.At(0, 0), To: dots.At(0, 3)},
	}})

	a.Update(50 * time.Millisecond)
	mid := a.Offset(dots.At(0, 3))
	assert.Less(t, mid, float32(3))
	assert.Greater(t, mid, float32(0))

	a.Update(time.Second)
	assert.False(t, a.Active())
	assert.Zero(t, a.Offset(dots.At(0, 3)))
}

func TestAnimatorDisabled(t *testing.T) {
	a := NewAnimator(0)
	a.Notify(dots.DotsMoved{Moves: []dots.DotMove{
		{From: dots.At(0, 0), To: dots.At(0, 1)},
	}})
	assert.False(t, a.Active())
}

func TestAnimatorStopsOnReset(t *testing.T) {
	a := NewAnimator(time.Second)
	a.Notify(dots.DotsMoved{Moves: []dots.DotMove{
		{From: dots.At(0, 0), To: dots.At(0, 1)},
	}})
	a.Notify(dots.SessionReset{GridSize: 6, Moves: 30})
	assert.False(t, a.Active())
}
