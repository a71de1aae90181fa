package tui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

// fallTween animates one cell's vertical offset, in board rows, down to zero.
type fallTween struct {
	tween  *gween.Tween
	offset float32
}

// Animator is an observer that turns gravity and refill reports into
// per-cell fall offsets. A cell with a positive offset is drawn that many
// rows above its resting place.
type Animator struct {
	duration time.Duration
	tweens   map[dots.CellCoord]*fallTween
}

// NewAnimator creates an animator. A zero duration disables animation.
func NewAnimator(duration time.Duration) *Animator {
	return &Animator{
		duration: duration,
		tweens:   make(map[dots.CellCoord]*fallTween),
	}
}

// Notify starts fall animations for moved and inserted dots.
func (a *Animator) Notify(e dots.Event) {
	if a.duration <= 0 {
		return
	}
	switch ev := e.(type) {
	case dots.DotsMoved:
		for _, m := range ev.Moves {
			a.start(m.To, float32(m.To.Row-m.From.Row))
		}
	case dots.DotsInserted:
		// New dots enter from above the board, stacked in insertion order.
		above := make(map[int]int)
		for _, ins := range ev.Insertions {
			above[ins.At.Col]++
		}
		for _, ins := range ev.Insertions {
			a.start(ins.At, float32(above[ins.At.Col]))
		}
	case dots.SessionReset:
		a.Stop()
	}
}

func (a *Animator) start(at dots.CellCoord, rows float32) {
	// Longer drops take proportionally longer, capped at twice the base duration.
	seconds := float32(a.duration.Seconds()) * (1 + min(rows, 4)/4)
	a.tweens[at] = &fallTween{
		tween:  gween.New(rows, 0, seconds, ease.OutQuad),
		offset: rows,
	}
}

// Update advances every animation by dt and drops finished ones.
func (a *Animator) Update(dt time.Duration) {
	step := float32(dt.Seconds())
	for at, ft := range a.tweens {
		current, finished := ft.tween.Update(step)
		if finished {
			delete(a.tweens, at)
			continue
		}
		ft.offset = current
	}
}

// Offset returns how many rows above its cell the dot at c is drawn.
func (a *Animator) Offset(c dots.CellCoord) float32 {
	if ft, ok := a.tweens[c]; ok {
		return ft.offset
	}
	return 0
}

// Active returns true while any dot is still falling.
func (a *Animator) Active() bool {
	return len(a.tweens) > 0
}

// Stop cancels every animation.
func (a *Animator) Stop() {
	clear(a.tweens)
}
