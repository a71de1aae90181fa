package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/dots"
)

const (
	hudTop    = 2 // rows above the board area
	hudBottom = 1 // rows below the board area

	glyphDot      = '●'
	glyphPathDot  = '◉'
	glyphHLink    = '─'
	glyphVLink    = '│'
	glyphCursorL  = '['
	glyphCursorR  = ']'
	frameColor    = core.ColorGray
	flashColor    = core.ColorBrightWhite
	gameOverColor = core.ColorBrightYellow
)

// computeLayout centers an n×n board inside the screen bounds, shrinking the
// preferred cell size when the terminal is too small.
func computeLayout(bounds core.Rect, n, cellW, cellH int) dots.Layout {
	area := core.NewRect(bounds.X, bounds.Y+hudTop, bounds.W, bounds.H-hudTop-hudBottom)

	cw := core.Clamp((area.W-2)/core.Max(n, 1), 1, core.Max(cellW, 1))
	ch := core.Clamp((area.H-2)/core.Max(n, 1), 1, core.Max(cellH, 1))

	frame := area.Centered(n*cw+2, n*ch+2)
	inner := frame.Inset(1)
	return dots.Layout{
		OriginX: inner.X,
		OriginY: inner.Y,
		CellW:   cw,
		CellH:   ch,
		N:       n,
	}
}

// frameRect returns the box drawn around the board.
func frameRect(l dots.Layout) core.Rect {
	return core.NewRect(l.OriginX-1, l.OriginY-1, l.Width()+2, l.Height()+2)
}

// cellCenter returns the screen position where the dot of cell c is drawn.
func cellCenter(l dots.Layout, c dots.CellCoord) (int, int) {
	x, y := l.CellOrigin(c)
	return core.NewRect(x, y, l.CellW, l.CellH).Center()
}

// boardFrame describes one frame of the board to draw.
type boardFrame struct {
	snap     dots.Snapshot
	layout   dots.Layout
	anim     *Animator
	cursor   dots.CellCoord
	flashing bool
}

// drawBoard draws the frame, the path links, the dots and the cursor.
func drawBoard(s *core.Screen, f boardFrame) {
	l := f.layout
	n := f.snap.GridSize

	color := frameColor
	switch {
	case f.flashing:
		color = flashColor
	case f.snap.GameOver:
		color = gameOverColor
	}
	s.DrawBox(frameRect(l), color)

	onPath := make(map[dots.CellCoord]bool, len(f.snap.Path))
	pathColor := core.DotColor(f.snap.PathColor)
	for i, c := range f.snap.Path {
		onPath[c] = true
		if i == 0 {
			continue
		}
		drawLink(s, l, f.snap.Path[i-1], c, pathColor)
	}

	top := l.OriginY
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c := dots.At(col, row)
			x, y := cellCenter(l, c)
			if f.anim != nil {
				y -= int(math.Round(float64(f.anim.Offset(c) * float32(l.CellH))))
			}
			if y < top {
				continue
			}
			glyph := glyphDot
			if onPath[c] {
				glyph = glyphPathDot
			}
			s.SetCell(x, y, glyph, core.DotColor(f.snap.Board[row*n+col]))
		}
	}

	if !f.snap.GameOver && l.CellW >= 3 {
		x, y := cellCenter(l, f.cursor)
		s.SetCell(x-1, y, glyphCursorL, core.ColorBrightWhite)
		s.SetCell(x+1, y, glyphCursorR, core.ColorBrightWhite)
	}
}

// drawLink joins two adjacent path cells.
func drawLink(s *core.Screen, l dots.Layout, a, b dots.CellCoord, color core.Color) {
	ax, ay := cellCenter(l, a)
	bx, by := cellCenter(l, b)
	switch {
	case ay == by:
		s.DrawHLine(core.Min(ax, bx), ay, core.Max(ax, bx)-core.Min(ax, bx)+1, glyphHLink, color)
	case ax == bx:
		s.DrawVLine(ax, core.Min(ay, by), core.Max(ay, by)-core.Min(ay, by)+1, glyphVLink, color)
	}
}

// hudInfo is the text shown around the board.
type hudInfo struct {
	label  string
	score  int
	moves  int
	best   int
	status string // centered on the bottom row, empty for none
	color  core.Color
}

// drawHUD draws the title and counters on the top row and the status line
// on the bottom row.
func drawHUD(s *core.Screen, h hudInfo) {
	s.DrawText(1, 0, "DOTS", core.ColorBrightWhite)
	s.DrawText(6, 0, h.label, core.ColorGray)

	stats := fmt.Sprintf("Score %d  Moves %d  Best %d", h.score, h.moves, h.best)
	s.DrawText(s.Width()-len(stats)-1, 0, stats, core.ColorBrightYellow)

	if h.status != "" {
		s.DrawTextCentered(s.Height()-1, h.status, h.color)
	}
}

// pathStatus describes the path being drawn, e.g. "Path: 3 red".
func pathStatus(snap dots.Snapshot) (string, core.Color) {
	if snap.Phase != dots.PhaseDrawing || len(snap.Path) == 0 {
		return "", core.ColorDefault
	}
	return fmt.Sprintf("Path: %d %s", len(snap.Path), snap.PathColor), core.DotColor(snap.PathColor)
}

// gameOverInfo is the summary shown when a session ends.
type gameOverInfo struct {
	score   int
	best    int
	newBest bool
	reason  dots.GameOverReason
}

// drawGameOver draws the end-of-game summary centered over the board.
func drawGameOver(s *core.Screen, l dots.Layout, g gameOverInfo) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score %d", g.score),
		reasonText(g.reason),
	}
	if g.newBest {
		lines = append(lines, "New best!")
	} else {
		lines = append(lines, fmt.Sprintf("Best %d", g.best))
	}
	lines = append(lines, "click or space to play again")

	width := 0
	for _, line := range lines {
		width = core.Max(width, len(line))
	}
	board := core.NewRect(l.OriginX, l.OriginY, l.Width(), l.Height())
	box := board.Centered(width+4, len(lines)+2)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, gameOverColor)
	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		color := core.ColorWhite
		if i == 0 {
			color = gameOverColor
		}
		s.DrawText(x, box.Y+1+i, line, color)
	}
}

func reasonText(r dots.GameOverReason) string {
	switch r {
	case dots.ReasonMovesExhausted:
		return "Out of moves"
	case dots.ReasonNoMoves:
		return "No pairs left"
	default:
		return string(r)
	}
}
