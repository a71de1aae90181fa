package dots

// Layout maps surface positions (pixels, terminal cells) to board cells.
type Layout struct {
	OriginX int // Surface position of the board's top-left corner
	OriginY int
	CellW   int // Surface units per board cell
	CellH   int
	N       int // Grid side
}

// CellAt returns the board cell under (x, y).
// Positions outside the board are clamped to the nearest edge cell, so the
// result is always a valid coordinate.
func (l Layout) CellAt(x, y int) CellCoord {
	return CellCoord{
		Col: clampCell(x-l.OriginX, l.CellW, l.N),
		Row: clampCell(y-l.OriginY, l.CellH, l.N),
	}
}

// Contains returns true if (x, y) lies on the board surface.
func (l Layout) Contains(x, y int) bool {
	return x >= l.OriginX && x < l.OriginX+l.CellW*l.N &&
		y >= l.OriginY && y < l.OriginY+l.CellH*l.N
}

// CellOrigin returns the surface position of a cell's top-left corner.
func (l Layout) CellOrigin(c CellCoord) (x, y int) {
	return l.OriginX + c.Col*l.CellW, l.OriginY + c.Row*l.CellH
}

// Width returns the surface width of the board.
func (l Layout) Width() int {
	return l.CellW * l.N
}

// Height returns the surface height of the board.
func (l Layout) Height() int {
	return l.CellH * l.N
}

func clampCell(offset, size, n int) int {
	if size <= 0 || offset < 0 {
		return 0
	}
	cell := offset / size
	if cell > n-1 {
		return n - 1
	}
	return cell
}

// Input adapts surface pointer events to a controller.
type Input struct {
	ctrl   *Controller
	layout Layout
}

// NewInput binds a controller to a layout.
func NewInput(ctrl *Controller, layout Layout) *Input {
	if layout.N == 0 {
		layout.N = ctrl.Settings().GridSize
	}
	return &Input{ctrl: ctrl, layout: layout}
}

// SetLayout replaces the layout, e.g. after the surface is resized.
func (in *Input) SetLayout(layout Layout) {
	in.layout = layout
}

// Layout returns the current layout.
func (in *Input) Layout() Layout {
	return in.layout
}

// PointerDown presses at (x, y).
func (in *Input) PointerDown(x, y int) {
	in.ctrl.PointerDown(in.layout.CellAt(x, y))
}

// PointerMove drags to (x, y).
func (in *Input) PointerMove(x, y int) {
	in.ctrl.PointerMove(in.layout.CellAt(x, y))
}

// PointerUp releases the pointer.
func (in *Input) PointerUp() {
	in.ctrl.PointerUp()
}

// Reset starts a new session.
func (in *Input) Reset() {
	in.ctrl.Reset()
}
