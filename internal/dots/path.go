package dots

// OutcomeKind discriminates the result of a path operation.
type OutcomeKind uint8

const (
	OutcomeNoOp OutcomeKind = iota
	OutcomeExtended
	OutcomeRetreated
	OutcomeLoopClosed
	OutcomeRejected
)

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoOp:
		return "NoOp"
	case OutcomeExtended:
		return "Extended"
	case OutcomeRetreated:
		return "Retreated"
	case OutcomeLoopClosed:
		return "LoopClosed"
	case OutcomeRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Outcome is the result of Begin or Hover.
// Color is meaningful only for OutcomeLoopClosed.
type Outcome struct {
	Kind  OutcomeKind
	Color Color
}

var (
	noOp      = Outcome{Kind: OutcomeNoOp}
	extended  = Outcome{Kind: OutcomeExtended}
	retreated = Outcome{Kind: OutcomeRetreated}
	rejected  = Outcome{Kind: OutcomeRejected}
)

// PathBuilder accumulates the in-progress selection on a board.
//
// All coordinates in the path share the color of the first one, consecutive
// coordinates are 4-adjacent, and no coordinate repeats.
type PathBuilder struct {
	board  *Board
	coords []CellCoord
	color  Color
}

// NewPathBuilder creates an empty path over the given board.
func NewPathBuilder(board *Board) *PathBuilder {
	return &PathBuilder{board: board}
}

// Rebind points the builder at another board and clears the path.
func (p *PathBuilder) Rebind(board *Board) {
	p.board = board
	p.Cancel()
}

// Begin starts a new path at c.
// Rejected if a path is already in progress or c is off the board.
func (p *PathBuilder) Begin(c CellCoord) Outcome {
	if len(p.coords) > 0 {
		return rejected
	}
	color, err := p.board.Cell(c)
	if err != nil {
		return rejected
	}
	p.color = color
	p.coords = append(p.coords, c)
	return extended
}

// Hover handles the pointer moving over c.
//
// Cases are evaluated in order: same as head (NoOp), back onto the previous
// coordinate (Retreated), onto an earlier coordinate adjacent to the head
// (LoopClosed), onto a fresh adjacent same-color cell (Extended), otherwise
// Rejected. Only c itself is considered; cells the pointer skipped over are
// never added.
func (p *PathBuilder) Hover(c CellCoord) Outcome {
	n := len(p.coords)
	if n == 0 {
		return rejected
	}
	color, err := p.board.Cell(c)
	if err != nil {
		return rejected
	}

	head := p.coords[n-1]
	if c == head {
		return noOp
	}

	if n >= 2 && c == p.coords[n-2] {
		p.coords = p.coords[:n-1]
		return retreated
	}

	if color != p.color || !c.Adjacent(head) {
		return rejected
	}

	if p.Contains(c) {
		if n >= 2 {
			return Outcome{Kind: OutcomeLoopClosed, Color: p.color}
		}
		return rejected
	}

	p.coords = append(p.coords, c)
	return extended
}

// Commit returns the path for scoring.
// Paths shorter than two dots yield ErrEmptyCommit. The path is left intact;
// callers clear it with Cancel once resolved.
func (p *PathBuilder) Commit() ([]CellCoord, error) {
	if len(p.coords) < 2 {
		return nil, ErrEmptyCommit
	}
	return p.Path(), nil
}

// Cancel clears the path.
func (p *PathBuilder) Cancel() {
	p.coords = p.coords[:0]
	p.color = 0
}

// Path returns a copy of the current path.
func (p *PathBuilder) Path() []CellCoord {
	out := make([]CellCoord, len(p.coords))
	copy(out, p.coords)
	return out
}

// Len returns the number of coordinates in the path.
func (p *PathBuilder) Len() int {
	return len(p.coords)
}

// Empty returns true if no path is in progress.
func (p *PathBuilder) Empty() bool {
	return len(p.coords) == 0
}

// Color returns the path color. Meaningful only when the path is not empty.
func (p *PathBuilder) Color() Color {
	return p.color
}

// Head returns the last coordinate of the path.
func (p *PathBuilder) Head() (CellCoord, bool) {
	if len(p.coords) == 0 {
		return CellCoord{}, false
	}
	return p.coords[len(p.coords)-1], true
}

// Contains returns true if c is already on the path.
func (p *PathBuilder) Contains(c CellCoord) bool {
	for _, pc := range p.coords {
		if pc == c {
			return true
		}
	}
	return false
}
