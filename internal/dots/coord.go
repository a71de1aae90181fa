package dots

import "fmt"

// CellCoord addresses a cell on the board.
// Col increases to the right, Row increases downward; row 0 is the top.
type CellCoord struct {
	Col int
	Row int
}

// At is a convenience constructor for CellCoord.
func At(col, row int) CellCoord {
	return CellCoord{Col: col, Row: row}
}

// String returns a string representation of the coordinate.
func (c CellCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c CellCoord) Manhattan(other CellCoord) int {
	dc := c.Col - other.Col
	dr := c.Row - other.Row
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}

// Adjacent reports whether two coordinates are 4-adjacent.
// Diagonal neighbours are not adjacent.
func (c CellCoord) Adjacent(other CellCoord) bool {
	return c.Manhattan(other) == 1
}

// Neighbors returns the up to four orthogonal neighbours inside an n×n board.
func (c CellCoord) Neighbors(n int) []CellCoord {
	out := make([]CellCoord, 0, 4)
	for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		nc := CellCoord{Col: c.Col + d[0], Row: c.Row + d[1]}
		if nc.Col >= 0 && nc.Col < n && nc.Row >= 0 && nc.Row < n {
			out = append(out, nc)
		}
	}
	return out
}

// less orders coordinates by row, then by column.
func (c CellCoord) less(other CellCoord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}
