package dots

import (
	"fmt"
	"sort"
	"strings"
)

// Board is an N×N grid of colored dots.
// Cells are stored in row-major order: index = row*N + col.
type Board struct {
	n     int
	cells []Color
}

// NewBoard creates an n×n board filled from rng in row-major order.
func NewBoard(n int, rng Source) (*Board, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: grid size %d", ErrInvalidSettings, n)
	}
	b := &Board{
		n:     n,
		cells: make([]Color, n*n),
	}
	for i := range b.cells {
		b.cells[i] = rng.NextColor()
	}
	return b, nil
}

// NewBoardFromColors creates an n×n board from a row-major color slice.
func NewBoardFromColors(n int, colors []Color) (*Board, error) {
	if n < 1 || len(colors) != n*n {
		return nil, fmt.Errorf("%w: %d colors for grid size %d", ErrBoardSize, len(colors), n)
	}
	for i, c := range colors {
		if !c.Valid() {
			return nil, fmt.Errorf("dots: invalid color %d at index %d", c, i)
		}
	}
	cells := make([]Color, len(colors))
	copy(cells, colors)
	return &Board{n: n, cells: cells}, nil
}

// ParseBoard builds a board from rows of color letters, e.g. "R G B".
// Whitespace inside a row is ignored.
func ParseBoard(rows ...string) (*Board, error) {
	n := len(rows)
	colors := make([]Color, 0, n*n)
	for r, row := range rows {
		fields := strings.Join(strings.Fields(row), "")
		if len(fields) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBoardSize, r, len(fields), n)
		}
		for _, ch := range fields {
			c, ok := ParseColor(string(ch))
			if !ok {
				return nil, fmt.Errorf("dots: unknown color %q in row %d", ch, r)
			}
			colors = append(colors, c)
		}
	}
	return NewBoardFromColors(n, colors)
}

// Size returns the grid side N.
func (b *Board) Size() int {
	return b.n
}

// InBounds returns true if the coordinate is on the board.
func (b *Board) InBounds(c CellCoord) bool {
	return c.Col >= 0 && c.Col < b.n && c.Row >= 0 && c.Row < b.n
}

func (b *Board) index(c CellCoord) int {
	return c.Row*b.n + c.Col
}

// Cell returns the color at the given coordinate.
func (b *Board) Cell(c CellCoord) (Color, error) {
	if !b.InBounds(c) {
		return 0, fmt.Errorf("%w: %v on %dx%d board", ErrInvalidCoord, c, b.n, b.n)
	}
	return b.cells[b.index(c)], nil
}

// Colors returns a row-major copy of all cell colors.
func (b *Board) Colors() []Color {
	out := make([]Color, len(b.cells))
	copy(out, b.cells)
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{n: b.n, cells: b.Colors()}
}

// Equal returns true if two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.n != other.n {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// CountColor returns how many cells hold the given color.
func (b *Board) CountColor(color Color) int {
	count := 0
	for _, c := range b.cells {
		if c == color {
			count++
		}
	}
	return count
}

// CoordsOfColor returns every coordinate holding color, ordered by row then column.
func (b *Board) CoordsOfColor(color Color) []CellCoord {
	coords := make([]CellCoord, 0)
	for i, c := range b.cells {
		if c == color {
			coords = append(coords, CellCoord{Col: i % b.n, Row: i / b.n})
		}
	}
	return coords
}

// AnyLegalMove returns true if some pair of 4-adjacent cells shares a color.
func (b *Board) AnyLegalMove() bool {
	for row := 0; row < b.n; row++ {
		for col := 0; col < b.n; col++ {
			c := b.cells[row*b.n+col]
			// Right neighbour
			if col < b.n-1 && b.cells[row*b.n+col+1] == c {
				return true
			}
			// Bottom neighbour
			if row < b.n-1 && b.cells[(row+1)*b.n+col] == c {
				return true
			}
		}
	}
	return false
}

// String renders the board as rows of color letters separated by spaces.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.n; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.n; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(b.cells[row*b.n+col].Char())
		}
	}
	return sb.String()
}

// RowMove is a surviving dot falling from one row to another within a column.
type RowMove struct {
	From int
	To   int
}

// RowInsert is a fresh dot placed at a row from the top of a column.
type RowInsert struct {
	Row   int
	Color Color
}

// ColumnReport describes how one column settled.
type ColumnReport struct {
	Col      int
	Moves    []RowMove   // Bottom-most destination first
	Inserted []RowInsert // Lowest free row first
}

// DotMove is a surviving dot's move in board coordinates.
type DotMove struct {
	From  CellCoord
	To    CellCoord
	Color Color
}

// DotInsert is a newly generated dot in board coordinates.
type DotInsert struct {
	At    CellCoord
	Color Color
}

// ResolutionReport describes a single remove-and-settle pass.
type ResolutionReport struct {
	Removed []CellCoord    // Victims, sorted by row then column
	Columns []ColumnReport // Only columns that lost at least one dot, left to right
	moved   []Color        // Colors of moved dots, parallel to flattened moves
}

// Moves flattens the per-column moves into board coordinates,
// columns left to right and bottom-most destination first within each column.
func (r ResolutionReport) Moves() []DotMove {
	out := make([]DotMove, 0)
	i := 0
	for _, col := range r.Columns {
		for _, m := range col.Moves {
			dm := DotMove{From: At(col.Col, m.From), To: At(col.Col, m.To)}
			if i < len(r.moved) {
				dm.Color = r.moved[i]
			}
			out = append(out, dm)
			i++
		}
	}
	return out
}

// Insertions flattens the per-column insertions into board coordinates.
func (r ResolutionReport) Insertions() []DotInsert {
	out := make([]DotInsert, 0)
	for _, col := range r.Columns {
		for _, ins := range col.Inserted {
			out = append(out, DotInsert{At: At(col.Col, ins.Row), Color: ins.Color})
		}
	}
	return out
}

// Column returns the report for a column, or false if it did not change.
func (r ResolutionReport) Column(col int) (ColumnReport, bool) {
	for _, c := range r.Columns {
		if c.Col == col {
			return c, true
		}
	}
	return ColumnReport{}, false
}

// RemoveAndSettle removes the victims, lets surviving dots fall within their
// columns and refills the vacated top rows from rng.
//
// Survivors keep their colors and never change column. An empty victim set
// is a no-op that draws nothing from rng. Any out-of-range victim fails the
// call before the board is modified.
func (b *Board) RemoveAndSettle(victims []CellCoord, rng Source) (ResolutionReport, error) {
	sorted, err := b.normalizeVictims(victims)
	if err != nil {
		return ResolutionReport{}, err
	}

	report := ResolutionReport{Removed: sorted}
	if len(sorted) == 0 {
		return report, nil
	}

	removed := make([]bool, len(b.cells))
	for _, v := range sorted {
		removed[b.index(v)] = true
	}

	for col := 0; col < b.n; col++ {
		colReport, moved, changed := b.settleColumn(col, removed, rng)
		if !changed {
			continue
		}
		report.Columns = append(report.Columns, colReport)
		report.moved = append(report.moved, moved...)
	}

	return report, nil
}

// normalizeVictims validates, de-duplicates and sorts the victim set.
func (b *Board) normalizeVictims(victims []CellCoord) ([]CellCoord, error) {
	seen := make(map[CellCoord]bool, len(victims))
	out := make([]CellCoord, 0, len(victims))
	for _, v := range victims {
		if !b.InBounds(v) {
			return nil, fmt.Errorf("%w: victim %v on %dx%d board", ErrInvalidCoord, v, b.n, b.n)
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].less(out[j])
	})
	return out, nil
}

// settleColumn compacts one column downward and refills it from the top.
// Returns the column report, the colors of moved dots in report order,
// and whether the column lost any dot.
func (b *Board) settleColumn(col int, removed []bool, rng Source) (ColumnReport, []Color, bool) {
	report := ColumnReport{Col: col}
	var movedColors []Color

	// Walk from the bottom; write is the next row to fill with a survivor.
	write := b.n - 1
	for row := b.n - 1; row >= 0; row-- {
		idx := row*b.n + col
		if removed[idx] {
			continue
		}
		if row != write {
			color := b.cells[idx]
			b.cells[write*b.n+col] = color
			report.Moves = append(report.Moves, RowMove{From: row, To: write})
			movedColors = append(movedColors, color)
		}
		write--
	}

	if write < 0 {
		return report, movedColors, false
	}

	// Rows 0..write are vacated; fill the lowest first.
	for row := write; row >= 0; row-- {
		color := rng.NextColor()
		b.cells[row*b.n+col] = color
		report.Inserted = append(report.Inserted, RowInsert{Row: row, Color: color})
	}

	return report, movedColors, true
}
