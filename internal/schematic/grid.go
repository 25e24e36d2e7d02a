package schematic

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedGrid = errors.New("malformed grid")

// Grid is a rectangular block of text addressed by flat index row*width+col.
type Grid struct {
	width int
	rows  []string
}

func NewGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return &Grid{}, nil
	}

	rows := make([]string, 0, len(lines))
	width := len(strings.TrimRight(lines[0], "\r\n"))
	if width == 0 {
		return nil, fmt.Errorf("%w: first row is empty", ErrMalformedGrid)
	}
	for lineNo, line := range lines {
		row := strings.TrimRight(line, "\r\n")
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedGrid, lineNo, len(row), width)
		}
		rows = append(rows, row)
	}

	return &Grid{
		width: width,
		rows:  rows,
	}, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return len(g.rows)
}

func (g *Grid) Row(row int) string {
	return g.rows[row]
}

func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// Contains reports whether index addresses a cell of the grid.
func (g *Grid) Contains(index int) bool {
	return index >= 0 && index < g.width*len(g.rows)
}

// Coord is the inverse of Index. It returns (-1, -1) for an index outside
// the grid, including every index of the empty grid.
func (g *Grid) Coord(index int) (row, col int) {
	if !g.Contains(index) {
		return -1, -1
	}
	return index / g.width, index % g.width
}

// At returns the cell at index, ok is false outside the grid.
func (g *Grid) At(index int) (cell byte, ok bool) {
	if !g.Contains(index) {
		return 0, false
	}
	row, col := g.Coord(index)
	return g.rows[row][col], true
}

// rowBounds returns the half-open flat-index range of the row, ok is false
// when the row lies outside the grid.
func (g *Grid) rowBounds(row int) (lo, hi int, ok bool) {
	if row < 0 || row >= len(g.rows) {
		return 0, 0, false
	}
	lo = row * g.width
	return lo, lo + g.width, true
}

// window maps the closed column range [fromCol, toCol] onto row, clamped to
// the row's own edges.
func (g *Grid) window(row, fromCol, toCol int) (Span, bool) {
	lo, _, ok := g.rowBounds(row)
	if !ok {
		return Span{}, false
	}
	fromCol = max(fromCol, 0)
	toCol = min(toCol, g.width-1)
	if fromCol > toCol {
		return Span{}, false
	}
	return Span{Start: lo + fromCol, End: lo + toCol + 1}, true
}
