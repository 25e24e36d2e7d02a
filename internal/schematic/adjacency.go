package schematic

// Span is a half-open range of flat indices lying within a single row.
type Span struct {
	Start, End int
}

func (s Span) overlaps(start, end int) bool {
	return s.Start < end && start < s.End
}

// Neighborhood is the set of cells 8-directionally adjacent to a span, kept
// as at most one Span per row so that no cell leaks into a neighbouring row.
type Neighborhood []Span

func (n Neighborhood) Contains(index int) bool {
	return n.Overlaps(index, index+1)
}

func (n Neighborhood) Overlaps(start, end int) bool {
	for _, s := range n {
		if s.overlaps(start, end) {
			return true
		}
	}
	return false
}

// Around returns the clamped neighborhood of [start, end), which must lie on
// one row. The same-row span includes the token itself; tokens never match
// themselves because digits are not symbols.
func (g *Grid) Around(start, end int) Neighborhood {
	if !g.Contains(start) || start >= end {
		return nil
	}
	row, fromCol := g.Coord(start)
	toCol := fromCol + (end - start) - 1

	n := make(Neighborhood, 0, 3)
	for _, r := range []int{row - 1, row, row + 1} {
		if s, ok := g.window(r, fromCol-1, toCol+1); ok {
			n = append(n, s)
		}
	}
	return n
}

type PositionSet map[int]struct{}

func NewPositionSet(symbols []SymbolToken) PositionSet {
	set := make(PositionSet, len(symbols))
	for _, s := range symbols {
		set[s.Position] = struct{}{}
	}
	return set
}

func (ps PositionSet) Has(index int) bool {
	_, found := ps[index]
	return found
}

func IsAdjacent(g *Grid, tok NumericToken, symbols PositionSet) bool {
	for _, s := range g.Around(tok.Start, tok.End) {
		for i := s.Start; i < s.End; i++ {
			if symbols.Has(i) {
				return true
			}
		}
	}
	return false
}

// NeighborsOf lists the numbers whose spans touch the symbol.
func NeighborsOf(g *Grid, sym SymbolToken, numbers []NumericToken) []NumericToken {
	around := g.Around(sym.Position, sym.Position+1)
	result := make([]NumericToken, 0, 2)
	for _, num := range numbers {
		if around.Overlaps(num.Start, num.End) {
			result = append(result, num)
		}
	}
	return result
}
