package schematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAroundInterior(t *testing.T) {
	g := mustGrid(t, ".....", ".12..", ".....")
	n := g.Around(6, 8)
	assert.Equal(t, Neighborhood{{Start: 0, End: 4}, {Start: 5, End: 9}, {Start: 10, End: 14}}, n)
}

func TestAroundLastColumnStaysInRow(t *testing.T) {
	g := mustGrid(t, "..5", "#..")
	n := g.Around(2, 3)

	require.Len(t, n, 2)
	// same-row right candidate is the last column itself
	assert.Equal(t, Span{Start: 1, End: 3}, n[0])
	assert.Equal(t, Span{Start: 4, End: 6}, n[1])
	assert.False(t, n.Contains(3))

	tokens, err := Extract(g)
	require.NoError(t, err)
	assert.Equal(t, 0, PartNumberSum(g, tokens))
}

func TestAroundFirstColumnStaysInRow(t *testing.T) {
	g := mustGrid(t, "..7", "*..")
	n := g.Around(3, 4)

	require.Len(t, n, 2)
	assert.Equal(t, Span{Start: 0, End: 2}, n[0])
	// same-row left candidate is column 0 itself
	assert.Equal(t, Span{Start: 3, End: 5}, n[1])
	assert.False(t, n.Contains(2))

	tokens, err := Extract(g)
	require.NoError(t, err)
	assert.Empty(t, NeighborsOf(g, tokens.Symbols[0], tokens.Numbers))
}

func TestAroundNoWrapBetweenFirstAndLastRow(t *testing.T) {
	g := mustGrid(t, "1..", "...", "#.*")

	top := g.Around(0, 1)
	assert.Len(t, top, 2)
	assert.False(t, top.Contains(6))

	bottom := g.Around(8, 9)
	assert.Len(t, bottom, 2)
	assert.False(t, bottom.Contains(0))

	tokens, err := Extract(g)
	require.NoError(t, err)
	assert.Equal(t, 0, PartNumberSum(g, tokens))
}

func TestAroundEmptyGrid(t *testing.T) {
	g := mustGrid(t)
	assert.Nil(t, g.Around(0, 1))
}

func TestIsAdjacentDiagonal(t *testing.T) {
	g := mustGrid(t, "1..", ".#.", "..2")
	tokens, err := Extract(g)
	require.NoError(t, err)

	symbols := NewPositionSet(tokens.Symbols)
	for _, num := range tokens.Numbers {
		assert.True(t, IsAdjacent(g, num, symbols), "number %d", num.Value)
	}
}

func TestIsAdjacentEmptySymbols(t *testing.T) {
	g := mustGrid(t, "1..")
	assert.False(t, IsAdjacent(g, NumericToken{Value: 1, Start: 0, End: 1}, NewPositionSet(nil)))
}

func TestNeighborsOf(t *testing.T) {
	g := mustGrid(t, "11.22", "..*..", "3...4")
	tokens, err := Extract(g)
	require.NoError(t, err)
	require.Len(t, tokens.Symbols, 1)

	neighbors := NeighborsOf(g, tokens.Symbols[0], tokens.Numbers)
	values := make([]int, 0, len(neighbors))
	for _, n := range neighbors {
		values = append(values, n.Value)
	}
	assert.Equal(t, []int{11, 22}, values)
}

func TestPositionSet(t *testing.T) {
	ps := NewPositionSet([]SymbolToken{{Position: 4, Glyph: '#'}, {Position: 9, Glyph: '*'}})
	assert.True(t, ps.Has(4))
	assert.True(t, ps.Has(9))
	assert.False(t, ps.Has(5))
}
