package schematic

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/input"
)

func sampleLines(t *testing.T) []string {
	t.Helper()
	lines, err := input.ReadLines("testdata/sample.txt")
	require.NoError(t, err)
	return lines
}

func TestSolveSample(t *testing.T) {
	res, err := Solve(context.Background(), sampleLines(t))
	require.NoError(t, err)
	assert.Equal(t, 4361, res.PartNumberSum)
	assert.Equal(t, 467835, res.GearRatioSum)
}

func TestSolveSampleParallel(t *testing.T) {
	res, err := Solve(context.Background(), sampleLines(t), WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, Result{PartNumberSum: 4361, GearRatioSum: 467835}, res)
}

func TestSampleExcludesIsolatedNumbers(t *testing.T) {
	g := sampleGrid(t)
	tokens, err := Extract(g)
	require.NoError(t, err)

	parts := make(map[int]bool)
	for _, p := range PartNumbers(g, tokens) {
		parts[p.Value] = true
	}
	assert.False(t, parts[114])
	assert.False(t, parts[58])
	assert.Len(t, parts, 8)
}

func TestSampleGears(t *testing.T) {
	g := sampleGrid(t)
	tokens, err := Extract(g)
	require.NoError(t, err)

	gears := Gears(g, tokens)
	require.Len(t, gears, 2)
	assert.Equal(t, Gear{Symbol: SymbolToken{Position: 13, Glyph: '*'}, Operands: [2]int{467, 35}}, gears[0])
	assert.Equal(t, 16345, gears[0].Ratio())
	assert.Equal(t, 85, gears[1].Symbol.Position)
	assert.Equal(t, 451490, gears[1].Ratio())

	// the '*' next to 617 has one neighbor only
	for _, gear := range gears {
		assert.NotEqual(t, 43, gear.Symbol.Position)
	}
}

func TestGearNeedsExactlyTwo(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"one", []string{"1..", ".*."}, 0},
		{"two", []string{"1.2", ".*."}, 2},
		{"three", []string{"1.2", ".*.", "3.."}, 0},
		{"not a star", []string{"1.2", ".#."}, 0},
		{"same number twice", []string{"111", ".*."}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Solve(context.Background(), tc.lines)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.GearRatioSum)
		})
	}
}

func TestPartNumberCountedOnce(t *testing.T) {
	res, err := Solve(context.Background(), []string{"#5#", "#.#"})
	require.NoError(t, err)
	assert.Equal(t, 5, res.PartNumberSum)
}

func TestSolveEmptyAndNoMatches(t *testing.T) {
	res, err := Solve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	res, err = Solve(context.Background(), []string{"12..", "..34"})
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	res, err = Solve(context.Background(), []string{"*..#", "...."})
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

func TestSolveMalformed(t *testing.T) {
	_, err := Solve(context.Background(), []string{"467..114..", "...*....."})
	require.ErrorIs(t, err, ErrMalformedGrid)
}

func TestSolveIdempotent(t *testing.T) {
	lines := sampleLines(t)
	first, err := Solve(context.Background(), lines)
	require.NoError(t, err)
	second, err := Solve(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSymbolOrderDoesNotMatter(t *testing.T) {
	g := sampleGrid(t)
	tokens, err := Extract(g)
	require.NoError(t, err)

	for range 20 {
		shuffled := Tokens{
			Numbers: tokens.Numbers,
			Symbols: append([]SymbolToken(nil), tokens.Symbols...),
		}
		rand.Shuffle(len(shuffled.Symbols), func(i, j int) {
			shuffled.Symbols[i], shuffled.Symbols[j] = shuffled.Symbols[j], shuffled.Symbols[i]
		})
		assert.Equal(t, 4361, PartNumberSum(g, shuffled))
		assert.Equal(t, 467835, GearRatioSum(g, shuffled))
	}
}

func TestSchematicLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := Parse(context.Background(), sampleLines(t), WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 10, s.Grid().Width())
	assert.Len(t, s.Tokens().Numbers, 10)

	assert.Equal(t, 467835, s.GearRatioSum(context.Background()))
	out := buf.String()
	assert.Contains(t, out, "msg=\"schematic parsed\"")
	assert.Contains(t, out, "ratio=16345")
	assert.Contains(t, out, "ratio=451490")
}
