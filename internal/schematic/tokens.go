package schematic

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// NumericToken is a maximal run of digits within one row, End is exclusive.
type NumericToken struct {
	Value int
	Start int
	End   int
}

type SymbolToken struct {
	Position int
	Glyph    byte
}

type Tokens struct {
	Numbers []NumericToken
	Symbols []SymbolToken
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isBlank(b byte) bool {
	switch b {
	case '.', ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// Extract scans the grid row by row in row-major order.
func Extract(g *Grid) (Tokens, error) {
	var result Tokens
	for row := range g.Height() {
		rowTokens, err := extractRow(g, row)
		if err != nil {
			return Tokens{}, err
		}
		result.Numbers = append(result.Numbers, rowTokens.Numbers...)
		result.Symbols = append(result.Symbols, rowTokens.Symbols...)
	}
	return result, nil
}

// ExtractParallel shards rows between at most workers goroutines. The result
// is identical to Extract.
func ExtractParallel(ctx context.Context, g *Grid, workers int) (Tokens, error) {
	perRow := make([]Tokens, g.Height())

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for row := range g.Height() {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rowTokens, err := extractRow(g, row)
			if err != nil {
				return err
			}
			perRow[row] = rowTokens
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Tokens{}, err
	}

	var result Tokens
	for _, rowTokens := range perRow {
		result.Numbers = append(result.Numbers, rowTokens.Numbers...)
		result.Symbols = append(result.Symbols, rowTokens.Symbols...)
	}
	return result, nil
}

func extractRow(g *Grid, row int) (Tokens, error) {
	var result Tokens
	line := g.Row(row)
	for col := 0; col < len(line); {
		b := line[col]
		switch {
		case isDigit(b):
			end := col + 1
			for end < len(line) && isDigit(line[end]) {
				end++
			}
			value, err := strconv.Atoi(line[col:end])
			if err != nil {
				return Tokens{}, fmt.Errorf("number at row %d col %d: %w", row, col, err)
			}
			result.Numbers = append(result.Numbers, NumericToken{
				Value: value,
				Start: g.Index(row, col),
				End:   g.Index(row, end),
			})
			col = end
		case isBlank(b):
			col++
		default:
			result.Symbols = append(result.Symbols, SymbolToken{
				Position: g.Index(row, col),
				Glyph:    b,
			})
			col++
		}
	}
	return result, nil
}
