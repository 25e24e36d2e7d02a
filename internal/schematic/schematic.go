// Package schematic finds part numbers and gears in an engine schematic: a
// rectangular text grid of digit runs, '.' blanks and symbol glyphs.
//
// Cells are addressed by flat index row*width+col. Every neighbor lookup goes
// through Grid.Around, which clamps candidates to the row they belong to, so
// the last column of one row is never taken as adjacent to the first column
// of the next.
package schematic

import (
	"context"
	"io"
	"log/slog"
)

type Result struct {
	PartNumberSum int
	GearRatioSum  int
}

type Option func(*options)

type options struct {
	logger  *slog.Logger
	workers int
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithWorkers enables row-sharded token extraction when n > 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

type Schematic struct {
	grid   *Grid
	tokens Tokens
	logger *slog.Logger
}

func Parse(ctx context.Context, lines []string, opts ...Option) (*Schematic, error) {
	o := options{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	grid, err := NewGrid(lines)
	if err != nil {
		return nil, err
	}

	var tokens Tokens
	if o.workers > 1 {
		tokens, err = ExtractParallel(ctx, grid, o.workers)
	} else {
		tokens, err = Extract(grid)
	}
	if err != nil {
		return nil, err
	}

	for row := range grid.Height() {
		o.logger.DebugContext(ctx, "row", "n", row, "text", grid.Row(row))
	}
	o.logger.DebugContext(ctx, "schematic parsed",
		"width", grid.Width(),
		"height", grid.Height(),
		"numbers", len(tokens.Numbers),
		"symbols", len(tokens.Symbols))

	return &Schematic{
		grid:   grid,
		tokens: tokens,
		logger: o.logger,
	}, nil
}

func (s *Schematic) Grid() *Grid {
	return s.grid
}

func (s *Schematic) Tokens() Tokens {
	return s.tokens
}

func (s *Schematic) PartNumbers(ctx context.Context) []NumericToken {
	parts := PartNumbers(s.grid, s.tokens)
	for _, p := range parts {
		row, col := s.grid.Coord(p.Start)
		s.logger.DebugContext(ctx, "part number", "value", p.Value, "row", row, "col", col)
	}
	return parts
}

func (s *Schematic) PartNumberSum(ctx context.Context) int {
	sum := 0
	for _, p := range s.PartNumbers(ctx) {
		sum += p.Value
	}
	return sum
}

func (s *Schematic) Gears(ctx context.Context) []Gear {
	gears := Gears(s.grid, s.tokens)
	for _, g := range gears {
		row, col := s.grid.Coord(g.Symbol.Position)
		s.logger.DebugContext(ctx, "gear", "row", row, "col", col,
			"a", g.Operands[0], "b", g.Operands[1], "ratio", g.Ratio())
	}
	return gears
}

func (s *Schematic) GearRatioSum(ctx context.Context) int {
	sum := 0
	for _, g := range s.Gears(ctx) {
		sum += g.Ratio()
	}
	return sum
}

func Solve(ctx context.Context, lines []string, opts ...Option) (Result, error) {
	s, err := Parse(ctx, lines, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{
		PartNumberSum: s.PartNumberSum(ctx),
		GearRatioSum:  s.GearRatioSum(ctx),
	}, nil
}
