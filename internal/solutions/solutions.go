// Package solutions registers the solver of every implemented day.
package solutions

import (
	"context"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/calibration"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/config"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/ctxlog"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/cubegame"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/schematic"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/scratchcards"
)

func Register(reg *puzzle.Registry, cfg *config.Config) {
	reg.Register("1", day01)
	reg.Register("2", day02(cubegame.Bag(cfg.Cubes)))
	reg.Register("3", day03(cfg.Workers))
	reg.Register("4", day04)
}

func day01(ctx context.Context, lines []string) (puzzle.Answer, error) {
	logger := ctxlog.FromContext(ctx)
	for i, line := range lines {
		logger.DebugContext(ctx, "line", "n", i+1, "text", line)
	}

	part1, err := calibration.Sum(lines, false)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part2, err := calibration.Sum(lines, true)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: part1, Part2: part2}, nil
}

func day02(bag cubegame.Bag) puzzle.Solver {
	return func(ctx context.Context, lines []string) (puzzle.Answer, error) {
		logger := ctxlog.FromContext(ctx)
		games, err := cubegame.ParseGames(lines)
		if err != nil {
			return puzzle.Answer{}, err
		}
		logger.DebugContext(ctx, "bag", "cubes", map[string]int(bag), "total", bag.Total())
		for _, g := range games {
			minimum := g.Minimum(cubegame.Colors)
			logger.DebugContext(ctx, "game", "id", g.ID, "draws", len(g.Draws),
				"possible", g.Possible(bag), "power", minimum.Power(cubegame.Colors))
		}
		return puzzle.Answer{
			Part1: cubegame.PossibleIDSum(games, bag),
			Part2: cubegame.PowerSum(games, cubegame.Colors),
		}, nil
	}
}

func day03(workers int) puzzle.Solver {
	return func(ctx context.Context, lines []string) (puzzle.Answer, error) {
		res, err := schematic.Solve(ctx, lines,
			schematic.WithLogger(ctxlog.FromContext(ctx)),
			schematic.WithWorkers(workers))
		if err != nil {
			return puzzle.Answer{}, err
		}
		return puzzle.Answer{Part1: res.PartNumberSum, Part2: res.GearRatioSum}, nil
	}
}

func day04(ctx context.Context, lines []string) (puzzle.Answer, error) {
	logger := ctxlog.FromContext(ctx)
	cards, err := scratchcards.ParseCards(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	for _, c := range cards {
		logger.DebugContext(ctx, "card", "id", c.ID, "matches", c.Matches(), "points", c.Points())
	}
	return puzzle.Answer{
		Part1: scratchcards.PointsSum(cards),
		Part2: scratchcards.TotalCards(cards),
	}, nil
}
