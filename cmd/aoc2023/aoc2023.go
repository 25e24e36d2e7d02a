package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/config"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/ctxlog"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/input"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/report"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/solutions"
)

var errNoDebugDir = errors.New("no debug dir configured, set debug_dir or --debug-dir")

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		slog.Error("aoc2023 failed", "err", err)
		os.Exit(1)
	}
}

type app struct {
	configPath string
	verbose    bool
	debugDir   string

	cfg      *config.Config
	logger   *slog.Logger
	registry *puzzle.Registry
	reports  report.Storage
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "aoc2023",
		Short:         "Advent of Code 2023 solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(errW)
		},
	}
	rootCmd.SetOut(outW)
	rootCmd.SetErr(errW)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to the YAML config (default $"+config.EnvConfigPath+" or "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&a.debugDir, "debug-dir", "", "store a debug report of every run in this directory ("+report.TmpDir+" for a new temp dir)")

	runCmd := &cobra.Command{
		Use:   "run <day> [input-file]",
		Short: "Solve both parts of one day",
		Long: `Solves both parts of one day. The day may be given as 3, 03, day3 or day03.
Without an input file, <input_dir>/dayNN.txt is read.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := ""
			if len(args) == 2 {
				inputPath = args[1]
			}
			out, err := a.runDay(cmd.Context(), args[0], inputPath)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every day that has an input in input_dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runAll(cmd.Context(), cmd.OutOrStdout())
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(a.registry.Days(), "\n"))
			return err
		},
	}

	rootCmd.AddCommand(runCmd, allCmd, listCmd, a.newReportCmd())
	return rootCmd
}

func (a *app) newReportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Inspect the debug reports kept in debug_dir",
	}

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored debug report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := a.requireReports()
			if err != nil {
				return err
			}
			ctx := ctxlog.WithLogger(cmd.Context(), a.logger)
			return reports.RetrieveReport(ctx, args[0], cmd.OutOrStdout())
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <name>...",
		Short: "Delete stored debug reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := a.requireReports()
			if err != nil {
				return err
			}
			ctx := ctxlog.WithLogger(cmd.Context(), a.logger)
			for _, name := range args {
				if err := reports.DeleteReport(ctx, name); err != nil {
					return err
				}
				a.logger.Info("debug report deleted", "dir", reports.Dir(), "name", name)
			}
			return nil
		},
	}

	reportCmd.AddCommand(showCmd, rmCmd)
	return reportCmd
}

func (a *app) requireReports() (report.Storage, error) {
	if a.reports == nil {
		return nil, errNoDebugDir
	}
	return a.reports, nil
}

func (a *app) setup(errW io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.debugDir != "" {
		cfg.DebugDir = a.debugDir
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		lvl = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(errW, &slog.HandlerOptions{Level: lvl}))

	if cfg.DebugDir != "" {
		a.reports, err = report.Open(cfg.DebugDir)
		if err != nil {
			return fmt.Errorf("cannot open debug dir: %w", err)
		}
		a.logger.Debug("debug reports enabled", "dir", a.reports.Dir())
	}

	a.cfg = cfg
	a.registry = puzzle.NewRegistry()
	solutions.Register(a.registry, cfg)
	return nil
}

func (a *app) inputPath(name string) string {
	return filepath.Join(a.cfg.InputDir, name+".txt")
}

// runDay solves one day and returns the printable answer.
func (a *app) runDay(ctx context.Context, day, inputPath string) (string, error) {
	name, solver, err := a.registry.Get(day)
	if err != nil {
		return "", err
	}
	if inputPath == "" {
		inputPath = a.inputPath(name)
	}

	lines, err := input.ReadLines(inputPath)
	if err != nil {
		return "", err
	}

	var debugBuf bytes.Buffer
	logger := a.logger.With("day", name)
	solveCtx := ctxlog.WithLogger(ctx, logger)
	if a.reports != nil {
		debugLogger := slog.New(slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		solveCtx = ctxlog.WithLogger(ctx, debugLogger.With("day", name))
	}

	started := time.Now()
	answer, err := solver(solveCtx, lines)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	logger.Info("solved", "input", inputPath, "lines", len(lines), "took", time.Since(started))

	if a.reports != nil {
		reportName := report.NewName(name)
		if err := a.reports.StoreReport(ctxlog.WithLogger(ctx, logger), reportName, &debugBuf); err != nil {
			return "", fmt.Errorf("cannot store debug report: %w", err)
		}
		logger.Info("debug report stored", "dir", a.reports.Dir(), "name", reportName)
	}

	return fmt.Sprintf("%s part1: %d\n%s part2: %d\n", name, answer.Part1, name, answer.Part2), nil
}

func (a *app) runAll(ctx context.Context, outW io.Writer) error {
	days := make([]string, 0)
	for _, name := range a.registry.Days() {
		_, err := os.Stat(a.inputPath(name))
		if errors.Is(err, fs.ErrNotExist) {
			a.logger.Info("no input, skipping", "day", name, "path", a.inputPath(name))
			continue
		}
		days = append(days, name)
	}

	outputs := make([]string, len(days))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(a.cfg.Workers)
	for i, name := range days {
		eg.Go(func() error {
			out, err := a.runDay(egCtx, name, "")
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	_, err := io.WriteString(outW, strings.Join(outputs, ""))
	return err
}
