// Package puzzle keeps a registry of daily puzzle solvers.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var ErrUnknownDay = errors.New("unknown day")

type Answer struct {
	Part1 int
	Part2 int
}

// Solver solves both parts of one day from the full input.
type Solver func(ctx context.Context, lines []string) (Answer, error)

type Registry struct {
	solvers map[string]Solver
}

func NewRegistry() *Registry {
	return &Registry{
		solvers: make(map[string]Solver),
	}
}

// Name turns "3", "03", "day3" or "day03" into "day03".
func Name(day string) (string, error) {
	num, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(day), "day"))
	if err != nil || num < 1 || num > 25 {
		return "", fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	return fmt.Sprintf("day%02d", num), nil
}

// Register panics on a bad or duplicate day, both are programming errors.
func (r *Registry) Register(day string, solver Solver) {
	name, err := Name(day)
	if err != nil {
		panic(err)
	}
	if _, found := r.solvers[name]; found {
		panic(fmt.Sprintf("puzzle %s registered twice", name))
	}
	r.solvers[name] = solver
}

func (r *Registry) Get(day string) (string, Solver, error) {
	name, err := Name(day)
	if err != nil {
		return "", nil, err
	}
	solver, found := r.solvers[name]
	if !found {
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownDay, name)
	}
	return name, solver, nil
}

func (r *Registry) Days() []string {
	days := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		days = append(days, name)
	}
	sort.Strings(days)
	return days
}
