// Package cubegame checks records of the cube game against a bag of cubes.
package cubegame

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrBadGame = errors.New("bad game record")

var (
	reGame  = regexp.MustCompile(`^Game ([0-9]+): (.*)$`)
	reColor = regexp.MustCompile(`^([0-9]+) ([a-z]+)$`)
)

// Colors is the canonical order of cube colors.
var Colors = []string{"red", "green", "blue"}

// Bag maps a color to a number of cubes.
type Bag map[string]int

func DefaultBag() Bag {
	return Bag{"red": 12, "green": 13, "blue": 14}
}

func (b Bag) Total() int {
	total := 0
	for _, n := range b {
		total += n
	}
	return total
}

// Power multiplies the counts of the given colors; a missing color makes it 0.
func (b Bag) Power(colors []string) int {
	power := 1
	for _, c := range colors {
		power *= b[c]
	}
	return power
}

// Draw is one handful of cubes shown from the bag.
type Draw map[string]int

type Game struct {
	ID    int
	Draws []Draw
}

func ParseGame(line string) (Game, error) {
	matches := reGame.FindStringSubmatch(strings.TrimSpace(line))
	if matches == nil {
		return Game{}, fmt.Errorf("%w: %q", ErrBadGame, line)
	}
	id, err := strconv.Atoi(matches[1])
	if err != nil {
		return Game{}, fmt.Errorf("%w: game id %q: %w", ErrBadGame, matches[1], err)
	}

	game := Game{ID: id}
	for _, part := range strings.Split(matches[2], ";") {
		draw := make(Draw)
		for _, color := range strings.Split(part, ",") {
			color = strings.TrimSpace(color)
			colorMatches := reColor.FindStringSubmatch(color)
			if colorMatches == nil {
				return Game{}, fmt.Errorf("%w: game %d: cannot parse %q", ErrBadGame, id, color)
			}
			num, err := strconv.Atoi(colorMatches[1])
			if err != nil {
				return Game{}, fmt.Errorf("%w: game %d: %w", ErrBadGame, id, err)
			}
			draw[colorMatches[2]] += num
		}
		game.Draws = append(game.Draws, draw)
	}
	return game, nil
}

func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for lineNo, line := range lines {
		game, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		games = append(games, game)
	}
	return games, nil
}

// Possible reports whether every draw fits into the bag: no color exceeds its
// limit and no handful holds more cubes than the bag does.
func (g Game) Possible(bag Bag) bool {
	total := bag.Total()
	for _, draw := range g.Draws {
		drawSum := 0
		for color, num := range draw {
			if num > bag[color] {
				return false
			}
			drawSum += num
		}
		if drawSum > total {
			return false
		}
	}
	return true
}

// Minimum is the fewest cubes of each color that make the game possible.
func (g Game) Minimum(colors []string) Bag {
	minRequired := make(Bag, len(colors))
	for _, c := range colors {
		minRequired[c] = 0
	}
	for _, draw := range g.Draws {
		for _, c := range colors {
			minRequired[c] = max(minRequired[c], draw[c])
		}
	}
	return minRequired
}

func PossibleIDSum(games []Game, bag Bag) int {
	sum := 0
	for _, g := range games {
		if g.Possible(bag) {
			sum += g.ID
		}
	}
	return sum
}

func PowerSum(games []Game, colors []string) int {
	sum := 0
	for _, g := range games {
		sum += g.Minimum(colors).Power(colors)
	}
	return sum
}
