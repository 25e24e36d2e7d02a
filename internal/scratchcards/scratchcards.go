// Package scratchcards scores scratchcards and counts the copies they win.
package scratchcards

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadCard = errors.New("bad card")

type Card struct {
	ID      int
	Winning []int
	Have    []int
}

func parseNumbers(s string) ([]int, error) {
	fields := strings.Fields(s)
	result := make([]int, 0, len(fields))
	for _, f := range fields {
		num, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		result = append(result, num)
	}
	return result, nil
}

// ParseCard reads "Card N: winning numbers | numbers you have".
func ParseCard(line string) (Card, error) {
	head, body, found := strings.Cut(line, ":")
	if !found {
		return Card{}, fmt.Errorf("%w: no ':' in %q", ErrBadCard, line)
	}
	idStr, found := strings.CutPrefix(strings.TrimSpace(head), "Card")
	if !found {
		return Card{}, fmt.Errorf("%w: no card header in %q", ErrBadCard, line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return Card{}, fmt.Errorf("%w: card id: %w", ErrBadCard, err)
	}

	winningStr, haveStr, found := strings.Cut(body, "|")
	if !found {
		return Card{}, fmt.Errorf("%w: card %d has no '|'", ErrBadCard, id)
	}
	winning, err := parseNumbers(winningStr)
	if err != nil {
		return Card{}, fmt.Errorf("%w: card %d winning numbers: %w", ErrBadCard, id, err)
	}
	have, err := parseNumbers(haveStr)
	if err != nil {
		return Card{}, fmt.Errorf("%w: card %d numbers: %w", ErrBadCard, id, err)
	}

	return Card{ID: id, Winning: winning, Have: have}, nil
}

func ParseCards(lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))
	for lineNo, line := range lines {
		card, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Matches counts the distinct numbers present on both sides of the card.
func (c Card) Matches() int {
	winningMap := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		winningMap[n] = true
	}
	matches := 0
	seen := make(map[int]bool, len(c.Have))
	for _, n := range c.Have {
		if winningMap[n] && !seen[n] {
			matches++
		}
		seen[n] = true
	}
	return matches
}

func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func PointsSum(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum
}

// TotalCards counts original cards plus every copy won. Card i with m matches
// adds one copy of each of the next m cards per copy of itself; copies past
// the last card are not issued.
func TotalCards(cards []Card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	total := 0
	for i, c := range cards {
		for k := i + 1; k <= i+c.Matches() && k < len(cards); k++ {
			copies[k] += copies[i]
		}
		total += copies[i]
	}
	return total
}
