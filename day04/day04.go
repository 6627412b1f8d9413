// Package day04 solves "Scratchcards".
package day04

import (
	_ "embed"
	"slices"
	"strings"

	"github.com/maisem/aoc2023"
)

//go:embed day04.go
var Source []byte

type Card struct {
	ID        int
	Winning   []int
	Scratched []int // sorted
}

// Matches returns how many winning numbers were scratched.
func (c Card) Matches() int {
	n := 0
	for _, w := range c.Winning {
		if _, ok := slices.BinarySearch(c.Scratched, w); ok {
			n++
		}
	}
	return n
}

// Points is 1 for the first match, doubled for each further one.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// ParseCard parses "Card 1: 41 48 83 | 83 86  6".
func ParseCard(line string) (Card, error) {
	head, rest, err := aoc.Cut(line, ":")
	if err != nil {
		return Card{}, err
	}
	winning, scratched, err := aoc.Cut(rest, "|")
	if err != nil {
		return Card{}, err
	}
	var c Card
	id, err := aoc.CutPrefix(head, "Card")
	if err != nil {
		return Card{}, err
	}
	if c.ID, err = aoc.Int(id); err != nil {
		return Card{}, err
	}
	if c.Winning, err = aoc.Fields(winning); err != nil {
		return Card{}, err
	}
	if c.Scratched, err = aoc.Fields(scratched); err != nil {
		return Card{}, err
	}
	slices.Sort(c.Scratched)
	return c, nil
}

func parse(lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, aoc.AtLine(err, i)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func Part1(lines []string) (int, error) {
	cards, err := parse(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum, nil
}

// Copies returns how many of each card there are once every card with m
// matches has won a copy of the next m cards. Copies past the end of the
// table are not made.
func Copies(cards []Card) []int {
	counts := make([]int, len(cards))
	for i := range counts {
		counts[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			counts[j] += counts[i]
		}
	}
	return counts
}

// want=30
func Part2(lines []string) (int, error) {
	cards, err := parse(lines)
	if err != nil {
		return 0, err
	}
	return aoc.Sum(Copies(cards)...), nil
}
