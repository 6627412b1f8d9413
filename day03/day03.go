// Package day03 solves "Gear Ratios": numbers next to symbols in an engine
// schematic.
package day03

import (
	_ "embed"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/maisem/aoc2023"
)

//go:embed day03.go
var Source []byte

// Number is a horizontal run of digits in the schematic.
type Number struct {
	Value int
	At    aoc.Pt // leftmost digit
	Len   int
}

// Schematic is the parsed engine schematic.
type Schematic struct {
	Grid    aoc.Grid[byte]
	Numbers []Number
	// owner maps each digit cell to its index in Numbers.
	owner map[aoc.Pt]int
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsSymbol reports whether b is a symbol: anything but a digit or '.'.
func IsSymbol(b byte) bool { return b != '.' && !isDigit(b) }

func Parse(lines []string) Schematic {
	s := Schematic{
		Grid:  aoc.ParseGrid(lines),
		owner: make(map[aoc.Pt]int),
	}
	for y, row := range s.Grid {
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			n := Number{At: aoc.Pt{X: x, Y: y}}
			for ; x < len(row) && isDigit(row[x]); x++ {
				n.Value = n.Value*10 + int(row[x]-'0')
				n.Len++
				s.owner[aoc.Pt{X: x, Y: y}] = len(s.Numbers)
			}
			s.Numbers = append(s.Numbers, n)
		}
	}
	return s
}

// nearSymbol reports whether any cell of n touches a symbol, diagonals
// included.
func (s Schematic) nearSymbol(n Number) bool {
	found := false
	for i := range n.Len {
		p := aoc.Pt{X: n.At.X + i, Y: n.At.Y}
		p.ForNeighbors(func(q aoc.Pt) bool {
			if v, ok := s.Grid.AtOk(q); ok && IsSymbol(v) {
				found = true
			}
			return !found
		})
		if found {
			return true
		}
	}
	return false
}

// adjacent returns the indexes of the distinct numbers touching p.
func (s Schematic) adjacent(p aoc.Pt) []int {
	var out []int
	p.ForNeighbors(func(q aoc.Pt) bool {
		if i, ok := s.owner[q]; ok && !slices.Contains(out, i) {
			out = append(out, i)
		}
		return true
	})
	return out
}

// PartNumbers returns the numbers adjacent to a symbol, each once.
func (s Schematic) PartNumbers() []Number {
	var out []Number
	for _, n := range s.Numbers {
		if s.nearSymbol(n) {
			out = append(out, n)
		}
	}
	return out
}

// GearRatios returns, for every '*' touching exactly two numbers, the
// product of those numbers.
func (s Schematic) GearRatios() []int {
	var out []int
	s.Grid.ForEach(func(p aoc.Pt, v byte) {
		if v != '*' {
			return
		}
		adj := s.adjacent(p)
		if len(adj) != 2 {
			return
		}
		out = append(out, s.Numbers[adj[0]].Value*s.Numbers[adj[1]].Value)
	})
	return out
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func Part1(lines []string) (int, error) {
	parts := Parse(lines).PartNumbers()
	log.Debug().Int("parts", len(parts)).Msg("found part numbers")
	sum := 0
	for _, n := range parts {
		sum += n.Value
	}
	return sum, nil
}

// want=467835
func Part2(lines []string) (int, error) {
	ratios := Parse(lines).GearRatios()
	log.Debug().Ints("ratios", ratios).Msg("found gears")
	return aoc.Sum(ratios...), nil
}
