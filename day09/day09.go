// Package day09 solves "Mirage Maintenance": extrapolating sequences by
// repeated differencing.
package day09

import (
	_ "embed"
	"strings"

	"github.com/maisem/aoc2023"
)

//go:embed day09.go
var Source []byte

func Parse(lines []string) ([][]int, error) {
	var out [][]int
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return nil, aoc.AtLine(aoc.Malformedf(line, "empty sequence"), i)
		}
		seq, err := aoc.Fields(line)
		if err != nil {
			return nil, aoc.AtLine(err, i)
		}
		out = append(out, seq)
	}
	return out, nil
}

func solve(lines []string, forward bool) (int, error) {
	seqs, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, s := range seqs {
		sum += aoc.Extrapolate(s, forward)
	}
	return sum, nil
}

/*
want=114

0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
*/
func Part1(lines []string) (int, error) {
	return solve(lines, true)
}

// want=2
func Part2(lines []string) (int, error) {
	return solve(lines, false)
}
