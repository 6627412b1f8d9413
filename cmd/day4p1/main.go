package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day04"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    4,
		Part:   1,
		Source: day04.Source,
		Func:   "Part1",
		Solve:  day04.Part1,
		Answer: "You won %d points",
	})
}
