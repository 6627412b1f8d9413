package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day04"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    4,
		Part:   2,
		Source: day04.Source,
		Func:   "Part2",
		Solve:  day04.Part2,
		Answer: "The grand total is %d",
	})
}
