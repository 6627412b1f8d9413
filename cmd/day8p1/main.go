package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day08"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    8,
		Part:   1,
		Source: day08.Source,
		Func:   "Part1",
		Solve:  day08.Part1,
		Answer: "Steps made: %d",
	})
}
