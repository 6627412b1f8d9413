package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day05"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    5,
		Part:   1,
		Source: day05.Source,
		Func:   "Part1",
		Solve:  day05.Part1,
		Answer: "Minimum is %d",
	})
}
