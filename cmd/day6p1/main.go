package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day06"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    6,
		Part:   1,
		Source: day06.Source,
		Func:   "Part1",
		Solve:  day06.Part1,
		Answer: "Result: %d",
	})
}
