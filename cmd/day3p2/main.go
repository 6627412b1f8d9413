package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day03"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    3,
		Part:   2,
		Source: day03.Source,
		Func:   "Part2",
		Solve:  day03.Part2,
		Answer: "The sum is %d",
	})
}
