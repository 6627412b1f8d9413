package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day03"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    3,
		Part:   1,
		Source: day03.Source,
		Func:   "Part1",
		Solve:  day03.Part1,
		Answer: "The sum is %d",
	})
}
