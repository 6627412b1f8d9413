package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day01"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    1,
		Part:   2,
		Source: day01.Source,
		Func:   "Part2",
		Solve:  day01.Part2,
		Answer: "The sum is %d",
	})
}
