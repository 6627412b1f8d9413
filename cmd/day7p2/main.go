package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day07"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    7,
		Part:   2,
		Source: day07.Source,
		Func:   "Part2",
		Solve:  day07.Part2,
		Answer: "Total is %d",
	})
}
