package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day02"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    2,
		Part:   2,
		Source: day02.Source,
		Func:   "Part2",
		Solve:  day02.Part2,
		Answer: "The sum of powers is %d",
	})
}
