package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day09"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    9,
		Part:   1,
		Source: day09.Source,
		Func:   "Part1",
		Solve:  day09.Part1,
		Answer: "The sum is %d",
	})
}
