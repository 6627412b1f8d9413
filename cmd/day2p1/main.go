package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day02"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    2,
		Part:   1,
		Source: day02.Source,
		Func:   "Part1",
		Solve:  day02.Part1,
		Answer: "The sum of ids is %d",
	})
}
