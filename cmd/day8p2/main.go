// The day8p2 command prints the answer to part 2 of day 8.
package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day08"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    8,
		Part:   2,
		Source: day08.Source,
		Func:   "Part2",
		Solve:  day08.Part2,
		Answer: "Steps made: %d",
	})
}
