// The day5p2 command prints the answer to part 2 of day 5.
package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day05"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    5,
		Part:   2,
		Source: day05.Source,
		Func:   "Part2",
		Solve:  day05.Part2,
		Answer: "Minimum is %d",
	})
}
