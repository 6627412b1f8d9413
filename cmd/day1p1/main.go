// The day1p1 command prints the answer to part 1 of day 1.
package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day01"
)

func main() {
	aoc.Main(aoc.Puzzle{
		Day:    1,
		Part:   1,
		Source: day01.Source,
		Func:   "Part1",
		Solve:  day01.Part1,
		Answer: "The sum is %d",
	})
}
