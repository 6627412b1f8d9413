package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.Sample(t, Source, "Part1", Part1)
	aoctest.Sample(t, Source, "Part2", Part2)
}

func TestParseNumbers(t *testing.T) {
	s := Parse([]string{
		"467..114",
		"...*...7",
	})
	assert.Equal(t, []Number{
		{Value: 467, At: aoc.Pt{X: 0, Y: 0}, Len: 3},
		{Value: 114, At: aoc.Pt{X: 5, Y: 0}, Len: 3},
		{Value: 7, At: aoc.Pt{X: 7, Y: 1}, Len: 1},
	}, s.Numbers)
}

func TestPartNumbersCountedOnce(t *testing.T) {
	// 12 touches both symbols but is a single part number.
	got, err := Part1([]string{
		"#..",
		".12",
		"..$",
	})
	assert.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestGearNeedsExactlyTwo(t *testing.T) {
	got, err := Part2([]string{
		"2.3",
		".*.",
		"4..",
		"...",
		"5*6",
	})
	assert.NoError(t, err)
	assert.Equal(t, 30, got)
}
