package day09

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

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		seq        []int
		next, prev int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{-4, -4, -4}, -4, -4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, aoc.Extrapolate(tt.seq, true), "%v", tt.seq)
		assert.Equal(t, tt.prev, aoc.Extrapolate(tt.seq, false), "%v", tt.seq)
	}
}

func TestMalformed(t *testing.T) {
	for _, lines := range [][]string{
		{"1 2 3", ""},
		{"1 two 3"},
	} {
		_, err := Part1(lines)
		assert.ErrorIs(t, err, aoc.ErrMalformed, "%q", lines)
	}
}
