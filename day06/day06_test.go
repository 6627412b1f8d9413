package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.Sample(t, Source, "Part1", Part1)
	aoctest.Sample(t, Source, "Part2", Part2)
}

// bruteWays counts winning hold times one by one.
func bruteWays(r Race) int {
	n := 0
	for h := 0; h <= r.Time; h++ {
		if h*(r.Time-h) > r.Distance {
			n++
		}
	}
	return n
}

func TestWays(t *testing.T) {
	tests := []struct {
		race Race
		want int
	}{
		{Race{7, 9}, 4},
		{Race{15, 40}, 8},
		{Race{30, 200}, 9},
		{Race{4, 4}, 0}, // 2*2 ties the record
		{Race{3, 100}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.race.Ways(), "%+v", tt.race)
	}
	for time := 0; time < 60; time++ {
		for dist := 0; dist < 400; dist += 7 {
			r := Race{time, dist}
			require.Equal(t, bruteWays(r), r.Ways(), "%+v", r)
		}
	}
}

func TestParseRace(t *testing.T) {
	r, err := ParseRace([]string{"Time:      7  15   30", "Distance:  9  40  200"})
	require.NoError(t, err)
	assert.Equal(t, Race{71530, 940200}, r)
}

func TestParseRacesMalformed(t *testing.T) {
	for _, lines := range [][]string{
		{"Time: 1 2"},
		{"Time: 1 2", "Distance: 3"},
		{"Time: 1 x", "Distance: 3 4"},
		{"Tim: 1", "Distance: 3"},
	} {
		_, err := ParseRaces(lines)
		assert.ErrorIs(t, err, aoc.ErrMalformed, "%q", lines)
	}
}
