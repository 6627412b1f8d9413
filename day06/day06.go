// Package day06 solves "Wait For It": counting winning boat-race strategies.
package day06

import (
	_ "embed"
	"math"
	"strings"

	"github.com/maisem/aoc2023"
)

//go:embed day06.go
var Source []byte

type Race struct {
	Time, Distance int
}

// Ways returns how many whole hold times h beat the record, i.e. satisfy
// h*(Time-h) > Distance. Those are the h between the roots of
// h^2 - Time*h + (Distance+1) = 0.
func (r Race) Ways() int {
	hi, lo, ok := aoc.SolveQuad(1, -r.Time, r.Distance+1)
	if !ok {
		return 0
	}
	n := int(math.Floor(hi)) - int(math.Ceil(lo)) + 1
	return max(n, 0)
}

func timesAndDistances(lines []string) (times, dists string, err error) {
	if len(lines) < 2 {
		return "", "", aoc.Malformedf("", "want Time and Distance lines, got %d lines", len(lines))
	}
	if times, err = aoc.CutPrefix(strings.TrimSpace(lines[0]), "Time:"); err != nil {
		return "", "", aoc.AtLine(err, 0)
	}
	if dists, err = aoc.CutPrefix(strings.TrimSpace(lines[1]), "Distance:"); err != nil {
		return "", "", aoc.AtLine(err, 1)
	}
	return times, dists, nil
}

// ParseRaces reads one race per column.
func ParseRaces(lines []string) ([]Race, error) {
	t, d, err := timesAndDistances(lines)
	if err != nil {
		return nil, err
	}
	times, err := aoc.Fields(t)
	if err != nil {
		return nil, aoc.AtLine(err, 0)
	}
	dists, err := aoc.Fields(d)
	if err != nil {
		return nil, aoc.AtLine(err, 1)
	}
	if len(times) != len(dists) {
		return nil, aoc.Malformedf("", "%d times but %d distances", len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{times[i], dists[i]}
	}
	return races, nil
}

// ParseRace reads the lines as one race, ignoring the spaces between
// digits.
func ParseRace(lines []string) (Race, error) {
	t, d, err := timesAndDistances(lines)
	if err != nil {
		return Race{}, err
	}
	var r Race
	if r.Time, err = aoc.Int(strings.ReplaceAll(t, " ", "")); err != nil {
		return Race{}, aoc.AtLine(err, 0)
	}
	if r.Distance, err = aoc.Int(strings.ReplaceAll(d, " ", "")); err != nil {
		return Race{}, aoc.AtLine(err, 1)
	}
	return r, nil
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func Part1(lines []string) (int, error) {
	races, err := ParseRaces(lines)
	if err != nil {
		return 0, err
	}
	ways := make([]int, len(races))
	for i, r := range races {
		ways[i] = r.Ways()
	}
	return aoc.Product(ways...), nil
}

// want=71503
func Part2(lines []string) (int, error) {
	r, err := ParseRace(lines)
	if err != nil {
		return 0, err
	}
	return r.Ways(), nil
}
