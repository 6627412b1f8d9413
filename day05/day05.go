// Package day05 solves "If You Give A Seed A Fertilizer": chains of range
// remappings, applied to points and to whole spans.
package day05

import (
	_ "embed"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/maisem/aoc2023"
)

//go:embed day05.go
var Source []byte

// Range maps [Src, Src+Len) onto [Dst, Dst+Len).
type Range struct {
	Dst, Src, Len int
}

func (r Range) contains(x int) bool {
	return x >= r.Src && x < r.Src+r.Len
}

// Map is one "<from>-to-<to> map:" section.
type Map struct {
	From, To string
	Ranges   []Range
}

// Map returns where x goes. The first range containing x wins; points in
// no range map to themselves.
func (m Map) Map(x int) int {
	for _, r := range m.Ranges {
		if r.contains(x) {
			return r.Dst + x - r.Src
		}
	}
	return x
}

// Span is the interval [Start, Start+Len).
type Span struct {
	Start, Len int
}

func (s Span) End() int { return s.Start + s.Len }

// cut returns the smallest range boundary strictly inside s.
func (m Map) cut(s Span) (int, bool) {
	best, ok := 0, false
	for _, r := range m.Ranges {
		for _, b := range [2]int{r.Src, r.Src + r.Len} {
			if b > s.Start && b < s.End() && (!ok || b < best) {
				best, ok = b, true
			}
		}
	}
	return best, ok
}

// MapSpans maps every point of the spans. Spans are split at range
// boundaries so that each piece maps as a whole; the total length is
// unchanged.
func (m Map) MapSpans(in []Span) []Span {
	var out []Span
	q := aoc.NewQueue(in...)
	q.While(func(s Span) bool {
		if s.Len <= 0 {
			return true
		}
		if c, ok := m.cut(s); ok {
			q.Push(Span{s.Start, c - s.Start}, Span{c, s.End() - c})
			return true
		}
		out = append(out, Span{m.Map(s.Start), s.Len})
		return true
	})
	return out
}

type Almanac struct {
	Seeds []int
	Maps  []Map
}

// Location runs x through every map in order.
func (a Almanac) Location(x int) int {
	for _, m := range a.Maps {
		x = m.Map(x)
	}
	return x
}

// LocationSpans runs the spans through every map in order.
func (a Almanac) LocationSpans(spans []Span) []Span {
	for _, m := range a.Maps {
		spans = m.MapSpans(spans)
		log.Debug().Str("map", m.From+"-to-"+m.To).Int("spans", len(spans)).Msg("mapped")
	}
	return spans
}

// SeedSpans reads Seeds as (start, length) pairs.
func (a Almanac) SeedSpans() ([]Span, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, aoc.Malformedf("", "odd number of seed values (%d)", len(a.Seeds))
	}
	var out []Span
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Span{a.Seeds[i], a.Seeds[i+1]})
	}
	return out, nil
}

func Parse(lines []string) (Almanac, error) {
	var a Almanac
	if len(lines) == 0 {
		return a, aoc.Malformedf("", "empty almanac")
	}
	seeds, err := aoc.CutPrefix(lines[0], "seeds:")
	if err != nil {
		return a, aoc.AtLine(err, 0)
	}
	if a.Seeds, err = aoc.Fields(seeds); err != nil {
		return a, aoc.AtLine(err, 0)
	}
	var cur *Map
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		switch {
		case line == "":
			cur = nil
		case cur == nil:
			name, _, err := aoc.Cut(line, " map:")
			if err != nil {
				return a, aoc.AtLine(err, i)
			}
			from, to, err := aoc.Cut(name, "-to-")
			if err != nil {
				return a, aoc.AtLine(err, i)
			}
			a.Maps = append(a.Maps, Map{From: from, To: to})
			cur = &a.Maps[len(a.Maps)-1]
		default:
			v, err := aoc.Fields(line)
			if err != nil {
				return a, aoc.AtLine(err, i)
			}
			if len(v) != 3 {
				return a, aoc.AtLine(aoc.Malformedf(line, "want 3 numbers, got %d", len(v)), i)
			}
			cur.Ranges = append(cur.Ranges, Range{Dst: v[0], Src: v[1], Len: v[2]})
		}
	}
	return a, nil
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func Part1(lines []string) (int, error) {
	a, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, aoc.Malformedf(lines[0], "no seeds")
	}
	locs := make([]int, len(a.Seeds))
	for i, s := range a.Seeds {
		locs[i] = a.Location(s)
	}
	return slices.Min(locs), nil
}

// want=46
func Part2(lines []string) (int, error) {
	a, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	seeds, err := a.SeedSpans()
	if err != nil {
		return 0, aoc.AtLine(err, 0)
	}
	spans := a.LocationSpans(seeds)
	if len(spans) == 0 {
		return 0, aoc.Malformedf(lines[0], "no seeds")
	}
	return slices.MinFunc(spans, func(a, b Span) int {
		return a.Start - b.Start
	}).Start, nil
}
