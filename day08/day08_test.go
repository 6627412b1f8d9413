package day08

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

func TestRepeatingInstructions(t *testing.T) {
	got, err := Part1([]string{
		"RL",
		"",
		"AAA = (BBB, CCC)",
		"BBB = (DDD, EEE)",
		"CCC = (ZZZ, GGG)",
		"DDD = (DDD, DDD)",
		"EEE = (EEE, EEE)",
		"GGG = (GGG, GGG)",
		"ZZZ = (ZZZ, ZZZ)",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func sampleNetwork(t *testing.T) *Network {
	t.Helper()
	s, err := aoc.SampleFor(Source, "Part2")
	require.NoError(t, err)
	n, err := Parse(s.Lines())
	require.NoError(t, err)
	return n
}

func TestGhostStepsIsLCMOfCycles(t *testing.T) {
	n := sampleNetwork(t)
	starts := n.Starts()
	require.Equal(t, []string{"11A", "22A"}, starts)

	isGoal := func(id string) bool { return id[len(id)-1] == 'Z' }
	a, err := n.Steps("11A", isGoal)
	require.NoError(t, err)
	b, err := n.Steps("22A", isGoal)
	require.NoError(t, err)
	assert.Equal(t, 2, a)
	assert.Equal(t, 3, b)

	got, err := n.GhostSteps(starts)
	require.NoError(t, err)
	assert.Equal(t, aoc.LCM(a, b), got)

	rev, err := n.GhostSteps([]string{"22A", "11A"})
	require.NoError(t, err)
	assert.Equal(t, got, rev)
}

func TestUnreachable(t *testing.T) {
	_, err := Part1([]string{
		"L",
		"",
		"AAA = (BBB, BBB)",
		"BBB = (AAA, AAA)",
		"ZZZ = (ZZZ, ZZZ)",
	})
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestMalformed(t *testing.T) {
	for name, lines := range map[string][]string{
		"direction": {"LXR", "", "AAA = (ZZZ, ZZZ)"},
		"separator": {"L", "", "AAA (ZZZ, ZZZ)"},
		"pair":      {"L", "", "AAA = (ZZZ ZZZ)"},
		"no start":  {"L", "", "BBB = (ZZZ, ZZZ)"},
		"dangling":  {"L", "", "AAA = (QQQ, QQQ)"},
		"too short": {"L"},
	} {
		_, err := Part1(lines)
		assert.ErrorIs(t, err, aoc.ErrMalformed, name)
	}
}
