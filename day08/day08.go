// Package day08 solves "Haunted Wasteland": walking a left/right network.
package day08

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"

	"github.com/maisem/aoc2023"
)

//go:embed day08.go
var Source []byte

// ErrUnreachable is returned for a walk that loops without reaching a goal.
var ErrUnreachable = errors.New("goal unreachable")

type Node struct {
	Left, Right string
}

type Network struct {
	Instructions string // of 'L' and 'R'
	Nodes        map[string]Node
}

func Parse(lines []string) (*Network, error) {
	if len(lines) < 2 {
		return nil, aoc.Malformedf("", "want instructions and nodes")
	}
	n := &Network{
		Instructions: strings.TrimSpace(lines[0]),
		Nodes:        make(map[string]Node),
	}
	if n.Instructions == "" {
		return nil, aoc.AtLine(aoc.Malformedf(lines[0], "no instructions"), 0)
	}
	if i := strings.IndexFunc(n.Instructions, func(r rune) bool { return r != 'L' && r != 'R' }); i >= 0 {
		return nil, aoc.AtLine(aoc.Malformedf(lines[0], "unknown direction %q", n.Instructions[i]), 0)
	}
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		id, next, err := aoc.Cut(line, " = ")
		if err != nil {
			return nil, aoc.AtLine(err, i+1)
		}
		next = strings.TrimSuffix(strings.TrimPrefix(next, "("), ")")
		l, r, err := aoc.Cut(next, ", ")
		if err != nil {
			return nil, aoc.AtLine(err, i+1)
		}
		n.Nodes[strings.TrimSpace(id)] = Node{Left: l, Right: r}
	}
	return n, nil
}

type walkState struct {
	Node string
	Step int // index into Instructions
}

// Steps returns how many steps it takes from start to the first node for
// which goal is true. Instructions repeat as needed.
func (n *Network) Steps(start string, goal func(string) bool) (int, error) {
	if _, ok := n.Nodes[start]; !ok {
		return 0, aoc.Malformedf(start, "unknown start node")
	}
	seen := aoc.NewCycleDetector[walkState]()
	cur := start
	for steps := 0; ; steps++ {
		if goal(cur) {
			return steps, nil
		}
		i := steps % len(n.Instructions)
		if first, looped := seen.Visit(steps, walkState{cur, i}); looped {
			return 0, fmt.Errorf("from %s: back at %s after %d steps (first seen at step %d): %w", start, cur, steps, first, ErrUnreachable)
		}
		node, ok := n.Nodes[cur]
		if !ok {
			return 0, aoc.Malformedf(cur, "unknown node")
		}
		if n.Instructions[i] == 'L' {
			cur = node.Left
		} else {
			cur = node.Right
		}
	}
}

// Starts returns the nodes ending in A, sorted.
func (n *Network) Starts() []string {
	var out []string
	for _, id := range maps.Keys(n.Nodes) {
		if strings.HasSuffix(id, "A") {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// GhostSteps returns the number of steps after which walks from every start
// are all on a goal at once: the LCM of each walk's length.
func (n *Network) GhostSteps(starts []string) (int, error) {
	if len(starts) == 0 {
		return 0, aoc.Malformedf("", "no start nodes")
	}
	isGoal := func(id string) bool { return strings.HasSuffix(id, "Z") }
	cycles := make([]int, len(starts))
	for i, s := range starts {
		c, err := n.Steps(s, isGoal)
		if err != nil {
			return 0, err
		}
		cycles[i] = c
	}
	log.Debug().Strs("starts", starts).Ints("cycles", cycles).Msg("cycle lengths")
	return aoc.LCM(cycles...), nil
}

/*
want=6

LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
*/
func Part1(lines []string) (int, error) {
	n, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return n.Steps("AAA", func(id string) bool { return id == "ZZZ" })
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func Part2(lines []string) (int, error) {
	n, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return n.GhostSteps(n.Starts())
}
