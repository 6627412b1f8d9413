// Package day02 solves "Cube Conundrum".
package day02

import (
	_ "embed"
	"strings"

	"github.com/maisem/aoc2023"
)

//go:embed day02.go
var Source []byte

// Cubes counts cubes by colour.
type Cubes struct {
	Red, Green, Blue int
}

// Fits reports whether c could be drawn from a bag holding bag.
func (c Cubes) Fits(bag Cubes) bool {
	return c.Red <= bag.Red && c.Green <= bag.Green && c.Blue <= bag.Blue
}

// Max returns the per-colour maximum of c and o.
func (c Cubes) Max(o Cubes) Cubes {
	return Cubes{max(c.Red, o.Red), max(c.Green, o.Green), max(c.Blue, o.Blue)}
}

func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

type Game struct {
	ID    int
	Draws []Cubes
}

// ParseGame parses a line like "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line string) (Game, error) {
	head, rest, err := aoc.Cut(line, ":")
	if err != nil {
		return Game{}, err
	}
	id, err := aoc.CutPrefix(head, "Game ")
	if err != nil {
		return Game{}, err
	}
	g := Game{}
	if g.ID, err = aoc.Int(id); err != nil {
		return Game{}, err
	}
	for _, draw := range strings.Split(rest, ";") {
		var c Cubes
		for _, ball := range strings.Split(draw, ",") {
			n, colour, ok := strings.Cut(strings.TrimSpace(ball), " ")
			if !ok {
				return Game{}, aoc.Malformedf(ball, "want <count> <colour>")
			}
			count, err := aoc.Int(n)
			if err != nil {
				return Game{}, err
			}
			switch colour {
			case "red":
				c.Red = count
			case "green":
				c.Green = count
			case "blue":
				c.Blue = count
			default:
				return Game{}, aoc.Malformedf(ball, "unknown colour %q", colour)
			}
		}
		g.Draws = append(g.Draws, c)
	}
	return g, nil
}

func parse(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, aoc.AtLine(err, i)
		}
		games = append(games, g)
	}
	return games, nil
}

var bag = Cubes{Red: 12, Green: 13, Blue: 14}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func Part1(lines []string) (int, error) {
	games, err := parse(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
games:
	for _, g := range games {
		for _, d := range g.Draws {
			if !d.Fits(bag) {
				continue games
			}
		}
		sum += g.ID
	}
	return sum, nil
}

// want=2286
func Part2(lines []string) (int, error) {
	games, err := parse(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		var least Cubes
		for _, d := range g.Draws {
			least = least.Max(d)
		}
		sum += least.Power()
	}
	return sum, nil
}
