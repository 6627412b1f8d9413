// Package day01 solves "Trebuchet?!": calibration values hidden in lines of
// text.
package day01

import (
	_ "embed"
	"strings"

	"github.com/maisem/aoc2023"
)

//go:embed day01.go
var Source []byte

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func Part1(lines []string) (int, error) {
	return sum(lines, Digits)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func Part2(lines []string) (int, error) {
	return sum(lines, SpelledDigits)
}

func sum(lines []string, digits func(string) []int) (int, error) {
	total := 0
	for i, line := range lines {
		v, ok := Calibration(digits(line))
		if !ok {
			return 0, aoc.AtLine(aoc.Malformedf(line, "cannot find digits"), i)
		}
		total += v
	}
	return total, nil
}

// Calibration combines the first and last digit into a two-digit number.
// It reports false if there are no digits.
func Calibration(digits []int) (int, bool) {
	if len(digits) == 0 {
		return 0, false
	}
	return digits[0]*10 + digits[len(digits)-1], true
}

// Digits returns the digit characters of line, in order.
func Digits(line string) []int {
	var out []int
	for _, r := range line {
		if d, ok := aoc.Digit(r); ok {
			out = append(out, d)
		}
	}
	return out
}

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// SpelledDigits is like Digits but also counts the words one through nine.
// Words may overlap: "eightwo" holds both 8 and 2.
func SpelledDigits(line string) []int {
	var out []int
	for i, r := range line {
		if d, ok := aoc.Digit(r); ok {
			out = append(out, d)
			continue
		}
		for w, word := range words {
			if strings.HasPrefix(line[i:], word) {
				out = append(out, w+1)
				break
			}
		}
	}
	return out
}
