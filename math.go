package aoc

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Digit returns the value of the decimal digit r.
func Digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0,
// larger root first when a > 0. ok is false if there are no real roots.
func SolveQuad[T Number](a, b, c T) (r1, r2 float64, ok bool) {
	fa, fb, fc := float64(a), float64(b), float64(c)
	d := fb*fb - 4*fa*fc
	if d < 0 {
		return 0, 0, false
	}
	d = math.Sqrt(d)
	a2 := 2 * fa
	return (-fb + d) / a2, (-fb - d) / a2, true
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := integers[0]
	for _, n := range integers[1:] {
		result = result / GCD(result, n) * n
	}
	return result
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, 1 for none.
func Product[T Number](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Differences returns the pairwise differences x[i]-x[i-1].
func Differences[T Number](x []T) (diffs []T, allZero bool) {
	diffs = make([]T, 0, len(x))
	allZero = true
	for i := 1; i < len(x); i++ {
		d := x[i] - x[i-1]
		diffs = append(diffs, d)
		if d != 0 {
			allZero = false
		}
	}
	return diffs, allZero
}

// Extrapolate returns the next value in the sequence x.
// If forward is true, it extrapolates the next value, otherwise
// it extrapolates the previous value in the sequence.
// x must not be empty.
func Extrapolate[T Number](x []T, forward bool) (y T) {
	diffs, allZero := Differences(x)
	ix := 0
	if forward {
		ix = len(x) - 1
	}
	if allZero {
		return x[ix]
	}
	val := x[ix]
	diff := Extrapolate(diffs, forward)
	if forward {
		return val + diff
	}
	return val - diff
}

// Degree returns how many times x has to be differenced before it becomes
// constant, which is the number of recursive steps Extrapolate takes.
// For a polynomial of degree d sampled at more than d+1 points it is d.
func Degree[T Number](x []T) int {
	n := 0
	for {
		diffs, allZero := Differences(x)
		if allZero {
			return n
		}
		x = diffs
		n++
	}
}
