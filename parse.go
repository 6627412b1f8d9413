package aoc

import (
	"strconv"
	"strings"
)

// Int parses s, ignoring surrounding whitespace.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &MalformedError{Text: s, Msg: "not a number"}
	}
	return n, nil
}

// Ints parses each of s.
func Ints(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := Int(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Fields parses the whitespace separated integers in s.
func Fields(s string) ([]int, error) {
	return Ints(strings.Fields(s)...)
}

// CutPrefix is strings.CutPrefix that reports a missing prefix as malformed
// input.
func CutPrefix(s, prefix string) (string, error) {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", Malformedf(s, "missing prefix %q", prefix)
	}
	return s1, nil
}

// Cut is strings.Cut that reports a missing separator as malformed input.
func Cut(s, sep string) (before, after string, err error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", Malformedf(s, "missing %q", sep)
	}
	return before, after, nil
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
