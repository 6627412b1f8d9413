package aoc

import (
	"path/filepath"
	"strconv"
)

// DefaultInputDir is the directory, relative to the working directory, that
// holds the puzzle inputs.
const DefaultInputDir = "inputs"

// DefaultInputFile is used when no file name is given.
const DefaultInputFile = "input.txt"

// InputPath returns the path of file for the given day:
// inputs/<day>/<file>. An empty file means input.txt.
// The file is not required to exist.
func InputPath(day int, file string) string {
	return inputPath(DefaultInputDir, day, file)
}

// PartInputPath is like InputPath but for inputs that differ per part:
// inputs/<day>/<part>/<file>.
func PartInputPath(day, part int, file string) string {
	return filepath.Join(DefaultInputDir, strconv.Itoa(day), strconv.Itoa(part), Or(file, DefaultInputFile))
}

func inputPath(root string, day int, file string) string {
	return filepath.Join(Or(root, DefaultInputDir), strconv.Itoa(day), Or(file, DefaultInputFile))
}

// Or returns the first non-zero value in list.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}
