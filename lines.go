package aoc

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"unicode/utf8"
)

// Lines is a forward-only reader over the lines of a file.
type Lines struct {
	f    io.ReadCloser
	used bool
}

// ReadLines opens path for line-by-line reading.
// Lines must be consumed with All, or closed with Close.
func ReadLines(path string) (*Lines, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Lines{f: f}, nil
}

// NewLines returns a Lines reading from r.
func NewLines(r io.ReadCloser) *Lines {
	return &Lines{f: r}
}

// All yields each line without its trailing newline. A line that is not
// valid UTF-8 is yielded with a non-nil error; the caller decides whether to
// keep going. A read failure is yielded last. The underlying file is closed
// when iteration ends. All can only be ranged over once.
func (l *Lines) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if l.used || l.f == nil {
			yield("", fmt.Errorf("lines already consumed"))
			return
		}
		l.used = true
		defer l.Close()
		s := bufio.NewScanner(l.f)
		s.Buffer(make([]byte, 0, 64*1024), 1<<20)
		n := 0
		for s.Scan() {
			n++
			line := s.Text()
			var err error
			if !utf8.ValidString(line) {
				err = fmt.Errorf("line %d: invalid UTF-8", n)
			}
			if !yield(line, err) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield("", fmt.Errorf("after line %d: %w", n, err))
		}
	}
}

// Close closes the underlying file. It is safe to call more than once.
func (l *Lines) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

// LoadLines reads every line of path into memory. It stops at the first
// line that fails to read.
func LoadLines(path string) ([]string, error) {
	r, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return r.Collect()
}

// Collect reads the remaining lines into a slice.
func (l *Lines) Collect() ([]string, error) {
	var out []string
	for line, err := range l.All() {
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, nil
}
