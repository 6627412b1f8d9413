package aoc

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every error caused by input that does not
// follow the puzzle's format.
var ErrMalformed = errors.New("malformed input")

// MalformedError describes a piece of input that could not be parsed.
type MalformedError struct {
	Line int    // 1-based; 0 if not tied to a single line
	Text string // offending text
	Msg  string
	Err  error // underlying cause, if any
}

func (e *MalformedError) Error() string {
	s := "malformed input"
	if e.Line > 0 {
		s += fmt.Sprintf(" on line %d", e.Line)
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Text != "" {
		s += fmt.Sprintf(" (%q)", e.Text)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *MalformedError) Unwrap() error { return e.Err }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

// Malformedf returns a *MalformedError for text with a formatted message.
func Malformedf(text, format string, args ...any) error {
	return &MalformedError{Text: text, Msg: fmt.Sprintf(format, args...)}
}

// AtLine sets the line number on err if it is a *MalformedError without
// one. Line numbers are 0-based indexes, as passed by range loops.
func AtLine(err error, idx int) error {
	var me *MalformedError
	if errors.As(err, &me) && me.Line == 0 {
		me.Line = idx + 1
	}
	return err
}
