package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Sample is a published example for a puzzle part, written in the solve
// function's doc comment as
//
//	/*
//	want=142
//
//	1abc2
//	pqr3stu8vwx
//	*/
//
// A comment holding only "want=..." reuses the input of the previous
// function in the file.
type Sample struct {
	Input string
	Want  string
}

// Lines returns the sample input split into lines.
func (s Sample) Lines() []string {
	if s.Input == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s.Input, "\n"), "\n")
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return Sample{
			Want:  strings.TrimSpace(m[1]),
			Input: m[2],
		}, true
	}
	return Sample{}, false
}

// Samples returns the samples found in the doc comments of the functions
// declared in src, keyed by function name.
func Samples(src []byte) (map[string]Sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.Input = Or(s.Input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.Input
				break
			}
		}
	}
	return samples, nil
}

// SampleFor returns the sample of the function name in src.
func SampleFor(src []byte, name string) (Sample, error) {
	samples, err := Samples(src)
	if err != nil {
		return Sample{}, err
	}
	s, ok := samples[name]
	if !ok {
		names := maps.Keys(samples)
		slices.Sort(names)
		return Sample{}, fmt.Errorf("no sample found for %v (have %v)", name, names)
	}
	return s, nil
}
