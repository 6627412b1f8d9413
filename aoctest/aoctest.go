// Package aoctest checks puzzle solvers against their samples.
package aoctest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maisem/aoc2023"
)

// Sample solves the sample in the doc comment of the function name in src
// and fails t unless the answer matches.
func Sample(t testing.TB, src []byte, name string, solve func([]string) (int, error)) {
	t.Helper()
	s, err := aoc.SampleFor(src, name)
	require.NoError(t, err)
	got, err := solve(s.Lines())
	require.NoError(t, err, "solving sample of %s", name)
	require.Equal(t, s.Want, fmt.Sprint(got), "sample of %s", name)
}
