package aoc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMalformedError(t *testing.T) {
	err := AtLine(Malformedf("Game x", "bad id"), 2)
	assert.EqualError(t, err, `malformed input on line 3: bad id ("Game x")`)
	assert.ErrorIs(t, fmt.Errorf("day 2: %w", err), ErrMalformed)

	// AtLine keeps the innermost line number.
	err = AtLine(err, 9)
	var me *MalformedError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 3, me.Line)

	// Non-malformed errors pass through.
	other := errors.New("boom")
	assert.Equal(t, other, AtLine(other, 1))
	assert.NotErrorIs(t, other, ErrMalformed)
}

func TestParseHelpers(t *testing.T) {
	n, err := Int(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	v, err := Fields("  1 -2\t3 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 3}, v)

	_, err = Fields("1 b")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = CutPrefix("Card 1", "Game")
	assert.ErrorIs(t, err, ErrMalformed)

	a, b, err := Cut("x = y", " = ")
	require.NoError(t, err)
	assert.Equal(t, "x", a)
	assert.Equal(t, "y", b)
	_, _, err = Cut("x y", " = ")
	assert.ErrorIs(t, err, ErrMalformed)
}
