package aoc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLCM(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{7}, 7},
		{[]int{2, 3}, 6},
		{[]int{4, 6}, 12},
		{[]int{2, 3, 4}, 12},
		{[]int{12, 18, 30}, 180},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LCM(tt.in...), "LCM(%v)", tt.in)
	}
}

func TestLCMOrderInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for range 100 {
		in := make([]int, 1+r.Intn(5))
		for i := range in {
			in[i] = 1 + r.Intn(500)
		}
		want := LCM(in...)
		r.Shuffle(len(in), func(i, j int) { in[i], in[j] = in[j], in[i] })
		require.Equal(t, want, LCM(in...), "%v", in)
		for _, v := range in {
			require.Zero(t, want%v)
		}
	}
}

func TestSolveQuad(t *testing.T) {
	r1, r2, ok := SolveQuad(1, -5, 6)
	require.True(t, ok)
	assert.InDelta(t, 3, r1, 1e-9)
	assert.InDelta(t, 2, r2, 1e-9)

	_, _, ok = SolveQuad(1, 0, 1)
	assert.False(t, ok)
}

// poly evaluates the polynomial with the given coefficients at x.
func poly(coef []int, x int) int {
	v := 0
	for i := len(coef) - 1; i >= 0; i-- {
		v = v*x + coef[i]
	}
	return v
}

func TestDegree(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for d := 0; d <= 6; d++ {
		coef := make([]int, d+1)
		for i := range coef {
			coef[i] = r.Intn(21) - 10
		}
		coef[d] = 1 + r.Intn(5) // leading coefficient non-zero
		seq := make([]int, d+4)
		for x := range seq {
			seq[x] = poly(coef, x)
		}
		assert.Equal(t, d, Degree(seq), "coef %v", coef)
		assert.Equal(t, poly(coef, len(seq)), Extrapolate(seq, true), "next, coef %v", coef)
		assert.Equal(t, poly(coef, -1), Extrapolate(seq, false), "prev, coef %v", coef)
	}
}

func TestDegreeAllZeroAfter(t *testing.T) {
	x := []int{1, 4, 9, 16, 25, 36}
	for range Degree(x) {
		x, _ = Differences(x)
	}
	_, allZero := Differences(x)
	assert.True(t, allZero, "row %v", x)
}

func TestSumProduct(t *testing.T) {
	assert.Equal(t, 10, Sum(1, 2, 3, 4))
	assert.Equal(t, 24, Product(1, 2, 3, 4))
	assert.Equal(t, 1, Product[int]())
	assert.Equal(t, 3, AbsDiff(2, 5))
}
