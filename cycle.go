package aoc

import "tailscale.com/util/deephash"

// CycleDetector remembers states by their hash and the step at which each
// was first seen.
type CycleDetector[T any] struct {
	hash func(*T) deephash.Sum
	seen map[deephash.Sum]int
}

func NewCycleDetector[T any]() *CycleDetector[T] {
	return &CycleDetector[T]{
		hash: deephash.HasherForType[T](),
		seen: make(map[deephash.Sum]int),
	}
}

// Visit records state at step. If state was seen before, it returns the
// step it was first seen at and true.
func (c *CycleDetector[T]) Visit(step int, state T) (first int, looped bool) {
	h := c.hash(&state)
	if first, ok := c.seen[h]; ok {
		return first, true
	}
	c.seen[h] = step
	return step, false
}

// Len returns the number of distinct states seen.
func (c *CycleDetector[T]) Len() int {
	return len(c.seen)
}
