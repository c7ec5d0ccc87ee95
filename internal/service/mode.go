package service

import (
	"cmp"
	"slices"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// counter tallies values and remembers the order they were first seen in.
type counter[T comparable] struct {
	counts map[T]int
	order  []T
}

func newCounter[T comparable]() *counter[T] {
	return &counter[T]{counts: make(map[T]int)}
}

func (c *counter[T]) add(v T) {
	if _, seen := c.counts[v]; !seen {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

// modes returns every value whose count equals the maximum, in first-seen order.
func (c *counter[T]) modes() []T {
	best := 0
	for _, n := range c.counts {
		best = max(best, n)
	}
	var out []T
	for _, v := range c.order {
		if c.counts[v] == best {
			out = append(out, v)
		}
	}
	return out
}

// Mode returns all values that occur with the highest frequency, sorted
// ascending. Ties are never broken: two values sharing the top count are
// both returned. An empty input yields nil.
func Mode[T cmp.Ordered](values []T) []T {
	c := newCounter[T]()
	for _, v := range values {
		c.add(v)
	}
	out := c.modes()
	slices.Sort(out)
	return out
}

// ValueCounts counts each distinct non-empty value, ordered by descending
// count with ties kept in first-seen order.
func ValueCounts(values []string) []domain.ValueCount {
	c := newCounter[string]()
	for _, v := range values {
		if v == "" {
			continue
		}
		c.add(v)
	}
	out := make([]domain.ValueCount, len(c.order))
	for i, v := range c.order {
		out[i] = domain.ValueCount{Value: v, Count: c.counts[v]}
	}
	slices.SortStableFunc(out, func(a, b domain.ValueCount) int { return cmp.Compare(b.Count, a.Count) })
	return out
}
