package synth

import (
	"fmt"
	"math"
	"sort"
)

// Categorical draws values from a fixed domain with probability proportional
// to their weights. Weights need not sum to one.
type Categorical[T any] struct {
	values     []T
	cumulative []float64
	total      float64
}

// NewCategorical validates values/weights and precomputes the cumulative
// distribution.
func NewCategorical[T any](values []T, weights []float64) (*Categorical[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("categorical: empty domain: %w", ErrConfiguration)
	}
	if len(values) != len(weights) {
		return nil, fmt.Errorf("categorical: %d values but %d weights: %w",
			len(values), len(weights), ErrConfiguration)
	}

	cumulative := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("categorical: weight[%d]=%v is not a finite non-negative number: %w",
				i, w, ErrConfiguration)
		}
		total += w
		cumulative[i] = total
	}
	if total == 0 {
		return nil, fmt.Errorf("categorical: all weights are zero: %w", ErrConfiguration)
	}

	vs := make([]T, len(values))
	copy(vs, values)
	return &Categorical[T]{values: vs, cumulative: cumulative, total: total}, nil
}

// MustCategorical is NewCategorical for fixed package-level tables; it panics
// on invalid input.
func MustCategorical[T any](values []T, weights []float64) *Categorical[T] {
	c, err := NewCategorical(values, weights)
	if err != nil {
		panic(err)
	}
	return c
}

// Uniform builds an equal-weight Categorical over values.
func Uniform[T any](values []T) *Categorical[T] {
	weights := make([]float64, len(values))
	for i := range weights {
		weights[i] = 1
	}
	return MustCategorical(values, weights)
}

// Draw returns one value.
func (c *Categorical[T]) Draw(src *Source) T {
	u := src.Float64() * c.total
	i := sort.Search(len(c.cumulative), func(i int) bool { return u < c.cumulative[i] })
	if i == len(c.cumulative) {
		// u landed on the top edge through float rounding
		i = len(c.cumulative) - 1
	}
	// zero-weight categories share their cumulative value with the previous
	// entry and are never selected by the strict comparison above
	return c.values[i]
}

// DrawN returns k independent draws (with replacement).
func (c *Categorical[T]) DrawN(src *Source, k int) []T {
	out := make([]T, k)
	for i := range out {
		out[i] = c.Draw(src)
	}
	return out
}

// Values returns a copy of the domain in declaration order.
func (c *Categorical[T]) Values() []T {
	vs := make([]T, len(c.values))
	copy(vs, c.values)
	return vs
}

// Probability returns the normalized weight of the i-th value.
func (c *Categorical[T]) Probability(i int) float64 {
	prev := 0.0
	if i > 0 {
		prev = c.cumulative[i-1]
	}
	return (c.cumulative[i] - prev) / c.total
}
