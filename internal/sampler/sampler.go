// Package sampler provides the uniform random primitives every problem
// generator draws its parameters from.
package sampler

import (
	"errors"
	"math"
	"math/rand/v2"
)

// ErrEmptyInput is returned when a choice is requested from an empty list.
var ErrEmptyInput = errors.New("sampler: choice from empty input")

// Source yields uniform floats in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// globalSource draws from math/rand/v2's top-level generator, which is safe
// for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Sampler draws random parameters from a Source.
// A Sampler is as safe for concurrent use as its Source.
type Sampler struct {
	src Source
}

// New returns a Sampler over src.
func New(src Source) *Sampler {
	return &Sampler{src: src}
}

// Default returns a Sampler backed by the process-wide generator.
// It may be shared across goroutines.
func Default() *Sampler {
	return &Sampler{src: globalSource{}}
}

// NewSeeded returns a reproducible Sampler. It must not be shared across
// goroutines.
func NewSeeded(seed uint64) *Sampler {
	return &Sampler{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Int returns a uniform integer in [min, max]. The bounds are swapped if
// given in reverse.
func (s *Sampler) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	n := int(math.Floor(s.src.Float64() * float64(max-min+1)))
	if n > max-min {
		n = max - min
	}
	return min + n
}

// Float returns a uniform float in [min, max] rounded to decimals places.
func (s *Sampler) Float(min, max float64, decimals int) float64 {
	if max < min {
		min, max = max, min
	}
	return Round(s.src.Float64()*(max-min)+min, decimals)
}

// Bool returns true with probability one half.
func (s *Sampler) Bool() bool {
	return s.src.Float64() < 0.5
}

// Choice returns a uniformly selected element of items.
func Choice[T any](s *Sampler, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyInput
	}
	return items[s.Int(0, len(items)-1)], nil
}

// MustChoice is like Choice but panics on empty input. Generators use it for
// their fixed option lists, where an empty list is a programming error.
func MustChoice[T any](s *Sampler, items []T) T {
	v, err := Choice(s, items)
	if err != nil {
		panic(err)
	}
	return v
}

// Round rounds v half away from zero to decimals places.
func Round(v float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return v
	}
	return r
}
