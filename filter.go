package sieve

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when an internal computation would exceed the
// range of uint64. It is unrecoverable: the requested range of primes is
// wider than the integer representation.
var ErrOverflow = errors.New("sieve: value overflows uint64")

// Filter tracks the multiples of a single prime as an arithmetic
// progression. A filter is created when its base is confirmed prime and
// lives for the remainder of the generator's life; its state starts at
// base² (every smaller multiple has a smaller prime factor and is covered
// by an earlier filter) and only ever moves forward.
type Filter struct {
	base  uint64
	state uint64
}

// NewFilter returns a filter for the multiples of base, positioned at
// base². It fails with ErrOverflow if base² is not representable.
func NewFilter(base uint64) (*Filter, error) {
	if base != 0 && base > math.MaxUint64/base {
		return nil, fmt.Errorf("%w: filter base %d", ErrOverflow, base)
	}
	return &Filter{base: base, state: base * base}, nil
}

// Advance moves the filter to its next multiple and returns it.
func (f *Filter) Advance() uint64 {
	f.state += f.base
	return f.state
}

// Test reports whether n is a multiple of the filter's base, catching the
// filter up to n first. State never moves past the first multiple >= n,
// so testing with non-decreasing values never revisits passed multiples,
// and testing with a value below the current state leaves it untouched.
func (f *Filter) Test(n uint64) bool {
	for f.state < n {
		f.state += f.base
	}
	return f.state == n
}

// Base returns the prime whose multiples the filter tracks.
func (f *Filter) Base() uint64 { return f.base }

// State returns the next multiple the filter will be asked about.
func (f *Filter) State() uint64 { return f.state }
