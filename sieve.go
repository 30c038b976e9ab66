package sieve

import "math"

// Sequence is a lazy, unbounded stream of primes in strictly increasing
// order, starting at 2. A Sequence never terminates on its own; consumers
// take a prefix, skip a count, or pull forever. Restarting means
// constructing a fresh generator; there is no rewind.
type Sequence interface {
	// Next returns the next prime. It fails only when internal arithmetic
	// would overflow uint64, which is fatal for the sequence.
	Next() (uint64, error)
}

// source produces successive candidate integers for primality testing.
// Both implementations are strictly increasing; the wheel additionally
// guarantees it visits the square of every prime it emits, which the
// pending-queue activation step relies on.
type source interface {
	Next() (uint64, error)
}

// unitSource counts upward one integer at a time.
type unitSource struct {
	value uint64
}

func (s *unitSource) Next() (uint64, error) {
	if s.value == math.MaxUint64 {
		return 0, ErrOverflow
	}
	s.value++
	return s.value, nil
}

// Sieve is the linear-scan prime generator. Active filters live in an
// unordered slice and every one of them is consulted per candidate, so
// the per-candidate cost grows with the number of primes found below the
// square root of the candidate. Simple and fine for smaller ranges; use
// HeapSieve beyond that.
type Sieve struct {
	src     source
	preseed []uint64 // primes the wheel skips, emitted before any candidate
	active  []*Filter
	pending []*Filter // ascending activation point; only the front can activate
	count   uint64
	current uint64
}

// NewSieve returns a linear-scan generator that tests every integer.
func NewSieve() *Sieve {
	return &Sieve{src: &unitSource{value: 1}}
}

// NewSieveWheel returns a linear-scan generator drawing candidates from
// w. The wheel must be freshly constructed and not shared with another
// generator.
func NewSieveWheel(w *Wheel) *Sieve {
	return &Sieve{src: w, preseed: w.Basis()}
}

// Next returns the next prime.
func (s *Sieve) Next() (uint64, error) {
	if int(s.count) < len(s.preseed) {
		p := s.preseed[s.count]
		s.count++
		s.current = p
		return p, nil
	}
	for {
		n, err := s.src.Next()
		if err != nil {
			return 0, err
		}
		if s.composite(n) {
			continue
		}
		f, err := NewFilter(n)
		if err != nil {
			return 0, err
		}
		s.pending = append(s.pending, f)
		s.count++
		s.current = n
		return n, nil
	}
}

// composite decides whether n is divisible by any known prime. It first
// checks whether the front of the pending queue activates at n: a pending
// filter's state is still its base², and bases are distinct primes, so at
// most one filter can activate per candidate and only the front needs
// looking at. Activation means n is that square, hence composite.
func (s *Sieve) composite(n uint64) bool {
	if len(s.pending) > 0 && s.pending[0].State() <= n {
		f := s.pending[0]
		s.pending = s.pending[1:]
		s.active = append(s.active, f)
		if f.Test(n) {
			return true
		}
	}
	for _, f := range s.active {
		if f.Test(n) {
			return true
		}
	}
	return false
}

// Count returns the number of primes emitted so far.
func (s *Sieve) Count() uint64 { return s.count }

// Current returns the last prime emitted, or 0 before the first Next.
func (s *Sieve) Current() uint64 { return s.current }

// First returns the first k primes from s.
func First(s Sequence, k int) ([]uint64, error) {
	primes := make([]uint64, 0, max(k, 0))
	for range k {
		p, err := s.Next()
		if err != nil {
			return primes, err
		}
		primes = append(primes, p)
	}
	return primes, nil
}

// Nth returns the prime at 0-indexed position n, advancing s past it.
func Nth(s Sequence, n int) (uint64, error) {
	for ; n > 0; n-- {
		if _, err := s.Next(); err != nil {
			return 0, err
		}
	}
	return s.Next()
}
