package sieve

import "container/heap"

// filterHeap is a min-heap of active filters keyed by state, so the
// filter with the smallest next multiple is always at the root.
type filterHeap []*Filter

func (h filterHeap) Len() int           { return len(h) }
func (h filterHeap) Less(i, j int) bool { return h[i].state < h[j].state }
func (h filterHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *filterHeap) Push(x any) {
	*h = append(*h, x.(*Filter))
}

func (h *filterHeap) Pop() any {
	old := *h
	n := len(old)
	f := old[n-1]
	old[n-1] = nil // avoid memory leak
	*h = old[:n-1]
	return f
}

// HeapSieve is the priority-ordered prime generator. Active filters sit
// in a min-heap keyed by their next multiple, so each candidate touches
// only the filters whose multiples are at or below it instead of the
// whole active set. Over the generator's lifetime a filter of base p is
// advanced about candidate/p times in total, which keeps long runs cheap.
type HeapSieve struct {
	src     source
	preseed []uint64 // primes the wheel skips, emitted before any candidate
	active  filterHeap
	pending []*Filter // ascending activation point; only the front can activate
	count   uint64
	current uint64
}

// New returns the recommended generator: the heap-backed sieve drawing
// candidates from the default 2·3·5·7 wheel.
func New() *HeapSieve {
	return NewHeapSieveWheel(DefaultWheel())
}

// NewHeapSieve returns a heap-backed generator that tests every integer.
func NewHeapSieve() *HeapSieve {
	return &HeapSieve{src: &unitSource{value: 1}}
}

// NewHeapSieveWheel returns a heap-backed generator drawing candidates
// from w. The wheel must be freshly constructed and not shared with
// another generator.
func NewHeapSieveWheel(w *Wheel) *HeapSieve {
	return &HeapSieve{src: w, preseed: w.Basis()}
}

// Next returns the next prime.
func (s *HeapSieve) Next() (uint64, error) {
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

// composite decides whether n is divisible by any known prime. Filters
// below n are advanced and re-sunk one at a time; a tie at the root means
// a match, and no further entries need draining. Once the root is past n,
// the pending queue front is checked for activation exactly as in Sieve.
func (s *HeapSieve) composite(n uint64) bool {
	for len(s.active) > 0 {
		f := s.active[0]
		if f.state > n {
			break
		}
		if f.state == n {
			// Later multiples stay put until a larger candidate arrives.
			return true
		}
		f.Advance()
		heap.Fix(&s.active, 0)
	}
	if len(s.pending) > 0 && s.pending[0].State() <= n {
		f := s.pending[0]
		s.pending = s.pending[1:]
		match := f.Test(n)
		heap.Push(&s.active, f)
		if match {
			return true
		}
	}
	return false
}

// Count returns the number of primes emitted so far.
func (s *HeapSieve) Count() uint64 { return s.count }

// Current returns the last prime emitted, or 0 before the first Next.
func (s *HeapSieve) Current() uint64 { return s.current }
