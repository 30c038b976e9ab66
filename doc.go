// Package sieve generates the sequence of prime numbers on demand using
// an incremental sieve.
//
// Unlike a classic bounded sieve, which lays out all primes below a fixed
// N in an array, an incremental sieve has no upper bound: each generator
// is a lazy state machine that can be pulled forever, producing primes in
// strictly increasing order starting at 2.
//
// # Architecture
//
// The design composes three small pieces:
//
// Filters: every prime the generator has emitted is tracked by a
// [Filter], an arithmetic progression of its multiples starting at the
// prime's square. A candidate integer is composite exactly when some
// filter's progression lands on it.
//
// Deferred activation: a freshly created filter is useless until the
// candidate value reaches its base squared (every smaller multiple is
// covered by a smaller prime's filter). Filters therefore wait in a
// pending queue ordered by activation point and join the active set only
// when needed. Because activation points are squares of distinct primes,
// at most one pending filter can activate per candidate, so each step
// inspects only the queue front. This is the dominant optimization over
// testing every known prime by division.
//
// Wheel: instead of testing every integer, a [Wheel] supplies only the
// candidates coprime to a small fixed basis (2·3·5·7 by default),
// skipping about 77% of all integers up front. The basis primes
// themselves are emitted separately.
//
// # Implementations
//
// Two generators share the same output contract and differ only in how
// the active set is scanned:
//
// [Sieve] keeps active filters in a plain slice and consults all of them
// per candidate. Simplest, and fine for smaller ranges.
//
// [HeapSieve] keeps active filters in a min-heap keyed by each filter's
// next multiple, touching only the filters at or below the current
// candidate. This is the scalable choice: a filter of base p is advanced
// only about n/p times over a run up to n.
//
// Use [New] for the recommended configuration (heap plus default wheel):
//
//	gen := sieve.New()
//	for range 10 {
//		p, _ := gen.Next()
//		fmt.Println(p)
//	}
//
// [NewSieve], [NewSieveWheel], [NewHeapSieve], and [NewHeapSieveWheel]
// give explicit control over strategy and candidate source. All
// configurations produce identical sequences.
//
// # Consuming the sequence
//
// Every generator satisfies [Sequence]: a single Next method returning
// the next prime. [First] and [Nth] cover the common prefix and
// skip-then-take patterns. A generator cannot be rewound; to start over,
// construct a fresh one.
//
// [Digest] fingerprints a run with xxh3 so two long sequences can be
// compared without storing either.
//
// # Errors
//
// The only failure mode is uint64 overflow (a filter's starting square
// or the wheel's running value exceeding the representable range),
// reported as [ErrOverflow] from Next. Everything else is a total
// function.
//
// # Memory
//
// A generator retains one filter per prime emitted, forever: all of them
// are needed to detect future composites. Memory grows linearly with the
// count of primes discovered so far.
//
// # Thread safety
//
// Generators are not thread-safe. Each instance owns its filters and
// wheel exclusively; share one across goroutines only with external
// synchronization.
package sieve
