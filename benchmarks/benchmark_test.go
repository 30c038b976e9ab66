package benchmarks

import (
	"testing"

	sieve "github.com/cscherrer/prime-sieve"
)

const (
	benchPrefix   = 10_000
	benchNthIndex = 50_000
)

// ============================================================================
// Steady-state Next Benchmarks
// ============================================================================

// benchNext measures the amortized cost of one Next call after the
// generator has warmed past the first benchPrefix primes.
func benchNext(b *testing.B, gen sieve.Sequence) {
	b.Helper()
	if _, err := sieve.First(gen, benchPrefix); err != nil {
		b.Fatalf("warmup failed: %v", err)
	}
	b.ResetTimer()
	for range b.N {
		if _, err := gen.Next(); err != nil {
			b.Fatalf("Next failed: %v", err)
		}
	}
}

func BenchmarkNext_Linear(b *testing.B) {
	benchNext(b, sieve.NewSieve())
}

func BenchmarkNext_LinearWheel(b *testing.B) {
	benchNext(b, sieve.NewSieveWheel(sieve.DefaultWheel()))
}

func BenchmarkNext_Heap(b *testing.B) {
	benchNext(b, sieve.NewHeapSieve())
}

func BenchmarkNext_HeapWheel(b *testing.B) {
	benchNext(b, sieve.New())
}

func BenchmarkNext_TrialDivision(b *testing.B) {
	gen := newTrialDivision()
	for range benchPrefix {
		gen.next()
	}
	b.ResetTimer()
	for range b.N {
		gen.next()
	}
}

// ============================================================================
// Whole-run Benchmarks
// ============================================================================

func benchNth(b *testing.B, newGen func() sieve.Sequence) {
	b.Helper()
	for range b.N {
		if _, err := sieve.Nth(newGen(), benchNthIndex); err != nil {
			b.Fatalf("Nth failed: %v", err)
		}
	}
}

func BenchmarkNth50k_Linear(b *testing.B) {
	benchNth(b, func() sieve.Sequence { return sieve.NewSieve() })
}

func BenchmarkNth50k_LinearWheel(b *testing.B) {
	benchNth(b, func() sieve.Sequence { return sieve.NewSieveWheel(sieve.DefaultWheel()) })
}

func BenchmarkNth50k_Heap(b *testing.B) {
	benchNth(b, func() sieve.Sequence { return sieve.NewHeapSieve() })
}

func BenchmarkNth50k_HeapWheel(b *testing.B) {
	benchNth(b, func() sieve.Sequence { return sieve.New() })
}

func BenchmarkNth50k_TrialDivision(b *testing.B) {
	for range b.N {
		gen := newTrialDivision()
		var p uint64
		for range benchNthIndex + 1 {
			p = gen.next()
		}
		_ = p
	}
}

// ============================================================================
// Baseline: keep all primes and trial-divide each candidate
// ============================================================================

type trialDivision struct {
	primes []uint64
	n      uint64
}

func newTrialDivision() *trialDivision {
	return &trialDivision{n: 1}
}

func (t *trialDivision) next() uint64 {
candidates:
	for {
		t.n++
		for _, p := range t.primes {
			if p*p > t.n {
				break
			}
			if t.n%p == 0 {
				continue candidates
			}
		}
		t.primes = append(t.primes, t.n)
		return t.n
	}
}
