package sieve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The two scan strategies and the two candidate sources must be
// observationally identical: same primes, same order, forever.

func TestStrategiesProduceIdenticalSequences(t *testing.T) {
	const n = 2000

	reference, err := First(NewSieve(), n)
	if err != nil {
		t.Fatalf("reference run failed: %v", err)
	}

	for _, g := range generators[1:] {
		t.Run(g.name, func(t *testing.T) {
			got, err := First(g.make(), n)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if diff := cmp.Diff(reference, got); diff != "" {
				t.Errorf("sequence mismatch (-reference +got):\n%s", diff)
			}
		})
	}
}

func TestStrategiesAgreeOnLongRunDigest(t *testing.T) {
	const n = 20000

	reference, err := DigestOf(New(), n)
	if err != nil {
		t.Fatalf("reference run failed: %v", err)
	}

	for _, g := range generators {
		t.Run(g.name, func(t *testing.T) {
			sum, err := DigestOf(g.make(), n)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if sum != reference {
				t.Errorf("digest mismatch: got %016x, want %016x", sum, reference)
			}
		})
	}
}

func TestNonDefaultWheelBasesAgree(t *testing.T) {
	const n = 1500

	reference, err := First(NewSieve(), n)
	if err != nil {
		t.Fatalf("reference run failed: %v", err)
	}

	for _, basis := range [][]uint64{{2}, {2, 3}, {2, 3, 5}, {2, 3, 5, 7, 11}} {
		w, err := NewWheel(basis...)
		if err != nil {
			t.Fatalf("NewWheel(%v) failed: %v", basis, err)
		}
		got, err := First(NewHeapSieveWheel(w), n)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if diff := cmp.Diff(reference, got); diff != "" {
			t.Errorf("basis %v sequence mismatch (-reference +got):\n%s", basis, diff)
		}
	}
}
