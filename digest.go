package sieve

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Digest accumulates a running xxh3 fingerprint of a prime sequence.
// Two runs that produced the same values in the same order have the same
// sum, so long runs can be compared without retaining either sequence.
// Useful for cross-checking generator variants or spotting a changed
// output across versions.
type Digest struct {
	h     *xxh3.Hasher
	count uint64
}

// NewDigest returns an empty digest.
func NewDigest() *Digest {
	return &Digest{h: xxh3.New()}
}

// Add folds p into the digest.
func (d *Digest) Add(p uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], p)
	d.h.Write(buf[:]) // never returns an error
	d.count++
}

// Sum64 returns the fingerprint of everything added so far.
func (d *Digest) Sum64() uint64 { return d.h.Sum64() }

// Count returns the number of values added.
func (d *Digest) Count() uint64 { return d.count }

// Reset returns the digest to its empty state.
func (d *Digest) Reset() {
	d.h.Reset()
	d.count = 0
}

// DigestOf pulls the first k primes from s and returns their fingerprint.
func DigestOf(s Sequence, k int) (uint64, error) {
	d := NewDigest()
	for range k {
		p, err := s.Next()
		if err != nil {
			return 0, err
		}
		d.Add(p)
	}
	return d.Sum64(), nil
}
