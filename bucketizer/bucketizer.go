package bucketizer

import (
	"errors"
	"fmt"
)

const (
	// BucketSize is the fixed bucket capacity, in addresses. A full bucket
	// is flushed immediately; its buffer is reset, never reallocated.
	BucketSize = 1024

	// maxPrefixBits caps the prefix partition count at 4096 buckets so the
	// per-bucket working set stays cache-resident for large k.
	maxPrefixBits = 12
)

// ErrInvalidMinimizerSize is returned when the minimizer width does not
// leave room for at least one sub-window of the address.
var ErrInvalidMinimizerSize = errors.New("minimizer size must be between 1 and the address width")

// Bucketizer stages canonical k-mers and applies them to a counter in
// bucket-sized batches.
type Bucketizer interface {
	// Add stages the address of a canonical packed k-mer, flushing its
	// bucket if the bucket reaches capacity.
	Add(kmer uint64)
	// FlushAll drains every bucket. It must be called once scanning
	// finishes; staged addresses are otherwise lost.
	FlushAll()
	// FlushOne drains the bucket with the given partition id.
	FlushOne(id int)
}

// nbBit is the width in bits of the canonical address space for k.
func nbBit(k uint8) uint {
	return 2*uint(k) - 1
}

func prefixBits(k uint8) uint {
	b := nbBit(k) / 2
	if b > maxPrefixBits {
		b = maxPrefixBits
	}

	return b
}

func validateM(k, m uint8) error {
	if m < 1 || uint(m) >= nbBit(k) {
		return fmt.Errorf("%w: m=%d, k=%d", ErrInvalidMinimizerSize, m, k)
	}

	return nil
}

// mix is the fixed 64-bit avalanche function used for minimizer selection
// (xorshift-multiply-xorshift-multiply-xorshift). The constant is part of
// the established bucket layout; do not swap it for an "improved" one.
func mix(x uint64) uint64 {
	x = ((x >> 32) ^ x) * 0xD6E8FEB86659FD93
	x = ((x >> 32) ^ x) * 0xD6E8FEB86659FD93

	return (x >> 32) ^ x
}

// minimize returns the m-bit sub-window of addr whose mixed hash is the
// smallest, scanning every bit offset that keeps the window inside the
// total-bit-wide address.
func minimize(addr uint64, total, m uint) uint64 {
	mask := uint64(1)<<m - 1

	best := addr & mask
	bestHash := mix(best)

	for i := uint(1); i < total-m; i++ {
		v := (addr >> i) & mask
		if h := mix(v); int64(h) < int64(bestHash) {
			best, bestHash = v, h
		}
	}

	return best
}

func newBuckets(n int) [][]uint64 {
	buckets := make([][]uint64, n)
	for i := range buckets {
		buckets[i] = make([]uint64, 0, BucketSize)
	}

	return buckets
}
