package counter

import (
	"fmt"

	"github.com/hupe1980/pcon/kmer"
)

// Seq is the single-writer counter variant. It owns its backing array
// outright and performs no synchronization.
type Seq[T Value] struct {
	k      uint8
	counts []T
}

// NewSeq allocates a zeroed count array for k-mer size k.
func NewSeq[T Value](k uint8) (*Seq[T], error) {
	if err := validateK(k); err != nil {
		return nil, err
	}

	return &Seq[T]{
		k:      k,
		counts: make([]T, kmer.SpaceSize(k)),
	}, nil
}

// FromRaw wraps an existing count array, e.g. one reconstructed from a
// pcon stream. The slice is adopted, not copied.
func FromRaw[T Value](k uint8, counts []T) (*Seq[T], error) {
	if err := validateK(k); err != nil {
		return nil, err
	}

	if uint64(len(counts)) != kmer.SpaceSize(k) {
		return nil, fmt.Errorf("raw count length %d does not match address space %d for k=%d", len(counts), kmer.SpaceSize(k), k)
	}

	return &Seq[T]{k: k, counts: counts}, nil
}

// K returns the k-mer size the counter was built for.
func (c *Seq[T]) K() uint8 {
	return c.k
}

// Inc saturating-increments the counter at addr.
func (c *Seq[T]) Inc(addr uint64) {
	if addr >= uint64(len(c.counts)) {
		return
	}

	if v := c.counts[addr]; v != ^T(0) {
		c.counts[addr] = v + 1
	}
}

// IncBatch applies one increment per address.
func (c *Seq[T]) IncBatch(addrs []uint64) {
	for _, addr := range addrs {
		c.Inc(addr)
	}
}

// Get returns the count of a packed k-mer, canonicalizing it first.
func (c *Seq[T]) Get(kv uint64) T {
	return c.GetAddr(kmer.Address(kmer.Canonical(kv, c.k)))
}

// GetAddr returns the count at a canonical address.
func (c *Seq[T]) GetAddr(addr uint64) T {
	if addr >= uint64(len(c.counts)) {
		return 0
	}

	return c.counts[addr]
}

// Raw returns the backing array without copying.
func (c *Seq[T]) Raw() []T {
	return c.counts
}
