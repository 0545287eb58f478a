package counter

import (
	"sync/atomic"

	"github.com/hupe1980/pcon/kmer"
)

// Atomic is the shared counter variant. Any number of goroutines may call
// Inc/IncBatch concurrently on identical or distinct addresses.
//
// Elements are packed as fixed-width lanes inside 64-bit words and
// incremented with a compare-and-swap loop. The loop re-reads the lane
// before every attempt, so a saturated lane is never bumped and a lane at
// max can never carry into its neighbor. Increments are linearizable; no
// update is lost under racing writers.
type Atomic[T Value] struct {
	k     uint8
	size  uint64
	width uint // lane width in bits
	words []atomic.Uint64
}

// NewAtomic allocates a zeroed shared count array for k-mer size k.
func NewAtomic[T Value](k uint8) (*Atomic[T], error) {
	if err := validateK(k); err != nil {
		return nil, err
	}

	size := kmer.SpaceSize(k)
	width := uint(Width[T]()) * 8
	lanes := 64 / uint64(width)

	return &Atomic[T]{
		k:     k,
		size:  size,
		width: width,
		words: make([]atomic.Uint64, (size+lanes-1)/lanes),
	}, nil
}

func (c *Atomic[T]) lane(addr uint64) (word uint64, shift uint, mask uint64) {
	lanes := 64 / uint64(c.width)

	return addr / lanes, uint(addr%lanes) * c.width, ^uint64(0) >> (64 - c.width)
}

// K returns the k-mer size the counter was built for.
func (c *Atomic[T]) K() uint8 {
	return c.k
}

// Inc saturating-increments the counter at addr. Safe under unbounded
// concurrent callers.
func (c *Atomic[T]) Inc(addr uint64) {
	if addr >= c.size {
		return
	}

	wi, shift, mask := c.lane(addr)
	word := &c.words[wi]

	for {
		old := word.Load()
		if (old>>shift)&mask == mask {
			return // saturated
		}

		if word.CompareAndSwap(old, old+(1<<shift)) {
			return
		}
	}
}

// IncBatch applies one increment per address.
func (c *Atomic[T]) IncBatch(addrs []uint64) {
	for _, addr := range addrs {
		c.Inc(addr)
	}
}

// Get returns the count of a packed k-mer, canonicalizing it first.
func (c *Atomic[T]) Get(kv uint64) T {
	return c.GetAddr(kmer.Address(kmer.Canonical(kv, c.k)))
}

// GetAddr returns the count at a canonical address.
func (c *Atomic[T]) GetAddr(addr uint64) T {
	if addr >= c.size {
		return 0
	}

	wi, shift, mask := c.lane(addr)

	return T((c.words[wi].Load() >> shift) & mask)
}

// Raw returns a point-in-time snapshot of the counters. Unlike Seq.Raw it
// allocates: the packed words are not layout-compatible with []T and
// reinterpreting them is exactly the aliasing this type exists to avoid.
// Serialization happens after counting has finished, where a snapshot and
// a borrow are equivalent.
func (c *Atomic[T]) Raw() []T {
	lanes := 64 / uint64(c.width)
	mask := ^uint64(0) >> (64 - c.width)
	out := make([]T, c.size)

	for i := range c.words {
		word := c.words[i].Load()

		base := uint64(i) * lanes
		for l := uint64(0); l < lanes && base+l < c.size; l++ {
			out[base+l] = T((word >> (uint(l) * c.width)) & mask)
		}
	}

	return out
}
