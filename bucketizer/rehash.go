package bucketizer

import "github.com/hupe1980/pcon/counter"

// Rehash is the degenerate policy: no buckets, no batching. Each address
// is rewritten into a synthetic layout that leads with its minimizer and
// remixes the remaining bits, then incremented directly.
//
// The rewrite is a counting layout of its own, not a permutation of the
// canonical address space, so a Rehash-fed counter is only comparable to
// another Rehash-fed counter. It exists to measure what the buffering
// policies buy.
type Rehash[T counter.Value] struct {
	counter counter.Counter[T]
	total   uint
	m       uint
}

// NewRehash creates a rehash bucketizer writing into c.
func NewRehash[T counter.Value](c counter.Counter[T], m uint8) (*Rehash[T], error) {
	k := c.K()
	if err := validateM(k, m); err != nil {
		return nil, err
	}

	return &Rehash[T]{
		counter: c,
		total:   nbBit(k),
		m:       uint(m),
	}, nil
}

// Add rewrites the canonical k-mer's address and increments it directly.
func (b *Rehash[T]) Add(kmer uint64) {
	addr := kmer >> 1

	rest := b.total - b.m
	synthetic := minimize(addr, b.total, b.m)<<rest | mix(addr)&(uint64(1)<<rest-1)

	b.counter.Inc(synthetic)
}

// FlushAll is a no-op: Rehash never buffers.
func (b *Rehash[T]) FlushAll() {}

// FlushOne is a no-op: Rehash never buffers.
func (b *Rehash[T]) FlushOne(id int) {}
