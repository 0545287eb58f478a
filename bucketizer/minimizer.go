package bucketizer

import "github.com/hupe1980/pcon/counter"

// Minimizer partitions addresses by the minimizer of their bit windows:
// the m-bit sub-window with the smallest mixed hash. K-mers sharing a
// locally minimal window tend to come from nearby genomic positions, so
// they land in the same bucket and flush into nearby counter slots.
type Minimizer[T counter.Value] struct {
	counter counter.Counter[T]
	buckets [][]uint64
	total   uint
	m       uint
}

// NewMinimizer creates a minimizer bucketizer with 2^m buckets draining
// into c. m must leave at least one sub-window inside the address width.
func NewMinimizer[T counter.Value](c counter.Counter[T], m uint8) (*Minimizer[T], error) {
	k := c.K()
	if err := validateM(k, m); err != nil {
		return nil, err
	}

	return &Minimizer[T]{
		counter: c,
		buckets: newBuckets(1 << m),
		total:   nbBit(k),
		m:       uint(m),
	}, nil
}

// Add stages the address of a canonical packed k-mer.
func (b *Minimizer[T]) Add(kmer uint64) {
	addr := kmer >> 1
	id := int(minimize(addr, b.total, b.m))

	b.buckets[id] = append(b.buckets[id], addr)

	if len(b.buckets[id]) == BucketSize {
		b.FlushOne(id)
	}
}

// FlushAll drains every bucket. Must be called once scanning finishes.
func (b *Minimizer[T]) FlushAll() {
	for id := range b.buckets {
		b.FlushOne(id)
	}
}

// FlushOne drains one bucket through the counter's batch entry point.
func (b *Minimizer[T]) FlushOne(id int) {
	b.counter.IncBatch(b.buckets[id])
	b.buckets[id] = b.buckets[id][:0]
}
