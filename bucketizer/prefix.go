package bucketizer

import "github.com/hupe1980/pcon/counter"

// Prefix partitions addresses by their high-order bits. The partition
// count is a power of two derived from k, capped so every bucket's target
// region of the count array stays cache-resident.
type Prefix[T counter.Value] struct {
	counter counter.Counter[T]
	buckets [][]uint64
	shift   uint
}

// NewPrefix creates a prefix bucketizer draining into c.
func NewPrefix[T counter.Value](c counter.Counter[T]) *Prefix[T] {
	k := c.K()
	bits := prefixBits(k)

	return &Prefix[T]{
		counter: c,
		buckets: newBuckets(1 << bits),
		shift:   nbBit(k) - bits,
	}
}

// Add stages the address of a canonical packed k-mer.
func (b *Prefix[T]) Add(kmer uint64) {
	addr := kmer >> 1
	id := int(addr >> b.shift)

	b.buckets[id] = append(b.buckets[id], addr)

	if len(b.buckets[id]) == BucketSize {
		b.FlushOne(id)
	}
}

// FlushAll drains every bucket. Must be called once scanning finishes.
func (b *Prefix[T]) FlushAll() {
	for id := range b.buckets {
		b.FlushOne(id)
	}
}

// FlushOne drains one bucket through the counter's batch entry point.
func (b *Prefix[T]) FlushOne(id int) {
	b.counter.IncBatch(b.buckets[id])
	b.buckets[id] = b.buckets[id][:0]
}
