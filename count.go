package pcon

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pcon/bucketizer"
	"github.com/hupe1980/pcon/counter"
	"github.com/hupe1980/pcon/kmer"
)

// TokenSource yields successive k-length nucleotide windows, already
// extracted from their records by an upstream scanner. Next returns
// io.EOF when the stream is exhausted; the returned slice is only valid
// until the following call.
//
// Windows must contain only {A,C,T,G,a,c,t,g} bytes; filtering other
// symbols is the scanner's job (see package kmer).
type TokenSource interface {
	Next() ([]byte, error)
}

// SliceSource is a TokenSource sliding a k-window over in-memory
// sequences. Sequences shorter than k contribute no windows.
type SliceSource struct {
	seqs   [][]byte
	k      int
	si, wi int
}

// NewSliceSource creates a SliceSource over the given sequences.
func NewSliceSource(k int, seqs ...[]byte) *SliceSource {
	return &SliceSource{seqs: seqs, k: k}
}

// Next returns the next k-window, or io.EOF.
func (s *SliceSource) Next() ([]byte, error) {
	for s.si < len(s.seqs) {
		seq := s.seqs[s.si]
		if s.wi+s.k <= len(seq) {
			window := seq[s.wi : s.wi+s.k]
			s.wi++

			return window, nil
		}

		s.si++
		s.wi = 0
	}

	return nil, io.EOF
}

// Count drains src into a fresh single-writer counter, staging addresses
// through the configured bucketizer policy and draining every bucket
// before returning.
func Count[T counter.Value](src TokenSource, k uint8, optFns ...func(*Options)) (*counter.Seq[T], error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	c, err := counter.NewSeq[T](k)
	if err != nil {
		return nil, err
	}

	b, err := newBucketizer[T](c, opts)
	if err != nil {
		return nil, err
	}

	var tokens uint64
	for {
		window, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}

		b.Add(kmer.Canonical(kmer.Encode(window), k))
		tokens++
	}

	b.FlushAll()

	opts.Logger.WithK(k).Debug("counting finished", "tokens", tokens)

	return c, nil
}

// CountParallel drains src into a shared atomic counter using a fixed
// worker pool. One goroutine tokenizes and packs, workers stage batches
// through private bucketizers; all drain into the one counter. Increments
// interleave in arbitrary order, which is fine: addition commutes.
//
// Cancelling ctx stops feeding input. There is no cleanup protocol; the
// returned error aside, the counter is always a valid partial count.
func CountParallel[T counter.Value](ctx context.Context, src TokenSource, k uint8, optFns ...func(*Options)) (*counter.Atomic[T], error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	c, err := counter.NewAtomic[T](k)
	if err != nil {
		return nil, err
	}

	opts.Logger.WithK(k).WithWorkers(opts.Workers).Debug("parallel counting started")

	g, ctx := errgroup.WithContext(ctx)
	batches := make(chan []uint64, opts.Workers)

	g.Go(func() error {
		defer close(batches)

		batch := make([]uint64, 0, opts.BatchSize)
		for {
			window, err := src.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("read token: %w", err)
			}

			batch = append(batch, kmer.Canonical(kmer.Encode(window), k))
			if len(batch) == opts.BatchSize {
				select {
				case batches <- batch:
				case <-ctx.Done():
					return ctx.Err()
				}
				batch = make([]uint64, 0, opts.BatchSize)
			}
		}

		if len(batch) > 0 {
			select {
			case batches <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	for w := 0; w < opts.Workers; w++ {
		g.Go(func() error {
			b, err := newBucketizer[T](c, opts)
			if err != nil {
				return err
			}

			for batch := range batches {
				for _, kv := range batch {
					b.Add(kv)
				}
			}

			b.FlushAll()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts.Logger.WithK(k).Debug("parallel counting finished")

	return c, nil
}

func newBucketizer[T counter.Value](c counter.Counter[T], opts Options) (bucketizer.Bucketizer, error) {
	switch opts.Policy {
	case PolicyMinimizer:
		return bucketizer.NewMinimizer[T](c, opts.MinimizerBits)
	case PolicyRehash:
		return bucketizer.NewRehash[T](c, opts.MinimizerBits)
	default:
		return bucketizer.NewPrefix[T](c), nil
	}
}
