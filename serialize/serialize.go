package serialize

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"runtime"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pcon/counter"
	"github.com/hupe1980/pcon/kmer"
	"github.com/hupe1980/pcon/solid"
)

// chunkBytes is the plaintext size of one compressed member. Large enough
// to compress well, small enough to parallelize; not a format constant.
const chunkBytes = 1 << 21

// Serializer writes a counter's state in the supported output forms.
type Serializer[T counter.Value] struct {
	k      uint8
	counts []T
}

// New snapshots c for serialization.
func New[T counter.Value](c counter.Counter[T]) *Serializer[T] {
	return &Serializer[T]{
		k:      c.K(),
		counts: c.Raw(),
	}
}

// Pcon writes the native binary format. Chunks are compressed in
// parallel; output order always equals chunk order.
func (s *Serializer[T]) Pcon(w io.Writer) error {
	width := int(counter.Width[T]())

	if _, err := w.Write([]byte{s.k, byte(width)}); err != nil {
		return fmt.Errorf("write pcon header: %w", err)
	}

	chunkElems := chunkBytes / width
	chunks := (len(s.counts) + chunkElems - 1) / chunkElems
	members := make([][]byte, chunks)

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < chunks; i++ {
		i := i

		g.Go(func() error {
			start := i * chunkElems
			end := min(start+chunkElems, len(s.counts))

			member, err := compressChunk(s.counts[start:end], width)
			if err != nil {
				return err
			}
			members[i] = member

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, member := range members {
		if _, err := w.Write(member); err != nil {
			return fmt.Errorf("write pcon chunk: %w", err)
		}
	}

	return nil
}

func compressChunk[T counter.Value](counts []T, width int) ([]byte, error) {
	plain := make([]byte, 0, len(counts)*width)
	for _, v := range counts {
		plain = appendLE(plain, uint64(v), width)
	}

	var buf bytes.Buffer

	gz, err := gzip.NewWriterLevel(&buf, gzip.BestSpeed)
	if err != nil {
		return nil, fmt.Errorf("open chunk writer: %w", err)
	}

	if _, err := gz.Write(plain); err != nil {
		return nil, fmt.Errorf("compress chunk: %w", err)
	}

	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("flush chunk: %w", err)
	}

	return buf.Bytes(), nil
}

func appendLE(dst []byte, v uint64, width int) []byte {
	for b := 0; b < width; b++ {
		dst = append(dst, byte(v>>(8*b)))
	}

	return dst
}

// CSV writes one "<kmer>,<count>" line per canonical address whose count
// strictly exceeds abundance, in ascending address order, no header.
func (s *Serializer[T]) CSV(w io.Writer, abundance T) error {
	bw := bufio.NewWriter(w)

	for addr, v := range s.counts {
		if v > abundance {
			seq := kmer.Decode(kmer.FromAddress(uint64(addr)), s.k)

			if _, err := fmt.Fprintf(bw, "%s,%d\n", seq, uint64(v)); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

// Solid converts the counts into a solid filter at the given abundance
// and writes its compressed dump.
func (s *Serializer[T]) Solid(w io.Writer, abundance T) error {
	filter, err := solid.FromCounts(s.k, s.counts, abundance)
	if err != nil {
		return err
	}

	return filter.Serialize(w)
}
