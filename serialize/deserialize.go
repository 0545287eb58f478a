package serialize

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/pcon/counter"
	"github.com/hupe1980/pcon/kmer"
)

// ErrWidthMismatch indicates that a pcon stream stores a different
// element width than the counter type it is being read into.
type ErrWidthMismatch struct {
	Stored, Want uint8
}

func (e *ErrWidthMismatch) Error() string {
	return fmt.Sprintf("stored element width %d does not match requested width %d", e.Stored, e.Want)
}

// Deserialize reconstructs a sequential counter from a pcon stream. The
// stored width must match T exactly; widths are never coerced.
func Deserialize[T counter.Value](r io.Reader) (*counter.Seq[T], error) {
	var header [2]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read pcon header: %w", err)
	}

	k, stored := header[0], header[1]

	if want := counter.Width[T](); stored != want {
		return nil, &ErrWidthMismatch{Stored: stored, Want: want}
	}

	if k < 1 || k > kmer.MaxK {
		return nil, fmt.Errorf("%w: got %d", counter.ErrInvalidK, k)
	}

	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open pcon reader: %w", err)
	}
	defer gz.Close()

	width := int(counter.Width[T]())
	size := kmer.SpaceSize(k)
	counts := make([]T, size)

	buf := make([]byte, chunkBytes)
	for done := uint64(0); done < size; {
		want := uint64(len(buf)) / uint64(width)
		if remaining := size - done; remaining < want {
			want = remaining
		}

		if _, err := io.ReadFull(gz, buf[:want*uint64(width)]); err != nil {
			return nil, fmt.Errorf("read pcon chunk: %w", err)
		}

		for i := uint64(0); i < want; i++ {
			counts[done+i] = readLE[T](buf[i*uint64(width):], width)
		}
		done += want
	}

	return counter.FromRaw(k, counts)
}

func readLE[T counter.Value](src []byte, width int) T {
	var v uint64
	for b := 0; b < width; b++ {
		v |= uint64(src[b]) << (8 * b)
	}

	return T(v)
}
