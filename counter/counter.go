package counter

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/hupe1980/pcon/kmer"
)

// ErrInvalidK is returned when k cannot be addressed by a 64-bit word.
var ErrInvalidK = errors.New("k must be between 1 and 32")

// Value enumerates the supported counter element widths.
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Counter is the capability set shared by the sequential and atomic
// variants. Addresses are canonical addresses (kmer.Address); increments
// past the element maximum are no-ops.
type Counter[T Value] interface {
	// K returns the k-mer size the counter was built for.
	K() uint8
	// Inc saturating-increments the counter at addr.
	// Out-of-range addresses are ignored.
	Inc(addr uint64)
	// IncBatch applies one increment per address. This is the entry point
	// bucketizers flush through, once per bucket rather than per address.
	IncBatch(addrs []uint64)
	// Get returns the count of a packed k-mer, canonicalizing it first.
	Get(kmer uint64) T
	// GetAddr returns the count at a canonical address.
	// Out-of-range addresses read as zero.
	GetAddr(addr uint64) T
	// Raw exposes the backing array. For Seq this is a zero-copy borrow;
	// for Atomic it is a point-in-time snapshot.
	Raw() []T
}

// Width returns the element width of T in bytes (1, 2, 4 or 8).
func Width[T Value]() uint8 {
	return uint8(bits.Len64(uint64(^T(0))) / 8)
}

func validateK(k uint8) error {
	if k < 1 || k > kmer.MaxK {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	return nil
}
