package solid

import (
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/pcon/counter"
	"github.com/hupe1980/pcon/kmer"
)

// ErrInvalidK is returned when k cannot be addressed by a 64-bit word.
var ErrInvalidK = errors.New("k must be between 1 and 32")

// ErrKMismatch indicates an operation across two filters with different
// k-mer sizes.
type ErrKMismatch struct {
	A, B uint8
}

func (e *ErrKMismatch) Error() string {
	return fmt.Sprintf("k mismatch: %d != %d", e.A, e.B)
}

// Solid marks, per canonical address, whether the observed abundance
// exceeded a threshold.
type Solid struct {
	k    uint8
	bits []byte
}

// New creates an all-zero filter sized to the address space of k.
func New(k uint8) (*Solid, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}

	return &Solid{
		k:    k,
		bits: make([]byte, bitsLen(k)),
	}, nil
}

// FromCounts builds a filter from a raw count buffer: bit i is set iff
// counts[i] is strictly greater than abundance.
func FromCounts[T counter.Value](k uint8, counts []T, abundance T) (*Solid, error) {
	s, err := New(k)
	if err != nil {
		return nil, err
	}

	for i, v := range counts {
		if v > abundance {
			s.SetAddr(uint64(i), true)
		}
	}

	return s, nil
}

// FromCounter builds a filter from a counter snapshot.
func FromCounter[T counter.Value](c counter.Counter[T], abundance T) (*Solid, error) {
	return FromCounts(c.K(), c.Raw(), abundance)
}

// K returns the k-mer size the filter was built for.
func (s *Solid) K() uint8 {
	return s.k
}

// Set updates the solidity of a packed k-mer, canonicalizing it first.
func (s *Solid) Set(kv uint64, value bool) {
	s.SetAddr(kmer.Address(kmer.Canonical(kv, s.k)), value)
}

// SetAddr updates the solidity at a canonical address.
// Out-of-range addresses are ignored.
func (s *Solid) SetAddr(addr uint64, value bool) {
	if addr>>3 >= uint64(len(s.bits)) {
		return
	}

	if value {
		s.bits[addr>>3] |= 1 << (addr & 7)
	} else {
		s.bits[addr>>3] &^= 1 << (addr & 7)
	}
}

// Get reports the solidity of a packed k-mer, canonicalizing it first.
func (s *Solid) Get(kv uint64) bool {
	return s.GetAddr(kmer.Address(kmer.Canonical(kv, s.k)))
}

// GetAddr reports the solidity at a canonical address.
// Out-of-range addresses read as false.
func (s *Solid) GetAddr(addr uint64) bool {
	if addr>>3 >= uint64(len(s.bits)) {
		return false
	}

	return s.bits[addr>>3]&(1<<(addr&7)) != 0
}

// Union ORs other into s in place. Both filters must share the same k.
func (s *Solid) Union(other *Solid) error {
	if s.k != other.k {
		return &ErrKMismatch{A: s.k, B: other.k}
	}

	for i, b := range other.bits {
		s.bits[i] |= b
	}

	return nil
}

// Count returns the number of solid addresses.
func (s *Solid) Count() int {
	var n int
	for _, b := range s.bits {
		n += bits.OnesCount8(b)
	}

	return n
}

// Bytes exposes the raw bit-packed buffer without copying.
func (s *Solid) Bytes() []byte {
	return s.bits
}

// Serialize writes the filter as a gzip stream whose plaintext is the k
// byte followed by the raw bitvector.
func (s *Solid) Serialize(w io.Writer) error {
	gz, err := gzip.NewWriterLevel(w, gzip.BestSpeed)
	if err != nil {
		return fmt.Errorf("open solid writer: %w", err)
	}

	if _, err := gz.Write([]byte{s.k}); err != nil {
		return fmt.Errorf("write solid header: %w", err)
	}

	if _, err := gz.Write(s.bits); err != nil {
		return fmt.Errorf("write solid bits: %w", err)
	}

	if err := gz.Close(); err != nil {
		return fmt.Errorf("flush solid stream: %w", err)
	}

	return nil
}

// Deserialize reads a filter previously written by Serialize.
func Deserialize(r io.Reader) (*Solid, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open solid reader: %w", err)
	}
	defer gz.Close()

	var header [1]byte
	if _, err := io.ReadFull(gz, header[:]); err != nil {
		return nil, fmt.Errorf("read solid header: %w", err)
	}

	k := header[0]
	if err := validateK(k); err != nil {
		return nil, err
	}

	bits := make([]byte, bitsLen(k))
	if _, err := io.ReadFull(gz, bits); err != nil {
		return nil, fmt.Errorf("read solid bits: %w", err)
	}

	return &Solid{k: k, bits: bits}, nil
}

func validateK(k uint8) error {
	if k < 1 || k > kmer.MaxK {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	return nil
}

func bitsLen(k uint8) uint64 {
	return (kmer.SpaceSize(k) + 7) / 8
}
