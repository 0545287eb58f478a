package kmer

import "math/bits"

// MaxK is the largest k-mer size a 64-bit packed word can hold.
const MaxK = 32

// compMask flips every base to its complement: A<->T and C<->G differ in
// their high bit only, so XOR with 0b10 per 2-bit group complements all 32
// groups at once.
const compMask = 0xAAAAAAAAAAAAAAAA

var nucs = [4]byte{'A', 'C', 'T', 'G'}

// Nuc2Bit returns the 2-bit code of a nucleotide byte.
// The code is derived from the ASCII value, so case folds for free.
func Nuc2Bit(nuc byte) uint64 {
	return uint64(nuc>>1) & 0b11
}

// Encode packs a nucleotide substring into a 2-bit-per-base word,
// most significant base first. len(seq) must be at most MaxK.
func Encode(seq []byte) uint64 {
	var kmer uint64

	for _, nuc := range seq {
		kmer <<= 2
		kmer |= Nuc2Bit(nuc)
	}

	return kmer
}

// Decode unpacks a k-mer word back into its uppercase string form.
func Decode(kmer uint64, k uint8) string {
	seq := make([]byte, k)

	for i := int(k) - 1; i >= 0; i-- {
		seq[i] = nucs[kmer&0b11]
		kmer >>= 2
	}

	return string(seq)
}

// Canonical returns the canonical form of kmer: the value itself when its
// popcount is even, its reverse complement otherwise. Idempotent, and both
// strands of a genomic location map to the same canonical value.
func Canonical(kmer uint64, k uint8) uint64 {
	if ParityEven(kmer) {
		return kmer
	}

	return RevComp(kmer, k)
}

// ParityEven reports whether kmer has an even number of set bits.
func ParityEven(kmer uint64) bool {
	return bits.OnesCount64(kmer)%2 == 0
}

// RevComp returns the packed reverse complement of kmer.
func RevComp(kmer uint64, k uint8) uint64 {
	return Rev(Comp(kmer), k)
}

// Comp complements every base of the full 64-bit word. Bits above the
// 2k-bit payload are polluted; Rev masks them off.
func Comp(kmer uint64) uint64 {
	return kmer ^ compMask
}

// Rev reverses the base order of the low k 2-bit groups of kmer.
func Rev(kmer uint64, k uint8) uint64 {
	var reversed uint64

	for i := uint8(1); i < k; i++ {
		reversed = (reversed ^ (kmer & 0b11)) << 2
		kmer >>= 2
	}
	reversed ^= kmer & 0b11

	if k < MaxK {
		reversed &= (1 << (2 * uint(k))) - 1
	}

	return reversed
}

// Address maps a canonical k-mer to its slot in the half-sized hash space.
// Canonical/non-canonical pairs differ only in the lowest bit, which is
// what makes dropping it safe.
func Address(canonical uint64) uint64 {
	return canonical >> 1
}

// FromAddress recovers the canonical packed k-mer of an address,
// restoring the dropped low bit so the result has even parity.
func FromAddress(addr uint64) uint64 {
	kmer := addr << 1

	if !ParityEven(kmer) {
		kmer |= 1
	}

	return kmer
}

// SpaceSize returns the size of the canonical address space for k: 2^(2k-1).
func SpaceSize(k uint8) uint64 {
	return 1 << (2*uint(k) - 1)
}

// KmerSpaceSize returns the size of the full k-mer space for k: 2^(2k).
// Valid for k < MaxK.
func KmerSpaceSize(k uint8) uint64 {
	return 1 << (2 * uint(k))
}
