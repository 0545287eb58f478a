package kmer

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, uint64(0b1000111101), Encode([]byte("TAGGC")))
	assert.Equal(t, uint64(0b1101011000), Encode([]byte("GCCTA")))
}

func TestEncodeCaseFold(t *testing.T) {
	assert.Equal(t, Encode([]byte("TAGGC")), Encode([]byte("taggc")))
	assert.Equal(t, Encode([]byte("GCCTA")), Encode([]byte("gCcTa")))
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "TAGGC", Decode(0b1000111101, 5))
	assert.Equal(t, "GCCTA", Decode(0b1101011000, 5))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, k := range []uint8{1, 2, 5, 13, 21, 31, 32} {
		for i := 0; i < 100; i++ {
			seq := make([]byte, k)
			for j := range seq {
				seq[j] = nucs[rng.Intn(4)]
			}

			require.Equal(t, string(seq), Decode(Encode(seq), k), "k=%d", k)
		}
	}
}

func TestCanonical(t *testing.T) {
	// TAGGC has even parity, so it is its own canonical form and GCCTA
	// (its reverse complement) maps onto it.
	assert.Equal(t, uint64(0b1000111101), Canonical(0b1000111101, 5))
	assert.Equal(t, uint64(0b1000111101), Canonical(0b1101011000, 5))
}

func TestCanonicalLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, k := range []uint8{3, 5, 11, 17} {
		for i := 0; i < 200; i++ {
			kmer := rng.Uint64() & (KmerSpaceSize(k) - 1)

			c := Canonical(kmer, k)
			require.True(t, ParityEven(c), "canonical form must have even parity")
			require.Equal(t, c, Canonical(c, k), "canonical must be idempotent")
			require.Equal(t, c, Canonical(RevComp(kmer, k), k), "both strands must share a canonical form")
		}
	}
}

func TestParityEven(t *testing.T) {
	assert.True(t, ParityEven(0b1111))
	assert.False(t, ParityEven(0b1110))
}

func TestRevComp(t *testing.T) {
	assert.Equal(t, uint64(0b1000111101), RevComp(0b1101011000, 5))
	assert.Equal(t, uint64(0b1101011000), RevComp(0b1000111101, 5))
}

func TestComp(t *testing.T) {
	assert.Equal(t, uint64(0xAAAAAAAAAAAAA897), Comp(0b1000111101))
}

func TestRev(t *testing.T) {
	// TAGGC reversed is CGGAT, and the complement pollution above the
	// payload must be masked off.
	assert.Equal(t, uint64(498), Rev(0xAAAAAAAAAAAAA83D, 5))
	assert.Equal(t, uint64(498), Rev(573, 5))
}

func TestAddressRoundTrip(t *testing.T) {
	for _, k := range []uint8{3, 5, 9} {
		for addr := uint64(0); addr < SpaceSize(k); addr++ {
			kmer := FromAddress(addr)

			require.True(t, ParityEven(kmer))
			require.Equal(t, addr, Address(kmer))
			require.Equal(t, kmer, Canonical(kmer, k))
		}
	}
}

func TestSpaceSize(t *testing.T) {
	assert.Equal(t, uint64(512), SpaceSize(5))
	assert.Equal(t, uint64(1024), KmerSpaceSize(5))
	assert.Equal(t, uint64(2), SpaceSize(1))
}

func TestDecodeAlphabet(t *testing.T) {
	// Every decoded symbol comes from the fixed uppercase alphabet.
	s := Decode(Encode([]byte("acgtACGT")), 8)
	assert.Equal(t, "", strings.Trim(s, "ACTG"))
}
