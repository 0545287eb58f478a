package solid

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pcon/kmer"
)

func TestNew(t *testing.T) {
	s, err := New(5)
	require.NoError(t, err)

	assert.Equal(t, uint8(5), s.K())
	assert.Len(t, s.Bytes(), 64) // 512 addresses / 8
	assert.Zero(t, s.Count())

	_, err = New(0)
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestSetGet(t *testing.T) {
	s, err := New(5)
	require.NoError(t, err)

	gttct := kmer.Encode([]byte("GTTCT"))
	s.Set(gttct, true)

	assert.True(t, s.Get(gttct))
	assert.True(t, s.Get(kmer.RevComp(gttct, 5)), "both strands share one bit")
	assert.True(t, s.GetAddr(kmer.Address(kmer.Canonical(gttct, 5))))

	s.Set(gttct, false)
	assert.False(t, s.Get(gttct))
}

func TestOutOfRange(t *testing.T) {
	s, err := New(5)
	require.NoError(t, err)

	s.SetAddr(1<<20, true) // ignored
	assert.False(t, s.GetAddr(1<<20))
	assert.Zero(t, s.Count())
}

func TestFromCounts(t *testing.T) {
	counts := make([]uint8, kmer.SpaceSize(5))
	counts[14] = 2
	counts[20] = 1
	counts[100] = 255

	s, err := FromCounts(5, counts, 1)
	require.NoError(t, err)

	assert.True(t, s.GetAddr(14))
	assert.False(t, s.GetAddr(20), "threshold is strict")
	assert.True(t, s.GetAddr(100))
	assert.Equal(t, 2, s.Count())
}

func TestUnion(t *testing.T) {
	a, err := New(5)
	require.NoError(t, err)
	b, err := New(5)
	require.NoError(t, err)

	a.SetAddr(1, true)
	a.SetAddr(2, true)
	b.SetAddr(2, true)
	b.SetAddr(3, true)

	require.NoError(t, a.Union(b))

	assert.Equal(t, 3, a.Count())
	assert.True(t, a.GetAddr(1))
	assert.True(t, a.GetAddr(2))
	assert.True(t, a.GetAddr(3))
}

func TestUnionPopcountBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	a, err := New(7)
	require.NoError(t, err)
	b, err := New(7)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		a.SetAddr(rng.Uint64()%kmer.SpaceSize(7), true)
		b.SetAddr(rng.Uint64()%kmer.SpaceSize(7), true)
	}

	ca, cb := a.Count(), b.Count()
	require.NoError(t, a.Union(b))

	assert.GreaterOrEqual(t, a.Count(), max(ca, cb))
	assert.LessOrEqual(t, a.Count(), ca+cb)
}

func TestUnionKMismatch(t *testing.T) {
	a, err := New(5)
	require.NoError(t, err)
	b, err := New(7)
	require.NoError(t, err)

	err = a.Union(b)

	var mismatch *ErrKMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, uint8(5), mismatch.A)
	assert.Equal(t, uint8(7), mismatch.B)
}

func TestSerializeRoundTrip(t *testing.T) {
	s, err := New(5)
	require.NoError(t, err)

	s.SetAddr(0, true)
	s.SetAddr(14, true)
	s.SetAddr(511, true)

	var buf bytes.Buffer
	require.NoError(t, s.Serialize(&buf))

	got, err := Deserialize(&buf)
	require.NoError(t, err)

	assert.Equal(t, uint8(5), got.K())
	assert.Equal(t, s.Bytes(), got.Bytes())
}

func TestSerializeBitLayout(t *testing.T) {
	// Bit 0 of byte 0 is address 0; address 14 is bit 6 of byte 1.
	s, err := New(5)
	require.NoError(t, err)

	s.SetAddr(0, true)
	s.SetAddr(14, true)

	assert.Equal(t, byte(0x01), s.Bytes()[0])
	assert.Equal(t, byte(0x40), s.Bytes()[1])
}

func TestDeserializeTruncated(t *testing.T) {
	s, err := New(9)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Serialize(&buf))

	_, err = Deserialize(bytes.NewReader(buf.Bytes()[:10]))
	assert.Error(t, err)
}

func TestSmallK(t *testing.T) {
	// k=1 has a 2-bit space that still needs a whole byte.
	s, err := New(1)
	require.NoError(t, err)

	assert.Len(t, s.Bytes(), 1)
	s.SetAddr(1, true)
	assert.Equal(t, 1, s.Count())
}
