package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/primenet/internal/parallel"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, [Bits]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, Encode(0))
	assert.Equal(t, [Bits]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, Encode(1))
	assert.Equal(t, [Bits]uint8{0, 0, 0, 0, 0, 0, 0, 1, 0, 1}, Encode(5))
	assert.Equal(t, [Bits]uint8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, Encode(1023))
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 5, 512, 1023} {
		bits := Encode(n)
		got, err := Decode(bits[:])
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	_, err := Decode([]uint8{1, 0})
	assert.ErrorIs(t, err, ErrInvalidBits)
	_, err = Decode([]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 2})
	assert.ErrorIs(t, err, ErrInvalidBits)
}

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 1021}
	nonPrimes := []int{0, 1, 4, 6, 8, 9, 10, 12, 14, 15, 25, 1023}

	for _, p := range primes {
		assert.True(t, IsPrime(p), "%d should be prime", p)
	}
	for _, n := range nonPrimes {
		assert.False(t, IsPrime(n), "%d should not be prime", n)
	}
}

func TestGenerate(t *testing.T) {
	data := Generate()
	require.Len(t, data, Size)

	for i, s := range data {
		assert.Equal(t, i, s.Value)
	}
	assert.Equal(t, uint8(0), data[0].Label)
	assert.Equal(t, uint8(0), data[1].Label)
	assert.Equal(t, uint8(1), data[2].Label)
	assert.Equal(t, uint8(1), data[7].Label)
	assert.Equal(t, uint8(0), data[9].Label)

	// π(1023) = 172
	assert.Equal(t, 172, CountPrimes(data))
}

func TestGenerateMatchesSequential(t *testing.T) {
	assert.Equal(t, GenerateWith(parallel.Sequential()), Generate())
}

func TestLabelsAgreeWithSieve(t *testing.T) {
	require.NoError(t, Verify(Generate()))

	bad := Generate()
	bad[9].Label = 1
	assert.ErrorIs(t, Verify(bad), ErrLabelMismatch)
}

func TestSievePrimes(t *testing.T) {
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, SievePrimes(30))
}

func TestSampleMatrices(t *testing.T) {
	s := NewSample(5)

	in := s.Input()
	assert.Equal(t, 1, in.Rows())
	assert.Equal(t, Bits, in.Cols())
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0, 0, 1, 0, 1}, in.Row(0))

	target := s.Target()
	assert.Equal(t, float32(1), target.At(0, 0))
	assert.True(t, s.Prime())
}

func TestParseValue(t *testing.T) {
	n, err := ParseValue(" 17 ")
	require.NoError(t, err)
	assert.Equal(t, 17, n)

	_, err = ParseValue("1024")
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ParseValue("-1")
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ParseValue("abc")
	assert.Error(t, err)
}
