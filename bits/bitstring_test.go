package bits_test

import (
	"testing"

	"github.com/antaris-inc/go-xtce/bits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUint(t *testing.T) {
	cases := []struct {
		name  string
		value uint64
		width int
		hex   string
	}{
		{"8-bit unsigned 12", 12, 8, "0c"},
		{"16-bit unsigned 30000", 30000, 16, "7530"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := bits.FromUint(c.value, c.width)
			require.NoError(t, err)
			assert.Equal(t, c.width, s.Len())
			assert.Equal(t, c.hex, s.ToHex())

			got, err := s.ToUint()
			require.NoError(t, err)
			assert.Equal(t, c.value, got)
		})
	}
}

func Test3BitUnsigned(t *testing.T) {
	s, err := bits.FromUint(2, 3)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	got, err := s.ToUint()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got)

	bin := make([]byte, s.Len())
	for i := range bin {
		if v, _ := s.Slice(i, i+1); v.Equal(mustBit(t, 1, 1)) {
			bin[i] = '1'
		} else {
			bin[i] = '0'
		}
	}
	assert.Equal(t, "010", string(bin))
}

func mustBit(t *testing.T, value uint64, width int) *bits.String {
	t.Helper()
	s, err := bits.FromUint(value, width)
	require.NoError(t, err)

	return s
}

func TestFromIntTwosComplement(t *testing.T) {
	s, err := bits.FromInt(-30000, 32)
	require.NoError(t, err)
	assert.Equal(t, "ffff8ad0", s.ToHex())

	got, err := s.ToInt()
	require.NoError(t, err)
	assert.Equal(t, int64(-30000), got)
}

func TestSliceAndConcat(t *testing.T) {
	a, err := bits.FromUint(0b101, 3)
	require.NoError(t, err)
	b, err := bits.FromUint(0b11, 2)
	require.NoError(t, err)

	joined := bits.Concat(a, b)
	require.Equal(t, 5, joined.Len())

	head, err := joined.Slice(0, 3)
	require.NoError(t, err)
	assert.True(t, head.Equal(a))

	tail, err := joined.Slice(3, 5)
	require.NoError(t, err)
	assert.True(t, tail.Equal(b))
}

func TestFixedValueFromHex(t *testing.T) {
	s, err := bits.FixedValueFromHex("0c", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	got, err := s.ToUint()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), got) // low 3 bits of 0x0c == 0b100
}

func TestFromUintOverflow(t *testing.T) {
	_, err := bits.FromUint(256, 8)
	require.Error(t, err)
}
