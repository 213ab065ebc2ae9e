package encoding_test

import (
	"testing"

	"github.com/antaris-inc/go-xtce/bits"
	"github.com/antaris-inc/go-xtce/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryFixedRoundTrip(t *testing.T) {
	enc := &encoding.BinaryEncoding{Width: encoding.SizeSpec{Kind: encoding.SizeFixed, FixedBits: 16}}

	payload, err := bits.FromHex("beef")
	require.NoError(t, err)

	b, err := enc.Encode(payload, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, "beef", b.ToHex())

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.True(t, v.(*bits.String).Equal(payload))
}

func TestBinarySizeMismatch(t *testing.T) {
	enc := &encoding.BinaryEncoding{Width: encoding.SizeSpec{Kind: encoding.SizeFixed, FixedBits: 16}}

	payload, err := bits.FromHex("be")
	require.NoError(t, err)

	_, err = enc.Encode(payload, mapContext{})
	require.Error(t, err)
}
