package encoding_test

import (
	"testing"

	"github.com/antaris-inc/go-xtce/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringFixedWidthNullStrip(t *testing.T) {
	enc := &encoding.StringEncoding{
		Charset: encoding.UTF8,
		Width:   encoding.SizeSpec{Kind: encoding.SizeFixed, FixedBits: 64},
	}

	b, err := enc.Encode("hi", mapContext{})
	require.NoError(t, err)
	assert.Equal(t, 64, b.Len())

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, "hi", v)
}

func TestStringVariableWithTerminator(t *testing.T) {
	enc := &encoding.StringEncoding{
		Charset: encoding.UTF8,
		Width:   encoding.SizeSpec{Kind: encoding.SizeVariable, MaxBits: 80, Terminator: "00"},
	}

	b, err := enc.Encode("hello", mapContext{})
	require.NoError(t, err)
	assert.Equal(t, 80, b.Len())

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestStringExactFillNoTerminator(t *testing.T) {
	enc := &encoding.StringEncoding{
		Charset: encoding.UTF8,
		Width:   encoding.SizeSpec{Kind: encoding.SizeVariable, MaxBits: 40, Terminator: "00"},
	}

	// "hello" is exactly 5 bytes == 40 bits, leaving no room for the
	// terminator; the payload fills the field exactly.
	b, err := enc.Encode("hello", mapContext{})
	require.NoError(t, err)
	assert.Equal(t, 40, b.Len())
	assert.Equal(t, "68656c6c6f", b.ToHex())

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestStringTerminatorOmittedWhenPayloadLeavesOnlyPaddingNoRoom(t *testing.T) {
	enc := &encoding.StringEncoding{
		Charset: encoding.UTF8,
		Width:   encoding.SizeSpec{Kind: encoding.SizeVariable, MaxBits: 80, Terminator: "0D0A"},
	}

	// "123456789" (9 bytes) in a 10-byte field leaves only 1 byte of
	// room, not enough for the 2-byte terminator: Encode omits it and
	// zero-pads instead, so Decode must fall back to zero-strip rather
	// than returning the payload with a trailing NUL.
	b, err := enc.Encode("123456789", mapContext{})
	require.NoError(t, err)
	assert.Equal(t, 80, b.Len())

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, "123456789", v)
}

func TestStringDynamicSizeFromContext(t *testing.T) {
	enc := &encoding.StringEncoding{
		Charset: encoding.UTF8,
		Width:   encoding.SizeSpec{Kind: encoding.SizeDynamic, RefField: "len"},
	}

	ctx := mapContext{"len": 24}

	b, err := enc.Encode("abc", ctx)
	require.NoError(t, err)
	assert.Equal(t, 24, b.Len())

	v, err := enc.Decode(b, ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}
