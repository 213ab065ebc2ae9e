package encoding_test

import (
	"testing"

	"github.com/antaris-inc/go-xtce/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanRoundTrip(t *testing.T) {
	enc := encoding.NewBooleanEncoding()

	b, err := enc.Encode(true, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, true, v)

	b, err = enc.Encode(false, mapContext{})
	require.NoError(t, err)
	v, err = enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, false, v)
}

func TestBooleanFromLabel(t *testing.T) {
	enc := encoding.NewBooleanEncoding()

	b, err := enc.Encode("True", mapContext{})
	require.NoError(t, err)

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestBooleanRejectsUnknownLabel(t *testing.T) {
	enc := encoding.NewBooleanEncoding()

	_, err := enc.Encode("Maybe", mapContext{})
	require.Error(t, err)
}
