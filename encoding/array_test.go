package encoding_test

import (
	"testing"

	"github.com/antaris-inc/go-xtce/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayFixedRoundTrip(t *testing.T) {
	zero := 0
	three := 3
	enc := &encoding.ArrayEncoding{
		Element: &encoding.IntegerEncoding{SizeInBits: 8, Signed: encoding.Unsigned},
		Start:   encoding.IndexSpec{Fixed: &zero},
		End:     encoding.IndexSpec{Fixed: &three},
	}

	b, err := enc.Encode([]any{int64(1), int64(2), int64(3), int64(4)}, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, 32, b.Len())

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3), int64(4)}, v)
}

func TestArrayDynamicCountZeroLength(t *testing.T) {
	zero := 0
	enc := &encoding.ArrayEncoding{
		Element: &encoding.IntegerEncoding{SizeInBits: 8, Signed: encoding.Unsigned},
		Start:   encoding.IndexSpec{Fixed: &zero},
		End:     encoding.IndexSpec{RefField: "count_minus_one"},
	}

	ctx := mapContext{"count_minus_one": -1}

	b, err := enc.Encode([]any{}, ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())

	v, err := enc.Decode(b, ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{}, v)
}

func TestArrayCountMismatchErrors(t *testing.T) {
	zero := 0
	one := 1
	enc := &encoding.ArrayEncoding{
		Element: &encoding.IntegerEncoding{SizeInBits: 8, Signed: encoding.Unsigned},
		Start:   encoding.IndexSpec{Fixed: &zero},
		End:     encoding.IndexSpec{Fixed: &one},
	}

	_, err := enc.Encode([]any{int64(1)}, mapContext{})
	require.Error(t, err)
}
