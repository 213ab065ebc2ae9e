package encoding_test

import (
	"testing"

	"github.com/antaris-inc/go-xtce/bits"
	"github.com/antaris-inc/go-xtce/calibrate"
	"github.com/antaris-inc/go-xtce/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerRoundTripUnsigned(t *testing.T) {
	enc := &encoding.IntegerEncoding{SizeInBits: 16, Signed: encoding.Unsigned}

	b, err := enc.Encode(30000, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, "7530", b.ToHex())

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, int64(30000), v)
}

func TestIntegerRoundTripSigned(t *testing.T) {
	enc := &encoding.IntegerEncoding{SizeInBits: 32, Signed: encoding.TwosComplement}

	b, err := enc.Encode(-30000, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, "ffff8ad0", b.ToHex())

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, int64(-30000), v)
}

func TestIntegerRejectsFloatWithoutCalibrator(t *testing.T) {
	enc := &encoding.IntegerEncoding{SizeInBits: 8, Signed: encoding.Unsigned}

	_, err := enc.Encode(1.5, mapContext{})
	require.Error(t, err)
}

func TestIntegerWithCalibrator(t *testing.T) {
	cal, err := calibrate.NewPolynomialCalibrator([]calibrate.Term{
		{Coefficient: 0, Exponent: 0},
		{Coefficient: 100, Exponent: 1},
	})
	require.NoError(t, err)

	enc := &encoding.IntegerEncoding{SizeInBits: 32, Signed: encoding.Unsigned, Calibrator: cal}

	b, err := enc.Encode(200220000.0, mapContext{})
	require.NoError(t, err)

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.InDelta(t, 200220000.0, v, 1e-6)
}

func TestIntegerCalibratorDecodeRoundsOffFloatNoise(t *testing.T) {
	cal, err := calibrate.NewPolynomialCalibrator([]calibrate.Term{
		{Coefficient: 0, Exponent: 0},
		{Coefficient: 0.1, Exponent: 1},
	})
	require.NoError(t, err)

	enc := &encoding.IntegerEncoding{SizeInBits: 8, Signed: encoding.Unsigned, Calibrator: cal}

	// 0.1 * 3 == 0.30000000000000004 in float64; decode must round that
	// representation noise away to the exact value.
	b, err := bits.FromUint(3, 8)
	require.NoError(t, err)

	v, err := enc.Decode(b, mapContext{})
	require.NoError(t, err)
	assert.Equal(t, 0.3, v)
}
