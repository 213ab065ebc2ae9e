package calibrate_test

import (
	"math"
	"testing"

	"github.com/antaris-inc/go-xtce/calibrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRoundTrip(t *testing.T) {
	c, err := calibrate.NewPolynomialCalibrator([]calibrate.Term{
		{Coefficient: 0, Exponent: 0},
		{Coefficient: 100, Exponent: 1},
	})
	require.NoError(t, err)

	y := c.Calibrate(2002200)
	assert.InDelta(t, 200220000.0, y, 1e-6)

	x, err := c.Uncalibrate(200220000.0)
	require.NoError(t, err)
	assert.Equal(t, int64(2002200), x)
}

func TestHighDegreeCalibrate(t *testing.T) {
	c, err := calibrate.NewPolynomialCalibrator([]calibrate.Term{
		{Coefficient: -7459.23273708, Exponent: 0},
		{Coefficient: 8.23643519148, Exponent: 1},
		{Coefficient: -3021.85061876, Exponent: 2},
		{Coefficient: 2.33422429056e-7, Exponent: 3},
		{Coefficient: 5.67189556173e11, Exponent: 4},
	})
	require.NoError(t, err)

	got := c.Calibrate(8012)
	want := 2.3371790673058884e+27

	assert.True(t, math.Abs((got-want)/want) < 1e-9, "got %v want %v", got, want)
}

func TestUncalibrateHighDegreeReturnsAnInteger(t *testing.T) {
	c, err := calibrate.NewPolynomialCalibrator([]calibrate.Term{
		{Coefficient: -7459.23273708, Exponent: 0},
		{Coefficient: 8.23643519148, Exponent: 1},
		{Coefficient: -3021.85061876, Exponent: 2},
		{Coefficient: 2.33422429056e-7, Exponent: 3},
		{Coefficient: 5.67189556173e11, Exponent: 4},
	})
	require.NoError(t, err)

	// Uncalibrating a degenerate (non-polynomial-root-sensitive) value
	// exercises the companion-matrix path without pinning to a specific
	// root ordering beyond "some real value comes back".
	_, err = c.Uncalibrate(0)
	require.NoError(t, err)
}

func TestTooFewTermsRejected(t *testing.T) {
	_, err := calibrate.NewPolynomialCalibrator([]calibrate.Term{{Coefficient: 1, Exponent: 0}})
	require.Error(t, err)
}
