package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microaeris/ledmix/internal/colorspace"
	"github.com/microaeris/ledmix/internal/mixing"
)

func TestNewMixerRejectsInvalidPrimaries(t *testing.T) {
	collinear := mixing.Primaries{
		Red:   mixing.Primary{X: 0.1, Y: 0.1, Intensity: 1},
		Green: mixing.Primary{X: 0.2, Y: 0.2, Intensity: 1},
		Blue:  mixing.Primary{X: 0.3, Y: 0.3, Intensity: 1},
	}

	_, err := NewMixer(collinear, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid primaries")
}

func TestMixWhite(t *testing.T) {
	mixer, err := NewMixer(mixing.DefaultPrimaries(), nil)
	require.NoError(t, err)

	res, err := mixer.Mix(255, 255, 255)
	require.NoError(t, err)

	// White lands on the D65 white point.
	assert.InDelta(t, 0.3128, res.XYY.X, 1e-3)
	assert.InDelta(t, 0.3292, res.XYY.Y, 1e-3)

	cal := res.Calibration
	assert.Equal(t, 1.0, cal.Ratio.Blue, "ratio is normalized on blue")
	assert.True(t, cal.Ratio.InGamut())

	// Red pinned to its rated candela, proportions preserved.
	assert.Equal(t, mixing.DefaultPrimaries().Red.Intensity, cal.Intensity.Red)
	assert.InDelta(t, 100.0, cal.Relative.Red, 1e-9)
	assert.InEpsilon(t, cal.Ratio.Green/cal.Ratio.Red, cal.Intensity.Green/cal.Intensity.Red, 1e-9)
}

func TestMixBlackIsDegenerate(t *testing.T) {
	mixer, err := NewMixer(mixing.DefaultPrimaries(), nil)
	require.NoError(t, err)

	_, err = mixer.Mix(0, 0, 0)
	assert.ErrorIs(t, err, colorspace.ErrDegenerateInput)

	_, err = mixer.MixingRatio(0, 0, 0)
	assert.ErrorIs(t, err, colorspace.ErrDegenerateInput)
}

func TestMixingRatioOutOfGamut(t *testing.T) {
	mixer, err := NewMixer(mixing.DefaultPrimaries(), nil)
	require.NoError(t, err)

	// A saturated sRGB blue sits outside the LED triangle (the LED blue
	// primary is less saturated than sRGB's).
	_, err = mixer.MixingRatio(0, 0, 255)
	require.Error(t, err)

	var gamutErr *mixing.GamutError
	require.True(t, errors.As(err, &gamutErr), "want GamutError, got %v", err)

	// The offending ratio travels with the error and actually is negative.
	assert.False(t, gamutErr.Ratio.InGamut())

	// Mix applies the same gamut policy, with the same ratio attached.
	_, err = mixer.Mix(0, 0, 255)
	var mixGamutErr *mixing.GamutError
	require.True(t, errors.As(err, &mixGamutErr), "want GamutError from Mix, got %v", err)
	assert.Equal(t, gamutErr.Ratio, mixGamutErr.Ratio)
}

func TestMixingRatioMatchesMix(t *testing.T) {
	mixer, err := NewMixer(mixing.DefaultPrimaries(), nil)
	require.NoError(t, err)

	ratio, err := mixer.MixingRatio(200, 180, 120)
	require.NoError(t, err)

	res, err := mixer.Mix(200, 180, 120)
	require.NoError(t, err)

	assert.Equal(t, ratio, res.Calibration.Ratio)
}

func TestChromaticityScaleInvariantRatio(t *testing.T) {
	mixer, err := NewMixer(mixing.DefaultPrimaries(), nil)
	require.NoError(t, err)

	// Gray is a uniformly scaled white: same chromaticity, same ratio.
	white, err := mixer.MixingRatio(255, 255, 255)
	require.NoError(t, err)

	gray, err := mixer.MixingRatio(128, 128, 128)
	require.NoError(t, err)

	assert.InDelta(t, white.Red, gray.Red, 1e-9)
	assert.InDelta(t, white.Green, gray.Green, 1e-9)
	assert.Equal(t, white.Blue, gray.Blue)
}
