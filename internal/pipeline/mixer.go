// Package pipeline wires channel decoding, the tristimulus conversion, the
// mixing-ratio solver, and intensity calibration into a single step.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/microaeris/ledmix/internal/colorspace"
	"github.com/microaeris/ledmix/internal/mixing"
)

// Result is the full outcome for one target color.
type Result struct {
	XYZ         colorspace.XYZ
	XYY         colorspace.XYY
	Calibration mixing.Calibration
}

// Mixer converts 8-bit sRGB target colors into mixing ratios and calibrated
// intensities for a fixed set of primaries. It holds no mutable state and
// is safe for concurrent use.
type Mixer struct {
	primaries mixing.Primaries
	logger    *slog.Logger
}

// NewMixer validates the primary configuration and prepares a mixer.
func NewMixer(p mixing.Primaries, logger *slog.Logger) (*Mixer, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid primaries: %w", err)
	}

	return &Mixer{
		primaries: p,
		logger:    logger,
	}, nil
}

// Primaries returns the fixed primary configuration.
func (m *Mixer) Primaries() mixing.Primaries {
	return m.primaries
}

func (m *Mixer) log() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}

// Chromaticity decodes an 8-bit sRGB triple and projects it onto the CIE
// 1931 chromaticity plane. Returns colorspace.ErrDegenerateInput for black.
func (m *Mixer) Chromaticity(r, g, b uint8) (colorspace.XYY, error) {
	xyz := colorspace.RGBToXYZ(r, g, b)
	xyy, err := colorspace.ToXYY(xyz)
	if err != nil {
		return colorspace.XYY{}, err
	}

	m.log().Debug("converted target color",
		"rgb", fmt.Sprintf("%d,%d,%d", r, g, b),
		"x", xyy.X,
		"y", xyy.Y,
		"luminance", xyy.Lum,
	)

	return xyy, nil
}

// solve runs decode, projection, and the ratio solver, enforcing the gamut
// policy: a target outside the primaries' triangle is surfaced as
// *mixing.GamutError with the offending ratio attached, never as a
// negative-valued success.
func (m *Mixer) solve(r, g, b uint8) (colorspace.XYZ, colorspace.XYY, mixing.Ratio, error) {
	xyz := colorspace.RGBToXYZ(r, g, b)
	xyy, err := colorspace.ToXYY(xyz)
	if err != nil {
		return colorspace.XYZ{}, colorspace.XYY{}, mixing.Ratio{}, err
	}

	ratio, err := mixing.Solve(xyy, m.primaries)
	if err != nil {
		return colorspace.XYZ{}, colorspace.XYY{}, mixing.Ratio{}, err
	}

	if !ratio.InGamut() {
		return colorspace.XYZ{}, colorspace.XYY{}, mixing.Ratio{}, &mixing.GamutError{Ratio: ratio}
	}

	return xyz, xyy, ratio, nil
}

// MixingRatio computes the blue-normalized mixing ratio reproducing the
// target's chromaticity.
func (m *Mixer) MixingRatio(r, g, b uint8) (mixing.Ratio, error) {
	_, _, ratio, err := m.solve(r, g, b)
	return ratio, err
}

// Mix runs the full pipeline: decode, convert, solve, calibrate.
func (m *Mixer) Mix(r, g, b uint8) (Result, error) {
	xyz, xyy, ratio, err := m.solve(r, g, b)
	if err != nil {
		return Result{}, err
	}

	cal, err := mixing.Calibrate(ratio, m.primaries)
	if err != nil {
		return Result{}, fmt.Errorf("failed to calibrate intensities: %w", err)
	}

	m.log().Debug("mixed target color",
		"rgb", fmt.Sprintf("%d,%d,%d", r, g, b),
		"ratio", fmt.Sprintf("%.4f:%.4f:%.4f", ratio.Red, ratio.Green, ratio.Blue),
	)

	return Result{
		XYZ:         xyz,
		XYY:         xyy,
		Calibration: cal,
	}, nil
}
