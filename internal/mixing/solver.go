package mixing

import (
	"math"

	"github.com/microaeris/ledmix/internal/colorspace"
)

// Ratio is the unitless mixing proportion of the three primaries. It is
// meaningful only as a ratio and is normalized so that Blue equals 1.0.
// A negative component means the target chromaticity lies outside the
// primaries' gamut triangle.
type Ratio struct {
	Red   float64
	Green float64
	Blue  float64
}

// InGamut reports whether the ratio is realizable by non-negative additive
// mixing of the three primaries.
func (r Ratio) InGamut() bool {
	return r.Red >= 0 && r.Green >= 0 && r.Blue >= 0
}

// Sum returns the total of the three components.
func (r Ratio) Sum() float64 {
	return r.Red + r.Green + r.Blue
}

// Channels returns the ratio in the per-channel value shape.
func (r Ratio) Channels() Channels {
	return Channels{Red: r.Red, Green: r.Green, Blue: r.Blue}
}

// slopeEpsilon bounds the x or y differences below which a required line
// slope (or a ratio-of-mixtures denominator) is treated as undefined.
const slopeEpsilon = 1e-12

// ratioOfMixtures returns the proportion of the component at y1, relative
// to the one at y2, required to produce the point at y3 by linear
// interpolation along the line through all three.
//
//	R = -(y2/y1) * (y1-y3) / (y2-y3)
func ratioOfMixtures(y1, y2, y3 float64) float64 {
	return (-1 * (y2 / y1)) * (y1 - y3) / (y2 - y3)
}

// Solve computes the mixing ratio of the three primaries that additively
// reproduces the target chromaticity, using the center of gravity method:
// a line from the green primary through the target is intersected with the
// red-blue edge to find the "purple point", then two ratio-of-mixtures
// steps give blue:red (producing the purple point) and purple:green
// (producing the target). Luminance is not used.
//
// The returned ratio is normalized on blue and may contain negative
// components; callers decide whether that constitutes an error.
func Solve(target colorspace.XYY, p Primaries) (Ratio, error) {
	// Line between red and blue in the chromaticity plane.
	if math.Abs(p.Red.X-p.Blue.X) < slopeEpsilon {
		return Ratio{}, &DegenerateGeometryError{Reason: "red and blue primaries share an x-coordinate"}
	}
	slopeRB := (p.Red.Y - p.Blue.Y) / (p.Red.X - p.Blue.X)
	constRB := p.Blue.Y - slopeRB*p.Blue.X

	// Line between green and the target color.
	if math.Abs(p.Green.X-target.X) < slopeEpsilon {
		return Ratio{}, &DegenerateGeometryError{Reason: "green primary and target share an x-coordinate"}
	}
	slopeGD := (p.Green.Y - target.Y) / (p.Green.X - target.X)
	// The intercept is anchored on the green primary's own x-coordinate.
	// The published formula uses the target's x instead; both describe the
	// same line, and this form matches the calibration the device was
	// validated against.
	constGD := p.Green.Y - slopeGD*p.Green.X

	// Interception point between the two lines.
	if math.Abs(slopeGD-slopeRB) < slopeEpsilon {
		return Ratio{}, &DegenerateGeometryError{Reason: "green-target line is parallel to the red-blue edge"}
	}
	purpleX := (constRB - constGD) / (slopeGD - slopeRB)
	purpleY := slopeRB*purpleX + constRB

	// Blue to red ratio producing the purple point.
	if math.Abs(p.Blue.Y) < slopeEpsilon || math.Abs(p.Red.Y-purpleY) < slopeEpsilon {
		return Ratio{}, &DegenerateGeometryError{Reason: "purple point coincides with the red primary"}
	}
	ratioBR := ratioOfMixtures(p.Blue.Y, p.Red.Y, purpleY)

	// Purple to green ratio producing the target.
	if math.Abs(purpleY) < slopeEpsilon || math.Abs(p.Green.Y-target.Y) < slopeEpsilon {
		return Ratio{}, &DegenerateGeometryError{Reason: "target shares the green primary's y-coordinate"}
	}
	ratioPG := ratioOfMixtures(purpleY, p.Green.Y, target.Y)

	if math.Abs(ratioBR+1) < slopeEpsilon {
		return Ratio{}, &DegenerateGeometryError{Reason: "blue:red ratio sums to zero"}
	}

	// Fractions of red and blue required to produce the purple point.
	redFraction := ratioBR / (ratioBR + 1)
	blueFraction := 1 / (ratioBR + 1)

	// Normalize on blue.
	return Ratio{
		Red:   redFraction / blueFraction,
		Green: ratioPG / blueFraction,
		Blue:  1.0,
	}, nil
}
