package colorspace

import "errors"

// ErrDegenerateInput is returned when a tristimulus vector sums to (near)
// zero, i.e. the target is black and has no defined chromaticity.
var ErrDegenerateInput = errors.New("tristimulus sum is zero: chromaticity undefined for black input")

// degenerateSumEpsilon is the threshold below which X+Y+Z is treated as zero.
const degenerateSumEpsilon = 1e-9

// XYZ is a CIE 1931 tristimulus vector. All components are non-negative for
// physically realizable colors.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// Sum returns X+Y+Z, the normalization divisor of the chromaticity projection.
func (c XYZ) Sum() float64 {
	return c.X + c.Y + c.Z
}

// XYY is a CIE 1931 xyY coordinate: a luminance-independent chromaticity
// point (X, Y) plus the absolute luminance Lum.
type XYY struct {
	X   float64
	Y   float64
	Lum float64
}

// srgbToXYZ is the linear-RGB to XYZ transform derived from the sRGB
// reference primaries under D65.
// Source: http://www.brucelindbloom.com/index.html?Math.html
var srgbToXYZ = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// LinearToXYZ applies the fixed sRGB-to-XYZ matrix to a decoded linear RGB
// triple, treated as a column vector.
func LinearToXYZ(rgb [3]float64) XYZ {
	return XYZ{
		X: srgbToXYZ[0][0]*rgb[0] + srgbToXYZ[0][1]*rgb[1] + srgbToXYZ[0][2]*rgb[2],
		Y: srgbToXYZ[1][0]*rgb[0] + srgbToXYZ[1][1]*rgb[1] + srgbToXYZ[1][2]*rgb[2],
		Z: srgbToXYZ[2][0]*rgb[0] + srgbToXYZ[2][1]*rgb[1] + srgbToXYZ[2][2]*rgb[2],
	}
}

// RGBToXYZ decodes an 8-bit sRGB triple and converts it to CIE 1931 XYZ.
func RGBToXYZ(r, g, b uint8) XYZ {
	return LinearToXYZ(DecodeRGB(r, g, b))
}

// ToXYY projects a tristimulus vector onto the chromaticity plane:
//
//	x = X / (X+Y+Z)
//	y = Y / (X+Y+Z)
//	Y = Y
//
// Returns ErrDegenerateInput when the sum is too close to zero to divide.
func ToXYY(c XYZ) (XYY, error) {
	sum := c.Sum()
	if sum < degenerateSumEpsilon {
		return XYY{}, ErrDegenerateInput
	}
	return XYY{
		X:   c.X / sum,
		Y:   c.Y / sum,
		Lum: c.Y,
	}, nil
}
