// Package colorspace converts gamma-encoded 8-bit sRGB channel values into
// CIE 1931 tristimulus and chromaticity coordinates.
package colorspace

import "math"

// Inverse companding constants for the sRGB electro-optical transfer function.
const (
	compandVMin = 0.04045
	compandA    = 12.92
	compandB    = 0.055
	compandC    = 1.055
	compandPow  = 2.4
)

// linearScale maps the decoded [0,1] linear fraction onto the 0-100 range
// used by the downstream luminance convention.
const linearScale = 100.0

const max8Bit = 0xFF

// DecodeChannel inverse-gamma-decodes a single 8-bit sRGB channel value into
// a linear-light fraction scaled to [0, 100].
func DecodeChannel(value uint8) float64 {
	v := float64(value) / max8Bit
	if v <= compandVMin {
		v = v / compandA
	} else {
		v = math.Pow((v+compandB)/compandC, compandPow)
	}
	return v * linearScale
}

// DecodeRGB decodes all three channels of an 8-bit sRGB triple.
func DecodeRGB(r, g, b uint8) [3]float64 {
	return [3]float64{
		DecodeChannel(r),
		DecodeChannel(g),
		DecodeChannel(b),
	}
}
