// Package mixing solves for the additive mixing ratio of three fixed light
// sources that reproduces a target chromaticity, and calibrates that ratio
// into absolute per-channel luminous intensities.
package mixing

import "fmt"

// Primary describes one fixed light source: its CIE 1931 chromaticity
// coordinate and its rated luminous intensity in candela.
type Primary struct {
	X         float64
	Y         float64
	Intensity float64
}

// Primaries is the immutable three-source configuration of a device.
// Exactly three primaries exist; they are supplied at startup (typically
// from LED datasheets) and never mutated.
type Primaries struct {
	Red   Primary
	Green Primary
	Blue  Primary
}

// collinearEpsilon bounds the twice-signed-area below which the three
// chromaticity points are treated as collinear.
const collinearEpsilon = 1e-9

// DefaultPrimaries returns the chromaticities of typical RGB LEDs with
// dominant wavelengths 625 nm (red), 530 nm (green) and 475 nm (blue),
// and their typical rated luminous intensities from the datasheet.
// Wavelength to chromaticity conversion via https://www.ledtuning.nl/en/cie-convertor
func DefaultPrimaries() Primaries {
	return Primaries{
		Red:   Primary{X: 0.700606061, Y: 0.299300699, Intensity: 0.105},
		Green: Primary{X: 0.154722061, Y: 0.805863545, Intensity: 0.330},
		Blue:  Primary{X: 0.109594324, Y: 0.08684251, Intensity: 0.200},
	}
}

// SRGBPrimaries returns the sRGB reference primaries with unit rated
// intensity, useful for validating against published reference values.
func SRGBPrimaries() Primaries {
	return Primaries{
		Red:   Primary{X: 0.67, Y: 0.33, Intensity: 1.0},
		Green: Primary{X: 0.21, Y: 0.71, Intensity: 1.0},
		Blue:  Primary{X: 0.14, Y: 0.08, Intensity: 1.0},
	}
}

// Validate checks that the configuration spans a proper gamut triangle.
// Collinear chromaticities degenerate the solver's geometry, and rated
// intensities must be positive for calibration to be meaningful.
func (p Primaries) Validate() error {
	// Twice the signed area of the chromaticity triangle.
	area := (p.Green.X-p.Red.X)*(p.Blue.Y-p.Red.Y) - (p.Blue.X-p.Red.X)*(p.Green.Y-p.Red.Y)
	if area < collinearEpsilon && area > -collinearEpsilon {
		return fmt.Errorf("primary chromaticities are collinear: no gamut triangle")
	}

	for _, pr := range []struct {
		name string
		p    Primary
	}{
		{"red", p.Red},
		{"green", p.Green},
		{"blue", p.Blue},
	} {
		if pr.p.Intensity <= 0 {
			return fmt.Errorf("%s primary has non-positive rated intensity %g cd", pr.name, pr.p.Intensity)
		}
	}

	return nil
}
