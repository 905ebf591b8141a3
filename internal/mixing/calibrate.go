package mixing

import "fmt"

// Channels holds one value per primary, in primary order.
type Channels struct {
	Red   float64
	Green float64
	Blue  float64
}

// Calibration is the absolute drive configuration satisfying a mixing
// ratio: each channel's share of the ratio total, its luminous intensity in
// candela, and that intensity as a percentage of the primary's rated
// maximum. The relative percentage is the lookup key into the datasheet's
// relative-intensity-vs-current curve; mapping it to a drive current is the
// caller's concern.
type Calibration struct {
	Ratio     Ratio
	Percent   Channels // share of the ratio total, 0..1
	Intensity Channels // candela
	Relative  Channels // percent of the primary's rated maximum
}

// referenceShareEpsilon bounds the red share below which pinning the red
// channel to its rated intensity would produce unbounded green/blue values.
const referenceShareEpsilon = 1e-9

// Calibrate converts a unitless mixing ratio into absolute per-channel
// luminous intensities. The red channel is pinned to its rated maximum and
// the others scale proportionally, so a derived intensity may exceed 100%
// of its primary's rating; no clamping is performed here.
func Calibrate(r Ratio, p Primaries) (Calibration, error) {
	total := r.Sum()
	if total < referenceShareEpsilon && total > -referenceShareEpsilon {
		return Calibration{}, fmt.Errorf("mixing ratio sums to zero: no proportions to calibrate")
	}

	percent := Channels{
		Red:   r.Red / total,
		Green: r.Green / total,
		Blue:  r.Blue / total,
	}

	if percent.Red < referenceShareEpsilon && percent.Red > -referenceShareEpsilon {
		return Calibration{}, fmt.Errorf("red share of the mixing ratio is zero: cannot pin the red channel")
	}

	// Red defines the bounding candela.
	intensity := Channels{Red: p.Red.Intensity}
	intensity.Green = (intensity.Red / percent.Red) * percent.Green
	intensity.Blue = (intensity.Red / percent.Red) * percent.Blue

	relative := Channels{
		Red:   intensity.Red / p.Red.Intensity * 100,
		Green: intensity.Green / p.Green.Intensity * 100,
		Blue:  intensity.Blue / p.Blue.Intensity * 100,
	}

	return Calibration{
		Ratio:     r,
		Percent:   percent,
		Intensity: intensity,
		Relative:  relative,
	}, nil
}
