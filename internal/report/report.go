// Package report renders conversion results in a human-readable form.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/microaeris/ledmix/internal/pipeline"
)

// Render writes the calibration table for one converted color:
// the mixing ratio, each channel's share of the ratio, the absolute
// luminous intensity in candela, and that intensity as a percentage of the
// primary's rated maximum. The relative percentage maps onto the
// relative-intensity-vs-current graph in the LED datasheet.
func Render(w io.Writer, res pipeline.Result) error {
	cal := res.Calibration

	tw := tabwriter.NewWriter(w, 8, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "\tRed\tGreen\tBlue\n")
	fmt.Fprintf(tw, "Mix Ratio:\t%.3f\t%.3f\t%.3f\n",
		cal.Ratio.Red, cal.Ratio.Green, cal.Ratio.Blue)
	fmt.Fprintf(tw, "Mix Ratio %%:\t%d%%\t%d%%\t%d%%\n",
		int(cal.Percent.Red*100), int(cal.Percent.Green*100), int(cal.Percent.Blue*100))
	fmt.Fprintf(tw, "Intensity (cd):\t%.2f\t%.2f\t%.2f\n",
		cal.Intensity.Red, cal.Intensity.Green, cal.Intensity.Blue)
	fmt.Fprintf(tw, "Relative Intensity %%:\t%d%%\t%d%%\t%d%%\n",
		int(cal.Relative.Red), int(cal.Relative.Green), int(cal.Relative.Blue))

	return tw.Flush()
}

// Summary returns a one-line rendition of a result, used in batch output.
func Summary(spec string, res pipeline.Result) string {
	cal := res.Calibration
	return fmt.Sprintf("%s  ratio=%.3f:%.3f:%.3f  cd=%.3f/%.3f/%.3f  rel%%=%d/%d/%d",
		spec,
		cal.Ratio.Red, cal.Ratio.Green, cal.Ratio.Blue,
		cal.Intensity.Red, cal.Intensity.Green, cal.Intensity.Blue,
		int(cal.Relative.Red), int(cal.Relative.Green), int(cal.Relative.Blue))
}
