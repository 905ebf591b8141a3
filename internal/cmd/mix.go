package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/microaeris/ledmix/internal/mixing"
	"github.com/microaeris/ledmix/internal/pipeline"
	"github.com/microaeris/ledmix/internal/report"
)

var mixCmd = &cobra.Command{
	Use:   "mix",
	Short: "Convert one sRGB color to a mixing ratio and intensities",
	Long: `Convert a single sRGB color into the additive mixing ratio of the
configured primaries and the calibrated per-channel luminous intensities.`,
	RunE: runMix,
}

func init() {
	rootCmd.AddCommand(mixCmd)

	mixCmd.Flags().StringP("color", "c", "", "Color to convert, as an 8-bit per channel hex string (e.g. FFB000)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"mix.color", "color"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, mixCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runMix(cmd *cobra.Command, args []string) error {
	spec := viper.GetString("mix.color")

	if logger == nil {
		initLogging()
	}

	if spec == "" {
		return fmt.Errorf("--color is required")
	}

	r, g, b, err := parseColor(spec)
	if err != nil {
		return err
	}

	primaries := loadPrimaries()
	mixer, err := pipeline.NewMixer(primaries, logger)
	if err != nil {
		return err
	}

	logger.Debug("Converting color", "spec", spec, "r", r, "g", g, "b", b)

	res, err := mixer.Mix(r, g, b)
	if err != nil {
		var gamutErr *mixing.GamutError
		if errors.As(err, &gamutErr) {
			return fmt.Errorf("%s cannot be produced by these primaries: %w", spec, err)
		}
		return fmt.Errorf("failed to convert %s: %w", spec, err)
	}

	logger.Info("Color converted",
		"spec", spec,
		"x", res.XYY.X,
		"y", res.XYY.Y,
	)

	return report.Render(os.Stdout, res)
}
