package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/microaeris/ledmix/internal/pipeline"
	"github.com/microaeris/ledmix/internal/plot"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Render a chromaticity diagram of the gamut and a target color",
	Long: `Render a PNG of the CIE 1931 chromaticity triangle spanned by the
configured primaries, with the target color's chromaticity marked.

Out-of-gamut targets are still plotted; the diagram is the way to see how
far outside the triangle they fall.`,
	RunE: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.Flags().StringP("color", "c", "", "Target color as an 8-bit per channel hex string")
	diagramCmd.Flags().StringP("output", "o", "diagram.png", "Output PNG path")
	diagramCmd.Flags().Int("size", 512, "Diagram size in pixels")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"diagram.color", "color"},
		{"diagram.output", "output"},
		{"diagram.size", "size"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, diagramCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runDiagram(cmd *cobra.Command, args []string) error {
	spec := viper.GetString("diagram.color")
	output := viper.GetString("diagram.output")
	size := viper.GetInt("diagram.size")

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

	xyy, err := mixer.Chromaticity(r, g, b)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", spec, err)
	}

	img, err := plot.Render(primaries, xyy, size)
	if err != nil {
		return fmt.Errorf("failed to render diagram: %w", err)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	logger.Info("Diagram rendered",
		"spec", spec,
		"x", xyy.X,
		"y", xyy.Y,
		"path", output,
	)

	return nil
}
