package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/microaeris/ledmix/internal/mixing"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ledmix",
	Short: "An additive color mixing calculator for RGB LEDs",
	Long: `ledmix converts colors from the sRGB color space into the mixing ratio and
per-channel luminous intensities needed to reproduce them by additively
mixing three fixed-wavelength LEDs.

The primaries' chromaticities and rated intensities default to typical
datasheet values (625/530/475 nm) and can be overridden via config file.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("LEDMIX")
	viper.AutomaticEnv()

	defaults := mixing.DefaultPrimaries()
	viper.SetDefault("primaries.red.x", defaults.Red.X)
	viper.SetDefault("primaries.red.y", defaults.Red.Y)
	viper.SetDefault("primaries.red.intensity", defaults.Red.Intensity)
	viper.SetDefault("primaries.green.x", defaults.Green.X)
	viper.SetDefault("primaries.green.y", defaults.Green.Y)
	viper.SetDefault("primaries.green.intensity", defaults.Green.Intensity)
	viper.SetDefault("primaries.blue.x", defaults.Blue.X)
	viper.SetDefault("primaries.blue.y", defaults.Blue.Y)
	viper.SetDefault("primaries.blue.intensity", defaults.Blue.Intensity)

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// loadPrimaries assembles the primary configuration from viper, falling
// back to the datasheet defaults set in initConfig.
func loadPrimaries() mixing.Primaries {
	return mixing.Primaries{
		Red: mixing.Primary{
			X:         viper.GetFloat64("primaries.red.x"),
			Y:         viper.GetFloat64("primaries.red.y"),
			Intensity: viper.GetFloat64("primaries.red.intensity"),
		},
		Green: mixing.Primary{
			X:         viper.GetFloat64("primaries.green.x"),
			Y:         viper.GetFloat64("primaries.green.y"),
			Intensity: viper.GetFloat64("primaries.green.intensity"),
		},
		Blue: mixing.Primary{
			X:         viper.GetFloat64("primaries.blue.x"),
			Y:         viper.GetFloat64("primaries.blue.y"),
			Intensity: viper.GetFloat64("primaries.blue.intensity"),
		},
	}
}
