// Package cli wires the command-line surface. Commands are thin: they
// parse flags, load input, call the chart builders, and hand the result
// to an exporter or the HTTP server.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/astrolab/aspectra/internal/log"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "aspectra",
	Short: "Compute longitude and aspect chart datasets from ephemeris exports",
	Long: `aspectra ingests time-ordered ecliptic-longitude rows (swetest CSV or
whitespace format) and computes renderer-ready chart datasets: wrap-safe
longitude segments on a zodiac scale, and aspect-distance traces between
a reference body and all others.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Init(debug); err != nil {
			return err
		}
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "turn on debugging output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./aspectra.yaml)")
}

// initConfig loads defaults and the optional config file. Flags take
// precedence over file values; file values over defaults.
func initConfig() error {
	viper.SetDefault("orb", 5.0)
	viper.SetDefault("listen", ":8080")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("aspectra")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return fmt.Errorf("reading config: %w", err)
		}
		return nil
	}
	log.Debugf("using config file %s", viper.ConfigFileUsed())
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "aspectra: %v\n", err)
		os.Exit(1)
	}
}
