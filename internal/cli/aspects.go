package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/astrolab/aspectra/internal/chart"
	"github.com/astrolab/aspectra/internal/ingest"
	"github.com/astrolab/aspectra/internal/log"
	"github.com/astrolab/aspectra/internal/palette"
	"github.com/astrolab/aspectra/pkg/angles"
)

var aspectsCmd = &cobra.Command{
	Use:   "aspects <file> <reference-body>",
	Short: "Build aspect-distance datasets for a reference body vs all others",
	Args:  cobra.ExactArgs(2),
	RunE:  runAspects,
}

func init() {
	aspectsCmd.Flags().Float64("orb", 0, "orb in degrees (default from config, 5.0)")
	aspectsCmd.Flags().Bool("trine", false, "include the trine panel")
	aspectsCmd.Flags().Bool("square", false, "include the square panel")
	aspectsCmd.Flags().Bool("opposition", false, "include the opposition panel")
	aspectsCmd.Flags().Bool("conjunction", false, "include the conjunction panel")
	aspectsCmd.Flags().StringP("out", "o", "", "output path (default: stdout)")
	aspectsCmd.Flags().String("format", "json", "output format: json or msgpack")
	rootCmd.AddCommand(aspectsCmd)
}

// chosenAspects reads the aspect selection flags; no flags means all four.
func chosenAspects(cmd *cobra.Command) []angles.Aspect {
	var out []angles.Aspect
	for _, a := range angles.All() {
		if on, _ := cmd.Flags().GetBool(a.Name); on {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return angles.All()
	}
	return out
}

func runAspects(cmd *cobra.Command, args []string) error {
	table, err := ingest.ParseFile(args[0])
	if err != nil {
		return err
	}

	orb, _ := cmd.Flags().GetFloat64("orb")
	if orb <= 0 {
		orb = viper.GetFloat64("orb")
	}

	aspects := chosenAspects(cmd)
	log.Infof("building %d aspect panels, reference %s, orb %.1f", len(aspects), args[1], orb)

	ds, err := chart.BuildAspects(table, args[1], aspects, orb, palette.New())
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	format, _ := cmd.Flags().GetString("format")
	return writeDataset(out, format, ds)
}
