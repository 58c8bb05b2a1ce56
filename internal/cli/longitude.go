package cli

import (
	"github.com/spf13/cobra"

	"github.com/astrolab/aspectra/internal/chart"
	"github.com/astrolab/aspectra/internal/ingest"
	"github.com/astrolab/aspectra/internal/log"
	"github.com/astrolab/aspectra/internal/palette"
)

var longitudeCmd = &cobra.Command{
	Use:   "longitude <file>",
	Short: "Build the longitude chart dataset from an ephemeris export",
	Args:  cobra.ExactArgs(1),
	RunE:  runLongitude,
}

func init() {
	longitudeCmd.Flags().StringP("out", "o", "", "output path (default: stdout)")
	longitudeCmd.Flags().String("format", "json", "output format: json or msgpack")
	rootCmd.AddCommand(longitudeCmd)
}

func runLongitude(cmd *cobra.Command, args []string) error {
	table, err := ingest.ParseFile(args[0])
	if err != nil {
		return err
	}
	if table.SkippedLines > 0 {
		log.Debugf("skipped %d unparseable lines", table.SkippedLines)
	}
	log.Infof("parsed %d samples across %d bodies", table.Len(), len(table.Names()))

	ds := chart.BuildLongitude(table, palette.New())

	out, _ := cmd.Flags().GetString("out")
	format, _ := cmd.Flags().GetString("format")
	return writeDataset(out, format, ds)
}
