package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/astrolab/aspectra/internal/log"
	"github.com/astrolab/aspectra/pkg/ephemeris"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a daily Sun/Moon longitude export",
	Long: `gen computes daily geocentric longitudes with the built-in ephemeris
and writes them in the same row format the other commands ingest, so a
chart can be produced without an external swetest run.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().String("start", "", "first date, YYYY-MM-DD (default: today)")
	genCmd.Flags().Int("days", 365, "number of daily steps")
	genCmd.Flags().StringSlice("bodies", []string{"Sun", "Moon"}, "bodies to generate")
	genCmd.Flags().StringP("out", "o", "", "output path (default: stdout)")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	start := time.Now().UTC()
	if raw, _ := cmd.Flags().GetString("start"); raw != "" {
		var err error
		start, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("parsing --start: %w", err)
		}
	}

	days, _ := cmd.Flags().GetInt("days")
	if days <= 0 {
		return fmt.Errorf("--days must be positive")
	}

	names, _ := cmd.Flags().GetStringSlice("bodies")
	bodies := make([]ephemeris.Body, len(names))
	for i, n := range names {
		bodies[i] = ephemeris.Body(n)
	}

	out := os.Stdout
	path, _ := cmd.Flags().GetString("out")
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	if err := ephemeris.WriteCSV(out, bodies, start, days); err != nil {
		return err
	}
	log.Infof("generated %d days for %d bodies starting %s",
		days, len(bodies), start.Format("2006-01-02"))
	return nil
}
